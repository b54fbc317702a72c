package report

import(
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/skypies/util/histogram"
	ft "github.com/skypies/flighttest"
)

type SessionReportOutcome int
const(
	RejectedByFilter SessionReportOutcome = iota
	RejectedByReport
	Accepted
	Undefined
)

func (o SessionReportOutcome)String() string {
	switch o {
	case RejectedByFilter: return "RejectedByFilter"
	case RejectedByReport: return "RejectedByReport"
	case Accepted:         return "Accepted"
	}
	return "Undefined"
}

type ReportFunc func(*Report, *ft.Session)(SessionReportOutcome,error)
type SummarizeFunc func(*Report)

type ReportLogLevel int
const(
	DEBUG = iota
	INFO
)

type Report struct {
	Name              string
	ReportingContext  // embedded
	Options           // embedded
	Func              ReportFunc
	SummarizeFunc     // embedded, but just to avoid a more confusing name

	// Private state a report might accumulate across sessions
	Blobs map[string]interface{}

	// Output state
	RowsText  [][]string
	HeadersText []string
	Outputs   []string // Files written, in order

	I         map[string]int
	F         map[string]float64
	S         map[string]string
	H         histogram.Histogram

	Stats histogram.Set // internal performance counters
	Log string
}

func BlankReport() Report {
	return Report{
		I: map[string]int{},
		F: map[string]float64{},
		S: map[string]string{},
		RowsText: [][]string{},
		HeadersText: []string{},
		Outputs: []string{},
		Blobs: map[string]interface{}{},
		Stats: histogram.NewSet(4000000),  // maxval, in micros; 4s == 4000000us
	}
}

func (r *Report)Logger(level ReportLogLevel, s string) {
	if level < r.Options.ReportLogLevel { return }
	r.Log += s
	if level >= INFO {
		r.Slog.Info(strings.TrimSpace(s))
	} else {
		r.Slog.Debug(strings.TrimSpace(s))
	}
}
func (r *Report)Infof(s string,args ...interface{}) { r.Logger(INFO, fmt.Sprintf(s,args...)) }
func (r *Report)Debugf(s string,args ...interface{}) { r.Logger(DEBUG, fmt.Sprintf(s,args...)) }
func (r *Report)Info(s string) { r.Logger(INFO, s) }
func (r *Report)Debug(s string) { r.Logger(DEBUG, s) }

func (r *Report)SetHeaders(headers []string) {
	if len(r.HeadersText) == 0 { r.HeadersText = headers }
}
func (r *Report)AddRow(text []string) {
	r.RowsText = append(r.RowsText, text)
}

// Ensure the session matches the pilot restrictions. A session whose maneuver filename names no
// pilot still passes (unless pilots were selected); reports that need a pilot must check.
func (r *Report)PreProcess(s *ft.Session) bool {
	r.I["[A] PreProcessed"]++

	if s.Pilot.IsZero() {
		r.I["[B] No pilot in maneuver filename"]++
	}

	if len(r.Options.Pilots) > 0 && len(ft.SessionsFilter([]ft.Session{*s}, r.Options.Pilots)) == 0 {
		r.I["[B] Eliminated: pilot not selected"]++
		return false
	}

	r.I["[B] Passed pilot filter"]++

	return true
}

func (r *Report)Process(s *ft.Session) (SessionReportOutcome, error) {
	if !r.PreProcess(s) { return RejectedByFilter,nil }

	tStart := time.Now()
	outcome,err := r.Func(r, s)
	r.Stats.RecordValue(r.Name, time.Since(tStart).Nanoseconds()/1000)

	if err != nil {
		r.I["[Z] Errors"]++
		r.Infof("%s: %v\n", s.Pilot, err)
	}

	return outcome, err
}

// Run processes every session in turn, and then summarizes. Errors from individual sessions
// are logged and counted, but don't stop the run.
func (r *Report)Run(sessions []ft.Session) {
	for i := range sessions {
		outcome,_ := r.Process(&sessions[i])
		r.Debugf("%s: %s\n", sessions[i].Pilot, outcome)
	}
	r.FinishSummary()
}

func (r *Report)FinishSummary() {
	r.Info("**** Stage: all done\n")
	r.Debug("* (DEBUG)\n")
	if r.SummarizeFunc != nil { r.SummarizeFunc(r) }
	r.Infof("Stats (in micros):-\n%s", r.Stats)
}

func (r *Report)MetadataTable() [][]string {
	all := map[string]string{}

	for k,v := range r.I { all[k] = fmt.Sprintf("%d", v) }
	for k,v := range r.F { all[k] = fmt.Sprintf("%.1f", v) }
	for k,v := range r.S { all[k] = v }

	if stats,valid := r.H.Stats(); valid {
		all["[Z] stats, N"] = fmt.Sprintf("%d", stats.N)
		all["[Z] stats, Mean"] = fmt.Sprintf("%.0f", stats.Mean)
		all["[Z] stats, Stddev"] = fmt.Sprintf("%.0f", stats.Stddev)
		all["[Z] stats, 50%ile"] = fmt.Sprintf("%d", stats.Percentile50)
		all["[Z] stats, 90%ile"] = fmt.Sprintf("%d", stats.Percentile90)
	}

	keys := []string{}
	for k := range all { keys = append(keys, k) }
	sort.Strings(keys)

	out := [][]string{}
	for _,k := range keys {
		out = append(out, []string{k, all[k]})
	}

	return out
}
