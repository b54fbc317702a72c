package report

import(
	"fmt"
	"sort"

	"github.com/skypies/flighttest/log"
)

// A simple registry of all known reports.
type ReportEntry struct {
	ReportFunc
	SummarizeFunc
	Name, Description string
}

var reportRegistry = map[string]ReportEntry{}

func HandleReport(name string, f ReportFunc, description string) {
	reportRegistry[name] = ReportEntry{
		ReportFunc: f,
		Name: name,
		Description: description,
	}
}
func SummarizeReport(name string, sf SummarizeFunc) {
	entry := reportRegistry[name]
	entry.SummarizeFunc = sf
	reportRegistry[name] = entry
}

func ListReports() []ReportEntry {
	out := []ReportEntry{}

	keys := []string{}
	for k := range reportRegistry { keys = append(keys, k) }
	sort.Strings(keys)

	for _,k := range keys {
		out = append(out, reportRegistry[k])
	}
	return out
}

// SetupReport instantiates the report named in the options, ready to process sessions.
func SetupReport(opt Options, lg *log.Logger) (Report, error) {
	if err := opt.Validate(); err != nil { return Report{}, err }

	rep,err := InstantiateReport(opt.Name)
	if err != nil { return Report{}, err }

	rep.Options = opt

	if err := rep.setupReportingContext(lg); err != nil {
		return Report{}, err
	}

	rep.Infof("**** Stage: setup %s\n", opt)

	return rep, nil
}

func InstantiateReport(name string) (Report,error) {
	// Lookup in registry
	r := BlankReport()

	r.Name = name

	if entry,exists := reportRegistry[name]; !exists {
		return r, fmt.Errorf("report '%s' not known", name)
	} else {
		r.Func = entry.ReportFunc
		r.SummarizeFunc = entry.SummarizeFunc
	}
	return r, nil
}
