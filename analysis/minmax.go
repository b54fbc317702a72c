package analysis

import(
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"

	ft "github.com/skypies/flighttest"
	"github.com/skypies/flighttest/csvlog"
	"github.com/skypies/flighttest/report"
)

func init() {
	report.HandleReport("minmax", MinMaxReporter, "Min & max of each control, per file and overall")
	report.SummarizeReport("minmax", MinMaxSummarizer)
}

const MinMaxDir = "minmax"

// The per file results, accumulated across sessions for the summary.
type minMaxBlob struct {
	Mins, Maxs [][]float64 // one row per control file, columns as ft.ControlColumns
}

func getMinMaxBlob(r *report.Report) *minMaxBlob {
	if b,exists := r.Blobs["minmax"]; exists {
		return b.(*minMaxBlob)
	}
	b := &minMaxBlob{}
	r.Blobs["minmax"] = b
	return b
}

func minMaxHeaders() []string {
	h := []string{"PILOT", "FILE", "SAMPLES"}
	for _,col := range ft.ControlColumns {
		h = append(h, col+"_MIN", col+"_MAX")
	}
	return h
}

// MinMaxReporter works on converted control positions, so that the values can be compared
// against the control limits.
func MinMaxReporter(r *report.Report, s *ft.Session) (report.SessionReportOutcome, error) {
	if !s.HasControl() || len(s.Control) == 0 {
		r.I["[C] Skipped, no control samples"]++
		return report.RejectedByReport, nil
	}
	r.I["[C] Control files examined"]++

	converted := r.SessionConverted(s)
	mins,maxs := []float64{}, []float64{}
	row := []string{s.Pilot.String(), s.ControlFile, i2(len(converted))}

	for _,col := range ft.ControlColumns {
		vals,err := converted.Series(col)
		if err != nil { return report.RejectedByReport, err }
		min,max := floats.Min(vals), floats.Max(vals)
		mins = append(mins, min)
		maxs = append(maxs, max)
		row = append(row, f2(min), f2(max))

		if lim,exists := ft.ControlLimits[col]; exists && (min < lim.Min || max > lim.Max) {
			r.I[fmt.Sprintf("[D] %s exceeded limits [%.0f,%.0f]", col, lim.Min, lim.Max)]++
			r.Infof("%s: %s range [%.2f,%.2f] outside limits [%.0f,%.0f]\n", s.Pilot, col, min, max,
				lim.Min, lim.Max)
		}
	}

	b := getMinMaxBlob(r)
	b.Mins = append(b.Mins, mins)
	b.Maxs = append(b.Maxs, maxs)

	r.SetHeaders(minMaxHeaders())
	r.AddRow(row)

	return report.Accepted, nil
}

func writeMinMaxFile(r *report.Report, name string, rows [][]float64) error {
	text := make([][]string, len(rows))
	for i,row := range rows {
		for _,v := range row {
			text[i] = append(text[i], f2(v))
		}
	}

	path := r.OutputPath(MinMaxDir, name)
	f,err := os.Create(path)
	if err != nil { return err }
	if err := csvlog.WriteTable(f, ft.ControlColumns, text); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil { return err }

	r.AddOutput(path)
	return nil
}

// MinMaxSummarizer adds the global min & max, and writes the per file values out as
// local_mins.csv and local_maxs.csv.
func MinMaxSummarizer(r *report.Report) {
	b := getMinMaxBlob(r)
	if len(b.Mins) == 0 {
		r.Info("No control files found.\n")
		return
	}

	row := []string{"ALL", "", ""}
	for i,col := range ft.ControlColumns {
		colMins,colMaxs := []float64{}, []float64{}
		for j := range b.Mins {
			colMins = append(colMins, b.Mins[j][i])
			colMaxs = append(colMaxs, b.Maxs[j][i])
		}
		min,max := floats.Min(colMins), floats.Max(colMaxs)
		r.S[fmt.Sprintf("[G] %s global", col)] = fmt.Sprintf("min = %.2f, max = %.2f", min, max)
		row = append(row, f2(min), f2(max))
	}
	r.AddRow(row)

	for name,rows := range map[string][][]float64{"local_mins.csv": b.Mins, "local_maxs.csv": b.Maxs} {
		if err := writeMinMaxFile(r, name, rows); err != nil {
			r.I["[Z] Errors"]++
			r.Infof("write %s: %v\n", name, err)
		}
	}
}
