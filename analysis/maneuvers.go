package analysis

import(
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/skypies/util/histogram"

	ft "github.com/skypies/flighttest"
	"github.com/skypies/flighttest/csvlog"
	"github.com/skypies/flighttest/report"
)

func init() {
	report.HandleReport("maneuvers", ManeuverReporter, "Slice control positions into one CSV per maneuver")
	report.SummarizeReport("maneuvers", ManeuverSummarizer)
}

var ManeuverHeaders = []string{
	"PILOT", "MANEUVER", "START", "END", "START_INDEX", "END_INDEX", "SAMPLES", "DURATION(S)",
	"PITCH_MIN", "PITCH_MAX", "ROLL_MIN", "ROLL_MAX", "FILE",
}

func ManeuverReporter(r *report.Report, s *ft.Session) (report.SessionReportOutcome, error) {
	if !s.HasControl() {
		r.I["[C] Skipped, no control log"]++
		return report.RejectedByReport, nil
	}
	r.I["[C] Sessions with control log"]++

	converted := r.SessionConverted(s)
	intervals,problems := ft.ExtractIntervals(s.Maneuvers, converted)

	for _,p := range problems {
		r.I["[E] Maneuvers not extracted (see log)"]++
		r.Infof("%s: %s\n", s.Pilot, p)
	}

	r.SetHeaders(ManeuverHeaders)
	if r.H.NumBuckets == 0 {
		r.H = histogram.Histogram{ValMin:0, ValMax:600, NumBuckets:20} // seconds
	}
	nWritten := 0
	for _,iv := range intervals {
		if !r.Options.WantsManeuver(iv.Name) {
			r.I["[D] Maneuvers filtered out"]++
			continue
		}

		seg := converted.Slice(iv.StartIndex, iv.EndIndex)
		path := r.OutputPath(r.ManeuverExtractFilename(s.Pilot, iv.Name))
		if err := csvlog.WriteControlLogFile(path, seg); err != nil {
			return report.RejectedByReport, err
		}
		r.AddOutput(path)
		nWritten++

		r.I["[D] <b>Maneuvers extracted</b>"]++
		r.I[fmt.Sprintf("[F] %s", iv.Name)]++
		r.H.Add(histogram.ScalarVal(iv.DurationSeconds()))

		pitch,_ := seg.Series("Pitch")
		roll,_ := seg.Series("Roll")
		r.AddRow([]string{
			s.Pilot.String(), iv.Name,
			iv.StartTime.String(), iv.EndTime.String(),
			i2(iv.StartIndex), i2(iv.EndIndex), i2(iv.NumSamples()), i2(iv.DurationSeconds()),
			f2(floats.Min(pitch)), f2(floats.Max(pitch)),
			f2(floats.Min(roll)), f2(floats.Max(roll)),
			path,
		})
	}

	if nWritten == 0 {
		return report.RejectedByReport, nil
	}
	return report.Accepted, nil
}

func ManeuverSummarizer(r *report.Report) {
	r.S["[Z] stats, maneuver duration in seconds"] = ""
	r.Infof("Maneuver durations:-\n%s\n", r.H.String())
}
