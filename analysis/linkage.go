package analysis

import(
	ft "github.com/skypies/flighttest"
	"github.com/skypies/flighttest/report"
)

func init() {
	report.HandleReport("linkage", LinkageReporter, "Which logs were found for each pilot")
}

var LinkageHeaders = []string{
	"PILOT", "MANEUVER_FILE", "MANEUVER_EVENTS",
	"STATE_FILE", "STATE_ROWS", "CONTROL_FILE", "CONTROL_ROWS", "MISSING",
}

func LinkageReporter(r *report.Report, s *ft.Session) (report.SessionReportOutcome, error) {
	r.I["[C] Sessions linked"]++

	missing := s.Missing()
	for _,m := range missing {
		r.I["[D] No matching "+m+" file"]++
	}
	if len(missing) == 0 {
		r.I["[D] All three logs found"]++
	}

	r.Info(s.String())

	r.SetHeaders(LinkageHeaders)
	r.AddRow([]string{
		s.Pilot.String(),
		s.ManeuverFile, i2(len(s.Maneuvers)),
		s.StateFile, i2(len(s.State)),
		s.ControlFile, i2(len(s.Control)),
		joinOrNone(missing),
	})

	return report.Accepted, nil
}
