package analysis

import(
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/skypies/util/histogram"

	ft "github.com/skypies/flighttest"
	"github.com/skypies/flighttest/report"
)

func init() {
	report.HandleReport("statesummary", StateSummaryReporter, "Envelope flown, from the INS state log")
	report.SummarizeReport("statesummary", StateSummarizer)
}

var StateSummaryHeaders = []string{
	"PILOT", "START", "END", "DURATION(S)", "MAX_HEIGHT(FT)", "MIN_VS(FPM)", "MAX_VS(FPM)",
	"MAX_GS(M/S)", "MAX_G", "PATH(KM)", "AREA_W(KM)", "AREA_H(KM)",
}

func StateSummaryReporter(r *report.Report, s *ft.Session) (report.SessionReportOutcome, error) {
	if !s.HasState() || len(s.State) == 0 {
		r.I["[C] Skipped, no state samples"]++
		return report.RejectedByReport, nil
	}
	r.I["[C] State logs examined"]++

	if r.H.NumBuckets == 0 {
		r.H = histogram.Histogram{ValMin:0, ValMax:3000, NumBuckets:30} // |VS|, fpm
	}

	l := s.State
	height,_ := l.Series("height")
	vs,_ := l.Series("vs")
	gs,_ := l.Series("groundspeed")
	g,_ := l.Series("gforce")

	// One VS sample per second is plenty for the histogram
	for i := range l {
		if i == 0 || l[i].TimeOfDay != l[i-1].TimeOfDay {
			r.H.Add(histogram.ScalarVal(int(math.Abs(vs[i]))))
		}
	}

	wd,ht := 0.0, 0.0
	if box,ok := l.BoundingBox(); ok {
		wd,ht = box.NW().DistKM(box.NE), box.NW().DistKM(box.SW)
	} else {
		r.I["[D] State log has no position fix"]++
	}

	pathKM := l.PathLengthKM()
	r.F["[E] Total path flown (KM)"] += pathKM
	r.F["[E] Total time recorded (S)"] += float64(l.DurationSeconds())

	r.SetHeaders(StateSummaryHeaders)
	r.AddRow([]string{
		s.Pilot.String(), l.Start().String(), l.End().String(), i2(l.DurationSeconds()),
		f2(floats.Max(height)), f2(floats.Min(vs)), f2(floats.Max(vs)),
		f2(floats.Max(gs)), f2(floats.Max(g)),
		f2(pathKM), f2(wd), f2(ht),
	})

	return report.Accepted, nil
}

func StateSummarizer(r *report.Report) {
	r.S["[Z] stats, |vertical speed| in fpm"] = ""
	r.Infof("Vertical speeds:-\n%s\n", r.H.String())
}
