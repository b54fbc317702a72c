package analysis

import(
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"

	ft "github.com/skypies/flighttest"
	"github.com/skypies/flighttest/chart"
	"github.com/skypies/flighttest/fpdf"
	"github.com/skypies/flighttest/report"
)

func init() {
	report.HandleReport("timeseries", TimeseriesReporter, "Per pilot PDF of state & controls, with maneuvers marked")
}

// The state panels, in page order; the control panels go between heading and roll_state.
var(
	statePanelsAbove = []string{"vs", "height", "heading"}
	statePanelsBelow = []string{"roll_state"}
)

func statePanel(l ft.StateLog, series string) (fpdf.Panel, error) {
	ys,err := l.Series(series)
	if err != nil { return fpdf.Panel{}, err }
	return fpdf.Panel{
		Name: ft.StateSeriesNames[series],
		Xs: l.Seconds(),
		Ys: ys,
		RGB: fpdf.BlueRGB,
	}, nil
}

// controlPanel plots a converted control column, with its limits and its observed min & max.
func controlPanel(l ft.ControlLog, column string, window int) (fpdf.Panel, error) {
	raw,err := l.Series(column)
	if err != nil { return fpdf.Panel{}, err }
	ys := chart.MovingAverage(raw, window)

	p := fpdf.Panel{
		Name: column,
		Xs: l.Seconds(),
		Ys: ys,
		RGB: fpdf.RedRGB,
	}
	if len(ys) > 0 {
		min,max := floats.Min(ys), floats.Max(ys)
		p.RefLines = append(p.RefLines,
			fpdf.RefLine{Y: min, Label: fmt.Sprintf("Min: %.1f", min), RGB: fpdf.RedRGB, Dashed: true},
			fpdf.RefLine{Y: max, Label: fmt.Sprintf("Max: %.1f", max), RGB: fpdf.GreenRGB, Dashed: true})
	}
	if lim,exists := ft.ControlLimits[column]; exists {
		p.RefLines = append(p.RefLines,
			fpdf.RefLine{Y: lim.Min, Label: fmt.Sprintf("%+.0f", lim.Min), RGB: fpdf.GreyRGB},
			fpdf.RefLine{Y: lim.Max, Label: fmt.Sprintf("%+.0f", lim.Max), RGB: fpdf.GreyRGB})
	}
	return p, nil
}

// SessionPanels builds the panels for whichever logs the session has, in the order
// VS, height, heading, pitch, roll, state roll, collective, pedal.
func SessionPanels(s *ft.Session, converted ft.ControlLog, window int) ([]fpdf.Panel, error) {
	panels := []fpdf.Panel{}

	addState := func(names []string) error {
		if !s.HasState() || len(s.State) == 0 { return nil }
		for _,name := range names {
			p,err := statePanel(s.State, name)
			if err != nil { return err }
			panels = append(panels, p)
		}
		return nil
	}
	addControl := func(cols []string) error {
		if !s.HasControl() || len(converted) == 0 { return nil }
		for _,col := range cols {
			p,err := controlPanel(converted, col, window)
			if err != nil { return err }
			panels = append(panels, p)
		}
		return nil
	}

	if err := addState(statePanelsAbove); err != nil { return nil, err }
	if err := addControl([]string{"Pitch", "Roll"}); err != nil { return nil, err }
	if err := addState(statePanelsBelow); err != nil { return nil, err }
	if err := addControl([]string{"Collective", "Pedal"}); err != nil { return nil, err }

	return panels, nil
}

func TimeseriesReporter(r *report.Report, s *ft.Session) (report.SessionReportOutcome, error) {
	if s.Pilot.IsZero() {
		r.I["[C] Skipped, no pilot to name the report after"]++
		return report.RejectedByReport, nil
	}
	if !s.HasState() && !s.HasControl() {
		r.I["[C] Skipped, neither state nor control log"]++
		return report.RejectedByReport, nil
	}

	converted := r.SessionConverted(s)
	panels,err := SessionPanels(s, converted, r.Options.SmoothingWindow)
	if err != nil { return report.RejectedByReport, err }
	if len(panels) == 0 {
		r.I["[C] Skipped, logs were empty"]++
		return report.RejectedByReport, nil
	}
	r.I["[C] <b>Reports generated</b>"]++

	path := r.OutputPath(s.Pilot.Slug() + "_report.pdf")
	f,err := os.Create(path)
	if err != nil { return report.RejectedByReport, err }
	markers := fpdf.MarkersFromManeuvers(s.Maneuvers)
	if err := fpdf.WriteSession(f, panels, markers, sessionTitle(r, s)); err != nil {
		f.Close()
		return report.RejectedByReport, fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil { return report.RejectedByReport, err }
	r.AddOutput(path)

	pngPath := ""
	if s.HasControl() && len(converted) > 0 {
		pngPath = r.OutputPath(s.Pilot.Slug() + "_controlpos.png")
		if err := chart.SaveControlPNG(pngPath, s.ControlFile, converted, r.Options.SmoothingWindow); err != nil {
			return report.RejectedByReport, err
		}
		r.AddOutput(pngPath)
	}

	r.SetHeaders([]string{"PILOT", "PANELS", "MARKERS", "PDF", "PNG"})
	r.AddRow([]string{s.Pilot.String(), i2(len(panels)), i2(len(markers)), path, pngPath})

	return report.Accepted, nil
}
