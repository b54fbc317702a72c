package fpdf

import(
	"bytes"
	"fmt"
	"io"
	"math"
	"testing"

	ft "github.com/skypies/flighttest"
)

func TestNiceStep(t *testing.T) {
	tests := []struct{
		Span     float64
		N        int
		Expected float64
	}{
		{100, 10, 10},
		{400, 8, 50},
		{3600, 8, 500},
		{1.7, 3, 0.5},
		{0, 3, 1},
	}
	for _,test := range tests {
		if actual := NiceStep(test.Span, test.N); math.Abs(actual-test.Expected) > 1e-9 {
			t.Errorf("NiceStep(%f,%d): expected %f, got %f", test.Span, test.N, test.Expected, actual)
		}
	}
}

func TestDecimate(t *testing.T) {
	xs,ys := []float64{}, []float64{}
	for i := 0; i < 1001; i++ {
		xs = append(xs, float64(i))
		ys = append(ys, float64(i*2))
	}

	dx,dy := Decimate(xs, ys, 100)
	if len(dx) > 101 || len(dx) != len(dy) {
		t.Errorf("decimated to %d/%d points", len(dx), len(dy))
	}
	if dx[0] != 0 || dx[len(dx)-1] != 1000 || dy[len(dy)-1] != 2000 {
		t.Errorf("endpoints not kept: %v ... %v", dx[0], dx[len(dx)-1])
	}

	if dx,_ := Decimate(xs[:10], ys[:10], 100); len(dx) != 10 {
		t.Errorf("short series should be untouched")
	}
}

func TestPanelRange(t *testing.T) {
	p := Panel{Ys: []float64{1, 5, math.NaN(), 3}, RefLines: []RefLine{{Y: -15}}}
	if min,max := p.Range(); min != -15 || max != 5 {
		t.Errorf("range: got [%f,%f]", min, max)
	}
	flat := Panel{Ys: []float64{2, 2}}
	if min,max := flat.Range(); min != 1 || max != 3 {
		t.Errorf("flat range: got [%f,%f]", min, max)
	}
}

func TestMarkersFromManeuvers(t *testing.T) {
	l := ft.ManeuverLog{
		{TimeOfDay: "10:00:05", Kind: ft.ManeuverStart, Name: "Hover"},
		{TimeOfDay: "10:00:15", Kind: ft.ManeuverStop, Name: "Hover"},
	}
	m := MarkersFromManeuvers(l)
	if len(m) != 2 || m[0].X != 36005 || m[1].Label != "STOP_Hover" {
		t.Errorf("bad markers %v", m)
	}
}

func TestWriteSession(t *testing.T) {
	xs,ys := []float64{}, []float64{}
	for i := 0; i < 500; i++ {
		xs = append(xs, 36000 + float64(i)/50)
		ys = append(ys, math.Sin(float64(i)/20))
	}
	panels := []Panel{
		{Name: "Pitch", Xs: xs, Ys: ys, RGB: RedRGB,
			RefLines: []RefLine{{Y: 15, Label: "limit", Dashed: true}}},
		{Name: "Roll", Xs: xs, Ys: ys, RGB: BlueRGB},
	}
	markers := []Marker{{X: 36002, Label: "START_Hover"}, {X: 36008, Label: "STOP_Hover"}}

	buf := bytes.Buffer{}
	if err := WriteSession(&buf, panels, markers, "pilot 3"); err != nil {
		t.Fatalf("WriteSession: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output is not a PDF")
	}

	if err := WriteSession(&buf, nil, nil, "empty"); err == nil {
		t.Errorf("expected error with no panels")
	}
}

func TestTimeseriesPdfPages(t *testing.T) {
	panels := []Panel{}
	for i := 0; i < 10; i++ {
		panels = append(panels, Panel{Name: fmt.Sprintf("p%d", i), Xs: []float64{0, 10},
			Ys: []float64{0, float64(i)}, RGB: BlackRGB})
	}

	tp := TimeseriesPdf{Title: "pages", Panels: panels, PanelsPerPage: 4}
	tp.Init()
	tp.DrawPanels()
	if tp.PageNo() != 3 {
		t.Errorf("10 panels at 4 per page: got %d pages, expected 3", tp.PageNo())
	}
	if err := tp.Output(io.Discard); err != nil {
		t.Error(err)
	}
}
