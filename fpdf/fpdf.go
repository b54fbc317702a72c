// Provides routines to render flight test sessions as PDFs
package fpdf

import(
	"fmt"
	"io"
	"math"

	"github.com/jung-kurt/gofpdf"
	ft "github.com/skypies/flighttest"
)

// https://godoc.org/github.com/jung-kurt/gofpdf

var (
	BlackRGB = []int{0, 0, 0}
	RedRGB   = []int{0xdd, 0, 0}
	GreenRGB = []int{0, 0x99, 0}
	BlueRGB  = []int{0, 0, 0xdd}
	GreyRGB  = []int{0x70, 0x70, 0x70}
	OrangeRGB = []int{0xee, 0x88, 0}
)

// Most panels get more points than the page can resolve; beyond this, we decimate.
var MaxPointsPerPanel = 3000

// A RefLine is a horizontal line across a panel; e.g. a control limit.
type RefLine struct {
	Y       float64
	Label   string
	RGB   []int
	Dashed  bool
}

// A Panel is one signal, plotted against seconds since midnight.
type Panel struct {
	Name      string
	Xs, Ys  []float64
	RGB     []int
	RefLines []RefLine
}

func (p Panel)String() string { return fmt.Sprintf("%s (%d points)", p.Name, len(p.Xs)) }

// Range returns the min & max Y, including any reference lines, so that they're visible.
func (p Panel)Range() (float64, float64) {
	min,max := math.Inf(1), math.Inf(-1)
	for _,y := range p.Ys {
		if math.IsNaN(y) { continue }
		min,max = math.Min(min,y), math.Max(max,y)
	}
	for _,rl := range p.RefLines {
		min,max = math.Min(min,rl.Y), math.Max(max,rl.Y)
	}
	if math.IsInf(min, 1) { return 0,1 }
	if max - min < 1e-9 { return min-1, max+1 }
	return min,max
}

// A Marker is a vertical line across every panel; e.g. a maneuver start.
type Marker struct {
	X       float64
	Label   string
}

// MarkersFromManeuvers turns maneuver events into markers, labelled START_Name, STOP_Name.
func MarkersFromManeuvers(l ft.ManeuverLog) []Marker {
	ret := []Marker{}
	for _,e := range l {
		ret = append(ret, Marker{X: float64(e.Seconds()), Label: e.Active()})
	}
	return ret
}

// {{{ NiceStep

// NiceStep picks a 1/2/5 x 10^n step that splits span into roughly n parts.
func NiceStep(span float64, n int) float64 {
	if span <= 0 || n <= 0 { return 1 }
	raw := span / float64(n)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch f := raw/mag; {
	case f < 1.5: return mag
	case f < 3.5: return 2*mag
	case f < 7.5: return 5*mag
	}
	return 10*mag
}

// }}}
// {{{ Decimate

// Decimate keeps every k'th point, so that no more than max remain. The last point is kept.
func Decimate(xs, ys []float64, max int) ([]float64, []float64) {
	n := len(xs)
	if len(ys) < n { n = len(ys) }
	if max <= 0 || n <= max { return xs[:n], ys[:n] }

	k := int(math.Ceil(float64(n) / float64(max)))
	outX,outY := []float64{}, []float64{}
	for i := 0; i < n; i += k {
		outX = append(outX, xs[i])
		outY = append(outY, ys[i])
	}
	if (n-1) % k != 0 {
		outX = append(outX, xs[n-1])
		outY = append(outY, ys[n-1])
	}
	return outX, outY
}

// }}}

// {{{ TimeseriesPdf

// TimeseriesPdf stacks panels down the page, sharing one time axis.
type TimeseriesPdf struct {
	Title          string
	Panels       []Panel
	Markers      []Marker
	PanelsPerPage  int

	MinX, MaxX     float64 // The shared time axis; computed from the panels if zero

	*gofpdf.Fpdf   // embedded
	Grids        []*BaseGrid
}

func (tp *TimeseriesPdf)xRange() (float64, float64) {
	if tp.MaxX > tp.MinX { return tp.MinX, tp.MaxX }
	min,max := math.Inf(1), math.Inf(-1)
	for _,p := range tp.Panels {
		for _,x := range p.Xs {
			min,max = math.Min(min,x), math.Max(max,x)
		}
	}
	if math.IsInf(min, 1) { return 0, 1 }
	if max - min < 1 { max = min + 1 }
	return min, max
}

// {{{ tp.Init

func (tp *TimeseriesPdf)Init() {
	tp.Fpdf = gofpdf.New("P", "mm", "Letter", "")
	tp.SetAutoPageBreak(false, 0)
	if tp.PanelsPerPage <= 0 { tp.PanelsPerPage = 8 }

	tp.MinX,tp.MaxX = tp.xRange()
	xStep := NiceStep(tp.MaxX-tp.MinX, 8)

	_,pageH := tp.GetPageSize()
	top,bottom := 22.0, 12.0
	slot := (pageH - top - bottom) / float64(tp.PanelsPerPage)

	tp.Grids = []*BaseGrid{}
	for i,p := range tp.Panels {
		minY,maxY := p.Range()
		pad := (maxY-minY) * 0.05
		ng := &BaseGrid{
			Fpdf: tp.Fpdf,
			OffsetU: 30,
			OffsetV: top + float64(i % tp.PanelsPerPage) * slot,
			W: 160,
			H: slot - 8,
			MinX: tp.MinX,
			MaxX: tp.MaxX,
			MinY: minY - pad,
			MaxY: maxY + pad,
			Clip: true,
			XGridlineEvery: xStep,
			YGridlineEvery: NiceStep(maxY-minY, 3),
			XTickFunc: func(x float64) string { return ft.TimeOfDayFromSeconds(x).String() },
			YTickFmt: "%.4g",
			LineColor: p.RGB,
		}
		tp.Grids = append(tp.Grids, ng)
	}
}

// }}}
// {{{ tp.DrawPanels

// DrawPanels starts a new page, with the title, every PanelsPerPage panels.
func (tp *TimeseriesPdf)DrawPanels() {
	for i,g := range tp.Grids {
		p := tp.Panels[i]

		if i % tp.PanelsPerPage == 0 {
			tp.AddPage()
			tp.SetFont("Arial", "B", 11)
			tp.SetTextColor(0,0,0)
			tp.Text(22, 14, tp.Title)
		}

		g.DrawFrame()
		g.DrawGridlines()

		tp.SetFont("Arial", "B", 7)
		tp.SetTextColor(0,0,0)
		tp.Text(g.OffsetU, g.OffsetV - 1, p.Name)

		for _,m := range tp.Markers {
			g.DrawVertical(m.X, m.Label)
		}

		xs,ys := Decimate(p.Xs, p.Ys, MaxPointsPerPanel)
		g.DrawSeries(xs, ys)

		for _,rl := range p.RefLines {
			rgb := rl.RGB
			if len(rgb) != 3 { rgb = GreyRGB }
			g.DrawHorizontal(rl.Y, rgb, rl.Dashed, rl.Label)
		}
	}
}

// }}}

// }}}

// {{{ WriteSession

// WriteSession renders the panels, one above the other, with the markers across them all.
func WriteSession(output io.Writer, panels []Panel, markers []Marker, title string) error {
	if len(panels) == 0 {
		return fmt.Errorf("no panels to plot")
	}

	tp := TimeseriesPdf{Title: title, Panels: panels, Markers: markers}
	tp.Init()
	tp.DrawPanels()

	return tp.Output(output)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
