// Package chart draws control position logs as PNG images, one tile per control.
package chart

import(
	"bufio"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/exp/constraints"
	"golang.org/x/image/colornames"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	ft "github.com/skypies/flighttest"
)

var(
	Width  = 11 * vg.Inch
	Height = 10 * vg.Inch

	ColumnColors = map[string]color.Color{
		"Pitch":      colornames.Darkmagenta,
		"Roll":       colornames.Darkcyan,
		"Collective": colornames.Darkorange,
		"Pedal":      colornames.Darkgreen,
	}
)

// {{{ MovingAverage

// MovingAverage is a trailing mean over window samples; the first few points average over
// however many samples exist so far, so the output is the same length as the input.
func MovingAverage[T constraints.Float](in []T, window int) []T {
	out := make([]T, len(in))
	if window <= 1 {
		copy(out, in)
		return out
	}

	var sum T
	for i,v := range in {
		sum += v
		n := i+1
		if i >= window {
			sum -= in[i-window]
			n = window
		}
		out[i] = sum / T(n)
	}
	return out
}

// }}}
// {{{ Range

// Range is the min & max of the values, or ok=false if there are none.
func Range(ys []float64) (min, max float64, ok bool) {
	if len(ys) == 0 { return 0, 0, false }
	return floats.Min(ys), floats.Max(ys), true
}

// }}}

type refLine struct {
	Y      float64
	Label  string
	Color  color.Color
}

func hline(y, x0, x1 float64, c color.Color, dashed bool) (*plotter.Line, error) {
	l,err := plotter.NewLine(plotter.XYs{{X: x0, Y: y}, {X: x1, Y: y}})
	if err != nil { return nil, err }
	l.LineStyle.Color = c
	l.LineStyle.Width = vg.Points(0.75)
	if dashed {
		l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	}
	return l, nil
}

// {{{ ControlPlot

// ControlPlot plots one column of a (converted) control log against sample number, with
// dashed lines at the column's min and max, and grey lines at the control limits.
func ControlPlot(l ft.ControlLog, column string, window int) (*plot.Plot, error) {
	raw,err := l.Series(column)
	if err != nil { return nil, err }
	ys := MovingAverage(raw, window)

	p := plot.New()
	p.Title.Text = column
	p.X.Label.Text = "Sample(n)"
	p.Y.Label.Text = "Degrees"
	p.Add(plotter.NewGrid())

	min,max,ok := Range(ys)
	if !ok { return p, nil } // empty, but still a tile

	xys := make(plotter.XYs, len(ys))
	for i := range ys {
		xys[i].X = float64(i)
		xys[i].Y = ys[i]
	}
	line,err := plotter.NewLine(xys)
	if err != nil { return nil, fmt.Errorf("%s: %w", column, err) }
	line.Color = ColumnColors[column]
	p.Add(line)
	p.Legend.Add(column, line)

	x1 := float64(len(ys)-1)
	if x1 < 1 { x1 = 1 }

	refs := []refLine{
		{min, fmt.Sprintf("Min: %.2f", min), colornames.Red},
		{max, fmt.Sprintf("Max: %.2f", max), colornames.Green},
	}
	if lim,exists := ft.ControlLimits[column]; exists {
		refs = append(refs,
			refLine{lim.Min, fmt.Sprintf("%+.0f°", lim.Min), colornames.Gray},
			refLine{lim.Max, fmt.Sprintf("%+.0f°", lim.Max), colornames.Gray})
	}

	labels := plotter.XYLabels{}
	for _,ref := range refs {
		hl,err := hline(ref.Y, 0, x1, ref.Color, true)
		if err != nil { return nil, err }
		p.Add(hl)
		labels.XYs = append(labels.XYs, plotter.XY{X: x1, Y: ref.Y})
		labels.Labels = append(labels.Labels, ref.Label)
	}
	lbls,err := plotter.NewLabels(labels)
	if err != nil { return nil, err }
	p.Add(lbls)

	return p, nil
}

// }}}
// {{{ WriteControlPNG

// WriteControlPNG stacks a tile for each control column into a single PNG.
func WriteControlPNG(w io.Writer, title string, l ft.ControlLog, window int) error {
	plots := make([][]*plot.Plot, len(ft.ControlColumns))
	for i,col := range ft.ControlColumns {
		p,err := ControlPlot(l, col, window)
		if err != nil { return err }
		if i == 0 { p.Title.Text = title + " - " + col }
		plots[i] = []*plot.Plot{p}
	}

	img := vgimg.New(Width, Height)
	dc := draw.New(img)
	t := draw.Tiles{
		Rows: len(plots),
		Cols: 1,
		PadX: vg.Millimeter,
		PadY: vg.Millimeter*2,
		PadTop: vg.Points(4),
		PadBottom: vg.Points(4),
		PadLeft: vg.Points(4),
		PadRight: vg.Points(40), // room for the reference line labels
	}

	canvases := plot.Align(plots, t, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	_,err := vgimg.PngCanvas{Canvas: img}.WriteTo(w)
	return err
}

func SaveControlPNG(path, title string, l ft.ControlLog, window int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create directory: %w", err)
	}
	f,err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create png: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := WriteControlPNG(bw, title, l, window); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
