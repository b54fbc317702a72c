package fpdf

import (
	"fmt"
	"math"

	"github.com/jung-kurt/gofpdf"
)

// Describes a grid we're going to plot over, and the location of its top-left corner in PDF space
type BaseGrid struct {
	*gofpdf.Fpdf        // Embed the thing we're writing to

	// Describe the portion of PDF page space the grid will be drawn over (labels go outside of this)
	OffsetU     float64 // where the origin (top-left) should be, in PDF coords
	OffsetV     float64 // where the origin (top-left) should be, in PDF coords
	W,H         float64 // width and height of the grid, in PDF units (should be mm)

	// Control how (x,y) vals are mapped into (u,v) vals
	MinX,MinY,MaxX,MaxY float64 // the range of values that should be scaled onto the grid.
	Clip                bool    // whether to clip lines to fit inside grid

	// How to draw gridlines
	NoGridlines                    bool    // No lines at all for this graph
	XGridlineEvery, YGridlineEvery float64 // From Min[XY] to Max[XY]
	XTickFmt,       YTickFmt       string  // Will be passed a float64 via fmt.Sprintf; blank==none
	XTickFunc                      func(float64) string // If set, used instead of XTickFmt

	// Other formatting
	LineColor []int // rgb, each [0,255] - data line & axis labels
}

// {{{ bg.U, V, UV

// the bools are whether the coords are out-of-bounds for the grid.
func (bg BaseGrid)U(x float64) (float64, bool) {
	// Scale the X value to [0.0, 1.0], then map into PDF coords
	xRatio := (x - bg.MinX) / (bg.MaxX - bg.MinX)
	u := bg.OffsetU + (xRatio * bg.W)
	outOfBounds := xRatio<0 || xRatio>1

	return u,outOfBounds
}

// the bool is whether the coords are out-of-bounds for the grid.
func (bg BaseGrid)V(y float64) (float64, bool) {
	yRatio := (y - bg.MinY) / (bg.MaxY - bg.MinY)
	v := bg.OffsetV + (bg.H - (yRatio * bg.H))
	outOfBounds := yRatio<0 || yRatio>1

	return v,outOfBounds
}

// the bool is whether the coords are out-of-bounds for the grid.
func (bg BaseGrid)UV(x,y float64) (float64, float64, bool) {
	u,oobU := bg.U(x)
	v,oobV := bg.V(y)

	return u, v, (oobU || oobV)
}

// }}}
// {{{ bg.MoveBy

func (bg BaseGrid)MoveBy(x,y float64) {
	currX,currY := bg.GetXY()
	bg.Fpdf.MoveTo(currX+x, currY+y)
}

// }}}
// {{{ bg.MaybeSet{Draw|Text}Color

func (bg BaseGrid)MaybeSetDrawColor() {
	if len(bg.LineColor) == 3 {
		bg.SetDrawColor(bg.LineColor[0], bg.LineColor[1], bg.LineColor[2])
	}
}

func (bg BaseGrid)MaybeSetTextColor() {
	if len(bg.LineColor) == 3 {
		bg.SetTextColor(bg.LineColor[0], bg.LineColor[1], bg.LineColor[2])
	}
}

// }}}

// {{{ bg.MoveTo, LineTo, Line

// We submit coords in gridspace (e.g. x,y), and the grid transforms them into PDFspace.
func (bg BaseGrid)MoveTo(x,y float64) bool {
	u,v,oob := bg.UV(x,y)
	bg.Fpdf.MoveTo(u,v)
	return oob
}

func (bg BaseGrid)LineTo(x,y float64) bool {
	u,v,oob := bg.UV(x,y)
	bg.Fpdf.LineTo(u,v)
	return oob
}

// Only draw the line if both points are inside bounds
func (bg BaseGrid)Line(x1,y1,x2,y2 float64) {
	u1,v1,oob1 := bg.UV(x1,y1)
	u2,v2,oob2 := bg.UV(x2,y2)

	if !bg.Clip || (!oob1 && !oob2) {
		bg.MaybeSetDrawColor()
		bg.Fpdf.MoveTo(u1,v1)
		bg.Fpdf.LineTo(u2,v2)
	}

	bg.DrawPath("D")
}

// }}}
// {{{ bg.DrawFrame

func (bg BaseGrid)DrawFrame() {
	bg.SetLineWidth(0.2)
	bg.SetDrawColor(0x80, 0x80, 0x80)
	bg.Rect(bg.OffsetU, bg.OffsetV, bg.W, bg.H, "D")
}

// }}}
// {{{ bg.DrawGridlines

func (bg BaseGrid)xTick(x float64) string {
	if bg.XTickFunc != nil { return bg.XTickFunc(x) }
	return fmt.Sprintf(bg.XTickFmt, x)
}

// gridStart is the first multiple of step at or above min.
func gridStart(min, step float64) float64 { return math.Ceil(min/step) * step }

func (bg BaseGrid)DrawGridlines() {
	bg.SetFont("Arial", "", 6)

	bg.SetLineWidth(0.03)
	bg.SetDrawColor(0xe0, 0xe0, 0xe0)

	if bg.XGridlineEvery > 0 {
		for x := gridStart(bg.MinX, bg.XGridlineEvery); x <= bg.MaxX; x += bg.XGridlineEvery {
			if !bg.NoGridlines {
				bg.MoveTo(x, bg.MinY)
				bg.LineTo(x, bg.MaxY)
			}

			if bg.XTickFmt != "" || bg.XTickFunc != nil {
				bg.MoveTo(x,bg.MinY)
				bg.MoveBy(-6, 0.5)  // Offset in MM
				bg.SetTextColor(0,0,0) // Should maybe be a bit more configurable
				bg.CellFormat(12, 3, bg.xTick(x), "", 0, "C", false, 0, "")
			}
		}
		bg.DrawPath("D")
	}

	if bg.YGridlineEvery > 0 {
		for y := gridStart(bg.MinY, bg.YGridlineEvery); y <= bg.MaxY; y += bg.YGridlineEvery {
			if !bg.NoGridlines {
				bg.MoveTo(bg.MinX, y)
				bg.LineTo(bg.MaxX, y)
			}

			if bg.YTickFmt != "" {
				bg.MoveTo(bg.MinX, y)
				bg.MoveBy(-13, -1.5)
				bg.MaybeSetTextColor()
				bg.CellFormat(12, 3, fmt.Sprintf(bg.YTickFmt, y), "", 0, "R", false, 0, "")
			}
		}
		bg.DrawPath("D")
	}
}

// }}}
// {{{ bg.DrawSeries

// DrawSeries draws ys against xs as a single polyline. Points that fall outside the grid
// break the line when Clip is set.
func (bg BaseGrid)DrawSeries(xs, ys []float64) {
	n := len(xs)
	if len(ys) < n { n = len(ys) }
	if n == 0 { return }

	bg.SetLineWidth(0.2)
	bg.MaybeSetDrawColor()

	penDown := false
	for i := 0; i < n; i++ {
		if math.IsNaN(ys[i]) {
			penDown = false
			continue
		}
		u,v,oob := bg.UV(xs[i], ys[i])
		if bg.Clip && oob {
			penDown = false
			continue
		}
		if penDown {
			bg.Fpdf.LineTo(u,v)
		} else {
			bg.Fpdf.MoveTo(u,v)
			penDown = true
		}
	}
	bg.DrawPath("D")
}

// }}}
// {{{ bg.DrawHorizontal, DrawVertical

// DrawHorizontal draws a full width line at y, labelled at its right hand end.
func (bg BaseGrid)DrawHorizontal(y float64, rgb []int, dashed bool, label string) {
	if y < bg.MinY || y > bg.MaxY { return }

	bg.SetLineWidth(0.15)
	bg.SetDrawColor(rgb[0], rgb[1], rgb[2])
	if dashed { bg.SetDashPattern([]float64{1.5,1}, 0.0) }
	bg.MoveTo(bg.MinX, y)
	bg.LineTo(bg.MaxX, y)
	bg.DrawPath("D")
	bg.SetDashPattern([]float64{}, 0.0)

	if label != "" {
		bg.SetFont("Arial", "", 5)
		bg.SetTextColor(rgb[0], rgb[1], rgb[2])
		bg.MoveTo(bg.MaxX, y)
		bg.MoveBy(0.5, -1.5)
		bg.Cell(20, 3, label)
	}
}

// DrawVertical draws a dashed grey marker at x; if the label is set, it is written up the
// side of the line.
func (bg BaseGrid)DrawVertical(x float64, label string) {
	if x < bg.MinX || x > bg.MaxX { return }

	bg.SetLineWidth(0.1)
	bg.SetDrawColor(0x80, 0x80, 0x80)
	bg.SetDashPattern([]float64{1,1}, 0.0)
	bg.MoveTo(x, bg.MinY)
	bg.LineTo(x, bg.MaxY)
	bg.DrawPath("D")
	bg.SetDashPattern([]float64{}, 0.0)

	if label != "" {
		u,_ := bg.U(x)
		v := bg.OffsetV + bg.H - 1
		bg.SetFont("Arial", "", 4)
		bg.SetTextColor(0x60, 0x60, 0x60)
		bg.TransformBegin()
		bg.TransformRotate(90, u-0.3, v)
		bg.Text(u-0.3, v, label)
		bg.TransformEnd()
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
