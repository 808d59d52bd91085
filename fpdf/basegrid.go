package fpdf

import (
	"math"

	"github.com/jung-kurt/gofpdf"
)

// TickFunc renders an axis value as a label.
type TickFunc func(float64) string

// Describes a grid we're going to plot over, and the location of its top-left corner in PDF space
type BaseGrid struct {
	*gofpdf.Fpdf        // Embed the thing we're writing to

	// Describe the portion of PDF page space the grid will be drawn over (labels go outside of this)
	OffsetU     float64 // where the origin (top-left) should be, in PDF coords
	OffsetV     float64 // where the origin (top-left) should be, in PDF coords
	W,H         float64 // width and height of the grid, in PDF units (should be mm)

	// Control how (x,y) vals are mapped into (u,v) vals
	InvertY             bool    // A grid's origin defaults to bottom-left; this puts it top-left
	MinX,MinY,MaxX,MaxY float64 // the range of values that should be scaled onto the grid.

	// How to draw gridlines
	NoGridlines     bool     // No lines at all for this graph
	XGridlineEvery  float64  // From MinX to MaxX; zero means no x ticks either
	XTickFmt        TickFunc // nil==no tick labels
	XTickOtherSide  bool     // Ticks along the top, instead of the bottom

	// Other formatting
	LineColor []int // rgb, each [0,255] - axis labels
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
	if bg.InvertY { yRatio = 1.0 - yRatio }

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

// {{{ bg.MoveTo, LineTo, Rect

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

// Rect fills the box spanning the two gridspace corners; they can come in any order.
func (bg BaseGrid)Rect(x1,y1,x2,y2 float64, styleStr string) {
	u1,v1,_ := bg.UV(x1,y1)
	u2,v2,_ := bg.UV(x2,y2)
	bg.Fpdf.Rect(math.Min(u1,u2), math.Min(v1,v2), math.Abs(u2-u1), math.Abs(v2-v1), styleStr)
}

// }}}

// {{{ bg.DrawFrame

func (bg BaseGrid)DrawFrame() {
	bg.SetLineWidth(0.3)
	bg.SetDrawColor(0x40, 0x40, 0x40)
	bg.Fpdf.Rect(bg.OffsetU, bg.OffsetV, bg.W, bg.H, "D")
}

// }}}
// {{{ bg.DrawGridlines

// The grid only has x gridlines; bar charts label their y axis by category instead.
func (bg BaseGrid)DrawGridlines() {
	if bg.XGridlineEvery <= 0 { return }

	bg.SetFont("Arial", "", 8)
	dashPattern := []float64{2,2}
	epsilon := bg.XGridlineEvery / 1000.0

	bg.SetLineWidth(0.1)
	bg.SetDrawColor(0xc0, 0xc0, 0xc0)
	for x := bg.MinX; x <= bg.MaxX+epsilon; x += bg.XGridlineEvery {
		if !bg.NoGridlines {
			bg.SetDashPattern(dashPattern, 0.0)
			bg.MoveTo(x, bg.MinY)
			bg.LineTo(x, bg.MaxY)
			bg.DrawPath("D")
			bg.SetDashPattern([]float64{}, 0.0)
		}

		if bg.XTickFmt != nil {
			u,_ := bg.U(x)
			v := bg.OffsetV + bg.H + 1
			if bg.XTickOtherSide { v = bg.OffsetV - 5 }
			bg.SetTextColor(0,0,0)
			bg.MaybeSetTextColor()
			bg.SetXY(u-15, v)
			bg.CellFormat(30, 4, bg.XTickFmt(snapToZero(x, epsilon)), "", 0, "C", false, 0, "")
		}
	}
}

// Accumulating float steps leaves values like -1.4e-12 where zero should be.
func snapToZero(x, epsilon float64) float64 {
	if math.Abs(x) < epsilon { return 0 }
	return x
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
