package fpdf

import(
	"fmt"
	"io"
	"math"

	"github.com/jung-kurt/gofpdf"
)

// LineSeries is drawn over a bar chart against its own x axis, along the top of the grid.
type LineSeries struct {
	Label     string
	Values  []float64  // one per bar
	TickFmt   TickFunc
	ValueFmt  TickFunc
}

// BarChart is a horizontal bar chart; Labels[0] is drawn at the top.
type BarChart struct {
	Title     string
	XLabel    string
	YLabel    string

	Labels  []string
	Values  []float64
	Missing []bool     // optional; true means there is no value, and the bar is drawn as "n/a"

	TickFmt   TickFunc // x axis
	ValueFmt  TickFunc // the annotation at the end of each bar

	Overlay  *LineSeries
}

func plainFmt(v float64) string { return fmt.Sprintf("%.0f", v) }

func (bc BarChart)Validate() error {
	if len(bc.Labels) != len(bc.Values) {
		return fmt.Errorf("barchart '%s': %d labels but %d values", bc.Title, len(bc.Labels), len(bc.Values))
	}
	if bc.Missing != nil && len(bc.Missing) != len(bc.Values) {
		return fmt.Errorf("barchart '%s': %d missing flags for %d values", bc.Title, len(bc.Missing),
			len(bc.Values))
	}
	if bc.Overlay != nil && len(bc.Overlay.Values) != len(bc.Values) {
		return fmt.Errorf("barchart '%s': overlay has %d values for %d bars", bc.Title,
			len(bc.Overlay.Values), len(bc.Values))
	}
	for i,v := range bc.Values {
		if bc.isMissing(i) { continue }
		if math.IsNaN(v) || math.IsInf(v,0) {
			return fmt.Errorf("barchart '%s': bar %d (%s) has no finite value", bc.Title, i, bc.Labels[i])
		}
	}
	return nil
}

func (bc BarChart)isMissing(i int) bool { return bc.Missing != nil && bc.Missing[i] }

// {{{ bc.valueRange

func (bc BarChart)valueRange() (float64, float64) {
	min, max := 0.0, 0.0
	for i,v := range bc.Values {
		if bc.isMissing(i) { continue }
		min, max = math.Min(min, v), math.Max(max, v)
	}
	// Leave some space past the longest bar for its annotation
	pad := (max - min) * 0.15
	if max > 0 { max += pad }
	if min < 0 { min -= pad }
	return min, max
}

// }}}

// {{{ bc.Draw

// Draw renders the chart onto a fresh page.
func (bc BarChart)Draw() (*gofpdf.Fpdf, error) {
	if err := bc.Validate(); err != nil { return nil, err }

	tickFmt, valueFmt := bc.TickFmt, bc.ValueFmt
	if tickFmt == nil { tickFmt = plainFmt }
	if valueFmt == nil { valueFmt = tickFmt }

	pdf := NewChartPdf(bc.Title)

	n := len(bc.Values)
	min,max := bc.valueRange()
	min,max,step := NiceRange(min, max, TargetTicks)

	grid := BaseGrid{
		Fpdf: pdf,
		OffsetU: GridOffsetU,
		OffsetV: GridOffsetV,
		W: GridWidth,
		H: GridHeight,
		MinX: min,
		MaxX: max,
		MinY: 0,
		MaxY: math.Max(float64(n), 1),
		InvertY: true, // bar zero goes at the top
		XGridlineEvery: step,
		XTickFmt: tickFmt,
	}

	grid.DrawGridlines()
	bc.drawBars(grid, valueFmt)
	bc.drawCategoryLabels(grid)
	grid.DrawFrame()
	bc.drawAxisLabels(grid)

	if bc.Overlay != nil { bc.drawOverlay(grid) }

	return pdf, pdf.Error()
}

// Render draws the chart and writes it out as a PDF.
func (bc BarChart)Render(w io.Writer) error {
	pdf,err := bc.Draw()
	if err != nil { return err }
	return pdf.Output(w)
}

// }}}
// {{{ bc.drawBars

func (bc BarChart)drawBars(grid BaseGrid, valueFmt TickFunc) {
	grid.SetLineWidth(0.2)
	grid.SetFont("Arial", "", 9)

	for i,v := range bc.Values {
		y := float64(i)
		_,vMid,_ := grid.UV(0, y+0.5)

		if bc.isMissing(i) {
			u0,_ := grid.U(0)
			grid.SetTextColor(0x80, 0x80, 0x80)
			grid.SetXY(u0+1, vMid-2)
			grid.CellFormat(20, 4, "n/a", "", 0, "L", false, 0, "")
			continue
		}

		grid.SetFillColor(SkyBlueRGB[0], SkyBlueRGB[1], SkyBlueRGB[2])
		grid.SetDrawColor(0, 0, 0)
		grid.Rect(0, y+0.15, v, y+0.85, "FD")

		// Annotate with the exact value, just past the end of the bar
		label := valueFmt(v)
		uEnd,_ := grid.U(v)
		width := grid.GetStringWidth(label) + 2
		grid.SetTextColor(0, 0, 0)
		if v >= 0 {
			grid.SetXY(uEnd+1, vMid-2)
			grid.CellFormat(width, 4, label, "", 0, "L", false, 0, "")
		} else {
			grid.SetXY(uEnd-width-1, vMid-2)
			grid.CellFormat(width, 4, label, "", 0, "R", false, 0, "")
		}
	}
}

// }}}
// {{{ bc.drawCategoryLabels, bc.drawAxisLabels

func (bc BarChart)drawCategoryLabels(grid BaseGrid) {
	grid.SetFont("Arial", "", 9)
	grid.SetTextColor(0, 0, 0)
	for i,label := range bc.Labels {
		_,vMid,_ := grid.UV(0, float64(i)+0.5)
		grid.SetXY(grid.OffsetU-32, vMid-2)
		grid.CellFormat(30, 4, label, "", 0, "R", false, 0, "")
	}
}

func (bc BarChart)drawAxisLabels(grid BaseGrid) {
	grid.SetFont("Arial", "", 11)
	grid.SetTextColor(0, 0, 0)

	if bc.XLabel != "" {
		grid.SetXY(grid.OffsetU, grid.OffsetV+grid.H+7)
		grid.CellFormat(grid.W, 6, bc.XLabel, "", 0, "C", false, 0, "")
	}

	if bc.YLabel != "" {
		x := grid.OffsetU - 36
		y := grid.OffsetV + grid.H/2 + grid.GetStringWidth(bc.YLabel)/2
		grid.TransformBegin()
		grid.TransformRotate(90, x, y)
		grid.Text(x, y, bc.YLabel)
		grid.TransformEnd()
	}
}

// }}}
// {{{ bc.drawOverlay

// The overlay gets a twin x axis along the top of the grid, and is drawn as a dashed line with a
// marker and a value at each bar.
func (bc BarChart)drawOverlay(grid BaseGrid) {
	ls := bc.Overlay
	tickFmt, valueFmt := ls.TickFmt, ls.ValueFmt
	if tickFmt == nil { tickFmt = plainFmt }
	if valueFmt == nil { valueFmt = tickFmt }

	min, max := 0.0, 0.0
	for _,v := range ls.Values { min, max = math.Min(min, v), math.Max(max, v) }
	min,max,step := NiceRange(min, max*1.1, TargetTicks)

	twin := grid
	twin.MinX, twin.MaxX = min, max
	twin.XGridlineEvery = step
	twin.XTickFmt = tickFmt
	twin.XTickOtherSide = true
	twin.NoGridlines = true
	twin.LineColor = RedRGB

	twin.DrawGridlines()

	if ls.Label != "" {
		twin.SetFont("Arial", "", 11)
		twin.MaybeSetTextColor()
		twin.SetXY(twin.OffsetU, twin.OffsetV-12)
		twin.CellFormat(twin.W, 6, ls.Label, "", 0, "C", false, 0, "")
	}

	twin.SetLineWidth(0.4)
	twin.MaybeSetDrawColor()
	twin.SetDashPattern([]float64{2,1.5}, 0.0)
	for i,v := range ls.Values {
		if i == 0 {
			twin.MoveTo(v, 0.5)
		} else {
			twin.LineTo(v, float64(i)+0.5)
		}
	}
	twin.DrawPath("D")
	twin.SetDashPattern([]float64{}, 0.0)

	twin.SetFillColor(RedRGB[0], RedRGB[1], RedRGB[2])
	twin.SetFont("Arial", "", 8)
	for i,v := range ls.Values {
		u,vv,_ := twin.UV(v, float64(i)+0.5)
		twin.Circle(u, vv, 0.8, "F")
		twin.SetXY(u-10, vv-5)
		twin.CellFormat(20, 4, valueFmt(v), "", 0, "C", false, 0, "")
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
