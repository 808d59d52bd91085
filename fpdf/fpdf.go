// Provides routines to render ranked route views as PDF bar charts
package fpdf

import(
	"math"

	"github.com/jung-kurt/gofpdf"
)

// https://godoc.org/github.com/jung-kurt/gofpdf

var (
	RedRGB     = []int{0xd6, 0x27, 0x28}
	SkyBlueRGB = []int{0x87, 0xce, 0xeb}
)

// {{{ var()

// The chart area is a landscape Letter page; the grid sits inside these margins, leaving room on
// the left for route labels and above/below for the axes.
var(
	PageWidth    = 279.4
	PageHeight   = 215.9

	GridOffsetU  = 45.0
	GridOffsetV  = 35.0
	GridWidth    = 210.0
	GridHeight   = 140.0

	TargetTicks  = 6
)

// }}}

// {{{ NewChartPdf

func NewChartPdf(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetTitle(title, false)
	pdf.SetCreator("routestats", false)
	pdf.AddPage()
	pdf.SetFont("Arial", "", 10)
	DrawTitle(pdf, title)
	return pdf
}

// }}}
// {{{ DrawTitle

func DrawTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(0,0,0)
	pdf.SetXY(0, 10)
	pdf.CellFormat(PageWidth, 10, title, "", 0, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
}

// }}}
// {{{ NiceRange

// NiceRange widens [min,max] out to round numbers, and picks a round tick step that gives about
// n ticks. Zero is always inside the range, since bars grow from it.
func NiceRange(min, max float64, n int) (float64, float64, float64) {
	min, max = math.Min(min, 0), math.Max(max, 0)
	if max - min == 0 { max = 1 }
	if n < 1 { n = 1 }

	step := niceNum((max - min) / float64(n))
	return math.Floor(min/step) * step, math.Ceil(max/step) * step, step
}

// 1, 2, 5, 10, 20, 50 ...
func niceNum(x float64) float64 {
	exp := math.Floor(math.Log10(x))
	frac := x / math.Pow(10, exp)
	nice := 10.0
	switch {
	case frac <= 1: nice = 1
	case frac <= 2: nice = 2
	case frac <= 5: nice = 5
	}
	return nice * math.Pow(10, exp)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
