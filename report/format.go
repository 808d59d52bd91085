package report

import(
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Dollars renders whole dollars with thousands separators; -1360 is "-$1,360".
func Dollars(v float64) string {
	v = math.Round(v)
	if v < 0 { return "-" + printer.Sprintf("$%.0f", -v) }
	return printer.Sprintf("$%.0f", v)
}

func Count(v float64) string { return printer.Sprintf("%.0f", v) }
func OneDP(v float64) string { return printer.Sprintf("%.1f", v) }

// Minutes is for delays.
func Minutes(v float64) string { return fmt.Sprintf("%.1f min", v) }

// Money is the CSV rendering of an exact amount.
func Money(d decimal.Decimal) string { return d.StringFixed(2) }
