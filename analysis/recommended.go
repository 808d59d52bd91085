package analysis

import(
	"fmt"

	rs "github.com/skypies/routestats"
	"github.com/skypies/routestats/fpdf"
	"github.com/skypies/routestats/report"
)

func init() {
	report.HandleReport("recommended", RecommendedReporter,
		"Most profitable routes with a low average departure delay")
}

// The chart shows profit as bars, with the average departure delay on a second axis.
func RecommendedReporter(r *report.Report, a *rs.Analysis) error {
	n := a.Options.RecommendN
	r.Title = fmt.Sprintf("The %d Recommended Round Trip Routes for %s", n, r.Period)
	setOutputLocation(r, n, "Recommended Roundtrip Routes")
	countInputs(r, a)
	r.S["[B] Max average departure delay"] = report.Minutes(a.Options.MaxAvgDepDelay)

	r.SetHeaders(append(append([]string{}, profitHeaders...), "avg_dep_delay"))
	r.Chart = newChart(r, "Total Profit (USD)", report.Dollars)
	r.Chart.Labels = routeCodes(a.Recommended)
	r.Chart.Overlay = &fpdf.LineSeries{
		Label: "Average Departure Delay (Minutes)",
		TickFmt: report.OneDP,
		ValueFmt: report.Minutes,
	}

	for _,s := range a.Recommended {
		profit := s.TotalProfit.InexactFloat64()
		r.AddRow(append(profitRow(s), fmt.Sprintf("%.2f", s.AvgDepDelay.V)))
		r.Chart.Values = append(r.Chart.Values, profit)
		r.Chart.Overlay.Values = append(r.Chart.Overlay.Values, s.AvgDepDelay.V)
		r.Observe(profit)
	}
	r.I["[D] Profitable routes too delayed to recommend"] = len(a.Profitable) - countPassing(a)

	return nil
}

func countPassing(a *rs.Analysis) int {
	return len(rs.Recommended(a.Profitable, a.Options.MaxAvgDepDelay, len(a.Profitable)))
}
