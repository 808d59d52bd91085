package analysis

import(
	"fmt"

	rs "github.com/skypies/routestats"
	"github.com/skypies/routestats/report"
)

func init() {
	report.HandleReport("profitable", ProfitableReporter, "Routes with the largest total profit")
}

func ProfitableReporter(r *report.Report, a *rs.Analysis) error {
	n := a.Options.TopN
	r.Title = fmt.Sprintf("The %d Most Profitable Round Trip Routes for %s", n, r.Period)
	setOutputLocation(r, n, "Most Profitable Roundtrip Routes")
	countInputs(r, a)

	r.SetHeaders(profitHeaders)
	r.Chart = newChart(r, "Total Profit $", report.Dollars)
	r.Chart.Labels = routeCodes(a.Profitable)

	for _,s := range a.Profitable {
		profit := s.TotalProfit.InexactFloat64()
		r.AddRow(profitRow(s))
		r.Chart.Values = append(r.Chart.Values, profit)
		r.Observe(profit)
		if s.TotalProfit.IsNegative() { r.I["[D] Ranked routes losing money"]++ }
	}

	return nil
}
