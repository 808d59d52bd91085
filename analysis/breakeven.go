package analysis

import(
	"fmt"

	rs "github.com/skypies/routestats"
	"github.com/skypies/routestats/report"
)

func init() {
	report.HandleReport("breakeven", BreakevenReporter,
		"Profitable routes needing the fewest flights to break even")
}

const undefined = "undefined"

func BreakevenReporter(r *report.Report, a *rs.Analysis) error {
	n := a.Options.BreakevenN
	r.Title = fmt.Sprintf("Top %d Routes with Least Breakeven Flights for %s", n, r.Period)
	setOutputLocation(r, n, "Recommended Breakeven Roundtrip Routes")
	countInputs(r, a)

	r.SetHeaders([]string{
		"route_code", "profit_per_flight", "breakeven_flights", "airplane_payback_round_trips",
	})
	r.Chart = newChart(r, "Breakeven Flights", report.OneDP)
	r.Chart.Missing = []bool{}

	for _,b := range a.Breakeven {
		r.Chart.Labels = append(r.Chart.Labels, b.Route)

		if !b.Defined {
			r.I["[D] Routes that never break even"]++
			r.Infof("* %s: profit per flight %s, so it never breaks even\n", b.Route,
				report.Money(b.ProfitPerFlight))
			r.AddRow([]string{b.Route, report.Money(b.ProfitPerFlight), undefined, undefined})
			r.Chart.Values = append(r.Chart.Values, 0)
			r.Chart.Missing = append(r.Chart.Missing, true)
			continue
		}

		flights := b.BreakevenFlights.InexactFloat64()
		r.AddRow([]string{
			b.Route,
			report.Money(b.ProfitPerFlight),
			b.BreakevenFlights.StringFixed(2),
			b.AirplanePaybackRoundTrips.StringFixed(2),
		})
		r.Chart.Values = append(r.Chart.Values, flights)
		r.Chart.Missing = append(r.Chart.Missing, false)
		r.Observe(flights)
	}

	return nil
}
