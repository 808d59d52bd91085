package analysis

import(
	"fmt"

	rs "github.com/skypies/routestats"
	"github.com/skypies/routestats/report"
)

func init() {
	report.HandleReport("busiest", BusiestReporter, "Routes with the most round trips")
}

func BusiestReporter(r *report.Report, a *rs.Analysis) error {
	n := a.Options.TopN
	r.Title = fmt.Sprintf("The %d Busiest Round Trip Routes for %s", n, r.Period)
	setOutputLocation(r, n, "Busiest Roundtrip Routes")
	countInputs(r, a)

	r.SetHeaders([]string{"route_code", "num_flights", "num_round_trips"})
	r.Chart = newChart(r, "Number of Round Trips", report.Count)
	r.Chart.Labels = routeCodes(a.Busiest)

	for _,s := range a.Busiest {
		r.AddRow([]string{s.Route, fmt.Sprintf("%d", s.NumFlights), fmt.Sprintf("%d", s.RoundTrips)})
		r.Chart.Values = append(r.Chart.Values, float64(s.RoundTrips))
		r.Observe(float64(s.RoundTrips))
		if !s.Valid() {
			r.I["[D] Busy routes with invalid economics"]++
			r.Debugf("* %s: %d invalid flights\n", s.Route, s.NumInvalid)
		}
	}

	return nil
}
