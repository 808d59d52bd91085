// Package analysis holds the route reports; importing it populates the report registry.
package analysis

import(
	"fmt"
	"strings"

	"github.com/samber/lo"

	rs "github.com/skypies/routestats"
	"github.com/skypies/routestats/fpdf"
	"github.com/skypies/routestats/report"
)

// Reports are written under "<n> <Name>/<n>_<name>", e.g. "10 Busiest Roundtrip Routes" and
// "10_busiest_roundtrip_routes".
func setOutputLocation(r *report.Report, n int, name string) {
	r.Dir = fmt.Sprintf("%d %s", n, name)
	r.BaseName = strings.ReplaceAll(strings.ToLower(r.Dir), " ", "_")
}

func newChart(r *report.Report, xlabel string, tickFmt fpdf.TickFunc) fpdf.BarChart {
	return fpdf.BarChart{
		Title: r.Title,
		XLabel: xlabel,
		YLabel: "Route Code",
		Labels: []string{},
		Values: []float64{},
		TickFmt: tickFmt,
	}
}

func routeCodes(sums []rs.RouteSummary) []string {
	return lo.Map(sums, func(s rs.RouteSummary, _ int) string { return s.Route })
}

// Counters that every report carries, so the metadata says what the rankings were drawn from.
func countInputs(r *report.Report, a *rs.Analysis) {
	r.I["[B] Flights after cleaning"] = len(a.Flights)
	r.I["[B] Flights cancelled"] = a.CleanStats.NumCancelled
	r.I["[B] Flights with unknown airports"] = a.CleanStats.NumUnknownAirport
	r.I["[C] Routes"] = len(a.Summaries)
	r.I["[C] Routes with invalid economics"] = a.NumInvalidRoutes()
}

// profitRow is shared by the profitable and recommended tables.
func profitRow(s rs.RouteSummary) []string {
	return []string{
		s.Route,
		report.Money(s.TotalRevenue),
		report.Money(s.TotalCost),
		report.Money(s.TotalProfit),
		fmt.Sprintf("%d", s.NumFlights),
		fmt.Sprintf("%d", s.RoundTrips),
	}
}

var profitHeaders = []string{
	"route_code", "total_revenue", "total_cost", "total_profit", "num_flights", "round_trips",
}
