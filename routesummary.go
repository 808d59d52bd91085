package routestats

import(
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// RouteSummary aggregates all the priced flights on one route identifier.
type RouteSummary struct {
	Route         string
	Origin        string
	Destination   string

	TotalRevenue  decimal.Decimal
	TotalCost     decimal.Decimal
	TotalProfit   decimal.Decimal

	NumFlights    int
	RoundTrips    int
	AvgDepDelay   Measure // mean over flights with a known departure delay

	NumInvalid    int // flights whose economics could not be computed
}

// A summary that touched an invalid flight has meaningless money totals.
func (s RouteSummary)Valid() bool { return s.NumInvalid == 0 }

func (s RouteSummary)ProfitPerFlight() decimal.Decimal {
	if s.NumFlights == 0 { return decimal.Zero }
	return s.TotalProfit.Div(decimal.NewFromInt(int64(s.NumFlights)))
}

func (s RouteSummary)String() string {
	money := fmt.Sprintf("rev=%s cost=%s profit=%s", s.TotalRevenue.StringFixed(2),
		s.TotalCost.StringFixed(2), s.TotalProfit.StringFixed(2))
	if !s.Valid() { money = fmt.Sprintf("{%d invalid flights}", s.NumInvalid) }
	return fmt.Sprintf("%-9s n=%d rt=%d depdelay=%s %s", s.Route, s.NumFlights, s.RoundTrips,
		s.AvgDepDelay, money)
}

// Summarize folds a group of flights that share a route identifier.
func Summarize(route string, group []PricedFlight) RouteSummary {
	s := RouteSummary{
		Route: route,
		NumFlights: len(group),
		RoundTrips: len(group) / FlightsPerRoundTrip,
	}
	if len(group) > 0 {
		s.Origin, s.Destination = group[0].Origin, group[0].Destination
	}

	sum := func(field func(PricedFlight) decimal.Decimal) decimal.Decimal {
		return lo.Reduce(group, func(acc decimal.Decimal, pf PricedFlight, _ int) decimal.Decimal {
			return acc.Add(field(pf))
		}, decimal.Zero)
	}
	s.TotalRevenue = sum(func(pf PricedFlight) decimal.Decimal { return pf.TotalRevenue })
	s.TotalCost = sum(func(pf PricedFlight) decimal.Decimal { return pf.TotalCost })
	s.TotalProfit = sum(func(pf PricedFlight) decimal.Decimal { return pf.Profit })
	s.NumInvalid = lo.CountBy(group, func(pf PricedFlight) bool { return !pf.Economics.Valid })

	delayed := lo.Filter(group, func(pf PricedFlight, _ int) bool { return pf.DepDelay.Valid })
	if len(delayed) > 0 {
		total := lo.SumBy(delayed, func(pf PricedFlight) float64 { return pf.DepDelay.V })
		s.AvgDepDelay = Known(total / float64(len(delayed)))
	}

	return s
}

// Aggregate groups flights by route identifier. The result is sorted by route identifier.
func Aggregate(priced []PricedFlight) []RouteSummary {
	groups := lo.GroupBy(priced, func(pf PricedFlight) string { return pf.RouteKey() })

	routes := lo.Keys(groups)
	sort.Strings(routes)

	return lo.Map(routes, func(route string, _ int) RouteSummary {
		return Summarize(route, groups[route])
	})
}
