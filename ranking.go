package routestats

import(
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// All the views below return fresh slices; the summaries passed in are never reordered.

// {{{ sort orders

type byRoundTripsDescending []RouteSummary
func (a byRoundTripsDescending) Len() int           { return len(a) }
func (a byRoundTripsDescending) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byRoundTripsDescending) Less(i, j int) bool {
	if a[i].RoundTrips != a[j].RoundTrips { return a[i].RoundTrips > a[j].RoundTrips }
	return a[i].Route < a[j].Route
}

type byProfitDescending []RouteSummary
func (a byProfitDescending) Len() int           { return len(a) }
func (a byProfitDescending) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byProfitDescending) Less(i, j int) bool {
	if c := a[i].TotalProfit.Cmp(a[j].TotalProfit); c != 0 { return c > 0 }
	return a[i].Route < a[j].Route
}

// Undefined breakevens sort after every defined one.
type byBreakevenAscending []BreakevenRoute
func (a byBreakevenAscending) Len() int           { return len(a) }
func (a byBreakevenAscending) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byBreakevenAscending) Less(i, j int) bool {
	if a[i].Defined != a[j].Defined { return a[i].Defined }
	if a[i].Defined {
		if c := a[i].BreakevenFlights.Cmp(a[j].BreakevenFlights); c != 0 { return c < 0 }
	}
	return false // stable sort keeps the profit order
}

// }}}

func head[T any](s []T, n int) []T {
	if len(s) > n { s = s[:n] }
	return s
}

// {{{ Busiest, MostProfitable, Recommended

// Busiest ranks every route (valid or not, since counts are always known) by round trips.
func Busiest(summaries []RouteSummary, n int) []RouteSummary {
	out := append([]RouteSummary{}, summaries...)
	sort.Stable(byRoundTripsDescending(out))
	return head(out, n)
}

// MostProfitable ranks the routes with valid money totals by total profit.
func MostProfitable(summaries []RouteSummary, n int) []RouteSummary {
	out := lo.Filter(summaries, func(s RouteSummary, _ int) bool { return s.Valid() })
	sort.Stable(byProfitDescending(out))
	return head(out, n)
}

// Recommended keeps the profit order of the input, dropping routes whose average departure delay
// is unknown or above maxAvgDepDelay.
func Recommended(profitable []RouteSummary, maxAvgDepDelay float64, n int) []RouteSummary {
	out := lo.Filter(profitable, func(s RouteSummary, _ int) bool {
		return s.AvgDepDelay.Valid && s.AvgDepDelay.V <= maxAvgDepDelay
	})
	return head(out, n)
}

// }}}
// {{{ Breakeven

// BreakevenRoute is a route together with how many flights it takes for its profit to cover its
// total cost for the period.
type BreakevenRoute struct {
	RouteSummary

	ProfitPerFlight           decimal.Decimal
	BreakevenFlights          decimal.Decimal // only meaningful if Defined
	AirplanePaybackRoundTrips decimal.Decimal // only meaningful if Defined

	// A route that loses money (or breaks exactly even) on each flight never breaks even.
	Defined                   bool
}

func (br BreakevenRoute)String() string {
	if !br.Defined {
		return fmt.Sprintf("%s breakeven=never (profit/flight=%s)", br.Route,
			br.ProfitPerFlight.StringFixed(2))
	}
	return fmt.Sprintf("%s breakeven=%s flights, payback=%s round trips", br.Route,
		br.BreakevenFlights.StringFixed(2), br.AirplanePaybackRoundTrips.StringFixed(2))
}

func NewBreakevenRoute(s RouteSummary, m CostModel) BreakevenRoute {
	br := BreakevenRoute{RouteSummary:s, ProfitPerFlight:s.ProfitPerFlight()}
	if br.ProfitPerFlight.IsPositive() {
		br.Defined = true
		br.BreakevenFlights = s.TotalCost.Div(br.ProfitPerFlight)
		br.AirplanePaybackRoundTrips = m.AirplanePrice.Div(br.ProfitPerFlight.Mul(two))
	}
	return br
}

// Breakeven ranks the profitable routes by the fewest flights needed to break even.
func Breakeven(profitable []RouteSummary, m CostModel, n int) []BreakevenRoute {
	out := lo.Map(profitable, func(s RouteSummary, _ int) BreakevenRoute {
		return NewBreakevenRoute(s, m)
	})
	sort.Stable(byBreakevenAscending(out))
	return head(out, n)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
