package routestats

import(
	"fmt"

	"github.com/samber/lo"
)

// Analysis holds every intermediate table of one run. Each stage produces a new value; none of
// them is modified after Analyse returns it.
type Analysis struct {
	Model        CostModel
	Options      Options

	Airports     AirportSet
	CleanStats   CleanStats
	Flights      []Flight        // cleaned
	Priced       []PricedFlight
	Summaries    []RouteSummary  // one per route, sorted by route identifier

	Busiest      []RouteSummary
	Profitable   []RouteSummary
	Recommended  []RouteSummary
	Breakeven    []BreakevenRoute
}

func Analyse(flights []Flight, airports []Airport, m CostModel, opt Options) (*Analysis, error) {
	if err := m.Validate(); err != nil { return nil, err }
	if err := opt.Validate(); err != nil { return nil, err }

	a := Analysis{Model:m, Options:opt, Airports:NewAirportSet(airports)}

	a.Flights, a.CleanStats = Clean(flights, a.Airports)
	a.Priced = PriceAll(a.Flights, a.Airports, m)
	a.Summaries = Aggregate(a.Priced)

	a.Busiest = Busiest(a.Summaries, opt.TopN)
	a.Profitable = MostProfitable(a.Summaries, opt.TopN)
	a.Recommended = Recommended(a.Profitable, opt.MaxAvgDepDelay, opt.RecommendN)
	a.Breakeven = Breakeven(a.Profitable, m, opt.BreakevenN)

	return &a, nil
}

func (a *Analysis)NumInvalidRoutes() int {
	return lo.CountBy(a.Summaries, func(s RouteSummary) bool { return !s.Valid() })
}

// Views lists the names of the ranked views a route appears in.
func (a *Analysis)Views(route string) []string {
	views := []string{}
	has := func(list []RouteSummary) bool {
		return lo.ContainsBy(list, func(s RouteSummary) bool { return s.Route == route })
	}
	if has(a.Busiest) { views = append(views, "busiest") }
	if has(a.Profitable) { views = append(views, "profitable") }
	if has(a.Recommended) { views = append(views, "recommended") }
	if lo.ContainsBy(a.Breakeven, func(b BreakevenRoute) bool { return b.Route == route }) {
		views = append(views, "breakeven")
	}
	return views
}

func (a *Analysis)String() string {
	str := fmt.Sprintf("---- Analysis: %d airports, %s\n", len(a.Airports), a.CleanStats)
	str += fmt.Sprintf("---- %d routes (%d invalid), model: %s\n", len(a.Summaries),
		a.NumInvalidRoutes(), a.Model)
	dump := func(name string, list []RouteSummary) {
		str += fmt.Sprintf("-- %s\n", name)
		for i,s := range list { str += fmt.Sprintf("  [%2d] %s\n", i+1, s) }
	}
	dump("busiest", a.Busiest)
	dump("profitable", a.Profitable)
	dump("recommended", a.Recommended)
	str += "-- breakeven\n"
	for i,b := range a.Breakeven { str += fmt.Sprintf("  [%2d] %s\n", i+1, b) }
	return str
}
