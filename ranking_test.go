package routestats

import(
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

// {{{ fakeSummaries

// Twenty routes with spread-out profits, round trips and delays.
func fakeSummaries() []RouteSummary {
	out := []RouteSummary{}
	for i:=0; i<20; i++ {
		profit := decimal.NewFromInt(int64((i*7919)%23 - 8) * 100000)
		cost := decimal.NewFromInt(int64(1000000 + i*50000))
		n := 10 + (i*37)%29
		out = append(out, RouteSummary{
			Route: fmt.Sprintf("A%02d-B%02d", i, i),
			TotalCost: cost,
			TotalProfit: profit,
			TotalRevenue: cost.Add(profit),
			NumFlights: n,
			RoundTrips: n/2,
			AvgDepDelay: Known(float64((i*13)%30)),
		})
	}
	return out
}

func routeSet(list []RouteSummary) map[string]RouteSummary {
	m := map[string]RouteSummary{}
	for _,s := range list { m[s.Route] = s }
	return m
}

// }}}

func TestBusiest(t *testing.T) {
	all := fakeSummaries()
	before := fmt.Sprintf("%v", all)

	b := Busiest(all, 10)
	if len(b) != 10 { t.Fatalf("expected 10, got %d", len(b)) }
	for i:=1; i<len(b); i++ {
		if b[i].RoundTrips > b[i-1].RoundTrips {
			t.Errorf("not descending at [%d]: %d > %d", i, b[i].RoundTrips, b[i-1].RoundTrips)
		}
	}
	valid := routeSet(all)
	for _,s := range b {
		if _,exists := valid[s.Route]; !exists { t.Errorf("%s not in the input", s.Route) }
	}
	if fmt.Sprintf("%v", all) != before { t.Errorf("input was modified") }

	if short := Busiest(all[:3], 10); len(short) != 3 {
		t.Errorf("fewer routes than n: expected 3, got %d", len(short))
	}
}

func TestMostProfitable(t *testing.T) {
	all := fakeSummaries()
	p := MostProfitable(all, 10)
	if len(p) != 10 { t.Fatalf("expected 10, got %d", len(p)) }
	for i:=1; i<len(p); i++ {
		if p[i].TotalProfit.GreaterThan(p[i-1].TotalProfit) {
			t.Errorf("not descending at [%d]: %s > %s", i, p[i].TotalProfit, p[i-1].TotalProfit)
		}
	}
	// Nothing left out was more profitable than the last one in
	in := routeSet(p)
	for _,s := range all {
		if _,exists := in[s.Route]; !exists && s.TotalProfit.GreaterThan(p[9].TotalProfit) {
			t.Errorf("%s (%s) should have made the top 10", s.Route, s.TotalProfit)
		}
	}
}

func TestRecommended(t *testing.T) {
	p := MostProfitable(fakeSummaries(), 10)
	r := Recommended(p, 15, 5)

	if len(r) > 5 { t.Errorf("expected at most 5, got %d", len(r)) }
	in := routeSet(p)
	last := -1
	for _,s := range r {
		if _,exists := in[s.Route]; !exists { t.Errorf("%s not in the profitable view", s.Route) }
		if s.AvgDepDelay.V > 15 { t.Errorf("%s has avg delay %s", s.Route, s.AvgDepDelay) }
		idx := -1
		for i,x := range p { if x.Route == s.Route { idx = i } }
		if idx < last { t.Errorf("%s out of profit order", s.Route) }
		last = idx
	}

	// Expected: the first five of p that pass the filter
	want := []string{}
	for _,s := range p {
		if s.AvgDepDelay.V <= 15 && len(want) < 5 { want = append(want, s.Route) }
	}
	if len(want) != len(r) { t.Fatalf("expected %v, got %v", want, r) }
	for i := range want {
		if want[i] != r[i].Route { t.Errorf("[%d] expected %s, got %s", i, want[i], r[i].Route) }
	}

	unknown := []RouteSummary{{Route:"X-Y", NumFlights:2}}
	if len(Recommended(unknown, 15, 5)) != 0 { t.Errorf("unknown delay should not pass") }
}

func TestBreakeven(t *testing.T) {
	m := DefaultCostModel()
	p := MostProfitable(fakeSummaries(), 10)
	b := Breakeven(p, m, 5)

	if len(b) > 5 { t.Errorf("expected at most 5, got %d", len(b)) }
	in := routeSet(p)
	for i,br := range b {
		if _,exists := in[br.Route]; !exists { t.Errorf("%s not in the profitable view", br.Route) }
		if i>0 && b[i-1].Defined && br.Defined && br.BreakevenFlights.LessThan(b[i-1].BreakevenFlights) {
			t.Errorf("not ascending at [%d]", i)
		}
		if i>0 && !b[i-1].Defined && br.Defined {
			t.Errorf("defined breakeven [%d] sorted after an undefined one", i)
		}
	}
}

func TestBreakevenValues(t *testing.T) {
	m := DefaultCostModel()
	s := RouteSummary{
		Route: "AAA-BBB",
		TotalCost: dec("1000000"),
		TotalProfit: dec("200000"),
		NumFlights: 100,
	}
	br := NewBreakevenRoute(s, m)
	if !br.Defined { t.Fatalf("expected defined, got %s", br) }
	if !br.ProfitPerFlight.Equal(dec("2000")) { t.Errorf("ppf: got %s", br.ProfitPerFlight) }
	if !br.BreakevenFlights.Equal(dec("500")) { t.Errorf("breakeven: got %s", br.BreakevenFlights) }
	if !br.AirplanePaybackRoundTrips.Equal(dec("22500")) {
		t.Errorf("payback: got %s", br.AirplanePaybackRoundTrips)
	}

	loser := s
	loser.Route = "CCC-DDD"
	loser.TotalProfit = dec("-5000")
	flat := s
	flat.Route = "EEE-FFF"
	flat.TotalProfit = dec("0")

	b := Breakeven([]RouteSummary{loser, s, flat}, m, 5)
	if len(b) != 3 { t.Fatalf("undefined breakevens must be surfaced, got %d", len(b)) }
	if b[0].Route != "AAA-BBB" || !b[0].Defined { t.Errorf("expected defined route first, got %s", b[0]) }
	if b[1].Defined || b[2].Defined { t.Errorf("expected undefined routes last, got %v", b) }
	if b[1].Route != "CCC-DDD" { t.Errorf("undefined routes should keep input order, got %s", b[1]) }
}

// A route with an unpriceable flight still has a sound flight count, so it can rank as busy, but
// its money is unknown and it never ranks on profit.
func TestInvalidRouteBusyButNotProfitable(t *testing.T) {
	all := fakeSummaries()
	all[0].NumFlights, all[0].RoundTrips, all[0].NumInvalid = 1000, 500, 1
	all[0].TotalProfit = decimal.NewFromInt(1e9)

	if b := Busiest(all, 10); b[0].Route != all[0].Route {
		t.Errorf("busiest: expected %s first, got %s", all[0].Route, b[0].Route)
	}
	for _,s := range MostProfitable(all, len(all)) {
		if s.Route == all[0].Route { t.Errorf("invalid route %s ranked on profit", s.Route) }
	}
}
