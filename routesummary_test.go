package routestats

import(
	"testing"
)

func priced(flights ...Flight) []PricedFlight {
	return PriceAll(flights, largePair(), DefaultCostModel())
}

func TestAggregateScenario(t *testing.T) {
	sums := Aggregate(priced(scenarioFlight(), scenarioFlight()))
	if len(sums) != 1 { t.Fatalf("expected 1 route, got %d", len(sums)) }

	s := sums[0]
	if s.Route != "AAA-BBB" { t.Errorf("route: got %q", s.Route) }
	if s.NumFlights != 2 || s.RoundTrips != 1 {
		t.Errorf("counts: got n=%d rt=%d", s.NumFlights, s.RoundTrips)
	}
	if !s.TotalProfit.Equal(dec("-2720")) { t.Errorf("profit: got %s", s.TotalProfit) }
	if !s.TotalProfit.Equal(s.TotalRevenue.Sub(s.TotalCost)) {
		t.Errorf("profit %s != revenue %s - cost %s", s.TotalProfit, s.TotalRevenue, s.TotalCost)
	}
	if !s.AvgDepDelay.Valid || s.AvgDepDelay.V != 0 { t.Errorf("avg delay: got %s", s.AvgDepDelay) }
}

func TestAggregateSumsAndRoundTrips(t *testing.T) {
	flights := []Flight{}
	for i:=0; i<7; i++ {
		f := scenarioFlight()
		f.DepDelay = Known(float64(i*10))
		f.OccupancyRate = Known(0.5 + float64(i)*0.05)
		flights = append(flights, f)
	}
	rev := scenarioFlight()
	rev.Origin, rev.Destination = "BBB", "AAA"
	flights = append(flights, rev)

	ps := priced(flights...)
	sums := Aggregate(ps)
	if len(sums) != 2 { t.Fatalf("expected 2 routes (direction matters), got %d", len(sums)) }
	if sums[0].Route != "AAA-BBB" || sums[1].Route != "BBB-AAA" {
		t.Errorf("expected routes sorted by key, got %s, %s", sums[0].Route, sums[1].Route)
	}

	s := sums[0]
	if s.NumFlights != 7 || s.RoundTrips != 3 {
		t.Errorf("expected n=7 rt=3, got n=%d rt=%d", s.NumFlights, s.RoundTrips)
	}
	if sums[1].RoundTrips != 0 { t.Errorf("single flight: expected 0 round trips") }

	rev7, cost7 := dec("0"), dec("0")
	for _,pf := range ps[:7] {
		rev7 = rev7.Add(pf.TotalRevenue)
		cost7 = cost7.Add(pf.TotalCost)
	}
	if !s.TotalRevenue.Equal(rev7) || !s.TotalCost.Equal(cost7) {
		t.Errorf("totals: expected %s/%s, got %s/%s", rev7, cost7, s.TotalRevenue, s.TotalCost)
	}
	if !s.TotalProfit.Equal(s.TotalRevenue.Sub(s.TotalCost)) {
		t.Errorf("profit is not revenue - cost")
	}
	if s.AvgDepDelay.V != 30 { t.Errorf("avg dep delay: expected 30, got %s", s.AvgDepDelay) }
}

func TestAggregateInvalidPropagates(t *testing.T) {
	bad := scenarioFlight()
	bad.Distance = ParseMeasure("")
	bad.DepDelay = Measure{}

	sums := Aggregate(priced(scenarioFlight(), bad))
	s := sums[0]
	if s.Valid() || s.NumInvalid != 1 {
		t.Errorf("expected route to be invalid, got %s", s)
	}
	if s.AvgDepDelay.V != 0 || !s.AvgDepDelay.Valid {
		t.Errorf("missing delays should be skipped in the mean, got %s", s.AvgDepDelay)
	}

	if p := MostProfitable(sums, 10); len(p) != 0 {
		t.Errorf("invalid routes must not be ranked by profit, got %v", p)
	}
	if b := Busiest(sums, 10); len(b) != 1 {
		t.Errorf("invalid routes still count for busiest, got %v", b)
	}
}
