package routestats

import(
	"testing"

	"github.com/skypies/geo"
)

func TestNewAirportSet(t *testing.T) {
	as := NewAirportSet([]Airport{
		{IATA:" SFO ", Size:LargeAirport},
		{IATA:"", Size:LargeAirport},
		{IATA:"HAF", Size:OtherAirport},
		{IATA:"SMF", Size:MediumAirport},
	})
	if len(as) != 2 { t.Errorf("expected 2 airports, got %d: %v", len(as), as) }
	if !as.Admits("SFO") { t.Errorf("code should have been trimmed") }
	if as.Admits("HAF") { t.Errorf("small airports should be excluded") }
	if as.Size("SMF") != MediumAirport { t.Errorf("SMF: got %s", as.Size("SMF")) }
}

func TestParseAirportSize(t *testing.T) {
	tests := map[string]AirportSize{
		"large_airport": LargeAirport,
		"medium_airport": MediumAirport,
		"Large": OtherAirport,
		"large": OtherAirport,
		"Large_Airport": OtherAirport,
		"small_airport": OtherAirport,
		"heliport": OtherAirport,
		"": OtherAirport,
	}
	for in,want := range tests {
		if got := ParseAirportSize(in); got != want { t.Errorf("%q: expected %s, got %s", in, want, got) }
	}
}

func TestClean(t *testing.T) {
	as := largePair()
	mk := func(o, d string, cx bool) Flight {
		f := scenarioFlight()
		f.Origin, f.Destination, f.Cancelled = o, d, cx
		return f
	}
	in := []Flight{
		mk("AAA", "BBB", false),
		mk("AAA", "BBB", true),   // cancelled
		mk("AAA", "ZZZ", false),  // unknown destination
		mk("ZZZ", "BBB", false),  // unknown origin
		mk("MMM", "AAA", false),
		mk("BBB", "AAA", false),
	}

	out,cs := Clean(in, as)
	want := []string{"AAA-BBB", "MMM-AAA", "BBB-AAA"}
	if len(out) != len(want) { t.Fatalf("expected %d flights, got %d", len(want), len(out)) }
	for i,f := range out {
		if f.RouteKey() != want[i] { t.Errorf("[%d] expected %s, got %s", i, want[i], f.RouteKey()) }
		if f.Cancelled { t.Errorf("[%d] cancelled flight kept", i) }
	}
	if cs.NumInput != 6 || cs.NumCancelled != 1 || cs.NumUnknownAirport != 2 || cs.NumKept != 3 {
		t.Errorf("stats: got %s", cs)
	}
	if !in[1].Cancelled { t.Errorf("input was modified") }
}

func TestCleanDistanceChecks(t *testing.T) {
	as := NewAirportSet([]Airport{
		{IATA:"SFO", Size:LargeAirport, Latlong:geo.Latlong{Lat:37.6188, Long:-122.3750}, HasLocation:true},
		{IATA:"LAX", Size:LargeAirport, Latlong:geo.Latlong{Lat:33.9425, Long:-118.4081}, HasLocation:true},
		{IATA:"OAK", Size:LargeAirport},
	})
	mk := func(o, d string, dist Measure) Flight {
		return Flight{Origin:o, Destination:d, Distance:dist, OccupancyRate:Known(0.8)}
	}
	_,cs := Clean([]Flight{
		mk("SFO", "LAX", Known(337)),   // about right
		mk("SFO", "LAX", Known(900)),   // way off
		mk("SFO", "OAK", Known(11)),    // no coordinates for OAK
		mk("LAX", "SFO", Measure{}),    // no distance at all
	}, as)

	if cs.NumKept != 4 { t.Errorf("distance checks must not drop flights, kept %d", cs.NumKept) }
	if cs.NumDistanceMismatch != 1 || cs.NumNoCoordinates != 1 || cs.NumInvalidDistance != 1 {
		t.Errorf("stats: got %s", cs)
	}

	if miles,ok := mk("SFO", "LAX", Known(0)).GreatCircleMiles(as); !ok || miles < 320 || miles > 350 {
		t.Errorf("SFO-LAX great circle: got %.1f (%v)", miles, ok)
	}
}

func TestParseCoordinates(t *testing.T) {
	ll,ok := ParseCoordinates("-122.375, 37.61899948120117")
	if !ok || ll.Lat < 37.6 || ll.Lat > 37.7 || ll.Long > -122 {
		t.Errorf("got %v (%v)", ll, ok)
	}
	for _,bad := range []string{"", "12.0", "a, b", "200, 10"} {
		if _,ok := ParseCoordinates(bad); ok { t.Errorf("%q: expected failure", bad) }
	}
}
