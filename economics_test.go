package routestats

// go test -v github.com/skypies/routestats

import(
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func largePair() AirportSet {
	return NewAirportSet([]Airport{
		{IATA:"AAA", Size:LargeAirport},
		{IATA:"BBB", Size:LargeAirport},
		{IATA:"MMM", Size:MediumAirport},
	})
}

func scenarioFlight() Flight {
	return Flight{
		Origin: "AAA", Destination: "BBB",
		OccupancyRate: Known(1.0),
		Distance: Known(1000),
		DepDelay: Known(0),
		ArrDelay: Known(0),
	}
}

func TestPriceScenario(t *testing.T) {
	e := Price(scenarioFlight(), largePair(), DefaultCostModel())

	expect := []struct{
		Name string
		Got, Want decimal.Decimal
	}{
		{"passengers",    e.Passengers,     dec("200")},
		{"ticket",        e.TicketRevenue,  dec("30000")},
		{"baggage",       e.BaggageRevenue, dec("7000")},
		{"revenue",       e.TotalRevenue,   dec("37000")},
		{"fuel",          e.FuelCost,       dec("16000")},
		{"other",         e.OtherCost,      dec("2360")},
		{"delay",         e.DelayCost,      dec("0")},
		{"fees",          e.AirportFees,    dec("20000")},
		{"cost",          e.TotalCost,      dec("38360")},
		{"profit",        e.Profit,         dec("-1360")},
	}
	for _,x := range expect {
		if !x.Got.Equal(x.Want) {
			t.Errorf("%s: expected %s, got %s", x.Name, x.Want, x.Got)
		}
	}
	if !e.Valid { t.Errorf("expected valid economics, got %s", e) }
}

func TestDelayPenalty(t *testing.T) {
	m := DefaultCostModel()
	tests := []struct{
		Delay Measure
		Want  string
	}{
		{Known(-12), "0"},
		{Known(0),   "0"},
		{Known(15),  "0"},
		{Known(16),  "75"},
		{Known(45),  "2250"},
		{Measure{},  "0"}, // missing delay is not penalized
	}
	for _,test := range tests {
		if got := m.DelayPenalty(test.Delay); !got.Equal(dec(test.Want)) {
			t.Errorf("delay %s: expected %s, got %s", test.Delay, test.Want, got)
		}
	}

	f := scenarioFlight()
	f.DepDelay, f.ArrDelay = Known(20), Known(35)
	e := Price(f, largePair(), m)
	if !e.DepDelayCost.Equal(dec("375")) || !e.ArrDelayCost.Equal(dec("1500")) {
		t.Errorf("leg penalties: got dep=%s arr=%s", e.DepDelayCost, e.ArrDelayCost)
	}
	if !e.TotalCost.Equal(dec("38360").Add(dec("1875"))) {
		t.Errorf("total cost with delays: got %s", e.TotalCost)
	}
}

func TestAirportFees(t *testing.T) {
	m := DefaultCostModel()
	as := largePair()
	tests := []struct{
		Code string
		Want string
	}{
		{"AAA", "10000"},
		{"MMM", "5000"},
		{"ZZZ", "0"}, // unknown codes are free, not an error
		{"",    "0"},
	}
	for _,test := range tests {
		if got := as.Fee(test.Code, m); !got.Equal(dec(test.Want)) {
			t.Errorf("fee(%q): expected %s, got %s", test.Code, test.Want, got)
		}
	}

	f := scenarioFlight()
	f.Destination = "MMM"
	if e := Price(f, as, m); !e.AirportFees.Equal(dec("15000")) {
		t.Errorf("large+medium fees: got %s", e.AirportFees)
	}
}

func TestPriceInvalidInputs(t *testing.T) {
	f := scenarioFlight()
	f.Distance = ParseMeasure("n/a")
	if e := Price(f, largePair(), DefaultCostModel()); e.Valid {
		t.Errorf("bad distance: expected invalid economics, got %s", e)
	}

	f = scenarioFlight()
	f.OccupancyRate = Measure{}
	if e := Price(f, largePair(), DefaultCostModel()); e.Valid {
		t.Errorf("missing occupancy: expected invalid economics, got %s", e)
	}
}

func TestParseMeasure(t *testing.T) {
	tests := []struct{
		In    string
		Valid bool
		V     float64
	}{
		{"1000",    true,  1000},
		{" 12.5 ",  true,  12.5},
		{"-3.0",    true,  -3},
		{"",        false, 0},
		{"****",    false, 0},
		{"NaN",     false, 0},
		{"1,000",   false, 0},
	}
	for _,test := range tests {
		m := ParseMeasure(test.In)
		if m.Valid != test.Valid || (m.Valid && m.V != test.V) {
			t.Errorf("%q: expected {%v %v}, got %+v", test.In, test.V, test.Valid, m)
		}
	}
}
