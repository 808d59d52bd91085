package routestats

import(
	"fmt"

	"github.com/shopspring/decimal"
)

// CostModel holds the static economics of operating one aircraft on a route. Money is in dollars.
type CostModel struct {
	AirplanePrice       decimal.Decimal // upfront cost of one aircraft
	TicketPrice         decimal.Decimal // average one-way fare
	FuelCostPerMile     decimal.Decimal // fuel, oil, maintenance, crew
	OtherCostPerMile    decimal.Decimal // depreciation, insurance, other
	LargeAirportFee     decimal.Decimal // per visit
	MediumAirportFee    decimal.Decimal // per visit
	DelayGraceMinutes   float64         // delays up to this long are free
	DelayCostPerMinute  decimal.Decimal // charged for each minute beyond the grace period
	PassengerCapacity   int
	BaggageFee          decimal.Decimal // round trip, per paying passenger
	BaggagePayingShare  decimal.Decimal // fraction of passengers who check a bag
}

func DefaultCostModel() CostModel {
	return CostModel{
		AirplanePrice:      decimal.NewFromInt(90000000),
		TicketPrice:        decimal.NewFromInt(150),
		FuelCostPerMile:    decimal.NewFromInt(8),
		OtherCostPerMile:   decimal.RequireFromString("1.18"),
		LargeAirportFee:    decimal.NewFromInt(10000),
		MediumAirportFee:   decimal.NewFromInt(5000),
		DelayGraceMinutes:  15,
		DelayCostPerMinute: decimal.NewFromInt(75),
		PassengerCapacity:  200,
		BaggageFee:         decimal.NewFromInt(70),
		BaggagePayingShare: decimal.RequireFromString("0.5"),
	}
}

func (m CostModel)Validate() error {
	money := map[string]decimal.Decimal{
		"AirplanePrice": m.AirplanePrice,
		"TicketPrice": m.TicketPrice,
		"FuelCostPerMile": m.FuelCostPerMile,
		"OtherCostPerMile": m.OtherCostPerMile,
		"LargeAirportFee": m.LargeAirportFee,
		"MediumAirportFee": m.MediumAirportFee,
		"DelayCostPerMinute": m.DelayCostPerMinute,
		"BaggageFee": m.BaggageFee,
	}
	for _,k := range sortedKeys(money) {
		if money[k].IsNegative() { return fmt.Errorf("cost model: %s is negative (%s)", k, money[k]) }
	}
	if m.PassengerCapacity <= 0 {
		return fmt.Errorf("cost model: PassengerCapacity must be positive (%d)", m.PassengerCapacity)
	}
	if m.DelayGraceMinutes < 0 {
		return fmt.Errorf("cost model: DelayGraceMinutes is negative (%.1f)", m.DelayGraceMinutes)
	}
	if m.BaggagePayingShare.IsNegative() || m.BaggagePayingShare.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("cost model: BaggagePayingShare must be in [0,1] (%s)", m.BaggagePayingShare)
	}
	return nil
}

func (m CostModel)String() string {
	return fmt.Sprintf("ticket=$%s fomc=$%s/mi dio=$%s/mi fees=$%s/$%s delay=$%s/min>%.0fmin "+
		"cap=%d bag=$%s@%s plane=$%s",
		m.TicketPrice, m.FuelCostPerMile, m.OtherCostPerMile, m.LargeAirportFee, m.MediumAirportFee,
		m.DelayCostPerMinute, m.DelayGraceMinutes, m.PassengerCapacity, m.BaggageFee,
		m.BaggagePayingShare, m.AirplanePrice)
}

// Options control the size and thresholds of the ranked views.
type Options struct {
	TopN            int     // length of the busiest and most-profitable views
	RecommendN      int
	BreakevenN      int
	MaxAvgDepDelay  float64 // minutes; recommended routes must average at or below this
}

func DefaultOptions() Options {
	return Options{TopN:10, RecommendN:5, BreakevenN:5, MaxAvgDepDelay:15}
}

func (o Options)Validate() error {
	if o.TopN <= 0 || o.RecommendN <= 0 || o.BreakevenN <= 0 {
		return fmt.Errorf("options: view sizes must be positive (top=%d, recommend=%d, breakeven=%d)",
			o.TopN, o.RecommendN, o.BreakevenN)
	}
	return nil
}
