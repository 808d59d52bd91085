package routestats

import(
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Economics are the per-flight revenue and cost figures. A flight with a missing distance or
// occupancy rate gets Valid=false; its figures must not be summed into anything that is reported.
type Economics struct {
	Passengers      decimal.Decimal

	TicketRevenue   decimal.Decimal
	BaggageRevenue  decimal.Decimal
	TotalRevenue    decimal.Decimal

	FuelCost        decimal.Decimal // round trip distance
	OtherCost       decimal.Decimal // round trip distance
	DepDelayCost    decimal.Decimal
	ArrDelayCost    decimal.Decimal
	DelayCost       decimal.Decimal
	OriginFee       decimal.Decimal
	DestFee         decimal.Decimal
	AirportFees     decimal.Decimal
	TotalCost       decimal.Decimal

	Profit          decimal.Decimal

	Valid           bool
}

func (e Economics)String() string {
	if !e.Valid { return "{invalid}" }
	return fmt.Sprintf("{pax=%s rev=%s cost=%s [fuel=%s other=%s delay=%s fees=%s] profit=%s}",
		e.Passengers, e.TotalRevenue, e.TotalCost, e.FuelCost, e.OtherCost, e.DelayCost,
		e.AirportFees, e.Profit)
}

// PricedFlight is a cleaned flight together with its derived economics.
type PricedFlight struct {
	Flight
	Economics
}

// DelayPenalty charges for each minute of a leg's delay beyond the grace period. Missing delay
// values are not penalized.
func (m CostModel)DelayPenalty(delay Measure) decimal.Decimal {
	if !delay.Valid { return decimal.Zero }
	over := math.Max(0, delay.V - m.DelayGraceMinutes)
	return decimal.NewFromFloat(over).Mul(m.DelayCostPerMinute)
}

// Price derives a flight's economics. It has no side effects.
func Price(f Flight, airports AirportSet, m CostModel) Economics {
	e := Economics{Valid: f.Distance.Valid && f.OccupancyRate.Valid}

	occupancy, distance := decimal.Zero, decimal.Zero
	if f.OccupancyRate.Valid { occupancy = decimal.NewFromFloat(f.OccupancyRate.V) }
	if f.Distance.Valid { distance = decimal.NewFromFloat(f.Distance.V) }

	e.Passengers = occupancy.Mul(decimal.NewFromInt(int64(m.PassengerCapacity)))
	e.TicketRevenue = e.Passengers.Mul(m.TicketPrice)
	e.BaggageRevenue = e.Passengers.Mul(m.BaggagePayingShare).Mul(m.BaggageFee)
	e.TotalRevenue = e.TicketRevenue.Add(e.BaggageRevenue)

	e.FuelCost = distance.Mul(two).Mul(m.FuelCostPerMile)
	e.OtherCost = distance.Mul(two).Mul(m.OtherCostPerMile)
	e.DepDelayCost = m.DelayPenalty(f.DepDelay)
	e.ArrDelayCost = m.DelayPenalty(f.ArrDelay)
	e.DelayCost = e.DepDelayCost.Add(e.ArrDelayCost)
	e.OriginFee = airports.Fee(f.Origin, m)
	e.DestFee = airports.Fee(f.Destination, m)
	e.AirportFees = e.OriginFee.Add(e.DestFee)
	e.TotalCost = e.FuelCost.Add(e.OtherCost).Add(e.DelayCost).Add(e.AirportFees)

	e.Profit = e.TotalRevenue.Sub(e.TotalCost)

	return e
}

func PriceAll(flights []Flight, airports AirportSet, m CostModel) []PricedFlight {
	out := make([]PricedFlight, 0, len(flights))
	for _,f := range flights {
		out = append(out, PricedFlight{Flight:f, Economics:Price(f, airports, m)})
	}
	return out
}
