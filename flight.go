package routestats

import(
	"fmt"
)

const kmPerStatuteMile = 1.609344

// Flight is one row of the quarterly flights file.
type Flight struct {
	FlightDate    string // Context only; not used in the computation
	Carrier       string
	TailNum       string
	FlightNumber  string

	Origin        string // IATA code
	Destination   string // IATA code
	Cancelled     bool

	OccupancyRate Measure // [0.0, 1.0]
	Distance      Measure // statute miles, one way
	DepDelay      Measure // minutes; negative for early departures
	ArrDelay      Measure // minutes
}

// RouteKey is directionally literal: SFO-JFK and JFK-SFO are different routes.
func (f Flight)RouteKey() string { return RouteKey(f.Origin, f.Destination) }

func RouteKey(origin, destination string) string { return origin + "-" + destination }

func (f Flight)String() string {
	return fmt.Sprintf("%s%s[%s] %s cx=%v occ=%s dist=%s dep=%s arr=%s", f.Carrier, f.FlightNumber,
		f.FlightDate, f.RouteKey(), f.Cancelled, f.OccupancyRate, f.Distance, f.DepDelay, f.ArrDelay)
}

// GreatCircleMiles is the distance between the two endpoints, if both have coordinates.
func (f Flight)GreatCircleMiles(airports AirportSet) (float64, bool) {
	o,oOk := airports[f.Origin]
	d,dOk := airports[f.Destination]
	if !oOk || !dOk || !o.HasLocation || !d.HasLocation { return 0, false }
	return o.Latlong.DistKM(d.Latlong) / kmPerStatuteMile, true
}
