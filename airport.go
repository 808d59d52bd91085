package routestats

import(
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/skypies/geo"
)

type AirportSize int
const(
	OtherAirport AirportSize = iota
	MediumAirport
	LargeAirport
)

func (s AirportSize)String() string {
	switch s {
	case LargeAirport:  return "large"
	case MediumAirport: return "medium"
	default:            return "other"
	}
}

// ParseAirportSize takes the airport-codes TYPE values; they must match exactly.
func ParseAirportSize(s string) AirportSize {
	switch s {
	case "large_airport":  return LargeAirport
	case "medium_airport": return MediumAirport
	default:               return OtherAirport
	}
}

type Airport struct {
	IATA         string
	Name         string
	Size         AirportSize

	geo.Latlong          // Only meaningful if HasLocation
	HasLocation  bool
}

// ParseCoordinates reads the airport-codes COORDINATES column, which is "long, lat".
func ParseCoordinates(s string) (geo.Latlong, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 { return geo.Latlong{}, false }
	long,err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lat,err2  := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil { return geo.Latlong{}, false }
	if lat < -90 || lat > 90 || long < -180 || long > 180 { return geo.Latlong{}, false }
	return geo.Latlong{Lat:lat, Long:long}, true
}

// An AirportSet holds the admitted (medium or large) airports, keyed by trimmed IATA code.
// It is read-only once built.
type AirportSet map[string]Airport

// NewAirportSet drops airports with a blank code or a size other than medium/large. When a code
// appears more than once, the last row wins.
func NewAirportSet(airports []Airport) AirportSet {
	as := AirportSet{}
	for _,a := range airports {
		a.IATA = strings.TrimSpace(a.IATA)
		if a.IATA == "" { continue }
		if a.Size != LargeAirport && a.Size != MediumAirport { continue }
		as[a.IATA] = a
	}
	return as
}

func (as AirportSet)Admits(code string) bool {
	_,exists := as[code]
	return exists
}

func (as AirportSet)Size(code string) AirportSize {
	if a,exists := as[code]; exists { return a.Size }
	return OtherAirport
}

// Fee is the per-visit airport charge; unknown codes cost nothing.
func (as AirportSet)Fee(code string, m CostModel) decimal.Decimal {
	switch as.Size(code) {
	case LargeAirport:  return m.LargeAirportFee
	case MediumAirport: return m.MediumAirportFee
	default:            return decimal.Zero
	}
}
