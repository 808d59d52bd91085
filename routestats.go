// This package contains the types and the pipeline for route profitability analysis. No I/O.
package routestats

import(
	"math"
	"strconv"
	"strings"
)

const(
	// Two flights on the same route identifier are counted as one round trip.
	FlightsPerRoundTrip = 2
)

// A Measure is a numeric input column that may be missing or malformed in the source data.
type Measure struct {
	V     float64
	Valid bool
}

func Known(v float64) Measure { return Measure{V:v, Valid:true} }

// ParseMeasure never fails; anything that isn't a finite number becomes an invalid Measure.
func ParseMeasure(s string) Measure {
	s = strings.TrimSpace(s)
	if s == "" { return Measure{} }
	v,err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v,0) { return Measure{} }
	return Known(v)
}

func (m Measure)String() string {
	if !m.Valid { return "NA" }
	return strconv.FormatFloat(m.V, 'f', -1, 64)
}
