package routestats

import(
	"fmt"
	"math"
)

// Reported distances that disagree with the great-circle distance by more than this fraction are
// counted, but left alone.
var DistanceMismatchThreshold = 0.25

type CleanStats struct {
	NumInput             int
	NumCancelled         int
	NumUnknownAirport    int // not cancelled, but an endpoint isn't a medium/large airport
	NumKept              int

	NumInvalidDistance   int // kept, but the distance column was missing or malformed
	NumNoCoordinates     int // kept, but couldn't check distance against great-circle
	NumDistanceMismatch  int
}

func (cs CleanStats)String() string {
	return fmt.Sprintf("%d in, %d cancelled, %d unknown airport, %d kept "+
		"(%d bad distance, %d distance mismatch, %d uncheckable)",
		cs.NumInput, cs.NumCancelled, cs.NumUnknownAirport, cs.NumKept,
		cs.NumInvalidDistance, cs.NumDistanceMismatch, cs.NumNoCoordinates)
}

// Clean keeps the flights that were not cancelled and whose endpoints are both admitted
// airports. Input order is preserved; the input slice is not modified.
func Clean(flights []Flight, airports AirportSet) ([]Flight, CleanStats) {
	cs := CleanStats{NumInput: len(flights)}
	out := []Flight{}

	for _,f := range flights {
		if f.Cancelled {
			cs.NumCancelled++
			continue
		}
		if !airports.Admits(f.Origin) || !airports.Admits(f.Destination) {
			cs.NumUnknownAirport++
			continue
		}

		if !f.Distance.Valid {
			cs.NumInvalidDistance++
		} else if gc,ok := f.GreatCircleMiles(airports); !ok {
			cs.NumNoCoordinates++
		} else if gc > 0 && math.Abs(f.Distance.V - gc) / gc > DistanceMismatchThreshold {
			cs.NumDistanceMismatch++
		}

		out = append(out, f)
	}

	cs.NumKept = len(out)
	return out, cs
}
