package airlinedata

import(
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	rs "github.com/skypies/routestats"
)

// {{{ notes

/* The quarterly data comes as three CSV files, each with a header row. Column order varies between
   exports, so each row becomes a map from header name to value.

Flights.csv:
  FL_DATE, OP_CARRIER, TAIL_NUM, OP_CARRIER_FL_NUM, ORIGIN_AIRPORT_ID, ORIGIN, ORIGIN_CITY_NAME,
  DEST_AIRPORT_ID, DESTINATION, DEST_CITY_NAME, DEP_DELAY, ARR_DELAY, CANCELLED, AIR_TIME,
  DISTANCE, OCCUPANCY_RATE

E.g.:
  2019-03-02,WN,N955WN,4591,14635,RSW,"Fort Myers, FL",11042,CLE,"Cleveland, OH",-8.0,-6.0,0.0,
  143.0,1025.0,0.97

Airport_Codes.csv:
  TYPE, NAME, ELEVATION_FT, CONTINENT, ISO_COUNTRY, MUNICIPALITY, IATA_CODE, COORDINATES

E.g.:
  large_airport,San Francisco International Airport,13,NA,US,San Francisco,SFO,
  "-122.375, 37.61899948120117"

Tickets.csv:
  ITIN_ID, YEAR, QUARTER, ORIGIN, ORIGIN_COUNTRY, ORIGIN_STATE_ABR, ORIGIN_STATE_NM,
  ROUNDTRIP, REPORTING_CARRIER, PASSENGERS, ITIN_FARE, DESTINATION

 */

// }}}

const(
	ColFlightDate    = "FL_DATE"
	ColCarrier       = "OP_CARRIER"
	ColTailNum       = "TAIL_NUM"
	ColFlightNumber  = "OP_CARRIER_FL_NUM"
	ColOrigin        = "ORIGIN"
	ColDestination   = "DESTINATION"
	ColCancelled     = "CANCELLED"
	ColOccupancyRate = "OCCUPANCY_RATE"
	ColDistance      = "DISTANCE"
	ColDepDelay      = "DEP_DELAY"
	ColArrDelay      = "ARR_DELAY"

	ColType          = "TYPE"
	ColName          = "NAME"
	ColIATACode      = "IATA_CODE"
	ColCoordinates   = "COORDINATES"
)

var(
	FlightColumns = []string{ColOrigin, ColDestination, ColCancelled, ColOccupancyRate,
		ColDistance, ColDepDelay, ColArrDelay}
	AirportColumns = []string{ColIATACode, ColType}
)

type RowReader struct {
	csvreader  *csv.Reader
	headers   []string
	headerErr  error
}

func NewRowReader(ioreader io.Reader) *RowReader {
	rdr := RowReader{
		csvreader: csv.NewReader(ioreader),
	}
	rdr.csvreader.FieldsPerRecord = -1 // we check the count ourselves, for a better message
	rdr.csvreader.ReuseRecord = true

	rdr.headers,rdr.headerErr = rdr.csvreader.Read()
	rdr.headers = append([]string{}, rdr.headers...) // ReuseRecord would clobber it
	for i,h := range rdr.headers {
		rdr.headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	return &rdr
}

func (r *RowReader)Headers() []string { return r.headers }

// Require checks that all the named columns are present, so we can fail before reading any rows.
func (r *RowReader)Require(cols ...string) error {
	if r.headerErr == io.EOF {
		return fmt.Errorf("no header row (empty file)")
	} else if r.headerErr != nil {
		return fmt.Errorf("reading header row: %v", r.headerErr)
	}

	have := map[string]bool{}
	for _,h := range r.headers { have[h] = true }
	missing := []string{}
	for _,c := range cols {
		if !have[c] { missing = append(missing, c) }
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("missing required column(s) %v (have %v)", missing, r.Headers())
	}
	return nil
}

// {{{ rdr.Read()

func (r *RowReader)Read() (Row,error) {
	m := map[string]string{}
	if r.headerErr != nil { return m, r.headerErr }

	vals,err := r.csvreader.Read()
	if err != nil {
		return m,err
	} else if len(r.headers) != len(vals) {
		line,_ := r.csvreader.FieldPos(0)
		return m, fmt.Errorf("line %d: header/val mismatch (%d/%d)", line, len(r.headers), len(vals))
	}

	for i,_ := range vals {
		m[r.headers[i]] = vals[i]
	}

	return m,nil
}

// }}}

type Row map[string]string

// {{{ row.ToFlight

// ParseCancelled understands the 0/1 flags in both integer and float form. The bool is false if
// the value was not recognized; only a known zero counts as flown, so such flights come back
// as cancelled and get dropped by the cleaner.
func ParseCancelled(s string) (bool, bool) {
	v,err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil { return true, false }
	switch v {
	case 0:  return false, true
	case 1:  return true, true
	default: return true, false
	}
}

func (r Row)ToFlight() (rs.Flight, bool) {
	cancelled,ok := ParseCancelled(r[ColCancelled])

	f := rs.Flight{
		FlightDate:    strings.TrimSpace(r[ColFlightDate]),
		Carrier:       strings.TrimSpace(r[ColCarrier]),
		TailNum:       strings.TrimSpace(r[ColTailNum]),
		FlightNumber:  strings.TrimSpace(r[ColFlightNumber]),
		Origin:        strings.TrimSpace(r[ColOrigin]),
		Destination:   strings.TrimSpace(r[ColDestination]),
		Cancelled:     cancelled,
		OccupancyRate: rs.ParseMeasure(r[ColOccupancyRate]),
		Distance:      rs.ParseMeasure(r[ColDistance]),
		DepDelay:      rs.ParseMeasure(r[ColDepDelay]),
		ArrDelay:      rs.ParseMeasure(r[ColArrDelay]),
	}

	return f, ok
}

// }}}
// {{{ row.ToAirport

func (r Row)ToAirport() rs.Airport {
	a := rs.Airport{
		IATA: strings.TrimSpace(r[ColIATACode]),
		Name: strings.TrimSpace(r[ColName]),
		Size: rs.ParseAirportSize(r[ColType]),
	}
	a.Latlong, a.HasLocation = rs.ParseCoordinates(r[ColCoordinates])
	return a
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
