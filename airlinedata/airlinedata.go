// Package airlinedata parses the quarterly flights, airport-codes and tickets CSV files.
package airlinedata

import(
	"context"
	"fmt"
	"io"
	"time"

	rs "github.com/skypies/routestats"
)

// How often (in rows) to check whether the context has been cancelled.
const ctxCheckEvery = 10000

// LoadStats describes one file's worth of parsing.
type LoadStats struct {
	Name              string
	NumRows           int
	NumAccepted       int // rows the callback kept
	NumBadCancelled   int // CANCELLED values we didn't recognize (treated as cancelled)
	NumBadDistance    int
	NumBadOccupancy   int
	Elapsed           time.Duration
}

func (ls LoadStats)String() string {
	return fmt.Sprintf("---- %s: %d rows, %d accepted, %d bad CANCELLED, %d bad DISTANCE, "+
		"%d bad OCCUPANCY_RATE (%s)\n", ls.Name, ls.NumRows, ls.NumAccepted, ls.NumBadCancelled,
		ls.NumBadDistance, ls.NumBadOccupancy, ls.Elapsed)
}

// {{{ ReadFlightsFrom

type NewFlightCallback func(context.Context, rs.Flight) (bool, error)

// ReadFlightsFrom parses every row, handing each flight to the callback. It fails before reading
// any rows if a required column is missing.
func ReadFlightsFrom(ctx context.Context, name string, rdr io.Reader, cb NewFlightCallback) (LoadStats, error) {
	ls := LoadStats{Name:name}
	tStart := time.Now()

	rowReader := NewRowReader(rdr)
	if err := rowReader.Require(FlightColumns...); err != nil {
		return ls, fmt.Errorf("%s: %v", name, err)
	}

	for {
		row,err := rowReader.Read()
		if err == io.EOF { break }
		if err != nil { return ls, fmt.Errorf("%s: %v", name, err) }
		ls.NumRows++

		if ls.NumRows % ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil { return ls, err }
		}

		f,cancelledOk := row.ToFlight()
		if !cancelledOk { ls.NumBadCancelled++ }
		if !f.Distance.Valid { ls.NumBadDistance++ }
		if !f.OccupancyRate.Valid { ls.NumBadOccupancy++ }

		if added,err := cb(ctx, f); err != nil {
			return ls, fmt.Errorf("%s:%d: %v", name, ls.NumRows+1, err)
		} else if added {
			ls.NumAccepted++
		}
	}

	ls.Elapsed = time.Since(tStart)
	return ls, nil
}

// ReadFlights accumulates every flight in the file, in file order.
func ReadFlights(ctx context.Context, name string, rdr io.Reader) ([]rs.Flight, LoadStats, error) {
	flights := []rs.Flight{}
	cb := func(ctx context.Context, f rs.Flight) (bool, error) {
		flights = append(flights, f)
		return true, nil
	}
	ls,err := ReadFlightsFrom(ctx, name, rdr, cb)
	return flights, ls, err
}

// }}}
// {{{ ReadAirports

// ReadAirports returns every airport row; filtering by size happens in routestats.NewAirportSet.
func ReadAirports(ctx context.Context, name string, rdr io.Reader) ([]rs.Airport, LoadStats, error) {
	ls := LoadStats{Name:name}
	tStart := time.Now()
	airports := []rs.Airport{}

	rowReader := NewRowReader(rdr)
	if err := rowReader.Require(AirportColumns...); err != nil {
		return nil, ls, fmt.Errorf("%s: %v", name, err)
	}

	for {
		row,err := rowReader.Read()
		if err == io.EOF { break }
		if err != nil { return nil, ls, fmt.Errorf("%s: %v", name, err) }
		ls.NumRows++
		if ls.NumRows % ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil { return nil, ls, err }
		}

		a := row.ToAirport()
		if a.IATA == "" { continue }
		airports = append(airports, a)
		ls.NumAccepted++
	}

	ls.Elapsed = time.Since(tStart)
	return airports, ls, nil
}

// }}}
// {{{ CountTickets

// CountTickets reads the tickets file through, to validate it; nothing else uses its contents.
func CountTickets(ctx context.Context, name string, rdr io.Reader) (LoadStats, error) {
	ls := LoadStats{Name:name}
	tStart := time.Now()

	rowReader := NewRowReader(rdr)
	if err := rowReader.Require(); err != nil {
		return ls, fmt.Errorf("%s: %v", name, err)
	}
	for {
		_,err := rowReader.Read()
		if err == io.EOF { break }
		if err != nil { return ls, fmt.Errorf("%s: %v", name, err) }
		ls.NumRows++
		if ls.NumRows % ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil { return ls, err }
		}
	}

	ls.NumAccepted = ls.NumRows
	ls.Elapsed = time.Since(tStart)
	return ls, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
