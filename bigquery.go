package routestats

// RouteForBigQuery is a flattened RouteSummary, for streaming into BigQuery. Money is rounded to
// cents and carried as floats since that's what the table schema wants.
type RouteForBigQuery struct {
	RunId            string
	Period           string

	Route            string
	Orig,Dest        string

	NumFlights       int
	RoundTrips       int
	AvgDepDelay      float64
	AvgDepDelayKnown bool

	Valid            bool // if false, the money fields are zero
	TotalRevenue     float64
	TotalCost        float64
	TotalProfit      float64

	View           []string // Not 'Views', so the SQL reads more naturally
}

func (a *Analysis)ForBigQuery(runId, period string) []RouteForBigQuery {
	out := []RouteForBigQuery{}

	for _,s := range a.Summaries {
		r := RouteForBigQuery{
			RunId: runId,
			Period: period,
			Route: s.Route,
			Orig: s.Origin,
			Dest: s.Destination,
			NumFlights: s.NumFlights,
			RoundTrips: s.RoundTrips,
			AvgDepDelay: s.AvgDepDelay.V,
			AvgDepDelayKnown: s.AvgDepDelay.Valid,
			Valid: s.Valid(),
			View: a.Views(s.Route),
		}
		if r.Valid {
			r.TotalRevenue = s.TotalRevenue.Round(2).InexactFloat64()
			r.TotalCost = s.TotalCost.Round(2).InexactFloat64()
			r.TotalProfit = s.TotalProfit.Round(2).InexactFloat64()
		}
		out = append(out, r)
	}

	return out
}
