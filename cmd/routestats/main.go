package main

// go run ./cmd/routestats -flights=Flights.csv -airports=Airport_Codes.csv -tickets=Tickets.csv \
//   -out=out -cmd=reports
// go run ./cmd/routestats -flights=gs://my-bucket/flights/ -airports=gs://my-bucket/airports.csv.gz \
//   -out=gs://my-bucket/reports/2019q1 -bq=my-project.airline.routes

import(
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/skypies/util/histogram"
	"google.golang.org/api/option"

	rs "github.com/skypies/routestats"
	_ "github.com/skypies/routestats/analysis" // populate the reports registry
	"github.com/skypies/routestats/airlinedata"
	"github.com/skypies/routestats/publish"
	"github.com/skypies/routestats/report"
	"github.com/skypies/routestats/store"
)

var(
	ctx = context.Background()

	fCmd          string
	fFlights      string
	fAirports     string
	fTickets      string
	fOut          string
	fEnvFile      string
	fPeriod       string
	fCredentials  string
	fBigQuery     string
	fBigQueryLoad string
	fVerbose      bool
)
func init() {
	flag.StringVar(&fCmd, "cmd", "reports", "what to do: {reports|stats|list}")
	flag.StringVar(&fFlights, "flights", "Flights.csv", "flights file(s); a glob, or gs://bucket/prefix/")
	flag.StringVar(&fAirports, "airports", "Airport_Codes.csv", "airport codes file")
	flag.StringVar(&fTickets, "tickets", "", "tickets file (optional; only validated)")
	flag.StringVar(&fOut, "out", ".", "output dir, local or gs://bucket/prefix")
	flag.StringVar(&fEnvFile, "env", "", ".env file with ROUTESTATS_* cost model overrides")
	flag.StringVar(&fPeriod, "period", "Q1 2019", "period label for chart titles")
	flag.StringVar(&fCredentials, "credentials", "", "service account JSON file for GCS and BigQuery")
	flag.StringVar(&fBigQuery, "bq", "", "publish route summaries to project.dataset.table")
	flag.StringVar(&fBigQueryLoad, "bqload", "", "publish via a load job from this gs:// file, not streaming")
	flag.BoolVar(&fVerbose, "v", false, "print report logs and metadata")
	flag.Parse()
}

func clientOptions() []option.ClientOption {
	if fCredentials == "" { return nil }
	return []option.ClientOption{option.WithCredentialsFile(fCredentials)}
}

// {{{ load

func load(st *store.Store) ([]rs.Flight, []rs.Airport) {
	flights := []rs.Flight{}
	files,err := st.Expand(ctx, fFlights)
	if err != nil { log.Fatalf("expand '%s': %v\n", fFlights, err) }
	if len(files) == 0 { log.Fatalf("no flights files matched '%s'\n", fFlights) }

	for i,file := range files {
		rdr,err := st.Open(ctx, file)
		if err != nil { log.Fatalf("open '%s': %v\n", file, err) }
		these,ls,err := airlinedata.ReadFlights(ctx, file, rdr)
		rdr.Close()
		if err != nil { log.Fatalf("load flights: %v\n", err) }
		log.Printf("[%d/%d] %s\n", i+1, len(files), ls)
		flights = append(flights, these...)
	}

	rdr,err := st.Open(ctx, fAirports)
	if err != nil { log.Fatalf("open '%s': %v\n", fAirports, err) }
	defer rdr.Close()
	airports,ls,err := airlinedata.ReadAirports(ctx, fAirports, rdr)
	if err != nil { log.Fatalf("load airports: %v\n", err) }
	log.Printf("%s\n", ls)

	if fTickets != "" {
		rdr,err := st.Open(ctx, fTickets)
		if err != nil { log.Fatalf("open '%s': %v\n", fTickets, err) }
		defer rdr.Close()
		ls,err := airlinedata.CountTickets(ctx, fTickets, rdr)
		if err != nil { log.Fatalf("load tickets: %v\n", err) }
		log.Printf("%s\n", ls)
	}

	return flights, airports
}

// }}}
// {{{ analyse

func analyse(st *store.Store) *rs.Analysis {
	m,opt,err := rs.LoadConfig(fEnvFile)
	if err != nil { log.Fatalf("config: %v\n", err) }

	flights,airports := load(st)

	a,err := rs.Analyse(flights, airports, m, opt)
	if err != nil { log.Fatalf("analyse: %v\n", err) }
	log.Printf("%s\n", a.CleanStats)
	return a
}

// }}}

// {{{ writeReport

func writeReport(st *store.Store, r *report.Report) error {
	csvPath := store.Join(fOut, r.CSVPath())
	w,err := st.Create(ctx, csvPath, "text/csv")
	if err != nil { return err }
	if err := r.OutputAsCSV(w); err != nil {
		w.Close()
		return fmt.Errorf("%s: %v", csvPath, err)
	}
	if err := w.Close(); err != nil { return fmt.Errorf("%s: %v", csvPath, err) }

	chartPath := store.Join(fOut, r.ChartPath())
	w,err = st.Create(ctx, chartPath, "application/pdf")
	if err != nil { return err }
	if err := r.Chart.Render(w); err != nil {
		w.Close()
		return fmt.Errorf("%s: %v", chartPath, err)
	}
	if err := w.Close(); err != nil { return fmt.Errorf("%s: %v", chartPath, err) }

	log.Printf("wrote %s, %s\n", csvPath, chartPath)
	return nil
}

// }}}
// {{{ reports

func reports() {
	st := store.New(clientOptions()...)
	defer st.Close()

	a := analyse(st)

	opt := report.DefaultOptions()
	opt.Period = fPeriod
	if fVerbose { opt.ReportLogLevel = report.DEBUG }

	for _,entry := range report.ListReports() {
		r,err := report.InstantiateReport(entry.Name, opt)
		if err != nil { log.Fatal(err) }
		if err := r.Run(a); err != nil { log.Fatal(err) }
		if err := writeReport(st, &r); err != nil { log.Fatal(err) }

		if fVerbose {
			fmt.Printf("---- %s: %s\n%s", r.Name, r.Title, r.Log)
			for _,line := range r.MetadataLines() { fmt.Printf("  %s\n", line) }
		}
	}

	if fBigQuery != "" { publishRoutes(st, a) }
}

// }}}
// {{{ publishRoutes

func publishRoutes(st *store.Store, a *rs.Analysis) {
	ts,err := publish.ParseTableSpec(fBigQuery)
	if err != nil { log.Fatal(err) }

	p,err := publish.New(ctx, ts, clientOptions()...)
	if err != nil { log.Fatal(err) }
	defer p.Close()

	if err := p.EnsureTable(ctx); err != nil { log.Fatal(err) }

	runId := uuid.New().String()
	rows := a.ForBigQuery(runId, fPeriod)

	if fBigQueryLoad != "" {
		err = p.Load(ctx, st, fBigQueryLoad, rows)
	} else {
		err = p.Insert(ctx, rows)
	}
	if err != nil { log.Fatal(err) }

	log.Printf("published %d routes to %s, run %s\n", len(rows), ts, runId)
}

// }}}
// {{{ stats

func stats() {
	st := store.New(clientOptions()...)
	defer st.Close()

	a := analyse(st)

	h := histogram.NewSet(1000)
	delays := histogram.Histogram{NumBuckets:12, ValMax:120}
	byCarrier := map[string]int{}

	for _,f := range a.Flights {
		byCarrier[f.Carrier]++
		if f.Distance.Valid { h.RecordValue("distance", int64(f.Distance.V)) }
		if f.DepDelay.Valid && f.DepDelay.V > 0 {
			h.RecordValue("depdelay", int64(f.DepDelay.V))
			delays.Add(histogram.ScalarVal(int(f.DepDelay.V)))
		}
	}

	fmt.Printf("%s", a)
	fmt.Printf("Carriers:-\n")
	for _,k := range sortedKeys(byCarrier) { fmt.Printf("  %-4.4s: %7d\n", k, byCarrier[k]) }
	fmt.Printf("Departure delays (minutes): %s\n", delays)
	fmt.Printf("Stats:-\n%s", h)
}

// }}}
// {{{ list

func list() {
	for _,entry := range report.ListReports() {
		fmt.Printf("%-12s %s\n", entry.Name, entry.Description)
	}
}

// }}}

func main() {
	switch fCmd {
	case "reports": reports()
	case "stats":   stats()
	case "list":    list()
	default:
		log.Printf("-cmd '%s' not known\n", fCmd)
		flag.Usage()
		os.Exit(1)
	}
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
