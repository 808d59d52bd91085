package report

import(
	"fmt"
	"path"
	"sort"
	"time"

	"github.com/skypies/util/histogram"

	rs "github.com/skypies/routestats"
	"github.com/skypies/routestats/fpdf"
)

type ReportFunc func(*Report, *rs.Analysis) error

type ReportLogLevel int
const(
	DEBUG = iota
	INFO
)

type Report struct {
	Name              string
	Options           // embedded
	Func              ReportFunc

	// Where the output goes, relative to the output dir
	Dir               string
	BaseName          string

	// Output state
	Title             string
	HeadersText     []string
	RowsText        [][]string
	Chart             fpdf.BarChart

	I         map[string]int
	S         map[string]string
	H         histogram.Histogram // the metric the report ranks by

	Stats histogram.Set // internal performance counters
	Log string
}

func BlankReport() Report {
	return Report{
		I: map[string]int{},
		S: map[string]string{},
		RowsText: [][]string{},
		HeadersText: []string{},
		H: histogram.Histogram{ValMin:0, ValMax:1000, NumBuckets:20},
		Stats: histogram.NewSet(40000),  // maxval, in micros; 40ms == 40000us
	}
}

func (r *Report)Logger(level ReportLogLevel, s string) {
	if level < r.Options.ReportLogLevel { return }
	r.Log += s
}
func (r *Report)Infof(s string,args ...interface{}) { r.Logger(INFO, fmt.Sprintf(s,args...)) }
func (r *Report)Debugf(s string,args ...interface{}) { r.Logger(DEBUG, fmt.Sprintf(s,args...)) }
func (r *Report)Info(s string) { r.Infof(s) }

func (r *Report)SetHeaders(headers []string) {
	if len(r.HeadersText) == 0 { r.HeadersText = headers }
}
func (r *Report)AddRow(text []string) {
	r.RowsText = append(r.RowsText, text)
}

// Observe adds a value of the ranking metric to the report's histogram.
func (r *Report)Observe(v float64) {
	r.H.Add(histogram.ScalarVal(int(v)))
}

func (r *Report)CSVPath() string { return path.Join(r.Dir, r.BaseName+".csv") }
func (r *Report)ChartPath() string { return path.Join(r.Dir, r.BaseName+".pdf") }

// {{{ r.Run

// Run fills out the report from the analysis.
func (r *Report)Run(a *rs.Analysis) error {
	if r.Func == nil { return fmt.Errorf("report '%s' has no func", r.Name) }

	tStart := time.Now()
	r.Infof("**** Stage: building %s\n", r.Name)
	r.Debugf("* Period: %s\n", r.Period)

	if err := r.Func(r, a); err != nil {
		return fmt.Errorf("report %s: %v", r.Name, err)
	}
	r.Stats.RecordValue("build", time.Since(tStart).Nanoseconds()/1000)

	if err := r.Chart.Validate(); err != nil {
		return fmt.Errorf("report %s: %v", r.Name, err)
	}

	r.I["[A] Rows"] = len(r.RowsText)
	r.FinishSummary()
	return nil
}

// }}}
// {{{ r.FinishSummary

func (r *Report)FinishSummary() {
	r.Info("**** Stage: all done\n")
	r.Infof("Stats (in micros):-\n%s", r.Stats)
}

// }}}
// {{{ r.MetadataLines

func (r *Report)MetadataLines() []string {
	all := map[string]string{}

	for k,v := range r.I { all[k] = fmt.Sprintf("%d", v) }
	for k,v := range r.S { all[k] = v }

	if stats,valid := r.H.Stats(); valid {
		all["[Z] stats, N"] = fmt.Sprintf("%d", stats.N)
		all["[Z] stats, Mean"] = fmt.Sprintf("%.0f", stats.Mean)
		all["[Z] stats, Stddev"] = fmt.Sprintf("%.0f", stats.Stddev)
		all["[Z] stats, 50%ile"] = fmt.Sprintf("%v", stats.Percentile50)
		all["[Z] stats, 90%ile"] = fmt.Sprintf("%v", stats.Percentile90)
	}

	keys := []string{}
	for k,_ := range all { keys = append(keys, k) }
	sort.Strings(keys)

	out := []string{}
	for _,k := range keys {
		out = append(out, fmt.Sprintf("%s: %s", k, all[k]))
	}

	return out
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
