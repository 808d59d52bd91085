package report

import(
	"fmt"
	"sort"
)

// A simple registry of all known reports.
type ReportEntry struct {
	ReportFunc
	Name, Description string
}

var reportRegistry = map[string]ReportEntry{}

func HandleReport(name string, f ReportFunc, description string) {
	reportRegistry[name] = ReportEntry{
		ReportFunc: f,
		Name: name,
		Description: description,
	}
}

func ListReports() []ReportEntry {
	out := []ReportEntry{}

	keys := []string{}
	for k,_ := range reportRegistry { keys = append(keys, k) }
	sort.Strings(keys)

	for _,k := range keys {
		out = append(out, reportRegistry[k])
	}
	return out
}

func InstantiateReport(name string, opt Options) (Report,error) {
	// Lookup in registry
	r := BlankReport()

	r.Name = name
	r.Options = opt
	r.Dir = name
	r.BaseName = name

	if entry,exists := reportRegistry[name]; !exists {
		return r, fmt.Errorf("report '%s' not known", name)
	} else {
		r.Func = entry.ReportFunc
	}
	return r, nil
}
