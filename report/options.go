package report

// All reports share this same options struct.
type Options struct {
	Period          string // e.g. "Q1 2019"; appears in chart titles
	ReportLogLevel  ReportLogLevel
}

func DefaultOptions() Options {
	return Options{
		Period: "Q1 2019",
		ReportLogLevel: INFO,
	}
}
