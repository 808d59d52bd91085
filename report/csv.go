package report

import(
	"encoding/csv"
	"io"
)

func (r *Report)OutputAsCSV(w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(r.HeadersText); err != nil { return err }
	if err := csvWriter.WriteAll(r.RowsText); err != nil { return err }
	return csvWriter.Error()
}
