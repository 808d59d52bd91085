// Package publish sends route summaries to BigQuery.
package publish

import(
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	rs "github.com/skypies/routestats"
	"github.com/skypies/routestats/store"
)

// TableSpec names a table as "project.dataset.table".
type TableSpec struct {
	ProjectID string
	DatasetID string
	TableID   string
}

func (ts TableSpec)String() string {
	return fmt.Sprintf("%s.%s.%s", ts.ProjectID, ts.DatasetID, ts.TableID)
}

func ParseTableSpec(s string) (TableSpec, error) {
	bits := strings.Split(strings.TrimSpace(s), ".")
	if len(bits) != 3 {
		return TableSpec{}, fmt.Errorf("table '%s' not of form project.dataset.table", s)
	}
	for _,bit := range bits {
		if bit == "" { return TableSpec{}, fmt.Errorf("table '%s' has an empty part", s) }
	}
	return TableSpec{ProjectID:bits[0], DatasetID:bits[1], TableID:bits[2]}, nil
}

// Publisher appends route rows to a BigQuery table.
type Publisher struct {
	TableSpec
	client *bigquery.Client
}

func New(ctx context.Context, ts TableSpec, opts ...option.ClientOption) (*Publisher, error) {
	client,err := bigquery.NewClient(ctx, ts.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating bigquery client: %v", err)
	}
	return &Publisher{TableSpec:ts, client:client}, nil
}

func (p *Publisher)Close() error { return p.client.Close() }

func (p *Publisher)table() *bigquery.Table {
	return p.client.Dataset(p.DatasetID).Table(p.TableID)
}

// {{{ p.EnsureTable

// EnsureTable creates the table, with a schema inferred from the row type, if it doesn't exist.
func (p *Publisher)EnsureTable(ctx context.Context) error {
	t := p.table()
	if _,err := t.Metadata(ctx); err == nil {
		return nil
	} else if !isNotFound(err) {
		return fmt.Errorf("table %s: %v", p.TableSpec, err)
	}

	schema,err := bigquery.InferSchema(rs.RouteForBigQuery{})
	if err != nil { return fmt.Errorf("inferring schema: %v", err) }

	if err := t.Create(ctx, &bigquery.TableMetadata{Schema: schema}); err != nil {
		return fmt.Errorf("creating table %s: %v", p.TableSpec, err)
	}
	log.Printf("created bigquery table %s\n", p.TableSpec)
	return nil
}

func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}

// }}}
// {{{ p.Insert

// Insert streams the rows straight into the table.
func (p *Publisher)Insert(ctx context.Context, rows []rs.RouteForBigQuery) error {
	if len(rows) == 0 { return nil }
	if err := p.table().Inserter().Put(ctx, rows); err != nil {
		return fmt.Errorf("inserting %d rows into %s: %v", len(rows), p.TableSpec, err)
	}
	return nil
}

// }}}
// {{{ p.Load

// Load writes the rows as newline-delimited JSON to a gs:// object, and then submits a load job
// that appends that file to the table, waiting for it to finish.
func (p *Publisher)Load(ctx context.Context, st *store.Store, gcsPath string, rows []rs.RouteForBigQuery) error {
	if !store.IsGCS(gcsPath) {
		return fmt.Errorf("load file '%s' must be a gs:// path", gcsPath)
	}

	w,err := st.Create(ctx, gcsPath, "application/json")
	if err != nil { return err }
	if err := WriteJSONLines(w, rows); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil { return fmt.Errorf("writing %s: %v", gcsPath, err) }

	gcsSrc := bigquery.NewGCSReference(gcsPath)
	gcsSrc.SourceFormat = bigquery.JSON

	loader := p.table().LoaderFrom(gcsSrc)
	loader.WriteDisposition = bigquery.WriteAppend

	job,err := loader.Run(ctx)
	if err != nil {
		return fmt.Errorf("submission of load job: %v", err)
	}

	status,err := job.Wait(ctx)
	if err != nil {
		return fmt.Errorf("failure determining status: %v", err)
	} else if err := status.Err(); err != nil {
		detailedErrStr := ""
		for i,innerErr := range status.Errors {
			detailedErrStr += fmt.Sprintf(" [%2d] %v\n", i, innerErr)
		}
		return fmt.Errorf("job error: %v\n--\n%s", err, detailedErrStr)
	}

	log.Printf("bigquery load of %s into %s done (%d rows)\n", gcsPath, p.TableSpec, len(rows))
	return nil
}

// }}}
// {{{ WriteJSONLines

func WriteJSONLines(w io.Writer, rows []rs.RouteForBigQuery) error {
	encoder := json.NewEncoder(w)
	for _,row := range rows {
		if err := encoder.Encode(row); err != nil { return err }
	}
	return nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
