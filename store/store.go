// Package store opens inputs and creates outputs on the local disk or in Google Cloud Storage.
// Paths of the form gs://bucket/object go to GCS; anything else is a local file. Objects whose
// name ends in .gz are gunzipped on the way in.
package store

import(
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const gcsScheme = "gs://"

type Store struct {
	opts    []option.ClientOption
	client  *storage.Client // created on first GCS access
}

// New takes the client options used if (and when) GCS is touched, e.g.
// option.WithCredentialsFile().
func New(opts ...option.ClientOption) *Store {
	return &Store{opts: opts}
}

func (s *Store)Close() error {
	if s.client == nil { return nil }
	return s.client.Close()
}

func (s *Store)gcs(ctx context.Context) (*storage.Client, error) {
	if s.client != nil { return s.client, nil }
	client,err := storage.NewClient(ctx, s.opts...)
	if err != nil { return nil, fmt.Errorf("GCS client: %v", err) }
	s.client = client
	return client, nil
}

// {{{ IsGCS, ParseGCSPath, Join

func IsGCS(p string) bool { return strings.HasPrefix(p, gcsScheme) }

// ParseGCSPath splits gs://bucket/some/object into its bucket and object name. The object may be
// empty (or a prefix ending in '/').
func ParseGCSPath(p string) (string, string, error) {
	if !IsGCS(p) { return "", "", fmt.Errorf("'%s' is not a gs:// path", p) }
	rest := strings.TrimPrefix(p, gcsScheme)
	bucket,object,_ := strings.Cut(rest, "/")
	if bucket == "" { return "", "", fmt.Errorf("'%s' has no bucket", p) }
	return bucket, object, nil
}

func Join(base string, elem ...string) string {
	if IsGCS(base) {
		bucket,object,_ := ParseGCSPath(base)
		return gcsScheme + bucket + "/" + strings.TrimPrefix(path.Join(append([]string{object}, elem...)...), "/")
	}
	return filepath.Join(append([]string{base}, elem...)...)
}

// }}}

// {{{ s.Expand

// Expand turns an input path into a sorted list of paths. A gs:// path ending in '/' lists every
// object under that prefix; a local path may be a glob. Anything else is returned as-is.
func (s *Store)Expand(ctx context.Context, p string) ([]string, error) {
	if IsGCS(p) {
		if !strings.HasSuffix(p, "/") { return []string{p}, nil }
		return s.listGCS(ctx, p)
	}

	if !strings.ContainsAny(p, "*?[") { return []string{p}, nil }
	matches,err := filepath.Glob(p)
	if err != nil { return nil, fmt.Errorf("glob '%s': %v", p, err) }
	if len(matches) == 0 { return nil, fmt.Errorf("glob '%s' matched nothing", p) }
	sort.Strings(matches)
	return matches, nil
}

func (s *Store)listGCS(ctx context.Context, p string) ([]string, error) {
	bucketName,prefix,err := ParseGCSPath(p)
	if err != nil { return nil, err }
	client,err := s.gcs(ctx)
	if err != nil { return nil, err }

	names := []string{}
	it := client.Bucket(bucketName).Objects(ctx, &storage.Query{Prefix: prefix})
	for {
		oa,err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("GCS-Readdir [gs://%s]%s: %v", bucketName, prefix, err)
		}
		if strings.HasSuffix(oa.Name, "/") { continue } // folder placeholder
		names = append(names, gcsScheme + bucketName + "/" + oa.Name)
	}
	if len(names) == 0 { return nil, fmt.Errorf("nothing found under %s", p) }

	sort.Strings(names)
	return names, nil
}

// }}}
// {{{ s.Open

type multiCloser struct {
	io.Reader
	closers []io.Closer
}
func (mc multiCloser)Close() error {
	var first error
	for _,c := range mc.closers {
		if err := c.Close(); err != nil && first == nil { first = err }
	}
	return first
}

func (s *Store)Open(ctx context.Context, p string) (io.ReadCloser, error) {
	var rdr io.ReadCloser

	if IsGCS(p) {
		bucketName,object,err := ParseGCSPath(p)
		if err != nil { return nil, err }
		client,err := s.gcs(ctx)
		if err != nil { return nil, err }
		gcsReader,err := client.Bucket(bucketName).Object(object).NewReader(ctx)
		if err != nil { return nil, fmt.Errorf("GCS-Open %s|%s: %v", bucketName, object, err) }
		rdr = gcsReader
	} else {
		f,err := os.Open(p)
		if err != nil { return nil, err }
		rdr = f
	}

	if !strings.HasSuffix(p, ".gz") { return rdr, nil }

	gzRdr,err := gzip.NewReader(rdr)
	if err != nil {
		rdr.Close()
		return nil, fmt.Errorf("gzopen '%s': %v", p, err)
	}
	return multiCloser{Reader:gzRdr, closers:[]io.Closer{gzRdr, rdr}}, nil
}

// }}}
// {{{ s.Create

// Create opens a fresh output. Local parent directories are created as needed. For GCS, nothing
// is visible until Close returns without error.
func (s *Store)Create(ctx context.Context, p string, contentType string) (io.WriteCloser, error) {
	if IsGCS(p) {
		bucketName,object,err := ParseGCSPath(p)
		if err != nil { return nil, err }
		if object == "" || strings.HasSuffix(object, "/") {
			return nil, fmt.Errorf("GCS-Create '%s': no object name", p)
		}
		client,err := s.gcs(ctx)
		if err != nil { return nil, err }
		w := client.Bucket(bucketName).Object(object).NewWriter(ctx)
		w.ContentType = contentType
		return w, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil { return nil, err }
	return os.Create(p)
}

// WriteFile is Create, a single write, and Close.
func (s *Store)WriteFile(ctx context.Context, p string, contentType string, data []byte) error {
	w,err := s.Create(ctx, p, contentType)
	if err != nil { return err }
	if _,err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("write '%s': %v", p, err)
	}
	if err := w.Close(); err != nil { return fmt.Errorf("close '%s': %v", p, err) }
	return nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
