package publish

// go test -v github.com/skypies/routestats/publish

import(
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	rs "github.com/skypies/routestats"
)

func TestParseTableSpec(t *testing.T) {
	ts,err := ParseTableSpec(" serfr0-1000.public.routes ")
	if err != nil { t.Fatal(err) }
	if ts.ProjectID != "serfr0-1000" || ts.DatasetID != "public" || ts.TableID != "routes" {
		t.Errorf("got %+v", ts)
	}
	if ts.String() != "serfr0-1000.public.routes" { t.Errorf("String: %s", ts) }

	for _,bad := range []string{"", "routes", "public.routes", "a.b.c.d", "a..c"} {
		if _,err := ParseTableSpec(bad); err == nil {
			t.Errorf("'%s': expected an error", bad)
		}
	}
}

func TestWriteJSONLines(t *testing.T) {
	rows := []rs.RouteForBigQuery{
		{RunId:"r1", Route:"AAA-BBB", NumFlights:2, View:[]string{"busiest"}},
		{RunId:"r1", Route:"BBB-AAA", NumFlights:1, View:[]string{}},
	}
	buf := bytes.Buffer{}
	if err := WriteJSONLines(&buf, rows); err != nil { t.Fatal(err) }

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 { t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), buf.String()) }

	back := rs.RouteForBigQuery{}
	if err := json.Unmarshal([]byte(lines[0]), &back); err != nil { t.Fatal(err) }
	if back.Route != "AAA-BBB" || back.NumFlights != 2 || len(back.View) != 1 {
		t.Errorf("round trip: %+v", back)
	}
}

func TestLoadNeedsGCS(t *testing.T) {
	p := &Publisher{}
	if err := p.Load(context.Background(), nil, "/tmp/routes.json", nil); err == nil {
		t.Errorf("expected an error for a local load file")
	}
}
