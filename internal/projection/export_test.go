package projection

import (
	"bytes"
	"math"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestWriteCSV_Idempotent(t *testing.T) {
	t.Parallel()

	docs := decodeDocs(t, rostersFixture)
	render := func() []byte {
		records, err := Rosters(docs)
		if err != nil {
			t.Fatalf("project rosters: %v", err)
		}
		var buf bytes.Buffer
		if err := WriteCSV(&buf, RostersTable(records)); err != nil {
			t.Fatalf("write csv: %v", err)
		}
		return buf.Bytes()
	}

	first, second := render(), render()
	if !bytes.Equal(first, second) {
		t.Fatalf("projection is not idempotent:\n%s\n---\n%s", first, second)
	}

	lines := strings.Split(strings.TrimSpace(string(first)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus three rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "user_id,roster_id,league_id,streak") {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[2], "NaN") {
		t.Fatalf("expected NaN cells in sparse roster row: %s", lines[2])
	}
	if !strings.Contains(lines[1], `"[""4046"",""6794""]"`) {
		t.Fatalf("expected players encoded as JSON list: %s", lines[1])
	}
}

func TestWriteParquet_ProducesParquetFile(t *testing.T) {
	t.Parallel()

	table := NewTable("mixed",
		Column{Name: "metadata.team_name", Kind: KindAny},
		Column{Name: "fpts", Kind: KindNumber},
		Column{Name: "players", Kind: KindList},
	)
	table.Append("Alpha Dogs", 101.5, []string{"4046"})
	table.Append("", math.NaN(), []string{})

	var buf bytes.Buffer
	if err := WriteParquet(&buf, table); err != nil {
		t.Fatalf("write parquet: %v", err)
	}
	out := buf.Bytes()
	if len(out) < 8 || string(out[:4]) != "PAR1" || string(out[len(out)-4:]) != "PAR1" {
		t.Fatalf("output is not a parquet file (%d bytes)", len(out))
	}
	if ParquetColumnName("metadata.team_name") != "metadata_team_name" {
		t.Fatalf("unexpected sanitized name: %s", ParquetColumnName("metadata.team_name"))
	}
}

func TestTable_MarshalJSONReplacesNaN(t *testing.T) {
	t.Parallel()

	table := NewTable("t", Column{Name: "a", Kind: KindNumber}, Column{Name: "b", Kind: KindList})
	table.Append(math.NaN(), []float64{1, math.NaN()})

	body, err := sonic.Marshal(table)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got := string(body); got != `{"name":"t","columns":["a","b"],"rows":[[null,[1,null]]]}` {
		t.Fatalf("unexpected json: %s", got)
	}
}

func TestTable_AppendPadsDefaults(t *testing.T) {
	t.Parallel()

	table := NewTable("t",
		Column{Name: "text", Kind: KindText},
		Column{Name: "num", Kind: KindNumber},
		Column{Name: "list", Kind: KindList},
		Column{Name: "opt", Kind: KindOptional},
		Column{Name: "any", Kind: KindAny},
	)
	table.Append()
	if cell(t, table, 0, "text") != "" || cell(t, table, 0, "any") != "" {
		t.Fatalf("unexpected text defaults: %v", table.Rows[0])
	}
	assertNaN(t, table, 0, "num")
	assertNaN(t, table, 0, "opt")
	if list, ok := cell(t, table, 0, "list").([]string); !ok || len(list) != 0 {
		t.Fatalf("unexpected list default: %#v", cell(t, table, 0, "list"))
	}
}
