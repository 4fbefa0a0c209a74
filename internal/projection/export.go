package projection

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"regexp"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// WriteCSV writes a header row and one record per table row.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.ColumnNames()); err != nil {
		return crerr.Wrap(err, "write csv header")
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, cell := range row {
			record[i] = FormatValue(cell)
		}
		if err := cw.Write(record); err != nil {
			return crerr.Wrap(err, "write csv row")
		}
	}
	cw.Flush()
	return cw.Error()
}

var parquetNameRegex = regexp.MustCompile(`[^A-Za-z0-9_]`)

// ParquetColumnName maps a table column to a parquet-safe field name.
func ParquetColumnName(name string) string {
	return parquetNameRegex.ReplaceAllString(name, "_")
}

// WriteParquet writes the table as a snappy-compressed parquet file. Columns
// whose cells are all numeric are DOUBLE; everything else is UTF8 text.
func WriteParquet(w io.Writer, t *Table) error {
	numeric := make([]bool, len(t.Columns))
	schema := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		numeric[i] = numericColumn(t, i)
		if numeric[i] {
			schema[i] = fmt.Sprintf("name=%s, type=DOUBLE", ParquetColumnName(col.Name))
		} else {
			schema[i] = fmt.Sprintf("name=%s, type=BYTE_ARRAY, convertedtype=UTF8", ParquetColumnName(col.Name))
		}
	}

	mem := newMemFile()
	pw, err := writer.NewCSVWriter(schema, mem, 1)
	if err != nil {
		return crerr.Wrap(err, "new parquet writer")
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, row := range t.Rows {
		record := make([]any, len(row))
		for i, cell := range row {
			if numeric[i] {
				record[i] = toFloat(cell)
			} else {
				record[i] = FormatValue(cell)
			}
		}
		if err := pw.Write(record); err != nil {
			_ = pw.WriteStop()
			return crerr.Wrapf(err, "write parquet row of %s", t.Name)
		}
	}
	if err := pw.WriteStop(); err != nil {
		return crerr.Wrapf(err, "finalize parquet %s", t.Name)
	}

	_, err = w.Write(mem.Bytes())
	return err
}

func numericColumn(t *Table, idx int) bool {
	if t.Columns[idx].Kind == KindList || t.Columns[idx].Kind == KindText {
		return false
	}
	if len(t.Rows) == 0 {
		return t.Columns[idx].Kind == KindNumber
	}
	for _, row := range t.Rows {
		switch row[idx].(type) {
		case float64, int64, int:
		default:
			return false
		}
	}
	return true
}

func toFloat(v Value) float64 {
	switch typed := v.(type) {
	case float64:
		return typed
	case int64:
		return float64(typed)
	case int:
		return float64(typed)
	default:
		return math.NaN()
	}
}

// memFile collects parquet output in memory; the writer only appends.
type memFile struct {
	buffer *bytes.Buffer
}

func newMemFile() *memFile {
	return &memFile{buffer: &bytes.Buffer{}}
}

func (m *memFile) Create(string) (source.ParquetFile, error) { return m, nil }
func (m *memFile) Open(string) (source.ParquetFile, error)   { return m, nil }
func (m *memFile) Seek(int64, int) (int64, error)            { return int64(m.buffer.Len()), nil }
func (m *memFile) Read([]byte) (int, error)                  { return 0, fmt.Errorf("read not supported") }
func (m *memFile) Write(b []byte) (int, error)               { return m.buffer.Write(b) }
func (m *memFile) Close() error                              { return nil }
func (m *memFile) Bytes() []byte                             { return m.buffer.Bytes() }

type tableJSON struct {
	Name     string   `json:"name"`
	Columns  []string `json:"columns"`
	Rows     [][]any  `json:"rows"`
	Warnings []string `json:"warnings,omitempty"`
}

// MarshalJSON encodes the table as {name, columns, rows}; NaN becomes null.
func (t *Table) MarshalJSON() ([]byte, error) {
	rows := make([][]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		out := make([]any, len(row))
		for i, cell := range row {
			out[i] = jsonSafe(cell)
		}
		rows = append(rows, out)
	}
	return sonic.ConfigStd.Marshal(tableJSON{
		Name:     t.Name,
		Columns:  t.ColumnNames(),
		Rows:     rows,
		Warnings: t.Warnings,
	})
}

// ContentType returns the media type for an export format name.
func ContentType(format string) string {
	switch strings.ToLower(format) {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatParquet:
		return "application/vnd.apache.parquet"
	default:
		return "application/json"
	}
}

const (
	FormatJSON    = "json"
	FormatCSV     = "csv"
	FormatParquet = "parquet"
)
