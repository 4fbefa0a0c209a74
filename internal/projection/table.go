package projection

import (
	"fmt"
	"math"
)

// Kind decides the default for a missing value and how a column is stored.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindList
	// KindOptional is a value read from a nested entry that may be absent.
	KindOptional
	// KindRequired fields fault the projection instead of defaulting.
	KindRequired
	// KindAny holds values of mixed shape, such as generic flattened fields.
	KindAny
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindList:
		return "list"
	case KindOptional:
		return "optional"
	case KindRequired:
		return "required"
	case KindAny:
		return "any"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Default is the value a missing field of this kind takes.
func (k Kind) Default() Value {
	switch k {
	case KindNumber, KindOptional:
		return math.NaN()
	case KindList:
		return []string{}
	case KindRequired:
		return nil
	default:
		return ""
	}
}

type Column struct {
	Name string
	Kind Kind
}

// Value is one cell: string, float64, int64, bool, json.Number, or a list.
type Value = any

// Table is an ordered set of named columns with one row per source record.
type Table struct {
	Name     string
	Columns  []Column
	Rows     [][]Value
	Warnings []string
}

func NewTable(name string, columns ...Column) *Table {
	return &Table{Name: name, Columns: columns, Rows: [][]Value{}}
}

// Append adds a row. Missing trailing cells take their column default.
func (t *Table) Append(row ...Value) {
	if len(row) > len(t.Columns) {
		panic(fmt.Sprintf("projection: table %s has %d columns, row has %d", t.Name, len(t.Columns), len(row)))
	}
	out := make([]Value, len(t.Columns))
	copy(out, row)
	for i := len(row); i < len(t.Columns); i++ {
		out[i] = t.Columns[i].Kind.Default()
	}
	t.Rows = append(t.Rows, out)
}

func (t *Table) Len() int { return len(t.Rows) }

func (t *Table) Index(name string) int {
	for i, col := range t.Columns {
		if col.Name == name {
			return i
		}
	}
	return -1
}

func (t *Table) ColumnNames() []string {
	out := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		out = append(out, col.Name)
	}
	return out
}

// Value returns the cell at row for the named column.
func (t *Table) Value(row int, name string) (Value, bool) {
	idx := t.Index(name)
	if idx < 0 || row < 0 || row >= len(t.Rows) {
		return nil, false
	}
	return t.Rows[row][idx], true
}

func (t *Table) Set(row int, name string, value Value) bool {
	idx := t.Index(name)
	if idx < 0 || row < 0 || row >= len(t.Rows) {
		return false
	}
	t.Rows[row][idx] = value
	return true
}

// AddColumn appends a column filled with its kind default when absent.
func (t *Table) AddColumn(col Column) {
	if t.Index(col.Name) >= 0 {
		return
	}
	t.Columns = append(t.Columns, col)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], col.Kind.Default())
	}
}

// Drop returns a copy without the columns for which drop reports true.
func (t *Table) Drop(drop func(name string) bool) *Table {
	keep := make([]int, 0, len(t.Columns))
	out := &Table{Name: t.Name, Warnings: append([]string(nil), t.Warnings...)}
	for i, col := range t.Columns {
		if drop(col.Name) {
			continue
		}
		keep = append(keep, i)
		out.Columns = append(out.Columns, col)
	}
	out.Rows = make([][]Value, 0, len(t.Rows))
	for _, row := range t.Rows {
		next := make([]Value, 0, len(keep))
		for _, idx := range keep {
			next = append(next, row[idx])
		}
		out.Rows = append(out.Rows, next)
	}
	return out
}

func (t *Table) Warnf(format string, args ...any) {
	t.Warnings = append(t.Warnings, fmt.Sprintf(format, args...))
}

func isEmpty(v Value) bool {
	switch typed := v.(type) {
	case nil:
		return true
	case string:
		return typed == ""
	case float64:
		return math.IsNaN(typed)
	default:
		return false
	}
}
