package projection

import (
	"sort"

	"github.com/riskibarqy/sleeper-league/internal/domain/rawdata"
)

// Flatten turns nested objects into dotted column names ("metadata.team_name").
// Lists stay as single cells. Columns are sorted by name; missing cells are "".
func Flatten(name string, docs []rawdata.Document) *Table {
	rows := make([]map[string]any, 0, len(docs))
	seen := make(map[string]struct{})
	for _, doc := range docs {
		flat := make(map[string]any, len(doc))
		flattenInto(flat, "", doc)
		for key := range flat {
			seen[key] = struct{}{}
		}
		rows = append(rows, flat)
	}

	names := make([]string, 0, len(seen))
	for key := range seen {
		names = append(names, key)
	}
	sort.Strings(names)

	columns := make([]Column, 0, len(names))
	for _, key := range names {
		columns = append(columns, Column{Name: key, Kind: KindAny})
	}

	table := NewTable(name, columns...)
	for _, flat := range rows {
		row := make([]Value, len(names))
		for i, key := range names {
			value, ok := flat[key]
			if !ok || value == nil {
				row[i] = KindAny.Default()
				continue
			}
			row[i] = value
		}
		table.Append(row...)
	}
	return table
}

func flattenInto(out map[string]any, prefix string, doc map[string]any) {
	for key, value := range doc {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok && len(nested) > 0 {
			flattenInto(out, path, nested)
			continue
		}
		out[path] = value
	}
}

// Users flattens league member documents.
func Users(docs []rawdata.Document) *Table {
	return Flatten("users", docs)
}
