package projection

import "strings"

// LeftJoin keeps every left row and attaches the first right row with the same key.
// A column present on both sides appears once; the left value wins unless it is empty.
func LeftJoin(name string, left, right *Table, key string) *Table {
	leftKey := left.Index(key)
	rightKey := right.Index(key)

	columns := append([]Column(nil), left.Columns...)
	type source struct {
		rightIdx int
		leftIdx  int
	}
	sources := make([]source, 0, len(right.Columns))
	for idx, col := range right.Columns {
		if idx == rightKey {
			continue
		}
		if existing := left.Index(col.Name); existing >= 0 {
			sources = append(sources, source{rightIdx: idx, leftIdx: existing})
			continue
		}
		columns = append(columns, col)
		sources = append(sources, source{rightIdx: idx, leftIdx: -1})
	}

	byKey := make(map[string][]Value, len(right.Rows))
	if rightKey >= 0 {
		for _, row := range right.Rows {
			k := FormatValue(row[rightKey])
			if _, dup := byKey[k]; !dup {
				byKey[k] = row
			}
		}
	}

	out := NewTable(name, columns...)
	out.Warnings = append(append(out.Warnings, left.Warnings...), right.Warnings...)
	for _, leftRow := range left.Rows {
		row := append([]Value(nil), leftRow...)
		var match []Value
		if leftKey >= 0 {
			match = byKey[FormatValue(leftRow[leftKey])]
		}
		for _, src := range sources {
			if src.leftIdx >= 0 {
				if match != nil && isEmpty(row[src.leftIdx]) {
					row[src.leftIdx] = match[src.rightIdx]
				}
				continue
			}
			if match != nil {
				row = append(row, match[src.rightIdx])
			} else {
				row = append(row, right.Columns[src.rightIdx].Kind.Default())
			}
		}
		out.Append(row...)
	}
	return out
}

const teamNameColumn = "metadata.team_name"

var droppedMemberPrefixes = []string{
	"metadata.mascot_item_type_id",
	"metadata.mascot_message_emotion",
}

var droppedMemberColumns = map[string]struct{}{
	"metadata.mention_pn":   {},
	"metadata.archived":     {},
	"metadata.allow_sms":    {},
	"metadata.allow_pn":     {},
	"metadata.show_mascots": {},
	"archived":              {},
	"allow_sms":             {},
	"allow_pn":              {},
	"show_mascots":          {},
}

// RosterUsersTable joins rosters to league members on user_id. Teams without a
// custom name become "Team <display_name>"; mascot and notification settings are dropped.
func RosterUsersTable(rosters, users *Table) *Table {
	joined := LeftJoin("roster_users", rosters, users, "user_id")
	joined.AddColumn(Column{Name: teamNameColumn, Kind: KindText})

	for i := range joined.Rows {
		current, _ := joined.Value(i, teamNameColumn)
		if !isEmpty(current) {
			continue
		}
		displayName, _ := joined.Value(i, "display_name")
		joined.Set(i, teamNameColumn, "Team "+FormatValue(displayName))
	}

	return joined.Drop(func(column string) bool {
		if _, ok := droppedMemberColumns[column]; ok {
			return true
		}
		for _, prefix := range droppedMemberPrefixes {
			if strings.HasPrefix(column, prefix) {
				return true
			}
		}
		return false
	})
}
