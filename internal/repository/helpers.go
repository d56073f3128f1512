package repository

import (
	"database/sql"
	"math"
	"strings"
	"time"
)

// timestampLayout is fixed-width so that text ordering matches time ordering.
const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// listSeparator joins level and recipient lists in a single column.
const listSeparator = "|"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// parseNullableTime parses a sql.NullString into a *time.Time using the given layout.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// stockoutToValue stores non-finite days-to-stockout as SQL NULL.
func stockoutToValue(days float64) interface{} {
	if math.IsInf(days, 0) || math.IsNaN(days) {
		return nil
	}
	return days
}

// stockoutFromNull maps SQL NULL back to +Inf.
func stockoutFromNull(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.Inf(1)
	}
	return v.Float64
}

func joinList[T ~string](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = string(v)
	}
	return strings.Join(parts, listSeparator)
}

func splitList[T ~string](s string) []T {
	if strings.TrimSpace(s) == "" {
		return []T{}
	}
	parts := strings.Split(s, listSeparator)
	out := make([]T, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, T(p))
		}
	}
	return out
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

var nowFunc = func() time.Time { return time.Now().UTC() }
