package stockhealth

import (
	"sort"

	"github.com/alexanderramin/carestock/internal/domain"
)

// Selection restricts a batch to chosen locations and items. An empty list
// on either axis selects everything on that axis.
type Selection struct {
	Locations []string
	Items     []string
}

// Apply returns the records matching the selection, preserving order.
func (s Selection) Apply(records []domain.InventoryRecord) []domain.InventoryRecord {
	if len(s.Locations) == 0 && len(s.Items) == 0 {
		return records
	}
	locs := toSet(s.Locations)
	items := toSet(s.Items)

	out := make([]domain.InventoryRecord, 0, len(records))
	for _, r := range records {
		if len(locs) > 0 && !locs[r.Location] {
			continue
		}
		if len(items) > 0 && !items[r.Item] {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Locations returns the sorted distinct locations in records.
func Locations(records []domain.InventoryRecord) []string {
	return distinct(records, func(r domain.InventoryRecord) string { return r.Location })
}

// Items returns the sorted distinct items in records.
func Items(records []domain.InventoryRecord) []string {
	return distinct(records, func(r domain.InventoryRecord) string { return r.Item })
}

func distinct(records []domain.InventoryRecord, field func(domain.InventoryRecord) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		v := field(r)
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func toSet(vals []string) map[string]bool {
	if len(vals) == 0 {
		return nil
	}
	m := make(map[string]bool, len(vals))
	for _, v := range vals {
		m[v] = true
	}
	return m
}
