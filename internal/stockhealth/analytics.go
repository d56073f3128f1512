package stockhealth

import "sort"

// LocationRisk is the number of at-risk records at one location.
type LocationRisk struct {
	Location    string
	AtRiskCount int
}

// RankLocationsByRisk counts at-risk records per location, highest first.
// Ties are broken by location name. Locations with no at-risk records are
// omitted.
func RankLocationsByRisk(recs []AugmentedRecord) []LocationRisk {
	counts := make(map[string]int)
	for _, r := range recs {
		if r.StockStatus.IsAtRisk() {
			counts[r.Location]++
		}
	}

	out := make([]LocationRisk, 0, len(counts))
	for loc, n := range counts {
		out = append(out, LocationRisk{Location: loc, AtRiskCount: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AtRiskCount != out[j].AtRiskCount {
			return out[i].AtRiskCount > out[j].AtRiskCount
		}
		return out[i].Location < out[j].Location
	})
	return out
}

// CoverHeatmap is a location × item grid of days of cover.
type CoverHeatmap struct {
	Locations []string
	Items     []string
	// Cells[i][j] is the cover for Locations[i] and Items[j]; missing
	// combinations are 0.
	Cells [][]float64
}

// Max returns the largest cell value, or 0 for an empty grid.
func (h CoverHeatmap) Max() float64 {
	var m float64
	for _, row := range h.Cells {
		for _, v := range row {
			if v > m {
				m = v
			}
		}
	}
	return m
}

// BuildCoverHeatmap pivots records into a heatmap with sorted axes. When a
// (location, item) pair appears more than once the cover values are averaged.
func BuildCoverHeatmap(recs []AugmentedRecord) CoverHeatmap {
	type cell struct {
		sum float64
		n   int
	}
	cells := make(map[[2]string]*cell)
	locSet := make(map[string]bool)
	itemSet := make(map[string]bool)

	for _, r := range recs {
		k := [2]string{r.Location, r.Item}
		c, ok := cells[k]
		if !ok {
			c = &cell{}
			cells[k] = c
		}
		c.sum += r.DaysOfCover
		c.n++
		locSet[r.Location] = true
		itemSet[r.Item] = true
	}

	h := CoverHeatmap{
		Locations: sortedKeys(locSet),
		Items:     sortedKeys(itemSet),
	}
	h.Cells = make([][]float64, len(h.Locations))
	for i, loc := range h.Locations {
		h.Cells[i] = make([]float64, len(h.Items))
		for j, item := range h.Items {
			if c, ok := cells[[2]string{loc, item}]; ok {
				h.Cells[i][j] = c.sum / float64(c.n)
			}
		}
	}
	return h
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
