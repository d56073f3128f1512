// Package export writes the at-risk reorder list for spreadsheets.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/alexanderramin/carestock/internal/stockhealth"
)

// ReorderFileName is the suggested file name for the reorder list.
const ReorderFileName = "priority_reorder_list.csv"

// ReorderColumns is the fixed header row.
var ReorderColumns = []string{
	"LOCATION",
	"ITEM",
	"ITEM_PRIORITY",
	"STATUS_BADGE",
	"CLOSING_STOCK",
	"DAYS_TO_STOCKOUT",
}

// WriteReorderCSV writes the at-risk subset of recs, in input order.
func WriteReorderCSV(w io.Writer, recs []stockhealth.AugmentedRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ReorderColumns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range stockhealth.AtRisk(recs) {
		row := []string{
			r.Location,
			r.Item,
			r.ItemPriority.Label(),
			r.StatusBadge,
			formatNumber(r.ClosingStock),
			formatNumber(r.DaysToStockout),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing %s/%s: %w", r.Location, r.Item, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
