package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// SnapshotSchema is the top-level JSON structure for a stock-health import.
type SnapshotSchema struct {
	Source     string         `json:"source,omitempty"`
	ExportedAt *string        `json:"exported_at,omitempty"`
	Records    []RecordImport `json:"records"`
}

// RecordImport is one row of the warehouse stock-health view. Pointer fields
// distinguish "absent" from zero.
type RecordImport struct {
	Location       string   `json:"location"`
	Item           string   `json:"item"`
	ClosingStock   *float64 `json:"closing_stock"`
	AvgDailyDemand *float64 `json:"avg_daily_demand"`
	DaysToStockout *float64 `json:"days_to_stockout,omitempty"`
	StockStatus    string   `json:"stock_status"`
	LeadTimeDays   *float64 `json:"lead_time_days,omitempty"`
}

// LoadSnapshotSchema reads and parses a snapshot JSON file.
func LoadSnapshotSchema(path string) (*SnapshotSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSnapshotSchema(data)
}

func ParseSnapshotSchema(data []byte) (*SnapshotSchema, error) {
	var schema SnapshotSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing snapshot file: %w", err)
	}
	return &schema, nil
}
