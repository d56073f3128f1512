package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }
func strPtr(s string) *string { return &s }

func validSchema() *SnapshotSchema {
	return &SnapshotSchema{
		Source:     "warehouse nightly",
		ExportedAt: strPtr("2025-04-02T06:00:00Z"),
		Records: []RecordImport{
			{Location: "City Hospital", Item: "Insulin", ClosingStock: f64(6), AvgDailyDemand: f64(3), StockStatus: "Critical", LeadTimeDays: f64(4)},
			{Location: "Rural Clinic", Item: "Gauze", ClosingStock: f64(120), AvgDailyDemand: f64(0), StockStatus: "Healthy"},
		},
	}
}

func TestValidateSnapshotSchema_Valid(t *testing.T) {
	assert.Empty(t, ValidateSnapshotSchema(validSchema()))
}

func TestValidateSnapshotSchema_DateOnlyExportedAt(t *testing.T) {
	s := validSchema()
	s.ExportedAt = strPtr("2025-04-02")
	assert.Empty(t, ValidateSnapshotSchema(s))
}

func TestValidateSnapshotSchema_MissingFields(t *testing.T) {
	s := &SnapshotSchema{Records: []RecordImport{{}}}

	errs := ValidateSnapshotSchema(s)

	msgs := errorStrings(errs)
	assert.Contains(t, msgs, "records[0].location is required")
	assert.Contains(t, msgs, "records[0].item is required")
	assert.Contains(t, msgs, "records[0].stock_status is required")
	assert.Contains(t, msgs, "records[0].closing_stock is required")
	assert.Contains(t, msgs, "records[0].avg_daily_demand is required")
}

func TestValidateSnapshotSchema_EmptyRecords(t *testing.T) {
	errs := ValidateSnapshotSchema(&SnapshotSchema{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "at least one record")
}

func TestValidateSnapshotSchema_Duplicates(t *testing.T) {
	s := validSchema()
	s.Records = append(s.Records, s.Records[0])

	errs := ValidateSnapshotSchema(s)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "duplicate location/item")
	assert.Contains(t, errs[0].Error(), "records[0]")
}

func TestValidateSnapshotSchema_DuplicatesDifferingOnlyInWhitespace(t *testing.T) {
	s := validSchema()
	padded := s.Records[0]
	padded.Location = "City Hospital "
	padded.Item = " Insulin"
	s.Records = append(s.Records, padded)

	errs := ValidateSnapshotSchema(s)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "records[2]: duplicate location/item")
	assert.Contains(t, errs[0].Error(), `"City Hospital"/"Insulin"`)
}

func TestValidateSnapshotSchema_NegativeValues(t *testing.T) {
	s := validSchema()
	s.Records[0].AvgDailyDemand = f64(-1)
	s.Records[1].LeadTimeDays = f64(-2)
	s.Records[1].DaysToStockout = f64(-3)

	errs := ValidateSnapshotSchema(s)
	assert.Len(t, errs, 3)
}

func TestValidateSnapshotSchema_BadTimestamp(t *testing.T) {
	s := validSchema()
	s.ExportedAt = strPtr("yesterday")

	errs := ValidateSnapshotSchema(s)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "exported_at")
}

func errorStrings(errs []error) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Error()
	}
	return out
}
