package formatter

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatUnits(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"whole", 1200, "1,200"},
		{"fraction", 1234.5, "1,234.5"},
		{"zero", 0, "0"},
		{"inf", math.Inf(1), "∞"},
		{"nan", math.NaN(), "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUnits(tt.in))
		})
	}
}

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹12,500", FormatINR(decimal.NewFromInt(12500)))
	assert.Equal(t, "₹0", FormatINR(decimal.Zero))
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2025, 4, 2, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Just now", HumanTimestampFrom(now.Add(-10*time.Second), now))
	assert.Equal(t, "5m ago", HumanTimestampFrom(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", HumanTimestampFrom(now.Add(-3*time.Hour), now))
	assert.Equal(t, "Mar 30, 2025 12:00", HumanTimestampFrom(now.Add(-72*time.Hour), now))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
}

func TestRenderBar(t *testing.T) {
	assert.Contains(t, RenderBar(2, 4, 8, StyleRed), "████░░░░ 2")
	assert.Contains(t, RenderBar(0, 0, 4, StyleRed), "░░░░ 0")
	// Small non-zero values still show one block.
	assert.Contains(t, RenderBar(1, 100, 4, StyleRed), "█░░░ 1")
}

func TestRenderAlignedTable_RightAligns(t *testing.T) {
	out := RenderAlignedTable([]string{"Item", "Qty"}, []Align{AlignLeft, AlignRight}, [][]string{
		{"Insulin", "6"},
		{"Gauze", "1,200"},
	})
	assert.Contains(t, out, "Insulin      6")
	assert.Contains(t, out, "Gauze    1,200")
}
