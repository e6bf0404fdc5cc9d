package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeGB(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"500 MB", 0.488},
		{"750 MB", 0.732},
		{"1.0 GB", 1.0},
		{"1.5GB", 1.5},
		{"800.0 GB", 800.0},
		{"250.0 GB", 250.0},
		{"1TB", 1024},
		{"1 tb", 1024},
		{"40", 40},
		{"2.5 gb", 2.5},
		{"", 0},
		{"unlimited", 0},
		{"...", 0},
		{"1.2.3 GB", 0},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, SizeGB(tt.raw))
		})
	}
}

func TestSizeGBUnitPrecedence(t *testing.T) {
	// MB is checked before TB and both before the GB default.
	assert.Equal(t, 0.001, SizeGB("1 MB TB"))
	assert.Equal(t, 2048.0, SizeGB("2 TB GB"))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.488, Round(500.0/1024))
	assert.Equal(t, 1.235, Round(1.23456))
	assert.Equal(t, 3.0, Round(3))
}

func TestValidityDays(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"SME (30 DAYS)", 30},
		{"Monthly (Corporate Gifting)", 30},
		{"7 DAYS ... GIFTING (30 DAYS)", 30},
		{"CG (7 DAYS)", 7},
		{"Weekly Bundle", 7},
		{"AWOOF (1 DAY)", 1},
		{"Daily plan", 1},
		{"24 hours", 1},
		{"AWOOF (2 DAYS)", 2},
		{"GIFTING (3 DAYS)", 3},
		{"14days", 14},
		{"7/14 Days", 14},
		{"11 DAYS", 1},
		{"90 DAYS", 90},
		{"", 30},
		{"Corporate", 30},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidityDays(tt.raw))
		})
	}
}

func TestPrice(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"plain", "350", 350},
		{"thousands separator", "1,470", 1470},
		{"quoted", `"1,497"`, 1497},
		{"naira sign", "₦ 2,495", 2495},
		{"decimal", "499.50", 499.5},
		{"padded", "  410 ", 410},
		{"no-break space", "1\u00a0470", 1470},
		{"narrow no-break space", "₦\u202f2\u202f495", 2495},
		{"zero", "0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Price(tt.raw)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestPriceAbsent(t *testing.T) {
	for _, raw := range []string{"", "   ", `""`, "N/A", "call", "NaN", "Inf", "-inf", "1.2.3"} {
		t.Run(raw, func(t *testing.T) {
			assert.Nil(t, Price(raw))
		})
	}
}
