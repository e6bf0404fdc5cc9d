package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/pricemap/internal/utils/ptr"
	"github.com/agentstation/pricemap/pkg/catalogs"
	"github.com/agentstation/pricemap/pkg/export"
)

func TestRecordsToTableData(t *testing.T) {
	r := &catalogs.Record{
		Key:           catalogs.NewKey(catalogs.NetworkGlo, 1, 30),
		PlanID:        "501",
		ValidityLabel: "CG (30 DAYS)",
		CostPrice:     300,
		DefaultPrice:  ptr.Float64(400),
		Swapped:       true,
		FinalPrice:    345,
		Status:        catalogs.StatusActive,
		Basis:         catalogs.BasisCompetitor,
	}
	r.SetCompetitor("competitor_a", ptr.Float64(380))
	r.SetCompetitor("competitor_b", nil)
	r.LowestCompetitorPrice = ptr.Float64(380)

	data := RecordsToTableData([]*catalogs.Record{r}, false)
	require.Len(t, data.Rows, 1)
	assert.Len(t, data.ColumnAlignment, len(data.Headers))
	assert.Equal(t, []string{"GLO", "501", "1", "CG (30 DAYS)", "300", "400", "380", "345", "Active"}, data.Rows[0])

	wide := RecordsToTableData([]*catalogs.Record{r}, true)
	assert.Equal(t, []string{"competitor_a", "competitor_b", "Basis", "Swapped"}, wide.Headers[9:])
	assert.Equal(t, []string{"380", "-", "competitor", "✓"}, wide.Rows[0][9:])
	assert.Len(t, wide.ColumnAlignment, len(wide.Headers))
}

func TestRecordsToTableDataCostMissing(t *testing.T) {
	r := &catalogs.Record{
		Key:         catalogs.NewKey(catalogs.NetworkAirtel, 3, 30),
		PlanID:      "602",
		CostMissing: true,
		Status:      catalogs.StatusExcluded,
		Basis:       catalogs.BasisNoCost,
	}
	row := RecordsToTableData([]*catalogs.Record{r}, false).Rows[0]
	assert.Equal(t, "-", row[4])
	assert.Equal(t, "-", row[7])
	assert.Equal(t, "Excluded", row[8])
}

func TestPlansToTableData(t *testing.T) {
	data := PlansToTableData([]export.Plan{{
		NetworkID:   4,
		NetworkName: "9MOBILE",
		PlanType:    "ALL",
		PlanName:    "1.5GB - Monthly (Corporate Gifting)",
		Amount:      898,
		CostPrice:   749,
	}})
	assert.Equal(t, []string{"4", "-", "9MOBILE", "1.5GB - Monthly (Corporate Gifting)", "898", "749"}, data.Rows[0])
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "345", FormatPrice(345))
	assert.Equal(t, "898.80", FormatPrice(898.8))
	assert.Equal(t, "-", FormatOptionalPrice(nil))
	assert.Equal(t, "0", FormatOptionalPrice(ptr.Float64(0)))
}
