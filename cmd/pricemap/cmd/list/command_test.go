package list

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/pricemap/internal/appcontext"
	"github.com/agentstation/pricemap/pkg/logging"
)

func execute(t *testing.T, format string, args ...string) string {
	t.Helper()

	app := &appcontext.Mock{OutputFormatFunc: func() string { return format }}
	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestListPrices(t *testing.T) {
	logging.Discard(t)

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(execute(t, "json", "prices")), &records))
	assert.Len(t, records, 68)
	for _, rec := range records {
		assert.Equal(t, "Active", rec["status"])
	}

	records = nil
	require.NoError(t, json.Unmarshal([]byte(execute(t, "json", "prices", "--all")), &records))
	assert.Len(t, records, 81)
}

func TestListPricesFilter(t *testing.T) {
	logging.Discard(t)

	var records []map[string]any
	out := execute(t, "json", "prices", "--all", "--network", "9mobile")
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	assert.Len(t, records, 15)

	records = nil
	out = execute(t, "json", "prices", "--network", "mtn", "--limit", "3")
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 3)
	for _, rec := range records {
		assert.Equal(t, "MTN", rec["network"])
	}
}

func TestListPricesOrder(t *testing.T) {
	logging.Discard(t)

	var records []struct {
		Network      string  `json:"network"`
		ValidityDays int     `json:"validity_days"`
		CostPrice    float64 `json:"cost_price"`
	}
	require.NoError(t, json.Unmarshal([]byte(execute(t, "json", "prices")), &records))
	require.Len(t, records, 68)
	assert.Equal(t, "9MOBILE", records[0].Network)

	for i := 1; i < len(records); i++ {
		prev, cur := records[i-1], records[i]
		switch {
		case prev.Network != cur.Network:
			assert.Less(t, prev.Network, cur.Network)
		case prev.ValidityDays != cur.ValidityDays:
			assert.Less(t, prev.ValidityDays, cur.ValidityDays)
		default:
			assert.LessOrEqual(t, prev.CostPrice, cur.CostPrice)
		}
	}
}

func TestListPricesTable(t *testing.T) {
	logging.Discard(t)

	out := execute(t, "table", "prices", "--network", "MTN", "--limit", "1")
	assert.Contains(t, out, "MTN")
	assert.Contains(t, out, "Active")
	assert.NotContains(t, out, "AIRTEL")
}

func TestListPlans(t *testing.T) {
	logging.Discard(t)

	var plans []map[string]any
	require.NoError(t, json.Unmarshal([]byte(execute(t, "json", "plans")), &plans))
	require.Len(t, plans, 68)
	assert.Equal(t, "ALL", plans[0]["plan_type"])
	assert.Equal(t, "9MOBILE", plans[0]["network_name"])
	assert.EqualValues(t, 4, plans[0]["network_id"])
}

func TestListInvalidFormat(t *testing.T) {
	logging.Discard(t)

	app := &appcontext.Mock{OutputFormatFunc: func() string { return "xml" }}
	cmd := NewCommand(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"prices"})
	assert.Error(t, cmd.Execute())
}
