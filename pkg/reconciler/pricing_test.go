package reconciler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/pricemap/internal/utils/ptr"
	"github.com/agentstation/pricemap/pkg/catalogs"
)

func record(cost float64, def *float64, comps ...*float64) *catalogs.Record {
	r := &catalogs.Record{
		Key:          catalogs.NewKey(catalogs.NetworkMTN, 1, 30),
		CostPrice:    cost,
		DefaultPrice: def,
	}
	for i, c := range comps {
		r.SetCompetitor(string(rune('a'+i)), c)
	}
	return r
}

func TestPolicyPrice(t *testing.T) {
	tests := []struct {
		name       string
		record     *catalogs.Record
		wantFinal  float64
		wantStatus catalogs.Status
		wantBasis  catalogs.Basis
		wantLowest *float64
	}{
		{
			name:       "undercut cheapest competitor",
			record:     record(300, ptr.Float64(400), ptr.Float64(350)),
			wantFinal:  345,
			wantStatus: catalogs.StatusActive,
			wantBasis:  catalogs.BasisCompetitor,
			wantLowest: ptr.Float64(350),
		},
		{
			name:       "profit floor excludes",
			record:     record(400, nil, ptr.Float64(350)),
			wantFinal:  400,
			wantStatus: catalogs.StatusExcluded,
			wantBasis:  catalogs.BasisCompetitor,
			wantLowest: ptr.Float64(350),
		},
		{
			name:       "default without competitors",
			record:     record(200, ptr.Float64(300)),
			wantFinal:  300,
			wantStatus: catalogs.StatusActive,
			wantBasis:  catalogs.BasisDefault,
		},
		{
			name:       "fallback margin",
			record:     record(100, nil),
			wantFinal:  120,
			wantStatus: catalogs.StatusActive,
			wantBasis:  catalogs.BasisFallbackMargin,
		},
		{
			name:       "absent competitors are ignored",
			record:     record(300, nil, nil, ptr.Float64(410), ptr.Float64(390)),
			wantFinal:  385,
			wantStatus: catalogs.StatusActive,
			wantBasis:  catalogs.BasisCompetitor,
			wantLowest: ptr.Float64(390),
		},
		{
			name:       "all competitors absent falls back to default",
			record:     record(300, ptr.Float64(500), nil, nil),
			wantFinal:  500,
			wantStatus: catalogs.StatusActive,
			wantBasis:  catalogs.BasisDefault,
		},
		{
			name:       "floor equal to competitor stays active",
			record:     record(348, nil, ptr.Float64(350)),
			wantFinal:  348,
			wantStatus: catalogs.StatusActive,
			wantBasis:  catalogs.BasisCompetitor,
			wantLowest: ptr.Float64(350),
		},
		{
			name:       "cost equal to competitor stays active",
			record:     record(350, nil, ptr.Float64(350)),
			wantFinal:  350,
			wantStatus: catalogs.StatusActive,
			wantBasis:  catalogs.BasisCompetitor,
			wantLowest: ptr.Float64(350),
		},
		{
			name:       "fractional prices",
			record:     record(0.1, nil, ptr.Float64(5.3)),
			wantFinal:  0.3,
			wantStatus: catalogs.StatusActive,
			wantBasis:  catalogs.BasisCompetitor,
			wantLowest: ptr.Float64(5.3),
		},
	}

	policy := DefaultPolicy()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy.Price(tt.record)
			assert.Equal(t, tt.wantFinal, tt.record.FinalPrice)
			assert.Equal(t, tt.wantStatus, tt.record.Status)
			assert.Equal(t, tt.wantBasis, tt.record.Basis)
			assert.Equal(t, tt.wantLowest, tt.record.LowestCompetitorPrice)
			assert.GreaterOrEqual(t, tt.record.FinalPrice, tt.record.CostPrice)
		})
	}
}

func TestPolicyCustom(t *testing.T) {
	r := record(300, nil, ptr.Float64(350))
	NewPolicy(0, 1.5).Price(r)
	assert.Equal(t, 350.0, r.FinalPrice)
	assert.Equal(t, catalogs.StatusActive, r.Status)

	r = record(300, nil)
	NewPolicy(0, 1.5).Price(r)
	assert.Equal(t, 450.0, r.FinalPrice)
}

func TestCheapest(t *testing.T) {
	a := MockOffer(catalogs.NetworkMTN, 0.488, 30, 350)
	a.PlanID, a.Row = "342", 1
	b := MockOffer(catalogs.NetworkMTN, 0.488, 30, 350)
	b.PlanID, b.Row = "378", 2
	c := MockOffer(catalogs.NetworkMTN, 0.488, 30, 310)
	c.PlanID, c.Row = "288", 3
	d := MockOffer(catalogs.NetworkGlo, 1, 30, -1)
	d.Row = 4
	e := MockOffer(catalogs.NetworkGlo, 1, 30, 500)
	e.Row = 5

	winners := cheapest([]catalogs.Offer{a, b, d, e})
	assert.Equal(t, "342", winners[a.Key].PlanID, "ties go to the earliest row")
	assert.Equal(t, 5, winners[d.Key].Row, "priced offers beat unpriced ones")

	winners = cheapest([]catalogs.Offer{a, b, c})
	assert.Equal(t, "288", winners[a.Key].PlanID)

	prices := minPrices([]catalogs.Offer{a, c, d})
	assert.Equal(t, map[catalogs.Key]float64{a.Key: 310}, prices)
}

func TestBuildSlots(t *testing.T) {
	offers := []catalogs.Offer{
		MockOffer(catalogs.NetworkMTN, 1, 7, 410),
		MockOffer(catalogs.NetworkMTN, 1, 7, 400),
		MockOffer(catalogs.NetworkAirtel, 2, 30, -1),
	}
	slots, warnings := buildSlots(offers)
	require.Equal(t, 2, slots.Len())
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "slot AIRTEL/2GB/30d excluded: no readable cost price")

	rec, ok := slots.Get(catalogs.NewKey(catalogs.NetworkMTN, 1, 7))
	require.True(t, ok)
	assert.Equal(t, 400.0, rec.CostPrice)
	assert.False(t, rec.CostMissing)

	unpriced, ok := slots.Get(catalogs.NewKey(catalogs.NetworkAirtel, 2, 30))
	require.True(t, ok)
	assert.True(t, unpriced.CostMissing)
	assert.Zero(t, unpriced.CostPrice)
}

func TestPolicyPriceCostMissing(t *testing.T) {
	for _, r := range []*catalogs.Record{
		record(0, nil),
		record(0, ptr.Float64(500)),
		record(0, nil, ptr.Float64(350), ptr.Float64(340)),
	} {
		r.CostMissing = true
		DefaultPolicy().Price(r)
		assert.Equal(t, catalogs.StatusExcluded, r.Status)
		assert.Equal(t, catalogs.BasisNoCost, r.Basis)
		assert.Zero(t, r.FinalPrice)
		assert.False(t, r.IsActive())
	}

	r := record(0, nil, ptr.Float64(350), ptr.Float64(340))
	r.CostMissing = true
	DefaultPolicy().Price(r)
	assert.Equal(t, ptr.Float64(340), r.LowestCompetitorPrice)
}

func TestMergeDefaultsCostMissing(t *testing.T) {
	slots, _ := buildSlots([]catalogs.Offer{MockOffer(catalogs.NetworkGlo, 2, 30, -1)})
	key := catalogs.NewKey(catalogs.NetworkGlo, 2, 30)

	swaps := mergeDefaults(context.Background(), slots, map[catalogs.Key]float64{key: 300})
	assert.Zero(t, swaps)

	rec, _ := slots.Get(key)
	assert.False(t, rec.Swapped)
	assert.Equal(t, 300.0, *rec.DefaultPrice)
}

func TestMergeDefaults(t *testing.T) {
	slots, _ := buildSlots([]catalogs.Offer{
		MockOffer(catalogs.NetworkMTN, 1, 30, 510),
		MockOffer(catalogs.NetworkMTN, 2, 30, 950),
		MockOffer(catalogs.NetworkGlo, 1, 30, 300),
	})
	swaps := mergeDefaults(context.Background(), slots, map[catalogs.Key]float64{
		catalogs.NewKey(catalogs.NetworkMTN, 1, 30): 500,
		catalogs.NewKey(catalogs.NetworkMTN, 2, 30): 1000,
	})
	assert.Equal(t, 1, swaps)

	swapped, _ := slots.Get(catalogs.NewKey(catalogs.NetworkMTN, 1, 30))
	assert.True(t, swapped.Swapped)
	assert.Equal(t, 500.0, swapped.CostPrice)
	assert.Equal(t, 510.0, *swapped.DefaultPrice)

	kept, _ := slots.Get(catalogs.NewKey(catalogs.NetworkMTN, 2, 30))
	assert.False(t, kept.Swapped)
	assert.Equal(t, 950.0, kept.CostPrice)
	assert.Equal(t, 1000.0, *kept.DefaultPrice)

	missing, _ := slots.Get(catalogs.NewKey(catalogs.NetworkGlo, 1, 30))
	assert.Nil(t, missing.DefaultPrice)
	assert.Equal(t, 300.0, missing.CostPrice)

	for _, r := range slots.List() {
		if r.DefaultPrice != nil {
			assert.LessOrEqual(t, r.CostPrice, *r.DefaultPrice)
		}
	}
}

func TestAttachCompetitor(t *testing.T) {
	slots, _ := buildSlots([]catalogs.Offer{
		MockOffer(catalogs.NetworkMTN, 1, 30, 510),
		MockOffer(catalogs.NetworkMTN, 2, 30, 950),
	})
	matched := attachCompetitor(slots, "competitor_a", map[catalogs.Key]float64{
		catalogs.NewKey(catalogs.NetworkMTN, 1, 30): 520,
		catalogs.NewKey(catalogs.NetworkGlo, 1, 30): 200,
	})
	assert.Equal(t, 1, matched)

	one, _ := slots.Get(catalogs.NewKey(catalogs.NetworkMTN, 1, 30))
	assert.Equal(t, 520.0, *one.Competitor("competitor_a"))
	two, _ := slots.Get(catalogs.NewKey(catalogs.NetworkMTN, 2, 30))
	require.Len(t, two.Competitors, 1)
	assert.Nil(t, two.Competitors[0].Price)
}
