package quote

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"freightdesk/models"
)

func ip(n int64) *int64 { return &n }

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func partyQ(id int64, shapeID *int64, rate string) models.Quotation {
	return models.Quotation{
		QuotationID: id,
		Scope:       models.ScopeParty,
		ShapeID:     shapeID,
		Rate:        d(rate),
		RateTypeID:  models.RatePerArticle,
	}
}

func TestResolveDirection(t *testing.T) {
	cases := []struct {
		name          string
		consignorHas  bool
		consigneeHas  bool
		current, want Direction
	}{
		{"only consignor quotes", true, false, ByConsignee, ByConsignor},
		{"only consignee quotes", false, true, ByConsignor, ByConsignee},
		{"both quote, consignee wins", true, true, ByConsignor, ByConsignee},
		{"neither quotes keeps user choice", false, false, ByConsignor, ByConsignor},
		{"neither quotes defaults to consignee", false, false, "", ByConsignee},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveDirection(tc.consignorHas, tc.consigneeHas, tc.current))
		})
	}
}

func TestResolveShapeFallback(t *testing.T) {
	set := Set{
		Consignee: []models.Quotation{
			partyQ(1, ip(5), "10"),
			partyQ(2, nil, "7"),
		},
	}

	t.Run("exact shape match wins", func(t *testing.T) {
		eff := Resolve(set, ByConsignee, 5, nil)
		assert.True(t, eff.Found)
		assert.EqualValues(t, 1, eff.QuotationID)
		assert.True(t, eff.Rate.Equal(d("10")))
		assert.Equal(t, models.SourceConsignee, eff.Source)
	})

	t.Run("absent shape falls back to shape-agnostic entry", func(t *testing.T) {
		eff := Resolve(set, ByConsignee, 7, nil)
		assert.True(t, eff.Found)
		assert.EqualValues(t, 2, eff.QuotationID)
		assert.True(t, eff.Rate.Equal(d("7")))
	})
}

func TestResolveCompanyFallback(t *testing.T) {
	set := Set{
		Company: []models.Quotation{
			{QuotationID: 9, Scope: models.ScopeCompany, ShapeID: ip(3), Rate: d("4.5"), RateTypeID: models.RatePerWeight},
		},
	}
	eff := Resolve(set, ByConsignee, 3, nil)
	assert.True(t, eff.Found)
	assert.Equal(t, models.SourceCompany, eff.Source)
	assert.False(t, eff.LockPaymentType, "company tier must not lock party defaults")
	assert.False(t, eff.LockLRCharge)
}

func TestResolveNonEmptyTierWithoutMatchStaysNone(t *testing.T) {
	// The consignee quotes shape 5 only. Resolving shape 7 must not slide
	// down to the company tier; it resolves to none and manual entry.
	set := Set{
		Consignee: []models.Quotation{partyQ(1, ip(5), "10")},
		Company: []models.Quotation{
			{QuotationID: 9, Scope: models.ScopeCompany, ShapeID: ip(7), Rate: d("4.5"), RateTypeID: models.RatePerWeight},
		},
	}
	eff := Resolve(set, ByConsignee, 7, nil)
	assert.False(t, eff.Found)
	assert.Equal(t, models.SourceNone, eff.Source)
	assert.Equal(t, models.RatePerWeight, eff.RateTypeID)
}

func TestResolveNone(t *testing.T) {
	eff := Resolve(Set{}, ByConsignee, 3, nil)
	assert.False(t, eff.Found)
	assert.Equal(t, models.SourceNone, eff.Source)
	assert.Equal(t, models.RatePerWeight, eff.RateTypeID)
	assert.Equal(t, models.RatePerWeight, eff.LabourRateTypeID)
}

func TestResolvePartyLocksHeaderDefaults(t *testing.T) {
	set := Set{Consignor: []models.Quotation{partyQ(1, nil, "5")}}
	eff := Resolve(set, ByConsignor, 2, nil)
	assert.True(t, eff.Found)
	assert.True(t, eff.LockPaymentType)
	assert.True(t, eff.LockLRCharge)
}

func TestResolveCompanySurcharges(t *testing.T) {
	set := Set{
		Consignee: []models.Quotation{partyQ(1, nil, "5")},
		Company: []models.Quotation{
			{QuotationID: 3, Scope: models.ScopeCompany, GoodsTypeID: ip(11), DoorDelivery: d("120"), Collection: d("35")},
		},
	}

	t.Run("matching goods type applies header surcharges", func(t *testing.T) {
		eff := Resolve(set, ByConsignee, 2, ip(11))
		assert.True(t, eff.DoorDelivery.Equal(d("120")))
		assert.True(t, eff.Collection.Equal(d("35")))
	})

	t.Run("no goods type match leaves surcharges zero", func(t *testing.T) {
		eff := Resolve(set, ByConsignee, 2, ip(12))
		assert.True(t, eff.DoorDelivery.IsZero())
		assert.True(t, eff.Collection.IsZero())
	})
}

func TestDuplicateShapeTieBreak(t *testing.T) {
	set := Set{
		Consignee: []models.Quotation{
			partyQ(8, ip(5), "20"),
			partyQ(3, ip(5), "15"),
		},
	}
	set.Normalize()
	eff := Resolve(set, ByConsignee, 5, nil)
	assert.EqualValues(t, 3, eff.QuotationID, "lowest quotation id wins")
}
