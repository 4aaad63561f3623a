package quote

import (
	"sort"

	"freightdesk/models"
)

// Direction says whose quotations price the booking.
type Direction string

const (
	ByConsignor Direction = "Consignor"
	ByConsignee Direction = "Consignee"
)

// Set holds the three quotation tiers fetched for the current selection.
type Set struct {
	Consignor []models.Quotation
	Consignee []models.Quotation
	Company   []models.Quotation
}

// Normalize sorts every tier by quotation id ascending so that duplicate
// shape ids resolve deterministically (first match wins after the sort).
func (s *Set) Normalize() {
	byID := func(qs []models.Quotation) {
		sort.SliceStable(qs, func(i, j int) bool {
			return qs[i].QuotationID < qs[j].QuotationID
		})
	}
	byID(s.Consignor)
	byID(s.Consignee)
	byID(s.Company)
}

// ResolveDirection applies the party-precedence rules: a lone quoting party
// wins, the consignee wins when both quote, and the last user choice stands
// when neither does (defaulting to consignee).
func ResolveDirection(consignorHas, consigneeHas bool, current Direction) Direction {
	switch {
	case consignorHas && !consigneeHas:
		return ByConsignor
	case consigneeHas && !consignorHas:
		return ByConsignee
	case consignorHas && consigneeHas:
		return ByConsignee
	default:
		if current == "" {
			return ByConsignee
		}
		return current
	}
}

// Resolve computes the effective quotation for one article shape. Within the
// chosen party's tier an exact shape match beats the shape-agnostic (nil
// shape) entry; an empty party tier falls back to the company tier filtered
// the same way. Door-delivery and collection always come from the company
// tier and only when its goods type matches the booking's.
func Resolve(set Set, dir Direction, shapeID int64, goodsTypeID *int64) models.EffectiveQuotation {
	partyTier := set.Consignee
	source := models.SourceConsignee
	if dir == ByConsignor {
		partyTier = set.Consignor
		source = models.SourceConsignor
	}

	// The company tier is consulted only when the chosen party has no
	// quotations at all. A non-empty tier that covers other shapes resolves
	// to none, leaving the rate fields free-form.
	q := matchShape(partyTier, shapeID)
	if q == nil && len(partyTier) == 0 {
		q = matchShape(set.Company, shapeID)
		source = models.SourceCompany
	}

	if q == nil {
		return models.EffectiveQuotation{
			Found:            false,
			Source:           models.SourceNone,
			RateTypeID:       models.RatePerWeight,
			LabourRateTypeID: models.RatePerWeight,
		}
	}

	eff := models.EffectiveQuotation{
		Found:            true,
		QuotationID:      q.QuotationID,
		Source:           source,
		Rate:             q.Rate,
		RateTypeID:       q.RateTypeID,
		LabourRate:       q.HamaliRate,
		LabourRateTypeID: q.HamaliRateTypeID,
	}
	if eff.RateTypeID == 0 {
		eff.RateTypeID = models.RatePerWeight
	}
	if eff.LabourRateTypeID == 0 {
		eff.LabourRateTypeID = models.RatePerWeight
	}
	if source == models.SourceConsignor || source == models.SourceConsignee {
		eff.LockPaymentType = true
		eff.LockLRCharge = true
	}

	if c := matchGoodsType(set.Company, goodsTypeID); c != nil {
		eff.DoorDelivery = c.DoorDelivery
		eff.Collection = c.Collection
	}
	return eff
}

func matchShape(qs []models.Quotation, shapeID int64) *models.Quotation {
	for i := range qs {
		if qs[i].ShapeID != nil && *qs[i].ShapeID == shapeID {
			return &qs[i]
		}
	}
	for i := range qs {
		if qs[i].ShapeID == nil {
			return &qs[i]
		}
	}
	return nil
}

func matchGoodsType(qs []models.Quotation, goodsTypeID *int64) *models.Quotation {
	if goodsTypeID == nil {
		return nil
	}
	for i := range qs {
		if qs[i].GoodsTypeID != nil && *qs[i].GoodsTypeID == *goodsTypeID {
			return &qs[i]
		}
	}
	return nil
}
