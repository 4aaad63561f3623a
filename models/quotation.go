package models

import "github.com/shopspring/decimal"

// QuotationScope tags a quotation as party-specific or company-wide.
type QuotationScope string

const (
	ScopeParty   QuotationScope = "party"
	ScopeCompany QuotationScope = "company"
)

// Quotation is the canonical, normalized form of a pre-negotiated freight
// rate. The upstream records expose overlapping field names (rate/billRate,
// toBranchId/toId); those are collapsed at the repository boundary so nothing
// past it branches on field presence. ShapeID == nil means the quotation is
// shape-agnostic and acts as the fallback for shapes not otherwise covered.
type Quotation struct {
	QuotationID      int64           `json:"quotationId" bson:"quotation_id" db:"quotation_id"`
	Scope            QuotationScope  `json:"scope" bson:"scope" db:"scope"`
	PartyID          *int64          `json:"partyId,omitempty" bson:"party_id" db:"party_id"`
	FromBranchID     int64           `json:"fromBranchId" bson:"from_branch_id" db:"from_branch_id"`
	ToBranchID       int64           `json:"toBranchId" bson:"to_branch_id" db:"to_branch_id"`
	BillTypeID       int64           `json:"billTypeId" bson:"bill_type_id" db:"bill_type_id"`
	ShapeID          *int64          `json:"shapeId,omitempty" bson:"shape_id" db:"shape_id"`
	GoodsTypeID      *int64          `json:"goodsTypeId,omitempty" bson:"goods_type_id" db:"goods_type_id"`
	Rate             decimal.Decimal `json:"rate" bson:"rate" db:"rate"`
	RateTypeID       int64           `json:"rateTypeId" bson:"rate_type_id" db:"rate_type_id"`
	HamaliRate       decimal.Decimal `json:"hamaliRate" bson:"hamali_rate" db:"hamali_rate"`
	HamaliRateTypeID int64           `json:"hamaliRateTypeId" bson:"hamali_rate_type_id" db:"hamali_rate_type_id"`
	DoorDelivery     decimal.Decimal `json:"doorDelivery" bson:"door_delivery" db:"door_delivery"`
	Collection       decimal.Decimal `json:"collection" bson:"collection" db:"collection"`
}

// EffectiveQuotation is the resolver's output for the currently selected
// shape. It is derived, never persisted. Found == false means no quotation
// applies and the rate fields stay free-form with per-weight defaults.
type EffectiveQuotation struct {
	Found            bool            `json:"found"`
	QuotationID      int64           `json:"quotationId,omitempty"`
	Source           QuotationSource `json:"source"`
	Rate             decimal.Decimal `json:"rate"`
	RateTypeID       int64           `json:"rateTypeId"`
	LabourRate       decimal.Decimal `json:"labourRate"`
	LabourRateTypeID int64           `json:"labourRateTypeId"`
	DoorDelivery     decimal.Decimal `json:"doorDelivery"`
	Collection       decimal.Decimal `json:"collection"`

	// Locks mirror the party defaults applied to the header: once a party
	// quotation resolves, payment type and LR charge are forced from the
	// party record and the UI must not allow edits.
	LockPaymentType bool `json:"lockPaymentType"`
	LockLRCharge    bool `json:"lockLrCharge"`
}

// QuotationSource names which tier produced the effective quotation.
type QuotationSource string

const (
	SourceConsignor QuotationSource = "consignor"
	SourceConsignee QuotationSource = "consignee"
	SourceCompany   QuotationSource = "company"
	SourceNone      QuotationSource = "none"
)
