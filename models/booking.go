package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking statuses as stored upstream. Finalized bookings lock row deletion
// for non-admin users.
const (
	BookingStatusDraft     = 1
	BookingStatusFinalized = 5
)

// Row flags attached when updating an existing booking, derived by diffing
// the edited rows against the server-loaded originals.
const (
	RowAdded   = "A"
	RowUpdated = "U"
	RowDeleted = "D"
)

// BookingDetail is one line of the article table. Pointer fields are blank
// form inputs; Freight and TotalLabour are computed, never entered.
type BookingDetail struct {
	BookingDetailID  int64            `json:"bookingDetailId" bson:"booking_detail_id" db:"booking_detail_id"`
	BookingID        int64            `json:"bookingId" bson:"booking_id" db:"booking_id"`
	ShapeID          int64            `json:"shapeId" bson:"shape_id" db:"shape_id"`
	ShapeName        string           `json:"shapeName" bson:"shape_name" db:"shape_name"`
	Article          *int64           `json:"article,omitempty" bson:"article" db:"article"`
	Weight           *decimal.Decimal `json:"weight,omitempty" bson:"weight" db:"weight"`
	ChargeWeight     *decimal.Decimal `json:"chargeWeight,omitempty" bson:"charge_weight" db:"charge_weight"`
	RateTypeID       int64            `json:"rateTypeId" bson:"rate_type_id" db:"rate_type_id"`
	Rate             *decimal.Decimal `json:"rate,omitempty" bson:"rate" db:"rate"`
	Freight          decimal.Decimal  `json:"freight" bson:"freight" db:"freight"`
	LabourRateTypeID int64            `json:"labourRateTypeId" bson:"labour_rate_type_id" db:"labour_rate_type_id"`
	LabourRate       *decimal.Decimal `json:"labourRate,omitempty" bson:"labour_rate" db:"labour_rate"`
	TotalLabour      decimal.Decimal  `json:"totalLabour" bson:"total_labour" db:"total_labour"`
	Flag             string           `json:"flag,omitempty" bson:"flag" db:"flag"`
}

// Booking is the waybill (LR) aggregate: header fields plus the ordered line
// items. BookingID == 0 until first persisted.
type Booking struct {
	BookingID    int64     `json:"bookingId" bson:"booking_id" db:"booking_id"`
	LRNumber     string    `json:"lrNumber" bson:"lr_number" db:"lr_number"`
	BookingDate  time.Time `json:"bookingDate" bson:"booking_date" db:"booking_date"`
	FromBranchID int64     `json:"fromBranchId" bson:"from_branch_id" db:"from_branch_id"`
	ToBranchID   int64     `json:"toBranchId" bson:"to_branch_id" db:"to_branch_id"`
	BillTypeID   int64     `json:"billTypeId" bson:"bill_type_id" db:"bill_type_id"`

	ConsignorID    int64  `json:"consignorId" bson:"consignor_id" db:"consignor_id"`
	ConsignorName  string `json:"consignorName" bson:"consignor_name" db:"consignor_name"`
	ConsignorGST   string `json:"consignorGst" bson:"consignor_gst" db:"consignor_gst"`
	ConsignorPhone string `json:"consignorPhone" bson:"consignor_phone" db:"consignor_phone"`
	ConsigneeID    int64  `json:"consigneeId" bson:"consignee_id" db:"consignee_id"`
	ConsigneeName  string `json:"consigneeName" bson:"consignee_name" db:"consignee_name"`
	ConsigneeGST   string `json:"consigneeGst" bson:"consignee_gst" db:"consignee_gst"`
	ConsigneePhone string `json:"consigneePhone" bson:"consignee_phone" db:"consignee_phone"`
	QuotationBy    string `json:"quotationBy" bson:"quotation_by" db:"quotation_by"`

	PaymentTypeID   int64           `json:"paymentTypeId" bson:"payment_type_id" db:"payment_type_id"`
	GoodsTypeID     *int64          `json:"goodsTypeId,omitempty" bson:"goods_type_id" db:"goods_type_id"`
	InvoiceNumber   string          `json:"invoiceNumber" bson:"invoice_number" db:"invoice_number"`
	DeclaredValue   decimal.Decimal `json:"declaredValue" bson:"declared_value" db:"declared_value"`
	EwayBillNumber  string          `json:"ewayBillNumber" bson:"eway_bill_number" db:"eway_bill_number"`
	Mode            string          `json:"mode" bson:"mode" db:"mode"`
	PrivateMark     string          `json:"privateMark" bson:"private_mark" db:"private_mark"`
	GoodsReceivedBy string          `json:"goodsReceivedBy" bson:"goods_received_by" db:"goods_received_by"`
	Note            string          `json:"note" bson:"note" db:"note"`

	Freight      decimal.Decimal `json:"freight" bson:"freight" db:"freight"`
	LRCharge     decimal.Decimal `json:"lrCharge" bson:"lr_charge" db:"lr_charge"`
	Labour       decimal.Decimal `json:"labour" bson:"labour" db:"labour"`
	AOC          decimal.Decimal `json:"aoc" bson:"aoc" db:"aoc"`
	Collection   decimal.Decimal `json:"collection" bson:"collection" db:"collection"`
	DoorDelivery decimal.Decimal `json:"doorDelivery" bson:"door_delivery" db:"door_delivery"`
	OLOC         decimal.Decimal `json:"oloc" bson:"oloc" db:"oloc"`
	Insurance    decimal.Decimal `json:"insurance" bson:"insurance" db:"insurance"`
	Other        decimal.Decimal `json:"other" bson:"other" db:"other"`
	CarrierRisk  decimal.Decimal `json:"carrierRisk" bson:"carrier_risk" db:"carrier_risk"`
	BHCharge     decimal.Decimal `json:"bhCharge" bson:"bh_charge" db:"bh_charge"`
	FOV          decimal.Decimal `json:"fov" bson:"fov" db:"fov"`
	Cartage      decimal.Decimal `json:"cartage" bson:"cartage" db:"cartage"`
	SGST         decimal.Decimal `json:"sgst" bson:"sgst" db:"sgst"`
	CGST         decimal.Decimal `json:"cgst" bson:"cgst" db:"cgst"`
	IGST         decimal.Decimal `json:"igst" bson:"igst" db:"igst"`
	Total        decimal.Decimal `json:"total" bson:"total" db:"total"`
	GrandTotal   decimal.Decimal `json:"grandTotal" bson:"grand_total" db:"grand_total"`

	Status    int        `json:"status" bson:"status" db:"status"`
	CreatedBy int64      `json:"created_by" bson:"created_by" db:"created_by"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" bson:"updated_at" db:"updated_at"`

	Details []BookingDetail `json:"details,omitempty" bson:"details,omitempty"`
}
