package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoadingMemo groups finalized bookings onto one vehicle for a branch pair.
type LoadingMemo struct {
	MemoID        int64           `json:"memoId" bson:"memo_id" db:"memo_id"`
	MemoNumber    string          `json:"memoNumber" bson:"memo_number" db:"memo_number"`
	FromBranchID  int64           `json:"fromBranchId" bson:"from_branch_id" db:"from_branch_id"`
	ToBranchID    int64           `json:"toBranchId" bson:"to_branch_id" db:"to_branch_id"`
	VehicleNumber string          `json:"vehicleNumber" bson:"vehicle_number" db:"vehicle_number"`
	DriverName    string          `json:"driverName" bson:"driver_name" db:"driver_name"`
	DriverPhone   string          `json:"driverPhone" bson:"driver_phone" db:"driver_phone"`
	BookingIDs    []int64         `json:"bookingIds" bson:"booking_ids"`
	TotalArticles int64           `json:"totalArticles" bson:"total_articles" db:"total_articles"`
	TotalWeight   decimal.Decimal `json:"totalWeight" bson:"total_weight" db:"total_weight"`
	TotalFreight  decimal.Decimal `json:"totalFreight" bson:"total_freight" db:"total_freight"`
	CreatedBy     int64           `json:"created_by" bson:"created_by" db:"created_by"`
	CreatedAt     time.Time       `json:"created_at" bson:"created_at" db:"created_at"`
}

// CashMemo records a payment received against a booking. AmountWords is the
// amount restated in Indian-numbering words for the printed receipt.
type CashMemo struct {
	MemoID      int64           `json:"memoId" bson:"memo_id" db:"memo_id"`
	BookingID   int64           `json:"bookingId" bson:"booking_id" db:"booking_id"`
	LRNumber    string          `json:"lrNumber" bson:"lr_number" db:"lr_number"`
	PayerName   string          `json:"payerName" bson:"payer_name" db:"payer_name"`
	Amount      decimal.Decimal `json:"amount" bson:"amount" db:"amount"`
	AmountWords string          `json:"amountWords" bson:"amount_words" db:"amount_words"`
	Remarks     string          `json:"remarks" bson:"remarks" db:"remarks"`
	CreatedBy   int64           `json:"created_by" bson:"created_by" db:"created_by"`
	CreatedAt   time.Time       `json:"created_at" bson:"created_at" db:"created_at"`
}
