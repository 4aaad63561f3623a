package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Party is a consignor or consignee. Parties are created from the master
// screens or quick-added during booking entry; PaymentTypeID and BiltyCharge
// are the defaults force-applied to the booking header when a quotation for
// the party resolves.
type Party struct {
	PartyID       int64           `json:"partyId" bson:"party_id" db:"party_id"`
	Name          string          `json:"name" bson:"name" db:"name"`
	GSTNumber     *string         `json:"gstNumber,omitempty" bson:"gst_number" db:"gst_number"`
	Phone         string          `json:"phone" bson:"phone" db:"phone"`
	BranchID      int64           `json:"branchId" bson:"branch_id" db:"branch_id"`
	PaymentTypeID *int64          `json:"paymentTypeId,omitempty" bson:"payment_type_id" db:"payment_type_id"`
	BiltyCharge   decimal.Decimal `json:"biltyCharge" bson:"bilty_charge" db:"bilty_charge"`
	IsConsignor   bool            `json:"isConsignor" bson:"is_consignor" db:"is_consignor"`
	IsConsignee   bool            `json:"isConsignee" bson:"is_consignee" db:"is_consignee"`
	Active        bool            `json:"active" bson:"active" db:"active"`
	CompanyID     int64           `json:"companyId" bson:"company_id" db:"company_id"`
	CreatedAt     time.Time       `json:"created_at" bson:"created_at" db:"created_at"`
}
