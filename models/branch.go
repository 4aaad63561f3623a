package models

import "time"

// Branch is read-only reference data for the booking screens.
type Branch struct {
	BranchID         int64     `json:"branchId" bson:"branch_id" db:"branch_id"`
	Name             string    `json:"name" bson:"name" db:"name"`
	Pincode          string    `json:"pincode" bson:"pincode" db:"pincode"`
	Phone            string    `json:"phone" bson:"phone" db:"phone"`
	TransporterName  *string   `json:"transporterName,omitempty" bson:"transporter_name" db:"transporter_name"`
	TransporterPhone *string   `json:"transporterPhone,omitempty" bson:"transporter_phone" db:"transporter_phone"`
	CompanyID        int64     `json:"companyId" bson:"company_id" db:"company_id"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}
