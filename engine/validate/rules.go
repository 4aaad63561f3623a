package validate

import (
	"strings"

	"github.com/shopspring/decimal"

	"freightdesk/models"
)

// FieldError is one failed field check. The first entry of a validation
// result is the field the UI should focus.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// EwayBillThreshold is the declared value at and above which an e-way bill
// number becomes mandatory.
var EwayBillThreshold = decimal.NewFromInt(50000)

// Booking runs the header checks in their fixed order and returns every
// failure. An empty result means the booking may be submitted.
func Booking(b *models.Booking) []FieldError {
	var errs []FieldError
	fail := func(field, msg string) {
		errs = append(errs, FieldError{Field: field, Message: msg})
	}

	if b.ToBranchID == 0 {
		fail("toBranchId", "Destination branch is required")
	}
	if strings.TrimSpace(b.ConsignorName) == "" {
		fail("consignorName", "Consignor name is required")
	}
	if !phoneValid(b.ConsignorPhone) {
		fail("consignorPhone", "Consignor phone must have at least 10 digits")
	}
	if strings.TrimSpace(b.ConsigneeName) == "" {
		fail("consigneeName", "Consignee name is required")
	}
	if !phoneValid(b.ConsigneePhone) {
		fail("consigneePhone", "Consignee phone must have at least 10 digits")
	}
	if b.ConsignorGST != "" && !GSTValid(b.ConsignorGST) {
		fail("consignorGst", "GST number must be 15 characters")
	}
	if b.ConsigneeGST != "" && !GSTValid(b.ConsigneeGST) {
		fail("consigneeGst", "GST number must be 15 characters")
	}
	if b.PaymentTypeID == 0 {
		fail("paymentTypeId", "Payment type is required")
	}
	if strings.TrimSpace(b.InvoiceNumber) == "" {
		fail("invoiceNumber", "Invoice number is required")
	}
	if b.DeclaredValue.LessThanOrEqual(decimal.Zero) {
		fail("declaredValue", "Declared value is required")
	}
	if strings.TrimSpace(b.PrivateMark) == "" {
		fail("privateMark", "Private mark is required")
	}
	if strings.TrimSpace(b.GoodsReceivedBy) == "" {
		fail("goodsReceivedBy", "Goods received by is required")
	}
	if strings.TrimSpace(b.Mode) == "" {
		fail("mode", "Mode is required")
	}
	if strings.EqualFold(strings.TrimSpace(b.Mode), "door delivery") && b.DoorDelivery.LessThanOrEqual(decimal.Zero) {
		fail("doorDelivery", "Door delivery amount is required for door delivery mode")
	}
	if b.DeclaredValue.GreaterThanOrEqual(EwayBillThreshold) && !ewayBillValid(b.EwayBillNumber) {
		fail("ewayBillNumber", "E-way bill number of 12 digits is required")
	}
	if len(b.Details) == 0 {
		fail("details", "At least one article row is required")
	}
	return errs
}

// Row checks the line-item entry fields before the row is added to the table.
func Row(d *models.BookingDetail) []FieldError {
	var errs []FieldError
	fail := func(field, msg string) {
		errs = append(errs, FieldError{Field: field, Message: msg})
	}

	if d.ShapeID == 0 {
		fail("shapeId", "Article shape is required")
	}
	if d.RateTypeID == 0 {
		fail("rateTypeId", "Rate type is required")
	}
	if d.Article == nil || *d.Article <= 0 {
		fail("article", "Article count is required")
	}
	if d.Weight == nil || d.Weight.LessThanOrEqual(decimal.Zero) {
		fail("weight", "Weight is required")
	}
	if d.Weight != nil && d.ChargeWeight != nil && d.ChargeWeight.LessThan(*d.Weight) {
		fail("chargeWeight", "Charge Weight is greater than or equal to Weight")
	}
	return errs
}

// GSTValid reports whether a non-empty GST number has the fixed 15-char form.
func GSTValid(gst string) bool {
	return len(gst) == 15
}

// NormalizeGST upper-cases a GST number as entered.
func NormalizeGST(gst string) string {
	return strings.ToUpper(strings.TrimSpace(gst))
}

func phoneValid(phone string) bool {
	return digitCount(phone) >= 10
}

func ewayBillValid(n string) bool {
	return len(n) == 12 && digitCount(n) == 12
}

func digitCount(s string) int {
	count := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	return count
}
