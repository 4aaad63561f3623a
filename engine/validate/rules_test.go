package validate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightdesk/models"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func validBooking() *models.Booking {
	one := int64(1)
	w := d("50")
	return &models.Booking{
		ToBranchID:      4,
		ConsignorName:   "Shree Traders",
		ConsignorPhone:  "9876543210",
		ConsigneeName:   "Gupta & Sons",
		ConsigneePhone:  "9123456780",
		PaymentTypeID:   1,
		InvoiceNumber:   "INV-77",
		DeclaredValue:   d("12000"),
		PrivateMark:     "ST-9",
		GoodsReceivedBy: "Ramesh",
		Mode:            "Godown",
		Details: []models.BookingDetail{
			{ShapeID: 2, RateTypeID: models.RatePerWeight, Article: &one, Weight: &w, ChargeWeight: &w},
		},
	}
}

func TestBookingValid(t *testing.T) {
	assert.Empty(t, Booking(validBooking()))
}

func TestBookingRequiredFields(t *testing.T) {
	b := validBooking()
	b.ToBranchID = 0
	b.ConsignorName = ""
	errs := Booking(b)
	require.Len(t, errs, 2)
	// fixed order: the first failure is the one the form focuses
	assert.Equal(t, "toBranchId", errs[0].Field)
	assert.Equal(t, "consignorName", errs[1].Field)
}

func TestBookingPhoneRules(t *testing.T) {
	b := validBooking()
	b.ConsignorPhone = "98765"
	errs := Booking(b)
	require.Len(t, errs, 1)
	assert.Equal(t, "consignorPhone", errs[0].Field)

	b.ConsignorPhone = "98765-43210" // separators don't count against digits
	assert.Empty(t, Booking(b))
}

func TestBookingGSTRules(t *testing.T) {
	b := validBooking()
	b.ConsignorGST = "22AAAAA0000A1Z5"
	assert.Empty(t, Booking(b))

	b.ConsignorGST = "22AAAAA"
	errs := Booking(b)
	require.Len(t, errs, 1)
	assert.Equal(t, "consignorGst", errs[0].Field)
}

func TestBookingDoorDeliveryRule(t *testing.T) {
	b := validBooking()
	b.Mode = "Door Delivery"
	errs := Booking(b)
	require.Len(t, errs, 1)
	assert.Equal(t, "doorDelivery", errs[0].Field)

	b.DoorDelivery = d("150")
	assert.Empty(t, Booking(b))
}

func TestBookingEwayBillRule(t *testing.T) {
	b := validBooking()

	t.Run("below threshold not required", func(t *testing.T) {
		b.DeclaredValue = d("49999")
		assert.Empty(t, Booking(b))
	})

	t.Run("at threshold required", func(t *testing.T) {
		b.DeclaredValue = d("50000")
		errs := Booking(b)
		require.Len(t, errs, 1)
		assert.Equal(t, "ewayBillNumber", errs[0].Field)
	})

	t.Run("twelve digit number passes", func(t *testing.T) {
		b.DeclaredValue = d("50000")
		b.EwayBillNumber = "123456789012"
		assert.Empty(t, Booking(b))
	})

	t.Run("wrong length fails", func(t *testing.T) {
		b.EwayBillNumber = "12345678901"
		errs := Booking(b)
		require.Len(t, errs, 1)
		assert.Equal(t, "ewayBillNumber", errs[0].Field)
	})
}

func TestRow(t *testing.T) {
	one := int64(1)
	w := d("100")
	cw := d("90")

	t.Run("complete row passes", func(t *testing.T) {
		cw := d("110")
		errs := Row(&models.BookingDetail{ShapeID: 1, RateTypeID: 2, Article: &one, Weight: &w, ChargeWeight: &cw})
		assert.Empty(t, errs)
	})

	t.Run("charge weight below weight fails", func(t *testing.T) {
		errs := Row(&models.BookingDetail{ShapeID: 1, RateTypeID: 2, Article: &one, Weight: &w, ChargeWeight: &cw})
		require.Len(t, errs, 1)
		assert.Equal(t, "chargeWeight", errs[0].Field)
	})

	t.Run("empty row reports every field", func(t *testing.T) {
		errs := Row(&models.BookingDetail{})
		require.Len(t, errs, 4)
		assert.Equal(t, "shapeId", errs[0].Field)
	})
}

func TestNormalizeGST(t *testing.T) {
	assert.Equal(t, "22AAAAA0000A1Z5", NormalizeGST(" 22aaaaa0000a1z5 "))
}
