package calc

import (
	"github.com/shopspring/decimal"

	"freightdesk/models"
)

// AggregateRows derives the booking-level freight and labour figures from
// the line items. Recomputed whenever the row list changes.
func AggregateRows(rows []models.BookingDetail) (freight, labour decimal.Decimal) {
	for _, r := range rows {
		freight = freight.Add(r.Freight)
		labour = labour.Add(r.TotalLabour)
	}
	return freight, labour
}

// Totals sums the booking's charge fields into Total and GrandTotal using
// exact decimal addition. Blank fields contribute zero.
func Totals(b *models.Booking) {
	total := decimal.Zero
	for _, f := range []decimal.Decimal{
		b.Freight, b.LRCharge, b.Labour, b.AOC,
		b.Collection, b.DoorDelivery, b.OLOC, b.Insurance,
		b.Other, b.CarrierRisk, b.BHCharge, b.FOV,
		b.Cartage, b.SGST, b.CGST, b.IGST,
	} {
		total = total.Add(f)
	}
	b.Total = total
	b.GrandTotal = total
}
