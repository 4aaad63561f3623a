package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"freightdesk/models"
)

func TestTotals(t *testing.T) {
	t.Run("sums all charge fields into total and grand total", func(t *testing.T) {
		b := &models.Booking{
			Freight:    d("100.50"),
			LRCharge:   d("20"),
			Collection: d("15.25"),
		}
		Totals(b)
		assert.True(t, b.Total.Equal(d("135.75")), "got %s", b.Total)
		assert.True(t, b.GrandTotal.Equal(b.Total))
	})

	t.Run("order of contributions does not matter", func(t *testing.T) {
		a := &models.Booking{Freight: d("0.1"), SGST: d("0.2"), IGST: d("0.3")}
		b := &models.Booking{Freight: d("0.3"), SGST: d("0.1"), IGST: d("0.2")}
		Totals(a)
		Totals(b)
		assert.True(t, a.GrandTotal.Equal(b.GrandTotal))
		assert.True(t, a.GrandTotal.Equal(d("0.6")))
	})

	t.Run("blank booking totals zero", func(t *testing.T) {
		b := &models.Booking{}
		Totals(b)
		assert.True(t, b.Total.IsZero())
		assert.True(t, b.GrandTotal.IsZero())
	})
}

func TestAggregateRows(t *testing.T) {
	rows := []models.BookingDetail{
		{Freight: d("210"), TotalLabour: d("30")},
		{Freight: d("90.25"), TotalLabour: d("12.75")},
	}
	freight, labour := AggregateRows(rows)
	assert.True(t, freight.Equal(d("300.25")))
	assert.True(t, labour.Equal(d("42.75")))

	freight, labour = AggregateRows(nil)
	assert.True(t, freight.IsZero())
	assert.True(t, labour.IsZero())
}
