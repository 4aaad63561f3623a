package calc

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

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func ip(n int64) *int64 { return &n }

func TestComputeRowFreight(t *testing.T) {
	t.Run("per article multiplies rate by count", func(t *testing.T) {
		row := ComputeRow(models.BookingDetail{
			RateTypeID: models.RatePerArticle,
			Rate:       dp("12.50"),
			Article:    ip(4),
		})
		assert.True(t, row.Freight.Equal(d("50")), "got %s", row.Freight)
	})

	t.Run("per article without count keeps bare rate", func(t *testing.T) {
		row := ComputeRow(models.BookingDetail{
			RateTypeID: models.RatePerArticle,
			Rate:       dp("12.50"),
		})
		assert.True(t, row.Freight.Equal(d("12.50")))
	})

	t.Run("per weight multiplies rate by charge weight", func(t *testing.T) {
		row := ComputeRow(models.BookingDetail{
			RateTypeID:   models.RatePerWeight,
			Rate:         dp("1.75"),
			ChargeWeight: dp("120"),
		})
		assert.True(t, row.Freight.Equal(d("210")))
	})

	t.Run("fixed ignores count and weight", func(t *testing.T) {
		row := ComputeRow(models.BookingDetail{
			RateTypeID:   models.RateFixed,
			Rate:         dp("500"),
			Article:      ip(9),
			ChargeWeight: dp("75"),
		})
		assert.True(t, row.Freight.Equal(d("500")))
	})

	t.Run("missing rate zeroes a previously computed freight", func(t *testing.T) {
		row := ComputeRow(models.BookingDetail{
			RateTypeID: models.RatePerWeight,
			Freight:    d("999"),
		})
		assert.True(t, row.Freight.IsZero())
	})
}

func TestComputeRowLabour(t *testing.T) {
	row := ComputeRow(models.BookingDetail{
		LabourRateTypeID: models.RatePerArticle,
		LabourRate:       dp("3"),
		Article:          ip(10),
	})
	assert.True(t, row.TotalLabour.Equal(d("30")))

	row = ComputeRow(models.BookingDetail{
		LabourRateTypeID: models.RatePerWeight,
		LabourRate:       dp("0.50"),
		ChargeWeight:     dp("240"),
	})
	assert.True(t, row.TotalLabour.Equal(d("120")))
}

func TestComputeRowIdempotent(t *testing.T) {
	in := models.BookingDetail{
		RateTypeID:       models.RatePerWeight,
		Rate:             dp("2.25"),
		Article:          ip(3),
		Weight:           dp("90"),
		ChargeWeight:     dp("100"),
		LabourRateTypeID: models.RateFixed,
		LabourRate:       dp("40"),
	}
	once := ComputeRow(in)
	twice := ComputeRow(once)
	assert.True(t, once.Freight.Equal(twice.Freight))
	assert.True(t, once.TotalLabour.Equal(twice.TotalLabour))
	// the original input is untouched
	assert.True(t, in.Freight.IsZero())
}

func TestApplyWeightFloor(t *testing.T) {
	t.Run("weight above charge weight raises it", func(t *testing.T) {
		cw := ApplyWeightFloor(dp("150"), dp("100"))
		require.NotNil(t, cw)
		assert.True(t, cw.Equal(d("150")))
	})

	t.Run("weight equal to charge weight keeps it pinned", func(t *testing.T) {
		cw := ApplyWeightFloor(dp("100"), dp("100"))
		require.NotNil(t, cw)
		assert.True(t, cw.Equal(d("100")))
	})

	t.Run("weight below charge weight leaves it alone", func(t *testing.T) {
		cw := ApplyWeightFloor(dp("80"), dp("100"))
		require.NotNil(t, cw)
		assert.True(t, cw.Equal(d("100")))
	})

	t.Run("blank charge weight is filled from weight", func(t *testing.T) {
		cw := ApplyWeightFloor(dp("60"), nil)
		require.NotNil(t, cw)
		assert.True(t, cw.Equal(d("60")))
	})
}

func TestChargeWeightValid(t *testing.T) {
	assert.True(t, ChargeWeightValid(dp("90"), dp("100")))
	assert.True(t, ChargeWeightValid(dp("100"), dp("100")))
	assert.False(t, ChargeWeightValid(dp("110"), dp("100")))
	assert.True(t, ChargeWeightValid(nil, dp("100")))
}
