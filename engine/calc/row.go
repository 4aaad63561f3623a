package calc

import (
	"github.com/shopspring/decimal"

	"freightdesk/models"
)

// ComputeRow recomputes the derived freight and labour amounts of one line
// item. It is pure: the input row is copied, nothing else is touched, and
// running it twice on the same inputs yields the same outputs. Missing
// inputs zero the derived field instead of leaving a stale value behind.
func ComputeRow(row models.BookingDetail) models.BookingDetail {
	row.Freight = amountFor(row.RateTypeID, row.Rate, row.Article, row.ChargeWeight)
	row.TotalLabour = amountFor(row.LabourRateTypeID, row.LabourRate, row.Article, row.ChargeWeight)
	return row
}

func amountFor(rateTypeID int64, rate *decimal.Decimal, article *int64, chargeWeight *decimal.Decimal) decimal.Decimal {
	if rate == nil {
		return decimal.Zero
	}
	switch rateTypeID {
	case models.RatePerArticle:
		if article == nil {
			return *rate
		}
		return rate.Mul(decimal.NewFromInt(*article))
	case models.RatePerWeight:
		if chargeWeight == nil {
			return *rate
		}
		return rate.Mul(*chargeWeight)
	case models.RateFixed:
		return *rate
	}
	return decimal.Zero
}

// ApplyWeightFloor enforces the charge-weight floor after a weight edit:
// charge weight may never sit below actual weight, so it is raised to match
// whenever the edited weight reaches it.
func ApplyWeightFloor(weight, chargeWeight *decimal.Decimal) *decimal.Decimal {
	if weight == nil {
		return chargeWeight
	}
	if chargeWeight == nil || weight.GreaterThanOrEqual(*chargeWeight) {
		w := *weight
		return &w
	}
	return chargeWeight
}

// ChargeWeightValid reports whether the row satisfies the hard rule
// "charge weight is greater than or equal to weight".
func ChargeWeightValid(weight, chargeWeight *decimal.Decimal) bool {
	if weight == nil || chargeWeight == nil {
		return true
	}
	return chargeWeight.GreaterThanOrEqual(*weight)
}
