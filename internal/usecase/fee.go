package usecase

import (
	"errors"
	"math"
)

var ErrInvalidAmount = errors.New("invalid amount")

// DefaultFeeRatePercent is the posting fee levied on a product's listed price.
const DefaultFeeRatePercent = 5.0

// PostingFee computes the fee for publishing a product, rounded half-up to
// two decimal places. Pure; price must be a non-negative finite number.
func PostingFee(price, ratePercent float64) (float64, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0, ErrInvalidAmount
	}
	if math.IsNaN(ratePercent) || math.IsInf(ratePercent, 0) || ratePercent < 0 {
		return 0, ErrInvalidAmount
	}
	fee := price * ratePercent / 100
	return math.Round(fee*100) / 100, nil
}
