package pricing

import "errors"

var ErrInvalidPercent = errors.New("discount percent must be between 0 and 100")

// ReferralPercent is the referrer's cut of a referred user's paid amount.
const ReferralPercent = 10

// FinalPrice applies a validated discount percent to a base price. The
// result never goes below zero or above the base price; a free product
// stays free under any discount.
func FinalPrice(basePrice float64, discountPercent int) float64 {
	if basePrice <= 0 {
		return 0
	}
	price := basePrice * (1 - float64(discountPercent)/100)
	if price < 0 {
		return 0
	}
	if price > basePrice {
		return basePrice
	}
	return price
}

// ReferralCut is the amount credited to a referrer for one settled line.
func ReferralCut(amount float64) float64 {
	return amount * ReferralPercent / 100
}

// ValidatePercent guards discount inputs at the redemption and admin
// boundaries; FinalPrice assumes an already validated value.
func ValidatePercent(percent int) error {
	if percent < 0 || percent > 100 {
		return ErrInvalidPercent
	}
	return nil
}
