package domain

// ComputeRemaining is the one canonical balance formula:
//
//	remaining = totalAmount * (100 - discountPercentage) / 100 - advancePaid
//
// The result is not clamped; an overpaid booking yields a negative balance
// and is surfaced as-is. Every screen that shows a balance goes through here.
func ComputeRemaining(totalAmount, advancePaid, discountPercentage float64) float64 {
	return totalAmount*(100-discountPercentage)/100 - advancePaid
}

// ValidateBillingInput rejects out-of-range billing fields before they reach
// ComputeRemaining, so the calculator itself never has to error.
func ValidateBillingInput(totalAmount, advancePaid, discountPercentage float64) error {
	if totalAmount < 0 {
		return ValidationError{Field: "totalAmount", Msg: "must not be negative"}
	}
	if advancePaid < 0 {
		return ValidationError{Field: "advancePaid", Msg: "must not be negative"}
	}
	if discountPercentage < 0 || discountPercentage > 100 {
		return ValidationError{Field: "discountPercentage", Msg: "must be between 0 and 100"}
	}
	return nil
}
