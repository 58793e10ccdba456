package service

import "github.com/marketflow/storefront/internal/core/domain"

// stepValid gates forward transitions. Checks are presence-only: the mock
// payment backend accepts any card shape, so there is no Luhn or expiry
// validation here.
func stepValid(s domain.CheckoutSession) bool {
	switch s.Step {
	case domain.StepShipping:
		return shippingValid(s.Shipping)
	case domain.StepBilling:
		if s.Billing.SameAsShipping {
			return true
		}
		return billingValid(s.Billing)
	case domain.StepPayment:
		return paymentValid(s.Payment)
	default:
		return false
	}
}

func shippingValid(v domain.ShippingInfo) bool {
	// Phone is the one optional field.
	return v.FirstName != "" && v.LastName != "" && v.Email != "" &&
		v.Address != "" && v.City != "" && v.State != "" && v.ZipCode != ""
}

func billingValid(v domain.BillingInfo) bool {
	return v.FirstName != "" && v.LastName != "" && v.Address != "" &&
		v.City != "" && v.State != "" && v.ZipCode != ""
}

func paymentValid(v domain.PaymentInfo) bool {
	return v.CardNumber != "" && v.ExpiryDate != "" && v.CVV != "" &&
		v.CardholderName != ""
}
