package domain

// CheckoutStep numbers the wizard pages. Steps advance strictly by one,
// forward after validation only.
type CheckoutStep int

const (
	StepShipping CheckoutStep = iota + 1
	StepBilling
	StepPayment
)

// CheckoutSession is the transient state of one checkout flow. It is never
// persisted: navigating away or restarting the process discards it.
type CheckoutSession struct {
	Step     CheckoutStep
	Shipping ShippingInfo
	Billing  BillingInfo
	Payment  PaymentInfo
}

// Quote is the pricing breakdown for the current cart contents. It is
// recomputed from the cart on every request and never cached.
type Quote struct {
	Subtotal float64
	Shipping float64
	Tax      float64
	Total    float64
}
