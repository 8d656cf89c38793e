package errs

import "errors"

// Sentinel errors shared between usecases and handlers.
var (
	// Coupon errors
	ErrCouponNotFound = errors.New("coupon not found")
	ErrInvalidCoupon  = errors.New("invalid coupon")

	// Rewards errors
	ErrRewardsAccountNotFound = errors.New("rewards account not found")

	// Checkout errors
	ErrSlotUnavailable    = errors.New("time slot is not available")
	ErrInvalidFulfillment = errors.New("invalid fulfillment selection")
	ErrEmptyCart          = errors.New("cart has no items")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
