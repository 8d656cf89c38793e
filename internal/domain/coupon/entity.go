package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCouponExpired     = errors.New("coupon has expired")
	ErrCouponNotYetValid = errors.New("coupon is not yet valid")
)

type Coupon struct {
	id        uuid.UUID
	code      Code
	discount  Discount
	validFrom *time.Time
	validTo   *time.Time
}

func NewCoupon(
	id uuid.UUID,
	code string,
	amountOffFils *int64,
	percentOff *float64,
	validFrom, validTo *time.Time,
) (*Coupon, error) {
	couponCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	discount, err := NewDiscount(amountOffFils, percentOff)
	if err != nil {
		return nil, err
	}

	return &Coupon{
		id:        id,
		code:      couponCode,
		discount:  discount,
		validFrom: validFrom,
		validTo:   validTo,
	}, nil
}

func (c *Coupon) IsValidAt(t time.Time) bool {
	if c.validFrom != nil && t.Before(*c.validFrom) {
		return false
	}
	if c.validTo != nil && t.After(*c.validTo) {
		return false
	}
	return true
}

func (c *Coupon) ValidateUsage(t time.Time) error {
	if !c.IsValidAt(t) {
		if c.validFrom != nil && t.Before(*c.validFrom) {
			return ErrCouponNotYetValid
		}
		return ErrCouponExpired
	}
	return nil
}

// DiscountFor returns the discount this coupon grants against the given
// subtotal, in fils.
func (c *Coupon) DiscountFor(subtotalFils int64) int64 {
	return c.discount.AmountFor(subtotalFils)
}

func (c *Coupon) ID() uuid.UUID         { return c.id }
func (c *Coupon) Code() Code            { return c.code }
func (c *Coupon) Discount() Discount    { return c.discount }
func (c *Coupon) ValidFrom() *time.Time { return c.validFrom }
func (c *Coupon) ValidTo() *time.Time   { return c.validTo }
