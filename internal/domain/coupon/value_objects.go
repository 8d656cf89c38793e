package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// Discount is either a fixed amount off (in fils) or a percentage off,
// never both.
type Discount struct {
	amountOffFils *int64
	percentOff    *float64
}

func NewFixedDiscount(amountOffFils int64) (Discount, error) {
	if amountOffFils < 0 {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{amountOffFils: &amountOffFils}, nil
}

func NewPercentageDiscount(percentOff float64) (Discount, error) {
	if percentOff < 0 || percentOff > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{percentOff: &percentOff}, nil
}

func NewDiscount(amountOffFils *int64, percentOff *float64) (Discount, error) {
	if amountOffFils != nil && percentOff != nil {
		return Discount{}, errors.New("discount can only be either fixed amount or percentage, not both")
	}
	if amountOffFils == nil && percentOff == nil {
		return Discount{}, errors.New("discount must have either fixed amount or percentage")
	}
	if amountOffFils != nil {
		return NewFixedDiscount(*amountOffFils)
	}
	return NewPercentageDiscount(*percentOff)
}

func (d Discount) IsPercentage() bool {
	return d.percentOff != nil
}

func (d Discount) AmountOffFils() int64 {
	if d.amountOffFils != nil {
		return *d.amountOffFils
	}
	return 0
}

func (d Discount) PercentOff() float64 {
	if d.percentOff != nil {
		return *d.percentOff
	}
	return 0
}

// AmountFor returns the discount in fils for the given price, clamped so a
// fixed discount never exceeds the price itself.
func (d Discount) AmountFor(priceFils int64) int64 {
	if d.IsPercentage() {
		return int64(float64(priceFils) * (d.PercentOff() / 100.0))
	}
	if d.AmountOffFils() > priceFils {
		return priceFils
	}
	return d.AmountOffFils()
}
