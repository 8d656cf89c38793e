package checkout

import (
	"errors"

	"sweetbloom/internal/domain/coupon"
	"sweetbloom/internal/domain/rewards"
)

var (
	ErrEmptyCart       = errors.New("cart has no items")
	ErrInvalidLineItem = errors.New("line item price and quantity must be positive")
)

// LineItem is one cart row. Prices are in fils so the whole quote is
// integer arithmetic; the float rounding drift of the storefront's
// client-side total never reappears here.
type LineItem struct {
	Name          string
	UnitPriceFils int64
	Quantity      int64
}

// Quote is the priced breakdown of a checkout. DeliveryFeeFils is zero
// for store pickup.
type Quote struct {
	SubtotalFils        int64
	CouponDiscountFils  int64
	RewardsDiscountFils int64
	DeliveryFeeFils     int64
	TotalFils           int64
	PointsEarned        int64
}

// ComputeQuote prices a cart. Discounts apply in storefront order — coupon
// first, then reward points — against a running total that never goes
// negative; the delivery fee is added on top and is never discounted.
// Points earned are computed on the final total at the account's tier.
func ComputeQuote(
	items []LineItem,
	coup *coupon.Coupon,
	acct *rewards.Account,
	usePoints bool,
	deliveryFeeFils int64,
) (Quote, error) {
	if len(items) == 0 {
		return Quote{}, ErrEmptyCart
	}

	var subtotal int64
	for _, item := range items {
		if item.UnitPriceFils <= 0 || item.Quantity <= 0 {
			return Quote{}, ErrInvalidLineItem
		}
		subtotal += item.UnitPriceFils * item.Quantity
	}

	remaining := subtotal

	var couponDiscount int64
	if coup != nil {
		couponDiscount = coup.DiscountFor(subtotal)
		if couponDiscount > remaining {
			couponDiscount = remaining
		}
		remaining -= couponDiscount
	}

	var rewardsDiscount int64
	if usePoints && acct != nil {
		rewardsDiscount = acct.RedeemableFils(subtotal)
		if rewardsDiscount > remaining {
			rewardsDiscount = remaining
		}
		remaining -= rewardsDiscount
	}

	total := remaining + deliveryFeeFils

	var pointsEarned int64
	if acct != nil {
		pointsEarned = acct.PointsEarned(total)
	}

	return Quote{
		SubtotalFils:        subtotal,
		CouponDiscountFils:  couponDiscount,
		RewardsDiscountFils: rewardsDiscount,
		DeliveryFeeFils:     deliveryFeeFils,
		TotalFils:           total,
		PointsEarned:        pointsEarned,
	}, nil
}
