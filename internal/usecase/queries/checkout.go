package queries

import (
	"context"
	"time"

	"sweetbloom/internal/domain/checkout"
	"sweetbloom/internal/domain/coupon"
	"sweetbloom/internal/domain/rewards"
	"sweetbloom/internal/domain/schedule"
	"sweetbloom/internal/infra"
	"sweetbloom/internal/pkg/clock"
	"sweetbloom/internal/pkg/errs"

	"github.com/google/uuid"
)

type QuoteItem struct {
	Name          string
	UnitPriceFils int64
	Quantity      int64
}

type QuoteParams struct {
	Items          []QuoteItem
	DeliveryMethod string
	Emirate        string
	Date           time.Time
	SlotLabel      string
	CouponCode     string
	UsePoints      bool
}

type QuoteView struct {
	SubtotalFils        int64  `json:"subtotal_fils"`
	CouponDiscountFils  int64  `json:"coupon_discount_fils"`
	RewardsDiscountFils int64  `json:"rewards_discount_fils"`
	DeliveryFeeFils     int64  `json:"delivery_fee_fils"`
	TotalFils           int64  `json:"total_fils"`
	PointsEarned        int64  `json:"points_earned"`
	DeliveryMethod      string `json:"delivery_method"`
	Emirate             string `json:"emirate"`
	SlotLabel           string `json:"time_slot"`
}

// CheckoutQueries prices a cart against the live slot rules. A quote is a
// read: nothing is reserved or persisted, so stale quotes are harmless and
// the storefront simply re-quotes on every change.
type CheckoutQueries interface {
	Quote(ctx context.Context, customerID uuid.UUID, params QuoteParams) (*QuoteView, error)
}

type checkoutQueriesImpl struct {
	evaluator *schedule.Evaluator
	clock     clock.Clock
	coupons   CouponReadStore
	rewards   RewardsReadStore
}

func NewCheckoutQueries(
	evaluator *schedule.Evaluator,
	clk clock.Clock,
	coupons CouponReadStore,
	rewardsStore RewardsReadStore,
) CheckoutQueries {
	return &checkoutQueriesImpl{
		evaluator: evaluator,
		clock:     clk,
		coupons:   coupons,
		rewards:   rewardsStore,
	}
}

func (q *checkoutQueriesImpl) Quote(ctx context.Context, customerID uuid.UUID, params QuoteParams) (*QuoteView, error) {
	// One clock sample for the whole quote, so the slot check and the
	// coupon window check agree on what "now" means.
	now := q.clock.Now()

	sel, err := q.resolveSelection(params)
	if err != nil {
		return nil, err
	}

	if err := q.validateSlot(now, sel); err != nil {
		return nil, err
	}

	coup, err := q.resolveCoupon(ctx, params.CouponCode, now)
	if err != nil {
		return nil, err
	}

	acct, err := q.resolveAccount(ctx, customerID, params.UsePoints)
	if err != nil {
		return nil, err
	}

	items := make([]checkout.LineItem, len(params.Items))
	for i, item := range params.Items {
		items[i] = checkout.LineItem{
			Name:          item.Name,
			UnitPriceFils: item.UnitPriceFils,
			Quantity:      item.Quantity,
		}
	}

	quote, err := checkout.ComputeQuote(items, coup, acct, params.UsePoints, q.deliveryFee(sel))
	if err != nil {
		if errs.Is(err, checkout.ErrEmptyCart) {
			return nil, errs.Mark(err, errs.ErrEmptyCart)
		}
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	return &QuoteView{
		SubtotalFils:        quote.SubtotalFils,
		CouponDiscountFils:  quote.CouponDiscountFils,
		RewardsDiscountFils: quote.RewardsDiscountFils,
		DeliveryFeeFils:     quote.DeliveryFeeFils,
		TotalFils:           quote.TotalFils,
		PointsEarned:        quote.PointsEarned,
		DeliveryMethod:      sel.Method.String(),
		Emirate:             sel.Region.String(),
		SlotLabel:           sel.Slot,
	}, nil
}

func (q *checkoutQueriesImpl) resolveSelection(params QuoteParams) (checkout.Selection, error) {
	method, err := checkout.ParseMethod(params.DeliveryMethod)
	if err != nil {
		return checkout.Selection{}, errs.Mark(err, errs.ErrInvalidFulfillment)
	}

	region, known := schedule.ParseRegion(params.Emirate)
	if method == checkout.MethodDelivery && !known {
		return checkout.Selection{}, errs.Mark(
			errs.Newf("unknown emirate %q", params.Emirate),
			errs.ErrInvalidFulfillment,
		)
	}

	sel := checkout.Selection{
		Method: method,
		Region: region,
		Date:   params.Date,
		Slot:   params.SlotLabel,
	}
	return sel.Normalized(), nil
}

func (q *checkoutQueriesImpl) validateSlot(now time.Time, sel checkout.Selection) error {
	var available []string
	switch sel.Method {
	case checkout.MethodPickup:
		available = q.evaluator.AvailableStorePickupSlots(now, sel.Date)
	default:
		available = q.evaluator.AvailableDeliverySlots(now, sel.Region, sel.Date)
	}

	for _, label := range available {
		if label == sel.Slot {
			return nil
		}
	}
	return errs.Mark(
		errs.Newf("slot %q is not bookable for %s on %s", sel.Slot, sel.Method, sel.Date.Format("2006-01-02")),
		errs.ErrSlotUnavailable,
	)
}

func (q *checkoutQueriesImpl) resolveCoupon(ctx context.Context, code string, now time.Time) (*coupon.Coupon, error) {
	if code == "" {
		return nil, nil
	}

	normalized, err := coupon.NewCode(code)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCoupon)
	}

	snap, err := q.coupons.FindByCode(ctx, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCouponNotFound)
		}
		return nil, errs.Wrap(err, "failed to load coupon")
	}

	coup, err := coupon.NewCoupon(snap.ID, snap.Code, snap.AmountOffFils, snap.PercentOff, snap.ValidFrom, snap.ValidTo)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCoupon)
	}
	if err := coup.ValidateUsage(now); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCoupon)
	}
	return coup, nil
}

func (q *checkoutQueriesImpl) resolveAccount(ctx context.Context, customerID uuid.UUID, usePoints bool) (*rewards.Account, error) {
	snap, err := q.rewards.FindByCustomerID(ctx, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			if usePoints {
				return nil, errs.Mark(err, errs.ErrRewardsAccountNotFound)
			}
			// Customers without a loyalty row simply earn nothing.
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to load rewards account")
	}

	acct, err := rewards.NewAccount(snap.CustomerID, snap.Points, rewards.ParseTier(snap.Tier))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return acct, nil
}

func (q *checkoutQueriesImpl) deliveryFee(sel checkout.Selection) int64 {
	if sel.Method == checkout.MethodPickup {
		return 0
	}
	cfg, ok := q.evaluator.Catalog().Region(sel.Region)
	if !ok {
		return 0
	}
	return cfg.DeliveryFeeFils
}
