package rewards

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNegativePoints = errors.New("points balance cannot be negative")

// PointValueFils is the redemption value of one loyalty point (0.25 AED).
const PointValueFils = 25

// redemptionCapBasisPoints caps the redeemable value at 25% of the item
// subtotal, so points never pay for more than a quarter of the cart.
const redemptionCapBasisPoints = 2500

// Account is a customer's loyalty state as read from the rewards store.
type Account struct {
	customerID uuid.UUID
	points     int64
	tier       Tier
}

func NewAccount(customerID uuid.UUID, points int64, tier Tier) (*Account, error) {
	if points < 0 {
		return nil, ErrNegativePoints
	}
	return &Account{customerID: customerID, points: points, tier: tier}, nil
}

func (a *Account) CustomerID() uuid.UUID { return a.customerID }
func (a *Account) Points() int64         { return a.points }
func (a *Account) Tier() Tier            { return a.tier }

// RedeemableFils is the discount the balance is worth against the given
// item subtotal: the full balance at PointValueFils each, capped at 25%
// of the subtotal.
func (a *Account) RedeemableFils(subtotalFils int64) int64 {
	if subtotalFils <= 0 {
		return 0
	}
	value := a.points * PointValueFils
	capFils := subtotalFils * redemptionCapBasisPoints / 10000
	if value > capFils {
		return capFils
	}
	return value
}

// PointsEarned is the whole number of points a completed order of the
// given total grants at this account's tier: floor(total AED × rate).
func (a *Account) PointsEarned(totalFils int64) int64 {
	if totalFils <= 0 {
		return 0
	}
	return totalFils * a.tier.EarnBasisPoints() / (10000 * 100)
}
