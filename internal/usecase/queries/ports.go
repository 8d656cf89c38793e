package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CouponSnapshot is the raw coupon row as read from storage; the coupon
// domain entity is rebuilt from it before any business rule runs.
type CouponSnapshot struct {
	ID            uuid.UUID
	Code          string
	AmountOffFils *int64
	PercentOff    *float64
	ValidFrom     *time.Time
	ValidTo       *time.Time
}

// RewardsSnapshot is the raw loyalty row for a customer.
type RewardsSnapshot struct {
	CustomerID uuid.UUID
	Points     int64
	Tier       string
}

type CouponReadStore interface {
	FindByCode(ctx context.Context, code string) (*CouponSnapshot, error)
}

type RewardsReadStore interface {
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) (*RewardsSnapshot, error)
}
