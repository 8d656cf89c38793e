package readstore

import (
	"context"
	"errors"
	"strings"

	"sweetbloom/internal/infra"
	"sweetbloom/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const couponByCodeSQL = `
SELECT id, code, amount_off_fils, percent_off, valid_from, valid_to
FROM coupons
WHERE code = $1
`

type CouponReadStore struct {
	pool *pgxpool.Pool
}

func NewCouponReadStore(pool *pgxpool.Pool) *CouponReadStore {
	return &CouponReadStore{pool: pool}
}

func (r *CouponReadStore) FindByCode(ctx context.Context, code string) (*queries.CouponSnapshot, error) {
	var snap queries.CouponSnapshot

	row := r.pool.QueryRow(ctx, couponByCodeSQL, strings.ToUpper(code))
	err := row.Scan(
		&snap.ID,
		&snap.Code,
		&snap.AmountOffFils,
		&snap.PercentOff,
		&snap.ValidFrom,
		&snap.ValidTo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	return &snap, nil
}
