package readstore

import (
	"context"
	"errors"

	"sweetbloom/internal/infra"
	"sweetbloom/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const rewardsByCustomerSQL = `
SELECT customer_id, points, tier
FROM reward_accounts
WHERE customer_id = $1
`

type RewardsReadStore struct {
	pool *pgxpool.Pool
}

func NewRewardsReadStore(pool *pgxpool.Pool) *RewardsReadStore {
	return &RewardsReadStore{pool: pool}
}

func (r *RewardsReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID) (*queries.RewardsSnapshot, error) {
	var snap queries.RewardsSnapshot

	row := r.pool.QueryRow(ctx, rewardsByCustomerSQL, customerID)
	err := row.Scan(&snap.CustomerID, &snap.Points, &snap.Tier)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("rewards account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rewards account", err)
	}
	return &snap, nil
}
