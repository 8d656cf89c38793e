package queries

import (
	"context"

	"sweetbloom/internal/domain/rewards"
	"sweetbloom/internal/infra"
	"sweetbloom/internal/pkg/errs"

	"github.com/google/uuid"
)

type RewardsView struct {
	CustomerID     uuid.UUID `json:"customer_id"`
	Points         int64     `json:"points"`
	Tier           string    `json:"tier"`
	PointValueFils int64     `json:"point_value_fils"`
}

type RewardsQueries interface {
	GetAccount(ctx context.Context, customerID uuid.UUID) (*RewardsView, error)
}

type rewardsQueriesImpl struct {
	store RewardsReadStore
}

func NewRewardsQueries(store RewardsReadStore) RewardsQueries {
	return &rewardsQueriesImpl{store: store}
}

func (q *rewardsQueriesImpl) GetAccount(ctx context.Context, customerID uuid.UUID) (*RewardsView, error) {
	snap, err := q.store.FindByCustomerID(ctx, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRewardsAccountNotFound)
		}
		return nil, errs.Wrap(err, "failed to load rewards account")
	}

	acct, err := rewards.NewAccount(snap.CustomerID, snap.Points, rewards.ParseTier(snap.Tier))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	return &RewardsView{
		CustomerID:     acct.CustomerID(),
		Points:         acct.Points(),
		Tier:           acct.Tier().String(),
		PointValueFils: rewards.PointValueFils,
	}, nil
}
