package components

import (
	"sweetbloom/internal/infra/readstore"
	"sweetbloom/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		fx.Annotate(
			readstore.NewRewardsReadStore,
			fx.As(new(queries.RewardsReadStore)),
		),
	),
)
