package components

import (
	"sweetbloom/internal/domain/schedule"
	"sweetbloom/internal/pkg/clock"
	"sweetbloom/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		schedule.DefaultCatalog,
		schedule.NewEvaluator,
		queries.NewScheduleQueries,
		queries.NewCheckoutQueries,
		queries.NewRewardsQueries,
	),
)
