package queries

import (
	"time"

	"sweetbloom/internal/domain/schedule"
	"sweetbloom/internal/pkg/clock"
)

// ScheduleQueries answers slot availability for the checkout form. The
// evaluation is pure and cannot fail: unknown regions, unset dates and
// past dates all come back as empty lists, which the storefront renders
// as "no slots available".
type ScheduleQueries interface {
	DeliverySlots(region string, date time.Time) []string
	PickupSlots(date time.Time) []string
}

type scheduleQueriesImpl struct {
	evaluator *schedule.Evaluator
	clock     clock.Clock
}

func NewScheduleQueries(evaluator *schedule.Evaluator, clk clock.Clock) ScheduleQueries {
	return &scheduleQueriesImpl{evaluator: evaluator, clock: clk}
}

func (q *scheduleQueriesImpl) DeliverySlots(region string, date time.Time) []string {
	// Unrecognized regions flow through; the evaluator resolves them to
	// an empty list.
	r, _ := schedule.ParseRegion(region)
	return q.evaluator.AvailableDeliverySlots(q.clock.Now(), r, date)
}

func (q *scheduleQueriesImpl) PickupSlots(date time.Time) []string {
	return q.evaluator.AvailableStorePickupSlots(q.clock.Now(), date)
}
