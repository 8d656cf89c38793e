package schedule

import "time"

// pickupLeadHours is the minimum number of full hours between now and a
// same-day pickup window.
const pickupLeadHours = 2

// Evaluator answers "which slots are still bookable right now" against an
// immutable catalog. It is a pure function of (catalog, now, region, date):
// no clock reads, no shared state, safe to call concurrently. "now" is
// supplied by the caller and held constant through the whole evaluation.
type Evaluator struct {
	catalog *Catalog
}

func NewEvaluator(catalog *Catalog) *Evaluator {
	return &Evaluator{catalog: catalog}
}

// Catalog exposes the underlying slot table for fee lookups at checkout.
func (e *Evaluator) Catalog() *Catalog {
	return e.catalog
}

// AvailableDeliverySlots returns the labels of every delivery window still
// bookable for the region and date, in catalog order. Unknown regions,
// unset dates and past dates all degrade to an empty list.
func (e *Evaluator) AvailableDeliverySlots(now time.Time, region Region, date time.Time) []string {
	labels := []string{}
	if date.IsZero() {
		return labels
	}
	cfg, ok := e.catalog.Region(region)
	if !ok {
		return labels
	}

	nowGST := now.In(GulfStandardTime)
	daysAhead := daysFromToday(nowGST, date)
	if daysAhead < 0 {
		return labels
	}

	nowMinute := nowGST.Hour()*60 + nowGST.Minute()
	for _, slot := range cfg.Slots {
		if slot.Cutoff.Allows(daysAhead, nowMinute) {
			labels = append(labels, slot.Label)
		}
	}
	return labels
}

// AvailableStorePickupSlots returns the pickup windows bookable for the
// date. Any future date beyond today is fully open; for today a window
// must start at least two full hours from now. A started hour counts as
// spent, so the buffer is conservative rather than optimistic.
func (e *Evaluator) AvailableStorePickupSlots(now time.Time, date time.Time) []string {
	labels := []string{}
	if date.IsZero() {
		return labels
	}

	nowGST := now.In(GulfStandardTime)
	daysAhead := daysFromToday(nowGST, date)
	if daysAhead < 0 {
		return labels
	}

	for _, slot := range e.catalog.PickupSlots() {
		if daysAhead > 0 {
			labels = append(labels, slot.Label)
			continue
		}
		hoursLeft := slot.Hour - nowGST.Hour()
		if nowGST.Minute() > 0 {
			hoursLeft--
		}
		if hoursLeft >= pickupLeadHours {
			labels = append(labels, slot.Label)
		}
	}
	return labels
}

// daysFromToday counts calendar days between today (in GST) and the target
// date. Only the date component of the target matters; its time of day and
// zone are ignored so that a date picked as "2026-09-01" means the first of
// September regardless of how the caller parsed it.
func daysFromToday(nowGST, date time.Time) int {
	y, m, d := date.Date()
	target := time.Date(y, m, d, 0, 0, 0, 0, GulfStandardTime)
	ny, nm, nd := nowGST.Date()
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, GulfStandardTime)
	return int(target.Sub(today) / (24 * time.Hour))
}
