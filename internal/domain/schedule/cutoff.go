package schedule

import (
	"fmt"
	"time"
)

// GulfStandardTime is the reference time zone for every "now" comparison.
// The UAE does not observe daylight saving, so a fixed UTC+4 offset is
// equivalent to the named Asia/Dubai zone and cheaper to reason about.
var GulfStandardTime = time.FixedZone("GST", 4*60*60)

type CutoffKind string

const (
	// CutoffSameDay offers the slot only for delivery today, while the
	// current time has not passed the cutoff.
	CutoffSameDay CutoffKind = "same_day"
	// CutoffDayAhead never offers the slot for today; for tomorrow the
	// cutoff is checked against today's clock, and any later date is open.
	CutoffDayAhead CutoffKind = "day_ahead"
)

// ClockTime is a wall-clock time of day at minute granularity, interpreted
// in Gulf Standard Time. Cutoff comparisons are minute-of-day integer
// arithmetic, never string or fractional-hour comparisons.
type ClockTime struct {
	Hour   int
	Minute int
}

func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("invalid clock time %02d:%02d", hour, minute)
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

func (t ClockTime) MinuteOfDay() int {
	return t.Hour*60 + t.Minute
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// CutoffRule governs when a delivery slot stops being selectable for a
// given target date. Exactly one kind applies per slot.
type CutoffRule struct {
	Kind CutoffKind
	At   ClockTime
}

func SameDayCutoff(hour, minute int) CutoffRule {
	return CutoffRule{Kind: CutoffSameDay, At: ClockTime{Hour: hour, Minute: minute}}
}

func DayAheadCutoff(hour, minute int) CutoffRule {
	return CutoffRule{Kind: CutoffDayAhead, At: ClockTime{Hour: hour, Minute: minute}}
}

// Allows reports whether a slot with this rule is still bookable for a
// delivery date daysAhead calendar days from today, given the current
// minute of day. daysAhead must already be >= 0; past dates are guarded
// by the evaluator before any rule runs. The cutoff comparison is
// inclusive: booking at the exact cutoff minute still succeeds.
func (c CutoffRule) Allows(daysAhead, nowMinuteOfDay int) bool {
	switch c.Kind {
	case CutoffSameDay:
		// Same-day slots are only ever offered for same-day delivery.
		return daysAhead == 0 && nowMinuteOfDay <= c.At.MinuteOfDay()
	case CutoffDayAhead:
		switch {
		case daysAhead == 0:
			return false
		case daysAhead == 1:
			// Order must be placed a day ahead, so the cutoff is
			// evaluated against today's clock.
			return nowMinuteOfDay <= c.At.MinuteOfDay()
		default:
			return true
		}
	default:
		return false
	}
}
