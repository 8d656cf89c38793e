package checkout

import (
	"errors"
	"strings"
	"time"

	"sweetbloom/internal/domain/schedule"
)

var ErrInvalidMethod = errors.New("invalid fulfillment method")

// Method is how the order leaves the store.
type Method string

const (
	MethodDelivery Method = "delivery"
	MethodPickup   Method = "pickup"
)

func ParseMethod(raw string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(MethodDelivery):
		return MethodDelivery, nil
	case string(MethodPickup):
		return MethodPickup, nil
	default:
		return "", ErrInvalidMethod
	}
}

func (m Method) String() string {
	return string(m)
}

// Selection is the fulfillment choice attached to a quote: method, region,
// target date and the chosen slot label. Delivery and pickup labels live
// in separate namespaces; a selection never carries one across a method
// switch.
type Selection struct {
	Method Method
	Region schedule.Region
	Date   time.Time
	Slot   string
}

// Normalized enforces the pickup contract: pickup always happens at the
// store's home region, whatever region the client sent.
func (s Selection) Normalized() Selection {
	if s.Method == MethodPickup {
		s.Region = schedule.StorePickupRegion
	}
	return s
}

// SwitchMethod returns the selection after the customer toggles the
// fulfillment method. The slot is cleared because the previous label is
// meaningless under the new method, and pickup snaps the region to the
// store's emirate.
func (s Selection) SwitchMethod(to Method) Selection {
	if to == s.Method {
		return s
	}
	s.Method = to
	s.Slot = ""
	return s.Normalized()
}
