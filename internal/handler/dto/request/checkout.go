package request

import (
	"strings"
	"time"

	"sweetbloom/internal/usecase/queries"
)

type QuoteItem struct {
	Name          string `json:"name" binding:"required"`
	UnitPriceFils int64  `json:"unit_price_fils" binding:"required,gt=0"`
	Quantity      int64  `json:"quantity" binding:"required,gt=0"`
}

type QuoteRequest struct {
	Items          []QuoteItem `json:"items" binding:"required,min=1,dive"`
	DeliveryMethod string      `json:"delivery_method" binding:"required,oneof=delivery pickup"`
	Emirate        string      `json:"emirate,omitempty"`
	Date           string      `json:"date" binding:"required"`
	TimeSlot       string      `json:"time_slot" binding:"required"`
	CouponCode     *string     `json:"coupon_code,omitempty"`
	UsePoints      bool        `json:"use_points,omitempty"`
}

func (r QuoteRequest) GetCouponCode() string {
	if r.CouponCode == nil {
		return ""
	}
	return strings.TrimSpace(*r.CouponCode)
}

// ToParams converts the wire request into usecase parameters. The date is
// the checkout form's plain YYYY-MM-DD value; only its calendar date
// matters downstream.
func (r QuoteRequest) ToParams() (queries.QuoteParams, error) {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(r.Date))
	if err != nil {
		return queries.QuoteParams{}, err
	}

	items := make([]queries.QuoteItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = queries.QuoteItem{
			Name:          item.Name,
			UnitPriceFils: item.UnitPriceFils,
			Quantity:      item.Quantity,
		}
	}

	return queries.QuoteParams{
		Items:          items,
		DeliveryMethod: r.DeliveryMethod,
		Emirate:        r.Emirate,
		Date:           date,
		SlotLabel:      r.TimeSlot,
		CouponCode:     r.GetCouponCode(),
		UsePoints:      r.UsePoints,
	}, nil
}
