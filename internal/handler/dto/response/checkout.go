package response

import (
	"sweetbloom/internal/usecase/queries"
)

type QuoteResponse struct {
	SubtotalFils        int64  `json:"subtotalFils"`
	CouponDiscountFils  int64  `json:"couponDiscountFils"`
	RewardsDiscountFils int64  `json:"rewardsDiscountFils"`
	DeliveryFeeFils     int64  `json:"deliveryFeeFils"`
	TotalFils           int64  `json:"totalFils"`
	PointsEarned        int64  `json:"pointsEarned"`
	DeliveryMethod      string `json:"deliveryMethod"`
	Emirate             string `json:"emirate"`
	TimeSlot            string `json:"timeSlot"`
}

func FromQuoteView(view *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		SubtotalFils:        view.SubtotalFils,
		CouponDiscountFils:  view.CouponDiscountFils,
		RewardsDiscountFils: view.RewardsDiscountFils,
		DeliveryFeeFils:     view.DeliveryFeeFils,
		TotalFils:           view.TotalFils,
		PointsEarned:        view.PointsEarned,
		DeliveryMethod:      view.DeliveryMethod,
		Emirate:             view.Emirate,
		TimeSlot:            view.SlotLabel,
	}
}
