package response

import (
	"sweetbloom/internal/usecase/queries"

	"github.com/google/uuid"
)

type RewardsResponse struct {
	CustomerID     uuid.UUID `json:"customerId"`
	Points         int64     `json:"points"`
	Tier           string    `json:"tier"`
	PointValueFils int64     `json:"pointValueFils"`
}

func FromRewardsView(view *queries.RewardsView) *RewardsResponse {
	return &RewardsResponse{
		CustomerID:     view.CustomerID,
		Points:         view.Points,
		Tier:           view.Tier,
		PointValueFils: view.PointValueFils,
	}
}
