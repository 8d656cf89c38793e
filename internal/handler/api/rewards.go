package api

import (
	"net/http"

	resdto "sweetbloom/internal/handler/dto/response"
	"sweetbloom/internal/handler/httperr"
	"sweetbloom/internal/handler/middleware"
	"sweetbloom/internal/pkg/errs"
	"sweetbloom/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RewardsHandler struct {
	rewardsQueries queries.RewardsQueries
}

func NewRewardsHandler(rewardsQueries queries.RewardsQueries) *RewardsHandler {
	return &RewardsHandler{
		rewardsQueries: rewardsQueries,
	}
}

// @Summary Get rewards account
// @Description Get the current customer's reward points balance and tier
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RewardsResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rewards [get]
func (h *RewardsHandler) GetAccount(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	view, err := h.rewardsQueries.GetAccount(c.Request.Context(), customerID)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrRewardsAccountNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Rewards account not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRewardsView(view))
}
