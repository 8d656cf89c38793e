package api

import (
	"net/http"

	reqdto "sweetbloom/internal/handler/dto/request"
	resdto "sweetbloom/internal/handler/dto/response"
	"sweetbloom/internal/handler/httperr"
	"sweetbloom/internal/handler/middleware"
	"sweetbloom/internal/pkg/errs"
	"sweetbloom/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutQueries queries.CheckoutQueries
}

func NewCheckoutHandler(checkoutQueries queries.CheckoutQueries) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutQueries: checkoutQueries,
	}
}

// @Summary Quote checkout totals
// @Description Price a cart with fulfillment selection, coupon and reward points applied
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /checkout/quote [post]
func (h *CheckoutHandler) Quote(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.QuoteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	view, err := h.checkoutQueries.Quote(c.Request.Context(), customerID, params)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidFulfillment):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid fulfillment selection", nil)
		case errs.Is(err, errs.ErrSlotUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Time slot is no longer available", nil)
		case errs.Is(err, errs.ErrCouponNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
		case errs.Is(err, errs.ErrInvalidCoupon):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or expired coupon", nil)
		case errs.Is(err, errs.ErrRewardsAccountNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Rewards account not found", nil)
		case errs.Is(err, errs.ErrEmptyCart):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Cart must contain at least one item", nil)
		case errs.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cart contents", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}
