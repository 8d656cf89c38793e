//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"sweetbloom/internal/handler/api"
	resdto "sweetbloom/internal/handler/dto/response"
	"sweetbloom/internal/handler/middleware"
	"sweetbloom/internal/pkg/errs"
	"sweetbloom/internal/pkg/jwt"
	"sweetbloom/internal/usecase/queries"
	"sweetbloom/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubCheckoutQueries struct {
	view *queries.QuoteView
	err  error

	gotCustomerID uuid.UUID
	gotParams     queries.QuoteParams
	calls         int
}

func (s *stubCheckoutQueries) Quote(_ context.Context, customerID uuid.UUID, params queries.QuoteParams) (*queries.QuoteView, error) {
	s.calls++
	s.gotCustomerID = customerID
	s.gotParams = params
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	queries    *stubCheckoutQueries
	verifier   *jwt.Verifier
	customerID uuid.UUID
	token      string
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.queries = &stubCheckoutQueries{}
	s.verifier = jwt.NewVerifier("test-secret")
	s.customerID = uuid.New()

	token, err := s.verifier.Sign(s.customerID, time.Hour)
	s.Require().NoError(err)
	s.token = token

	handler := api.NewCheckoutHandler(s.queries)
	authMiddleware := middleware.NewAuthMiddleware(s.verifier)
	s.router.POST("/checkout/quote", authMiddleware.RequireCustomer(), handler.Quote)
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func validQuoteBody() map[string]any {
	return map[string]any{
		"items": []map[string]any{
			{"name": "Red Velvet Cake", "unit_price_fils": 15000, "quantity": 1},
			{"name": "Tulip Bouquet", "unit_price_fils": 6500, "quantity": 2},
		},
		"delivery_method": "delivery",
		"emirate":         "Dubai",
		"date":            "2026-09-15",
		"time_slot":       "4:00 PM - 7:00 PM (Dubai Time)",
	}
}

func (s *CheckoutHandlerTestSuite) TestQuote() {
	url := "/checkout/quote"

	s.Run("success: returns 200 with quote breakdown", func() {
		s.queries.view = &queries.QuoteView{
			SubtotalFils:        28000,
			CouponDiscountFils:  2800,
			RewardsDiscountFils: 0,
			DeliveryFeeFils:     3000,
			TotalFils:           28200,
			PointsEarned:        33,
			DeliveryMethod:      "delivery",
			Emirate:             "Dubai",
			SlotLabel:           "4:00 PM - 7:00 PM (Dubai Time)",
		}
		s.queries.err = nil

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validQuoteBody(), s.token)

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(28000), body.SubtotalFils)
		s.Equal(int64(2800), body.CouponDiscountFils)
		s.Equal(int64(3000), body.DeliveryFeeFils)
		s.Equal(int64(28200), body.TotalFils)
		s.Equal(int64(33), body.PointsEarned)
		s.Equal("Dubai", body.Emirate)

		s.Equal(s.customerID, s.queries.gotCustomerID)
		s.Equal("delivery", s.queries.gotParams.DeliveryMethod)
		s.Equal("Dubai", s.queries.gotParams.Emirate)
		s.Equal(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), s.queries.gotParams.Date)
		s.Len(s.queries.gotParams.Items, 2)
	})

	s.Run("success: coupon code and points flags are forwarded", func() {
		s.queries.view = &queries.QuoteView{}
		s.queries.err = nil

		body := validQuoteBody()
		body["coupon_code"] = " sweet10 "
		body["use_points"] = true

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.token)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal("sweet10", s.queries.gotParams.CouponCode)
		s.True(s.queries.gotParams.UsePoints)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validQuoteBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 with a garbage token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validQuoteBody(), "not-a-jwt")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: 400 on validation failures, queries never called", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing items", mutate: func(m map[string]any) { delete(m, "items") }},
			{name: "empty items", mutate: func(m map[string]any) { m["items"] = []map[string]any{} }},
			{name: "zero quantity", mutate: func(m map[string]any) {
				m["items"] = []map[string]any{{"name": "Cake", "unit_price_fils": 1000, "quantity": 0}}
			}},
			{name: "negative unit price", mutate: func(m map[string]any) {
				m["items"] = []map[string]any{{"name": "Cake", "unit_price_fils": -100, "quantity": 1}}
			}},
			{name: "missing delivery method", mutate: func(m map[string]any) { delete(m, "delivery_method") }},
			{name: "unknown delivery method", mutate: func(m map[string]any) { m["delivery_method"] = "drone" }},
			{name: "missing date", mutate: func(m map[string]any) { delete(m, "date") }},
			{name: "missing time slot", mutate: func(m map[string]any) { delete(m, "time_slot") }},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				before := s.queries.calls
				body := validQuoteBody()
				tc.mutate(body)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.token)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
				s.Equal(before, s.queries.calls)
			})
		}
	})

	s.Run("error: 400 on malformed date", func() {
		body := validQuoteBody()
		body["date"] = "15/09/2026"

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			quoteError     error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid fulfillment",
				quoteError:     errs.ErrInvalidFulfillment,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid fulfillment",
			},
			{
				name:           "slot no longer available",
				quoteError:     errs.ErrSlotUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "no longer available",
			},
			{
				name:           "coupon not found",
				quoteError:     errs.ErrCouponNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Coupon not found",
			},
			{
				name:           "invalid coupon",
				quoteError:     errs.ErrInvalidCoupon,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid or expired coupon",
			},
			{
				name:           "rewards account not found",
				quoteError:     errs.ErrRewardsAccountNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Rewards account not found",
			},
			{
				name:           "empty cart",
				quoteError:     errs.ErrEmptyCart,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "at least one item",
			},
			{
				name:           "domain validation",
				quoteError:     errs.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid cart contents",
			},
			{
				name:           "unexpected failure",
				quoteError:     errs.New("connection refused"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.queries.err = tc.quoteError

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validQuoteBody(), s.token)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
		s.queries.err = nil
	})

	s.Run("error: marked sentinels still map to their status", func() {
		s.queries.err = errs.Mark(errs.New("slot gone"), errs.ErrSlotUnavailable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validQuoteBody(), s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no longer available")
		s.queries.err = nil
	})
}
