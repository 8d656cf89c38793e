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

type stubRewardsQueries struct {
	view *queries.RewardsView
	err  error

	gotCustomerID uuid.UUID
}

func (s *stubRewardsQueries) GetAccount(_ context.Context, customerID uuid.UUID) (*queries.RewardsView, error) {
	s.gotCustomerID = customerID
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

type RewardsHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	queries    *stubRewardsQueries
	customerID uuid.UUID
	token      string
}

func (s *RewardsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.queries = &stubRewardsQueries{}
	s.customerID = uuid.New()

	verifier := jwt.NewVerifier("test-secret")
	token, err := verifier.Sign(s.customerID, time.Hour)
	s.Require().NoError(err)
	s.token = token

	handler := api.NewRewardsHandler(s.queries)
	authMiddleware := middleware.NewAuthMiddleware(verifier)
	s.router.GET("/rewards", authMiddleware.RequireCustomer(), handler.GetAccount)
}

func TestRewardsHandlerSuite(t *testing.T) {
	suite.Run(t, new(RewardsHandlerTestSuite))
}

func (s *RewardsHandlerTestSuite) TestGetAccount() {
	url := "/rewards"

	s.Run("success: returns 200 with balance and tier", func() {
		s.queries.view = &queries.RewardsView{
			CustomerID:     s.customerID,
			Points:         340,
			Tier:           "gold",
			PointValueFils: 25,
		}
		s.queries.err = nil

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.token)

		var body resdto.RewardsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.customerID, body.CustomerID)
		s.Equal(int64(340), body.Points)
		s.Equal("gold", body.Tier)
		s.Equal(int64(25), body.PointValueFils)

		s.Equal(s.customerID, s.queries.gotCustomerID)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 404 when no rewards account exists", func() {
		s.queries.err = errs.Mark(errs.New("no rows"), errs.ErrRewardsAccountNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Rewards account not found")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.queries.err = errs.New("connection refused")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}
