//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"sweetbloom/internal/handler/api"
	resdto "sweetbloom/internal/handler/dto/response"
	"sweetbloom/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type stubScheduleQueries struct {
	deliverySlots []string
	pickupSlots   []string

	gotRegion string
	gotDate   time.Time
}

func (s *stubScheduleQueries) DeliverySlots(region string, date time.Time) []string {
	s.gotRegion = region
	s.gotDate = date
	return s.deliverySlots
}

func (s *stubScheduleQueries) PickupSlots(date time.Time) []string {
	s.gotDate = date
	return s.pickupSlots
}

type ScheduleHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	queries *stubScheduleQueries
}

func (s *ScheduleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.queries = &stubScheduleQueries{}

	handler := api.NewScheduleHandler(s.queries)
	s.router.GET("/schedule/delivery-slots", handler.GetDeliverySlots)
	s.router.GET("/schedule/pickup-slots", handler.GetPickupSlots)
}

func TestScheduleHandlerSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}

func (s *ScheduleHandlerTestSuite) TestGetDeliverySlots() {
	s.Run("success: returns slot labels for emirate and date", func() {
		s.queries.deliverySlots = []string{"4:00 PM - 7:00 PM (Dubai Time)", "7:00 PM - 10:00 PM (Dubai Time)"}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/schedule/delivery-slots?emirate=Dubai&date=2026-09-15", nil, "")

		var body resdto.SlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.queries.deliverySlots, body.Slots)
		s.Equal("Dubai", s.queries.gotRegion)
		s.Equal(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), s.queries.gotDate)
	})

	s.Run("success: empty availability is a JSON array, not null", func() {
		s.queries.deliverySlots = nil

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/schedule/delivery-slots?emirate=Sharjah&date=2026-09-15", nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq(`{"slots":[]}`, rec.Body.String())
	})

	s.Run("success: unknown emirate passes through and yields whatever queries return", func() {
		s.queries.deliverySlots = []string{}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/schedule/delivery-slots?emirate=Atlantis&date=2026-09-15", nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal("Atlantis", s.queries.gotRegion)
	})

	s.Run("error: 400 when emirate is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/schedule/delivery-slots?date=2026-09-15", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "emirate")
	})

	s.Run("error: 400 when date is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/schedule/delivery-slots?emirate=Dubai", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "date")
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/schedule/delivery-slots?emirate=Dubai&date=15-09-2026", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})
}

func (s *ScheduleHandlerTestSuite) TestGetPickupSlots() {
	s.Run("success: returns pickup slot labels", func() {
		s.queries.pickupSlots = []string{"9:00 AM", "10:00 AM", "11:00 AM"}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/schedule/pickup-slots?date=2026-09-15", nil, "")

		var body resdto.SlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.queries.pickupSlots, body.Slots)
	})

	s.Run("error: 400 when date is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/schedule/pickup-slots", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "date")
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/schedule/pickup-slots?date=tomorrow", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})
}
