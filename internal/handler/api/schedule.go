package api

import (
	"errors"
	"net/http"
	"time"

	resdto "sweetbloom/internal/handler/dto/response"
	"sweetbloom/internal/handler/httperr"
	"sweetbloom/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

var (
	errDateRequired = errors.New("date query parameter is required")
	errDateFormat   = errors.New("date must be in YYYY-MM-DD format")
)

type ScheduleHandler struct {
	scheduleQueries queries.ScheduleQueries
}

func NewScheduleHandler(scheduleQueries queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleQueries: scheduleQueries,
	}
}

// @Summary List delivery slots
// @Description List delivery time slots still bookable for an emirate on a given date
// @Tags schedule
// @Produce json
// @Param emirate query string true "Emirate name (e.g. Dubai, Sharjah)"
// @Param date query string true "Delivery date in YYYY-MM-DD"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} httperr.Response
// @Router /schedule/delivery-slots [get]
func (h *ScheduleHandler) GetDeliverySlots(c *gin.Context) {
	emirate := c.Query("emirate")
	if emirate == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "emirate query parameter is required", nil)
		return
	}

	date, err := h.parseDate(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	slots := h.scheduleQueries.DeliverySlots(emirate, date)
	c.JSON(http.StatusOK, resdto.FromSlots(slots))
}

// @Summary List pickup slots
// @Description List store pickup slots still bookable for a given date
// @Tags schedule
// @Produce json
// @Param date query string true "Pickup date in YYYY-MM-DD"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} httperr.Response
// @Router /schedule/pickup-slots [get]
func (h *ScheduleHandler) GetPickupSlots(c *gin.Context) {
	date, err := h.parseDate(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	slots := h.scheduleQueries.PickupSlots(date)
	c.JSON(http.StatusOK, resdto.FromSlots(slots))
}

func (h *ScheduleHandler) parseDate(c *gin.Context) (time.Time, error) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return time.Time{}, errDateRequired
	}

	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, errDateFormat
	}

	return date, nil
}
