package api

import (
	"errors"
	"net/http"
	"strconv"

	"booking-admission/internal/handler/httperr"
	"booking-admission/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	q queries.BookingQueries
}

func NewBookingHandler(q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{q: q}
}

// @Summary Get booking record
// @Description Get one recorded booking or cancellation by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List supplier bookings
// @Description List recorded bookings and cancellations for one supplier
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Supplier ID"
// @Param limit query int false "Maximum records to return"
// @Success 200 {array} queries.BookingView
// @Failure 401 {object} map[string]string
// @Router /suppliers/{id}/bookings [get]
func (h *BookingHandler) ListBySupplier(c *gin.Context) {
	supplierID := c.Param("id")

	var limit int32
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed < 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, errors.New("invalid limit"), "Invalid limit parameter", nil)
			return
		}
		limit = int32(parsed)
	}

	views, err := h.q.ListBySupplier(c.Request.Context(), supplierID, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if views == nil {
		views = []*queries.BookingView{}
	}

	c.JSON(http.StatusOK, views)
}
