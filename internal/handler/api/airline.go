package api

import (
	"net/http"

	reqdto "booking-admission/internal/handler/dto/request"
	resdto "booking-admission/internal/handler/dto/response"
	"booking-admission/internal/handler/httperr"
	"booking-admission/internal/pkg/clock"
	"booking-admission/internal/pkg/config"
	"booking-admission/internal/pkg/dates"
	"booking-admission/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AirlineHandler struct {
	admission commands.AirlineAdmission
	checks    config.ChecksConfig
	clk       clock.Clock
}

func NewAirlineHandler(admission commands.AirlineAdmission, checks config.ChecksConfig, clk clock.Clock) *AirlineHandler {
	return &AirlineHandler{
		admission: admission,
		checks:    checks,
		clk:       clk,
	}
}

// @Summary Check airline booking admissibility
// @Description Judge a proposed flight booking without committing it
// @Tags airline
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AirlineBookingRequest true "Proposed booking"
// @Success 200 {object} resdto.CheckResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} resdto.CheckResponse
// @Router /airline/bookings/check [post]
func (h *AirlineHandler) Check(c *gin.Context) {
	var req reqdto.AirlineBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	today := dates.FromTime(h.clk.Now())
	err := h.admission.Check(c.Request.Context(), req.SupplierID, req.ToDomain(today), req.Checks.Resolve(h.checks))
	if err != nil {
		if admissionFailure(err) {
			c.JSON(http.StatusUnprocessableEntity, resdto.CheckResponse{
				Admissible: false,
				Reason:     err.Error(),
			})
			return
		}
		respondAdmissionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.CheckResponse{Admissible: true})
}

// @Summary Book airline inventory
// @Description Admit and commit a flight booking
// @Tags airline
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.AirlineBookingRequest true "Booking request"
// @Success 201 {object} resdto.AdmissionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /airline/bookings [post]
func (h *AirlineHandler) Book(c *gin.Context) {
	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	var req reqdto.AirlineBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	today := dates.FromTime(h.clk.Now())
	result, err := h.admission.Book(c.Request.Context(), req.SupplierID, req.ToDomain(today), req.Checks.Resolve(h.checks), idempotencyKey)
	if err != nil {
		respondAdmissionError(c, err)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromBookingResult(result))
}

// @Summary Cancel airline booking
// @Description Restore previously booked flight inventory
// @Tags airline
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AirlineCancellationRequest true "Cancellation request"
// @Success 200 {object} resdto.AdmissionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /airline/cancellations [post]
func (h *AirlineHandler) Cancel(c *gin.Context) {
	var req reqdto.AirlineCancellationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.admission.Cancel(c.Request.Context(), req.SupplierID, req.ToDomain())
	if err != nil {
		respondAdmissionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingResult(result))
}
