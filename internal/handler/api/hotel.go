package api

import (
	"errors"
	"net/http"

	reqdto "booking-admission/internal/handler/dto/request"
	resdto "booking-admission/internal/handler/dto/response"
	"booking-admission/internal/handler/httperr"
	"booking-admission/internal/pkg/clock"
	"booking-admission/internal/pkg/config"
	"booking-admission/internal/pkg/dates"
	"booking-admission/internal/pkg/errs"
	"booking-admission/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HotelHandler struct {
	admission commands.HotelAdmission
	checks    config.ChecksConfig
	clk       clock.Clock
}

func NewHotelHandler(admission commands.HotelAdmission, checks config.ChecksConfig, clk clock.Clock) *HotelHandler {
	return &HotelHandler{
		admission: admission,
		checks:    checks,
		clk:       clk,
	}
}

// @Summary Check hotel booking admissibility
// @Description Judge a proposed hotel booking without committing it
// @Tags hotel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.HotelBookingRequest true "Proposed booking"
// @Success 200 {object} resdto.CheckResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} resdto.CheckResponse
// @Router /hotel/bookings/check [post]
func (h *HotelHandler) Check(c *gin.Context) {
	var req reqdto.HotelBookingRequest
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

// @Summary Book hotel inventory
// @Description Admit and commit a hotel booking
// @Tags hotel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.HotelBookingRequest true "Booking request"
// @Success 201 {object} resdto.AdmissionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /hotel/bookings [post]
func (h *HotelHandler) Book(c *gin.Context) {
	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	var req reqdto.HotelBookingRequest
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

// @Summary Cancel hotel booking
// @Description Restore previously booked hotel inventory
// @Tags hotel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.HotelCancellationRequest true "Cancellation request"
// @Success 200 {object} resdto.AdmissionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /hotel/cancellations [post]
func (h *HotelHandler) Cancel(c *gin.Context) {
	var req reqdto.HotelCancellationRequest
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

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errs.ErrIdempotencyKeyRequired
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}

	return key, nil
}
