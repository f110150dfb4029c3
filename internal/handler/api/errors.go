package api

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"booking-admission/internal/domain/cancellation"
	"booking-admission/internal/domain/inventory"
	"booking-admission/internal/domain/pricing"
	"booking-admission/internal/handler/httperr"
	"booking-admission/internal/infra/gateway"
	"booking-admission/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// respondAdmissionError maps usecase and domain errors to HTTP statuses.
// Upstream failures surface as 502, or 503 with a Retry-After header when the
// remote service asked the caller to back off.
func respondAdmissionError(c *gin.Context, err error) {
	if upstream, ok := gateway.AsUpstream(err); ok {
		if upstream.Retryable() {
			secs := int(math.Ceil(upstream.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(secs))
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Inventory service is temporarily unavailable", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Inventory service request failed", nil)
		return
	}

	switch {
	case errors.Is(err, commands.ErrDuplicateBooking):
		httperr.AbortWithError(c, http.StatusConflict, err, "Duplicate booking request with different parameters", nil)
	case errors.Is(err, commands.ErrIdempotencyInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking request is currently being processed", nil)
	case errors.Is(err, inventory.ErrInvalidUpdate):
		httperr.AbortWithError(c, http.StatusConflict, err, "Inventory update cannot be applied", gin.H{"reason": err.Error()})
	case errors.Is(err, inventory.ErrRoomUnavailable),
		errors.Is(err, inventory.ErrFlightUnavailable),
		errors.Is(err, inventory.ErrRestrictionsViolated),
		errors.Is(err, cancellation.ErrInadmissibleCancellationFees),
		errors.Is(err, pricing.ErrInvalidPrice):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking is not admissible", gin.H{"reason": err.Error()})
	case errors.Is(err, cancellation.ErrIllFormedCancellationFees):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Cancellation fees are ill-formed", gin.H{"reason": err.Error()})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// admissionFailure distinguishes "the booking is inadmissible" from "the
// check itself could not run". Only the former yields a check verdict.
func admissionFailure(err error) bool {
	return errors.Is(err, inventory.ErrRoomUnavailable) ||
		errors.Is(err, inventory.ErrFlightUnavailable) ||
		errors.Is(err, inventory.ErrRestrictionsViolated) ||
		errors.Is(err, cancellation.ErrIllFormedCancellationFees) ||
		errors.Is(err, cancellation.ErrInadmissibleCancellationFees) ||
		errors.Is(err, pricing.ErrInvalidPrice)
}
