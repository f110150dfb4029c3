package response

import (
	"booking-admission/internal/usecase/commands"

	"github.com/google/uuid"
)

// AdmissionResponse reports the ledger record for an admitted update.
type AdmissionResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
	Replayed  bool      `json:"replayed,omitempty"`
}

func FromBookingResult(r *commands.BookingResult) AdmissionResponse {
	return AdmissionResponse{
		BookingID: r.BookingID,
		Replayed:  r.Replayed,
	}
}

// CheckResponse is the verdict of a standalone admissibility check.
type CheckResponse struct {
	Admissible bool   `json:"admissible"`
	Reason     string `json:"reason,omitempty"`
}
