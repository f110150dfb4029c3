//go:build unit || e2e

package builder

import (
	"time"

	"booking-admission/internal/domain/cancellation"
	"booking-admission/internal/domain/pricing"
	reqdto "booking-admission/internal/handler/dto/request"
	"booking-admission/internal/pkg/dates"
	"booking-admission/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	SupplierID string
	RoomType   string
	Rooms      int
	Class      string
	Seats      int
	Arrival    dates.Date
	Departure  dates.Date
	BookedAt   dates.Date
	Currency   string
	Total      float64
	FeeAmount  float64
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		SupplierID: "SUP1",
		RoomType:   "double",
		Rooms:      1,
		Class:      "Y",
		Seats:      1,
		Arrival:    dates.MustParse("2019-03-25"),
		Departure:  dates.MustParse("2019-03-28"),
		BookedAt:   dates.MustParse("2019-03-01"),
		Currency:   "EUR",
		Total:      360,
		FeeAmount:  50,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) fees() cancellation.FeeSchedule {
	return cancellation.FeeSchedule{
		{From: b.BookedAt, To: b.Arrival, Amount: b.FeeAmount},
	}
}

func (b *BookingBuilder) BuildHotelRequestDTO() reqdto.HotelBookingRequest {
	bookedAt := b.BookedAt
	return reqdto.HotelBookingRequest{
		SupplierID: b.SupplierID,
		Rooms:      map[string]int{b.RoomType: b.Rooms},
		Arrival:    b.Arrival,
		Departure:  b.Departure,
		BookedAt:   &bookedAt,
		Fees:       b.fees(),
		Pricing:    pricing.Proposal{Currency: b.Currency, Total: b.Total},
	}
}

func (b *BookingBuilder) BuildAirlineRequestDTO() reqdto.AirlineBookingRequest {
	bookedAt := b.BookedAt
	return reqdto.AirlineBookingRequest{
		SupplierID: b.SupplierID,
		Classes:    map[string]int{b.Class: b.Seats},
		Departure:  b.Departure,
		BookedAt:   &bookedAt,
		Fees:       b.fees(),
		Pricing:    pricing.Proposal{Currency: b.Currency, Total: b.Total},
	}
}

func (b *BookingBuilder) BuildHotelCancellationDTO() reqdto.HotelCancellationRequest {
	return reqdto.HotelCancellationRequest{
		SupplierID: b.SupplierID,
		Rooms:      map[string]int{b.RoomType: b.Rooms},
		Arrival:    b.Arrival,
		Departure:  b.Departure,
	}
}

func (b *BookingBuilder) BuildAirlineCancellationDTO() reqdto.AirlineCancellationRequest {
	return reqdto.AirlineCancellationRequest{
		SupplierID: b.SupplierID,
		Classes:    map[string]int{b.Class: b.Seats},
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	total := b.Total
	arrival := b.Arrival
	departure := b.Departure
	return &queries.BookingView{
		ID:           uuid.New(),
		SupplierID:   b.SupplierID,
		SupplierType: "hotel",
		Kind:         "booking",
		Units:        map[string]int{b.RoomType: b.Rooms},
		Arrival:      &arrival,
		Departure:    &departure,
		Currency:     b.Currency,
		Total:        &total,
		CreatedAt:    time.Now(),
	}
}
