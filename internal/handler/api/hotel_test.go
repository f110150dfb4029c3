//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"booking-admission/internal/domain/inventory"
	"booking-admission/internal/domain/pricing"
	"booking-admission/internal/handler/api"
	resdto "booking-admission/internal/handler/dto/response"
	"booking-admission/internal/infra/gateway"
	"booking-admission/internal/pkg/clock"
	"booking-admission/internal/pkg/config"
	"booking-admission/internal/usecase/commands"
	"booking-admission/tests/common/builder"
	"booking-admission/tests/common/httptest"
	"booking-admission/tests/common/testutil"
	commandsmock "booking-admission/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HotelHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockAdmission *commandsmock.MockHotelAdmission
	handler       *api.HotelHandler
}

func (s *HotelHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAdmission = commandsmock.NewMockHotelAdmission(s.mockCtrl)

	checks := config.ChecksConfig{Availability: true, CancellationFees: true, TotalPrice: true}
	clk := clock.NewMockClock(time.Date(2019, 3, 1, 12, 0, 0, 0, time.UTC))
	s.handler = api.NewHotelHandler(s.mockAdmission, checks, clk)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("client_id", "test-client")
		c.Next()
	}

	s.router.POST("/hotel/bookings/check", authMiddleware, s.handler.Check)
	s.router.POST("/hotel/bookings", authMiddleware, s.handler.Book)
	s.router.POST("/hotel/cancellations", authMiddleware, s.handler.Cancel)
}

func (s *HotelHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHotelHandlerSuite(t *testing.T) {
	suite.Run(t, new(HotelHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCheck
// ================================================================================

func (s *HotelHandlerTestSuite) TestCheck() {
	url := "/hotel/bookings/check"
	reqBody := builder.NewBookingBuilder().BuildHotelRequestDTO()

	s.Run("success: returns 200 with admissible verdict", func() {
		s.mockAdmission.EXPECT().Check(gomock.Any(), "SUP1", gomock.Any(), gomock.Any()).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CheckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Admissible)
		s.Empty(body.Reason)
	})

	s.Run("inadmissible: returns 422 with the failing reason", func() {
		s.mockAdmission.EXPECT().Check(gomock.Any(), "SUP1", gomock.Any(), gomock.Any()).
			Return(inventory.ErrRoomUnavailable).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		var body resdto.CheckResponse
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.False(body.Admissible)
		s.Contains(body.Reason, inventory.ErrRoomUnavailable.Error())
	})

	s.Run("upstream backoff: returns 503 with Retry-After", func() {
		retryAfter := 30 * time.Second
		s.mockAdmission.EXPECT().Check(gomock.Any(), "SUP1", gomock.Any(), gomock.Any()).
			Return(gateway.NewUpstreamError(http.StatusServiceUnavailable, &retryAfter, "inventory fetch failed")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "temporarily unavailable")
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Retry-After": "30"})
	})

	s.Run("upstream failure without backoff: returns 502", func() {
		s.mockAdmission.EXPECT().Check(gomock.Any(), "SUP1", gomock.Any(), gomock.Any()).
			Return(gateway.NewUpstreamError(http.StatusInternalServerError, nil, "inventory fetch failed")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "request failed")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseBooking{
			{name: "missing field: supplierId (required)", mutate: testutil.Field("supplierId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: rooms (required)", mutate: testutil.Field("rooms", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: arrival (required)", mutate: testutil.Field("arrival", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: departure (required)", mutate: testutil.Field("departure", nil), expectCode: http.StatusBadRequest},
			{name: "malformed date", mutate: testutil.Field("arrival", "25-03-2019"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 without authorization", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestBook
// ================================================================================

func (s *HotelHandlerTestSuite) TestBook() {
	url := "/hotel/bookings"
	reqBody := builder.NewBookingBuilder().BuildHotelRequestDTO()
	bookingID := uuid.New()
	idempotencyKey := uuid.New()
	headers := map[string]string{"Idempotency-Key": idempotencyKey.String()}

	s.Run("success: returns 201 Created with the booking ID", func() {
		s.mockAdmission.EXPECT().Book(gomock.Any(), "SUP1", gomock.Any(), gomock.Any(), idempotencyKey).
			Return(&commands.BookingResult{BookingID: bookingID}, nil).Times(1)
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers, "bearer-token")

		var body resdto.AdmissionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(bookingID, body.BookingID)
		s.False(body.Replayed)
	})

	s.Run("replay: returns 200 OK with the original booking ID", func() {
		s.mockAdmission.EXPECT().Book(gomock.Any(), "SUP1", gomock.Any(), gomock.Any(), idempotencyKey).
			Return(&commands.BookingResult{BookingID: bookingID, Replayed: true}, nil).Times(1)
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers, "bearer-token")

		var body resdto.AdmissionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(bookingID, body.BookingID)
		s.True(body.Replayed)
	})

	s.Run("error: 400 when the Idempotency-Key header is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "idempotency key")
	})

	s.Run("error: 400 when the Idempotency-Key header is not a UUID", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": "not-a-uuid"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "idempotency key")
	})

	s.Run("error: 409 when the key is reused with a different payload", func() {
		s.mockAdmission.EXPECT().Book(gomock.Any(), "SUP1", gomock.Any(), gomock.Any(), idempotencyKey).
			Return(nil, commands.ErrDuplicateBooking).Times(1)
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Duplicate")
	})

	s.Run("error: 409 when the key is still being processed", func() {
		s.mockAdmission.EXPECT().Book(gomock.Any(), "SUP1", gomock.Any(), gomock.Any(), idempotencyKey).
			Return(nil, commands.ErrIdempotencyInProgress).Times(1)
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "being processed")
	})

	s.Run("error: 422 when the booking is inadmissible", func() {
		s.mockAdmission.EXPECT().Book(gomock.Any(), "SUP1", gomock.Any(), gomock.Any(), idempotencyKey).
			Return(nil, pricing.ErrInvalidPrice).Times(1)
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "not admissible")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *HotelHandlerTestSuite) TestCancel() {
	url := "/hotel/cancellations"
	reqBody := builder.NewBookingBuilder().BuildHotelCancellationDTO()
	bookingID := uuid.New()

	s.Run("success: returns 200 with the cancellation record ID", func() {
		s.mockAdmission.EXPECT().Cancel(gomock.Any(), "SUP1", gomock.Any()).
			Return(&commands.BookingResult{BookingID: bookingID}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.AdmissionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(bookingID, body.BookingID)
	})

	s.Run("error: 409 when the restore cannot be applied", func() {
		s.mockAdmission.EXPECT().Cancel(gomock.Any(), "SUP1", gomock.Any()).
			Return(nil, inventory.ErrInvalidUpdate).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "cannot be applied")
	})

	s.Run("error: 400 on missing fields", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("rooms", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
