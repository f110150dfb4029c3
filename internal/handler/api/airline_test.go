//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"booking-admission/internal/domain/inventory"
	"booking-admission/internal/handler/api"
	resdto "booking-admission/internal/handler/dto/response"
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

type AirlineHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockAdmission *commandsmock.MockAirlineAdmission
	handler       *api.AirlineHandler
}

func (s *AirlineHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAdmission = commandsmock.NewMockAirlineAdmission(s.mockCtrl)

	checks := config.ChecksConfig{Availability: true, CancellationFees: true, TotalPrice: true}
	clk := clock.NewMockClock(time.Date(2019, 3, 1, 12, 0, 0, 0, time.UTC))
	s.handler = api.NewAirlineHandler(s.mockAdmission, checks, clk)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("client_id", "test-client")
		c.Next()
	}

	s.router.POST("/airline/bookings/check", authMiddleware, s.handler.Check)
	s.router.POST("/airline/bookings", authMiddleware, s.handler.Book)
	s.router.POST("/airline/cancellations", authMiddleware, s.handler.Cancel)
}

func (s *AirlineHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAirlineHandlerSuite(t *testing.T) {
	suite.Run(t, new(AirlineHandlerTestSuite))
}

func (s *AirlineHandlerTestSuite) TestCheck() {
	url := "/airline/bookings/check"
	reqBody := builder.NewBookingBuilder().BuildAirlineRequestDTO()

	s.Run("success: returns 200 with admissible verdict", func() {
		s.mockAdmission.EXPECT().Check(gomock.Any(), "SUP1", gomock.Any(), gomock.Any()).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CheckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Admissible)
	})

	s.Run("inadmissible: returns 422 with the failing reason", func() {
		s.mockAdmission.EXPECT().Check(gomock.Any(), "SUP1", gomock.Any(), gomock.Any()).
			Return(inventory.ErrFlightUnavailable).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		var body resdto.CheckResponse
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.False(body.Admissible)
		s.Contains(body.Reason, inventory.ErrFlightUnavailable.Error())
	})

	s.Run("error: 400 on missing classes", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("classes", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *AirlineHandlerTestSuite) TestBook() {
	url := "/airline/bookings"
	reqBody := builder.NewBookingBuilder().BuildAirlineRequestDTO()
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
	})

	s.Run("error: 400 when the Idempotency-Key header is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "idempotency key")
	})

	s.Run("error: 422 when the booking is inadmissible", func() {
		s.mockAdmission.EXPECT().Book(gomock.Any(), "SUP1", gomock.Any(), gomock.Any(), idempotencyKey).
			Return(nil, inventory.ErrFlightUnavailable).Times(1)
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "not admissible")
	})
}

func (s *AirlineHandlerTestSuite) TestCancel() {
	url := "/airline/cancellations"
	reqBody := builder.NewBookingBuilder().BuildAirlineCancellationDTO()
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
}
