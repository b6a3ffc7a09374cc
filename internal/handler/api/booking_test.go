//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salon-booking/internal/handler/api"
	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase"
	usecasemock "salon-booking/internal/usecase/mock"
	"salon-booking/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockBooking *usecasemock.MockBookingUseCase
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBooking = usecasemock.NewMockBookingUseCase(s.mockCtrl)

	handler := api.NewBookingHandler(s.mockBooking)
	s.router.POST("/book", handler.CreateBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) performJSON(body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/book", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func validBookingRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ServiceID:    uuid.New(),
		Date:         "2026-01-15",
		Time:         "10:00",
		CustomerName: "Dana Webb",
		Phone:        "555-0101",
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	s.Run("success: returns 201 with the booking", func() {
		req := validBookingRequest()
		view := &readmodel.BookingView{
			ID:        uuid.New(),
			ServiceID: req.ServiceID,
			StartAt:   time.Date(2026, 1, 15, 15, 0, 0, 0, time.UTC),
			EndAt:     time.Date(2026, 1, 15, 15, 30, 0, 0, time.UTC),
			Status:    "CONFIRMED",
			CreatedAt: time.Now().UTC(),
		}

		s.mockBooking.EXPECT().CreateBooking(gomock.Any(), req.ToInput()).Return(view, nil)

		rec := s.performJSON(req)
		s.Equal(http.StatusCreated, rec.Code)

		var response resdto.BookingResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal(view.ID, response.ID)
		s.Equal("CONFIRMED", response.Status)
	})

	s.Run("error: 400 on missing required fields", func() {
		req := validBookingRequest()
		req.CustomerName = ""

		rec := s.performJSON(req)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 on malformed json", func() {
		httpReq := httptest.NewRequest(http.MethodPost, "/book", bytes.NewReader([]byte("{not json")))
		httpReq.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, httpReq)

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
		}{
			{name: "invalid request", usecaseError: usecase.ErrInvalidRequest, expectedStatus: http.StatusBadRequest},
			{name: "service not found", usecaseError: usecase.ErrServiceNotFound, expectedStatus: http.StatusNotFound},
			{name: "date unavailable", usecaseError: usecase.ErrDateUnavailable, expectedStatus: http.StatusConflict},
			{name: "slot taken", usecaseError: usecase.ErrSlotTaken, expectedStatus: http.StatusConflict},
			{name: "storage failure", usecaseError: usecase.ErrStorageFailure, expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				req := validBookingRequest()
				s.mockBooking.EXPECT().CreateBooking(gomock.Any(), req.ToInput()).Return(nil, tc.usecaseError)

				rec := s.performJSON(req)
				s.Equal(tc.expectedStatus, rec.Code)
			})
		}
	})
}
