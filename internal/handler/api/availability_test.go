//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"salon-booking/internal/handler/api"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase"
	usecasemock "salon-booking/internal/usecase/mock"
	"salon-booking/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockAvailability *usecasemock.MockAvailabilityUseCase
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAvailability = usecasemock.NewMockAvailabilityUseCase(s.mockCtrl)

	handler := api.NewAvailabilityHandler(s.mockAvailability)
	s.router.GET("/availability", handler.GetAvailability)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) perform(url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *AvailabilityHandlerTestSuite) TestGetAvailability() {
	serviceID := uuid.New()
	url := "/availability?serviceId=" + serviceID.String() + "&date=2026-01-15"

	s.Run("success: returns 200 with slots", func() {
		s.mockAvailability.EXPECT().GetAvailability(gomock.Any(), serviceID, "2026-01-15").
			Return(&readmodel.Availability{
				Timezone:  "America/New_York",
				Date:      "2026-01-15",
				ServiceID: serviceID,
				Slots:     []string{"09:00", "09:15"},
			}, nil)

		rec := s.perform(url)
		s.Equal(http.StatusOK, rec.Code)

		var response resdto.AvailabilityResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal([]string{"09:00", "09:15"}, response.Slots)
		s.Nil(response.Reason)
	})

	s.Run("success: blackout reason is passed through", func() {
		reason := "holiday"
		s.mockAvailability.EXPECT().GetAvailability(gomock.Any(), serviceID, "2026-01-15").
			Return(&readmodel.Availability{
				Timezone:  "America/New_York",
				Date:      "2026-01-15",
				ServiceID: serviceID,
				Slots:     []string{},
				Reason:    &reason,
			}, nil)

		rec := s.perform(url)
		s.Equal(http.StatusOK, rec.Code)

		var response resdto.AvailabilityResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Empty(response.Slots)
		s.Require().NotNil(response.Reason)
		s.Equal("holiday", *response.Reason)
	})

	s.Run("error: 400 when query params are missing", func() {
		s.Equal(http.StatusBadRequest, s.perform("/availability").Code)
		s.Equal(http.StatusBadRequest, s.perform("/availability?date=2026-01-15").Code)
		s.Equal(http.StatusBadRequest, s.perform("/availability?serviceId="+serviceID.String()).Code)
	})

	s.Run("error: 400 on a malformed service id", func() {
		s.Equal(http.StatusBadRequest, s.perform("/availability?serviceId=not-a-uuid&date=2026-01-15").Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
		}{
			{name: "invalid date", usecaseError: usecase.ErrInvalidRequest, expectedStatus: http.StatusBadRequest},
			{name: "service not found", usecaseError: usecase.ErrServiceNotFound, expectedStatus: http.StatusNotFound},
			{name: "storage failure", usecaseError: usecase.ErrStorageFailure, expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAvailability.EXPECT().GetAvailability(gomock.Any(), serviceID, "2026-01-15").
					Return(nil, tc.usecaseError)

				s.Equal(tc.expectedStatus, s.perform(url).Code)
			})
		}
	})
}
