package api

import (
	"errors"
	"net/http"

	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityUseCase usecase.AvailabilityUseCase
}

func NewAvailabilityHandler(availabilityUseCase usecase.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUseCase: availabilityUseCase,
	}
}

// @Summary Query availability
// @Description List open slot start times for a service on a local calendar day
// @Tags availability
// @Produce json
// @Param serviceId query string true "Service ID"
// @Param date query string true "Local date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	serviceIDStr := c.Query("serviceId")
	dateKey := c.Query("date")
	if serviceIDStr == "" || dateKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "serviceId and date are required",
		})
		return
	}

	serviceID, err := uuid.Parse(serviceIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service ID format",
		})
		return
	}

	availability, err := h.availabilityUseCase.GetAvailability(c.Request.Context(), serviceID, dateKey)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format",
			})
		case errors.Is(err, usecase.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailability(availability))
}
