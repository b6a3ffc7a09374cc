package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase"
	"salon-booking/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

// @Summary Get schedule configuration
// @Description Weekly hours, breaks, and blackout dates
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ScheduleConfigResponse
// @Failure 401 {object} map[string]string
// @Router /admin/config [get]
func (h *AdminHandler) GetConfig(c *gin.Context) {
	cfg, err := h.adminUseCase.GetScheduleConfig(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromScheduleConfig(cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Replace business hours
// @Description Replace the full weekly business hours table
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.ReplaceBusinessHoursRequest true "Hours"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/business-hours [put]
func (h *AdminHandler) ReplaceBusinessHours(c *gin.Context) {
	var req reqdto.ReplaceBusinessHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rows, err := req.ToReadModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	h.replaceWindows(c, rows, h.adminUseCase.ReplaceBusinessHours)
}

// @Summary Replace breaks
// @Description Replace the full weekly break windows table
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.ReplaceBreaksRequest true "Breaks"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/breaks [put]
func (h *AdminHandler) ReplaceBreaks(c *gin.Context) {
	var req reqdto.ReplaceBreaksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rows, err := req.ToReadModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	h.replaceWindows(c, rows, h.adminUseCase.ReplaceBreaks)
}

// @Summary Manage blackout dates
// @Description Add or remove a blackout date
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.BlackoutRequest true "Blackout action"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/blackouts [post]
func (h *AdminHandler) ManageBlackout(c *gin.Context) {
	var req reqdto.BlackoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	var err error
	switch req.Action {
	case reqdto.BlackoutActionAdd:
		err = h.adminUseCase.AddBlackout(c.Request.Context(), req.DateKey, req.Reason)
	case reqdto.BlackoutActionRemove:
		err = h.adminUseCase.RemoveBlackout(c.Request.Context(), req.DateKey)
	}

	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format",
			})
		case errors.Is(err, usecase.ErrBlackoutNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Blackout not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List upcoming appointments
// @Description Upcoming appointments in ascending start order
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AppointmentDetailResponse
// @Failure 401 {object} map[string]string
// @Router /admin/appointments [get]
func (h *AdminHandler) ListAppointments(c *gin.Context) {
	details, err := h.adminUseCase.ListUpcomingAppointments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentDetails(details))
}

// @Summary Cancel appointment
// @Description Cancel a Confirmed appointment, freeing its time
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.CancelAppointmentRequest true "Cancel request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/cancel [post]
func (h *AdminHandler) CancelAppointment(c *gin.Context) {
	var req reqdto.CancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.adminUseCase.CancelAppointment(c.Request.Context(), req.AppointmentID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		case errors.Is(err, usecase.ErrAppointmentNotCancellable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Appointment is not cancellable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) replaceWindows(
	c *gin.Context,
	rows []readmodel.ScheduleWindow,
	replace func(ctx context.Context, rows []readmodel.ScheduleWindow) error,
) {
	if err := replace(c.Request.Context(), rows); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidScheduleRows):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid schedule rows",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
