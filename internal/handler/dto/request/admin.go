package request

import (
	"salon-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const (
	BlackoutActionAdd    = "add"
	BlackoutActionRemove = "remove"
)

type ScheduleWindowRequest struct {
	DayOfWeek int  `json:"dayOfWeek" binding:"required"`
	StartMin  int  `json:"startMin"`
	EndMin    int  `json:"endMin"`
	Enabled   bool `json:"enabled"`
}

type ReplaceBusinessHoursRequest struct {
	Hours []ScheduleWindowRequest `json:"hours" binding:"required"`
}

type ReplaceBreaksRequest struct {
	Breaks []ScheduleWindowRequest `json:"breaks" binding:"required"`
}

type BlackoutRequest struct {
	DateKey string  `json:"dateKey" binding:"required"`
	Reason  *string `json:"reason,omitempty"`
	Action  string  `json:"action" binding:"required,oneof=add remove"`
}

type CancelAppointmentRequest struct {
	AppointmentID uuid.UUID `json:"appointmentId" binding:"required"`
}

func (r ReplaceBusinessHoursRequest) ToReadModel() ([]readmodel.ScheduleWindow, error) {
	return toWindows(r.Hours)
}

func (r ReplaceBreaksRequest) ToReadModel() ([]readmodel.ScheduleWindow, error) {
	return toWindows(r.Breaks)
}

func toWindows(reqs []ScheduleWindowRequest) ([]readmodel.ScheduleWindow, error) {
	rows := make([]readmodel.ScheduleWindow, 0, len(reqs))
	if err := copier.Copy(&rows, reqs); err != nil {
		return nil, err
	}
	return rows, nil
}
