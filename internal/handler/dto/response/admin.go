package response

import (
	"time"

	"salon-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ScheduleWindowResponse struct {
	DayOfWeek int  `json:"dayOfWeek"`
	StartMin  int  `json:"startMin"`
	EndMin    int  `json:"endMin"`
	Enabled   bool `json:"enabled"`
}

type BlackoutResponse struct {
	DateKey string  `json:"dateKey"`
	Reason  *string `json:"reason,omitempty"`
}

type ScheduleConfigResponse struct {
	Hours     []ScheduleWindowResponse `json:"hours"`
	Breaks    []ScheduleWindowResponse `json:"breaks"`
	Blackouts []BlackoutResponse       `json:"blackouts"`
}

type AppointmentDetailResponse struct {
	ID           uuid.UUID `json:"id"`
	ServiceName  string    `json:"serviceName"`
	CustomerName string    `json:"customerName"`
	Phone        string    `json:"phone"`
	Email        *string   `json:"email,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	StartAt      time.Time `json:"startAt"`
	EndAt        time.Time `json:"endAt"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromScheduleConfig(rm *readmodel.ScheduleConfig) (*ScheduleConfigResponse, error) {
	resp := &ScheduleConfigResponse{
		Hours:     []ScheduleWindowResponse{},
		Breaks:    []ScheduleWindowResponse{},
		Blackouts: []BlackoutResponse{},
	}
	if err := copier.Copy(&resp.Hours, rm.Hours); err != nil {
		return nil, err
	}
	if err := copier.Copy(&resp.Breaks, rm.Breaks); err != nil {
		return nil, err
	}
	if err := copier.Copy(&resp.Blackouts, rm.Blackouts); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromAppointmentDetails(rms []readmodel.AppointmentDetail) []AppointmentDetailResponse {
	responses := make([]AppointmentDetailResponse, len(rms))
	for i, rm := range rms {
		responses[i] = AppointmentDetailResponse{
			ID:           rm.ID,
			ServiceName:  rm.ServiceName,
			CustomerName: rm.CustomerName,
			Phone:        rm.Phone,
			Email:        rm.Email,
			Notes:        rm.Notes,
			StartAt:      rm.StartAt,
			EndAt:        rm.EndAt,
			Status:       rm.Status,
			CreatedAt:    rm.CreatedAt,
		}
	}
	return responses
}
