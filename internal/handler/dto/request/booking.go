package request

import (
	"salon-booking/internal/usecase"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ServiceID    uuid.UUID `json:"serviceId" binding:"required"`
	Date         string    `json:"date" binding:"required"`
	Time         string    `json:"time" binding:"required"`
	CustomerName string    `json:"customerName" binding:"required"`
	Phone        string    `json:"phone" binding:"required"`
	Email        *string   `json:"email,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
}

func (r CreateBookingRequest) ToInput() usecase.CreateBookingInput {
	return usecase.CreateBookingInput{
		ServiceID:    r.ServiceID,
		Date:         r.Date,
		Time:         r.Time,
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		Email:        r.Email,
		Notes:        r.Notes,
	}
}
