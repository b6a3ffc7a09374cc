package response

import (
	"time"

	"salon-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	ServiceID uuid.UUID `json:"serviceId"`
	StartAt   time.Time `json:"startAt"`
	EndAt     time.Time `json:"endAt"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromBookingView(rm *readmodel.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:        rm.ID,
		ServiceID: rm.ServiceID,
		StartAt:   rm.StartAt,
		EndAt:     rm.EndAt,
		Status:    rm.Status,
		CreatedAt: rm.CreatedAt,
	}
}
