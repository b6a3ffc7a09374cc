package response

import (
	"salon-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	Timezone  string    `json:"timezone"`
	Date      string    `json:"date"`
	ServiceID uuid.UUID `json:"serviceId"`
	Slots     []string  `json:"slots"`
	Reason    *string   `json:"reason,omitempty"`
}

func FromAvailability(rm *readmodel.Availability) *AvailabilityResponse {
	return &AvailabilityResponse{
		Timezone:  rm.Timezone,
		Date:      rm.Date,
		ServiceID: rm.ServiceID,
		Slots:     rm.Slots,
		Reason:    rm.Reason,
	}
}
