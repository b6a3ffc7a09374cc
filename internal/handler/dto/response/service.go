package response

import (
	"salon-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ServiceResponse struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	DurationMin          int       `json:"durationMin"`
	BufferMin            int       `json:"bufferMin"`
	PriceStartingAtCents *int32    `json:"priceStartingAtCents,omitempty"`
}

func FromService(rm readmodel.Service) ServiceResponse {
	return ServiceResponse{
		ID:                   rm.ID,
		Name:                 rm.Name,
		DurationMin:          rm.DurationMin,
		BufferMin:            rm.BufferMin,
		PriceStartingAtCents: rm.PriceStartingAtCents,
	}
}

func FromServices(rms []readmodel.Service) []ServiceResponse {
	responses := make([]ServiceResponse, len(rms))
	for i, rm := range rms {
		responses[i] = FromService(rm)
	}
	return responses
}
