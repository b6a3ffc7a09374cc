package readmodel

import "github.com/google/uuid"

type Service struct {
	ID                   uuid.UUID
	Name                 string
	DurationMin          int
	BufferMin            int
	PriceStartingAtCents *int32
	Active               bool
}
