package service

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration = errors.New("service duration must be positive")
	ErrInvalidBuffer   = errors.New("service buffer cannot be negative")
)

// Service is an offered treatment. BufferMin is cleanup time appended
// after the service; together with DurationMin it forms the busy length
// that must fit inside a free window.
type Service struct {
	id                   uuid.UUID
	name                 string
	durationMin          int
	bufferMin            int
	priceStartingAtCents *int32
	active               bool
}

func New(
	id uuid.UUID,
	name string,
	durationMin, bufferMin int,
	priceStartingAtCents *int32,
	active bool,
) (*Service, error) {
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	if bufferMin < 0 {
		return nil, ErrInvalidBuffer
	}
	return &Service{
		id:                   id,
		name:                 name,
		durationMin:          durationMin,
		bufferMin:            bufferMin,
		priceStartingAtCents: priceStartingAtCents,
		active:               active,
	}, nil
}

// BusyLengthMin is the span an appointment for this service actually
// blocks: duration plus trailing buffer.
func (s *Service) BusyLengthMin() int {
	return s.durationMin + s.bufferMin
}

func (s *Service) IsBookable() bool {
	return s.active
}

func (s *Service) ID() uuid.UUID                { return s.id }
func (s *Service) Name() string                 { return s.name }
func (s *Service) DurationMin() int             { return s.durationMin }
func (s *Service) BufferMin() int               { return s.bufferMin }
func (s *Service) PriceStartingAtCents() *int32 { return s.priceStartingAtCents }
func (s *Service) Active() bool                 { return s.active }
