//go:build unit

package service_test

import (
	"testing"

	"salon-booking/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid service", func(t *testing.T) {
		price := int32(4500)
		svc, err := service.New(uuid.New(), "Haircut", 30, 15, &price, true)
		require.NoError(t, err)

		assert.Equal(t, "Haircut", svc.Name())
		assert.Equal(t, 30, svc.DurationMin())
		assert.Equal(t, 15, svc.BufferMin())
		assert.Equal(t, &price, svc.PriceStartingAtCents())
		assert.True(t, svc.Active())
	})

	tests := []struct {
		name        string
		durationMin int
		bufferMin   int
		errIs       error
	}{
		{name: "zero duration", durationMin: 0, bufferMin: 0, errIs: service.ErrInvalidDuration},
		{name: "negative duration", durationMin: -15, bufferMin: 0, errIs: service.ErrInvalidDuration},
		{name: "negative buffer", durationMin: 30, bufferMin: -5, errIs: service.ErrInvalidBuffer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.New(uuid.New(), "Haircut", tt.durationMin, tt.bufferMin, nil, true)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestBusyLengthMin(t *testing.T) {
	svc, err := service.New(uuid.New(), "Coloring", 90, 15, nil, true)
	require.NoError(t, err)
	assert.Equal(t, 105, svc.BusyLengthMin())

	noBuffer, err := service.New(uuid.New(), "Consultation", 20, 0, nil, true)
	require.NoError(t, err)
	assert.Equal(t, 20, noBuffer.BusyLengthMin())
}

func TestIsBookable(t *testing.T) {
	active, err := service.New(uuid.New(), "Haircut", 30, 0, nil, true)
	require.NoError(t, err)
	assert.True(t, active.IsBookable())

	retired, err := service.New(uuid.New(), "Perm", 120, 15, nil, false)
	require.NoError(t, err)
	assert.False(t, retired.IsBookable())
}
