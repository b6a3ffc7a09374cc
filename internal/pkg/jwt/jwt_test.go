//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func newClockedService(t *testing.T) (*jwt.Service, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(issuedAt)
	return jwt.NewServiceWithClock("test-secret", time.Hour, clk), clk
}

func TestServiceTokenLifecycle(t *testing.T) {
	t.Run("fresh token carries the admin role", func(t *testing.T) {
		svc, _ := newClockedService(t)

		token, err := svc.GenerateAdminToken(issuedAt)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, jwt.RoleAdmin, claims.Role)
		assert.Equal(t, issuedAt, claims.ExpiresAt.Time.Add(-time.Hour).UTC())
	})

	t.Run("token is valid right up to expiry", func(t *testing.T) {
		svc, clk := newClockedService(t)

		token, err := svc.GenerateAdminToken(issuedAt)
		require.NoError(t, err)

		clk.Add(59 * time.Minute)
		_, err = svc.ValidateToken(token)
		assert.NoError(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		svc, clk := newClockedService(t)

		token, err := svc.GenerateAdminToken(issuedAt)
		require.NoError(t, err)

		clk.Add(2 * time.Hour)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("token signed with another secret is invalid", func(t *testing.T) {
		svc, _ := newClockedService(t)
		other := jwt.NewService("different-secret", time.Hour)

		token, err := other.GenerateAdminToken(issuedAt)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage is invalid", func(t *testing.T) {
		svc, _ := newClockedService(t)

		_, err := svc.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
