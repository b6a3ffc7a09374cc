//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/jwt"
	"salon-booking/internal/pkg/password"
	"salon-booking/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminPassword = "correct-horse-battery"

func newAuthUseCase(t *testing.T) (usecase.AuthUseCase, *jwt.Service) {
	t.Helper()

	hash, err := password.HashPassword(adminPassword)
	require.NoError(t, err)

	// The token service validates expiry against the same clock the
	// usecase issues from, so the fixture is deterministic.
	mockClock := clock.NewMockClock(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))
	jwtService := jwt.NewServiceWithClock("test-secret", time.Hour, mockClock)

	uc := usecase.NewAuthUseCase(config.AdminConfig{PasswordHash: hash}, jwtService, mockClock)
	return uc, jwtService
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("correct password yields an admin token", func(t *testing.T) {
		uc, jwtService := newAuthUseCase(t)

		token, err := uc.Login(ctx, adminPassword)
		require.NoError(t, err)

		claims, err := jwtService.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, jwt.RoleAdmin, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, _ := newAuthUseCase(t)

		_, err := uc.Login(ctx, "nope")
		assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})

	t.Run("empty password", func(t *testing.T) {
		uc, _ := newAuthUseCase(t)

		_, err := uc.Login(ctx, "")
		assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})
}

func TestValidateAdminToken(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts a freshly issued token", func(t *testing.T) {
		uc, jwtService := newAuthUseCase(t)
		validator := usecase.NewTokenValidator(jwtService)

		token, err := uc.Login(ctx, adminPassword)
		require.NoError(t, err)

		assert.NoError(t, validator.ValidateAdminToken(token))
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, jwtService := newAuthUseCase(t)
		validator := usecase.NewTokenValidator(jwtService)

		assert.ErrorIs(t, validator.ValidateAdminToken("not.a.token"), usecase.ErrTokenValidation)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		_, jwtService := newAuthUseCase(t)
		validator := usecase.NewTokenValidator(jwtService)

		other := jwt.NewService("different-secret", time.Hour)
		token, err := other.GenerateAdminToken(time.Now())
		require.NoError(t, err)

		assert.ErrorIs(t, validator.ValidateAdminToken(token), usecase.ErrTokenValidation)
	})
}
