package usecase

import (
	"context"
	"errors"

	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/jwt"
	"salon-booking/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

// AuthUseCase covers the single-admin login. There is no user table; the
// credential is one bcrypt hash from configuration, the way a one-operator
// salon deployment is provisioned.
type AuthUseCase interface {
	Login(ctx context.Context, plainPassword string) (string, error)
}

type authUseCaseImpl struct {
	adminCfg   config.AdminConfig
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthUseCase(adminCfg config.AdminConfig, jwtService *jwt.Service, clock clock.Clock) AuthUseCase {
	return &authUseCaseImpl{
		adminCfg:   adminCfg,
		jwtService: jwtService,
		clock:      clock,
	}
}

func (a *authUseCaseImpl) Login(_ context.Context, plainPassword string) (string, error) {
	if err := password.ComparePassword(a.adminCfg.PasswordHash, plainPassword); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateAdminToken(a.clock.Now())
	if err != nil {
		return "", ErrTokenGeneration
	}

	return token, nil
}
