package usecase

import (
	"salon-booking/internal/pkg/jwt"
)

// TokenValidator provides admin token validation for middleware
type TokenValidator interface {
	ValidateAdminToken(tokenString string) error
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateAdminToken(tokenString string) error {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return ErrTokenValidation
	}

	if claims.Role != jwt.RoleAdmin {
		return ErrTokenValidation
	}

	return nil
}
