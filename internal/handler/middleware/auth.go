package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/pkg/cookie"
	"salon-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards the admin surface. The token comes from the
// HttpOnly session cookie for browser clients, or a Bearer header for
// programmatic access.
type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAdminSession(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized,
				usecase.ErrTokenValidation, "Admin session required", nil)
			return
		}

		if err := m.tokenValidator.ValidateAdminToken(token); err != nil {
			slog.Warn("token validation failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized,
				err, "Invalid or expired session", nil)
			return
		}

		c.Next()
	}
}
