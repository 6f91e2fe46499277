package middleware

import (
	"context"
	"strings"

	"savium/internal/apperr"
	"savium/internal/models"
	"savium/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const userLocalsKey = "user"

// UserLoader resolves token claims back to a live user record.
type UserLoader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// RequireAuth verifies the bearer token, re-loads the user (a token whose
// user no longer exists is rejected) and, when allowedRoles is non-empty,
// enforces role membership.
func RequireAuth(jwtManager *auth.JWTManager, users UserLoader, logger *zap.Logger, allowedRoles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return apperr.Unauthorized("Unauthorized. No token provided.")
		}

		token := strings.TrimPrefix(header, "Bearer ")

		claims, err := jwtManager.ValidateToken(token)
		if err != nil {
			logger.Warn("Token validation failed", zap.Error(err))
			return apperr.Unauthorized("Invalid or expired token.")
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			return apperr.Unauthorized("Invalid or expired token.")
		}

		user, err := users.GetByID(c.Context(), userID)
		if err != nil {
			return apperr.Unauthorized("Invalid or expired token.")
		}

		if len(allowedRoles) > 0 && !roleAllowed(user.Role, allowedRoles) {
			return apperr.Forbidden("Forbidden. You don't have permission.")
		}

		c.Locals(userLocalsKey, user)
		return c.Next()
	}
}

// CurrentUser returns the authenticated user stashed by RequireAuth.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalsKey).(*models.User)
	return user
}

func roleAllowed(role models.UserRole, allowed []models.UserRole) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
