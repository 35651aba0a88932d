package auth

import (
	"strings"

	"github.com/inkwellbooks/inkwell/pkg/errcodes"
	"github.com/inkwellbooks/inkwell/pkg/models"
	"github.com/labstack/echo/v4"
)

// Middleware provides authentication middleware.
type Middleware struct {
	authService *Service
}

// NewMiddleware creates a new auth middleware.
func NewMiddleware(authService *Service) *Middleware {
	return &Middleware{
		authService: authService,
	}
}

// Authenticate extracts and validates the bearer JWT from the Authorization
// header. If valid, it verifies the user still exists and adds user info to
// the context. If not authenticated, it returns 401.
func (m *Middleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return errcodes.Unauthenticated()
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == "" {
			return errcodes.Unauthenticated()
		}

		claims, err := m.authService.ValidateToken(tokenString)
		if err != nil {
			return errcodes.Unauthenticated()
		}

		// Verify user still exists
		user, err := m.authService.GetUserByID(ctx, claims.UserID)
		if err != nil {
			return errcodes.Unauthenticated()
		}

		c.Set("user_id", user.ID)
		c.Set("user", user)

		return next(c)
	}
}

// UserFromContext retrieves the authenticated user from the Echo context.
func UserFromContext(c echo.Context) (*models.User, bool) {
	user, ok := c.Get("user").(*models.User)
	return user, ok
}
