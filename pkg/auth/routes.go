package auth

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers the public auth routes and returns the auth
// service so the server can build the middleware from it.
func RegisterRoutes(e *echo.Echo, db *bun.DB, jwtSecret string) *Service {
	authService := NewService(db, jwtSecret)

	h := &handler{
		authService: authService,
	}

	e.POST("/register", h.register)
	e.POST("/login", h.login)

	return authService
}

// RegisterProtectedRoutes registers the auth routes that require a valid
// token. The group must already carry the Authenticate middleware.
func RegisterProtectedRoutes(g *echo.Group, authService *Service) {
	h := &handler{
		authService: authService,
	}

	g.POST("/logout", h.logout)
	g.GET("/user", h.me)
}
