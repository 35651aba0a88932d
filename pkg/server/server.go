package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/inkwellbooks/inkwell/pkg/auth"
	"github.com/inkwellbooks/inkwell/pkg/authors"
	"github.com/inkwellbooks/inkwell/pkg/binder"
	"github.com/inkwellbooks/inkwell/pkg/books"
	"github.com/inkwellbooks/inkwell/pkg/config"
	"github.com/inkwellbooks/inkwell/pkg/errcodes"
	"github.com/inkwellbooks/inkwell/pkg/publishers"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
	"github.com/uptrace/bun"
)

func New(cfg *config.Config, db *bun.DB) (*http.Server, error) {
	e := echo.New()

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	if cfg.FrontendURL != "" {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: []string{cfg.FrontendURL},
		}))
	} else {
		e.Use(middleware.CORS())
	}

	health.RegisterRoutes(e)

	// Public auth routes; the returned service backs the middleware
	authService := auth.RegisterRoutes(e, db, cfg.JWTSecret)
	authMiddleware := auth.NewMiddleware(authService)

	// Session routes (logout, current user)
	sessionGroup := e.Group("")
	sessionGroup.Use(authMiddleware.Authenticate)
	auth.RegisterProtectedRoutes(sessionGroup, authService)

	registerAPIRoutes(e, db, authMiddleware)

	echo.NotFoundHandler = notFoundHandler
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

// registerAPIRoutes registers the resource routes. Every /api route requires
// a valid bearer token.
func registerAPIRoutes(e *echo.Echo, db *bun.DB, authMiddleware *auth.Middleware) {
	authorsGroup := e.Group("/api/authors")
	authorsGroup.Use(authMiddleware.Authenticate)
	authors.RegisterRoutesWithGroup(authorsGroup, db)

	booksGroup := e.Group("/api/books")
	booksGroup.Use(authMiddleware.Authenticate)
	books.RegisterRoutesWithGroup(booksGroup, db)

	publishersGroup := e.Group("/api/publishers")
	publishersGroup.Use(authMiddleware.Authenticate)
	publishers.RegisterRoutesWithGroup(publishersGroup, db)
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Page")
}
