package auth

import (
	"net/http"

	"github.com/inkwellbooks/inkwell/pkg/errcodes"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	authService *Service
}

// register creates a new account and returns it with a fresh token.
func (h *handler) register(c echo.Context) error {
	ctx := c.Request().Context()

	params := RegisterPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	if errs := validateRegister(params); !errs.Empty() {
		return errs.Err()
	}

	user, err := h.authService.Register(ctx, *params.Name, *params.Email, *params.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		return errors.WithStack(err)
	}

	response := map[string]any{
		"user":  NewUserResource(user),
		"token": token,
	}

	return errors.WithStack(c.JSON(http.StatusCreated, response))
}

// login exchanges credentials for a token.
func (h *handler) login(c echo.Context) error {
	ctx := c.Request().Context()

	params := LoginPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	if errs := validateLogin(params); !errs.Empty() {
		return errs.Err()
	}

	user, err := h.authService.Authenticate(ctx, *params.Email, *params.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		return errors.WithStack(err)
	}

	response := map[string]any{
		"user":  NewUserResource(user),
		"token": token,
	}

	return errors.WithStack(c.JSON(http.StatusOK, response))
}

// logout acknowledges the client discarding its token. Tokens are stateless
// and expire on their own; there is no server-side revocation list.
func (h *handler) logout(c echo.Context) error {
	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"message": "Logged out",
	}))
}

// me returns the authenticated user.
func (h *handler) me(c echo.Context) error {
	user, ok := UserFromContext(c)
	if !ok {
		return errcodes.Unauthenticated()
	}

	return errors.WithStack(c.JSON(http.StatusOK, NewUserResource(user)))
}
