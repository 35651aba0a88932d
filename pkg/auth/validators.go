package auth

import (
	"regexp"

	"github.com/inkwellbooks/inkwell/pkg/validate"
)

type RegisterPayload struct {
	Name     *string `json:"name,omitempty" mod:"trim"`
	Email    *string `json:"email,omitempty" mod:"trim"`
	Password *string `json:"password,omitempty"`
}

type LoginPayload struct {
	Email    *string `json:"email,omitempty" mod:"trim"`
	Password *string `json:"password,omitempty"`
}

var emailRE = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validateRegister(params RegisterPayload) *validate.Errors {
	errs := &validate.Errors{}

	if params.Name == nil || *params.Name == "" {
		errs.Add("name", validate.Required("name"))
	} else if len(*params.Name) > 100 {
		errs.Add("name", validate.MaxChars("name", 100))
	}

	if params.Email == nil || *params.Email == "" {
		errs.Add("email", validate.Required("email"))
	} else if !emailRE.MatchString(*params.Email) {
		errs.Add("email", "The email field must be a valid email address.")
	}

	if params.Password == nil || *params.Password == "" {
		errs.Add("password", validate.Required("password"))
	} else if len(*params.Password) < 8 {
		errs.Add("password", "The password field must be at least 8 characters.")
	}

	return errs
}

func validateLogin(params LoginPayload) *validate.Errors {
	errs := &validate.Errors{}

	if params.Email == nil || *params.Email == "" {
		errs.Add("email", validate.Required("email"))
	}
	if params.Password == nil || *params.Password == "" {
		errs.Add("password", validate.Required("password"))
	}

	return errs
}
