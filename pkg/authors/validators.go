package authors

import (
	"time"

	"github.com/inkwellbooks/inkwell/pkg/validate"
)

type ListAuthorsQuery struct {
	Search string `query:"search" json:"search,omitempty" mod:"trim"`
	Sort   string `query:"sort" json:"sort,omitempty" mod:"trim"`
	Order  string `query:"order" json:"order,omitempty" mod:"trim" default:"asc" validate:"oneof=asc desc"`
	Page   int    `query:"page" json:"page,omitempty" default:"1"`
}

type StoreAuthorPayload struct {
	Name        *string `json:"name,omitempty" mod:"trim"`
	BirthDate   *string `json:"birth_date,omitempty" mod:"trim"`
	Nationality *string `json:"nationality,omitempty" mod:"trim"`
	Biography   *string `json:"biography,omitempty"`
}

func isValidDate(value string) bool {
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// validateStoreAuthor checks every rule and reports the failures together.
// requireName distinguishes create (name mandatory) from partial update
// (name checked only when supplied).
func validateStoreAuthor(params StoreAuthorPayload, requireName bool) *validate.Errors {
	errs := &validate.Errors{}

	if params.Name == nil {
		if requireName {
			errs.Add("name", validate.Required("name"))
		}
	} else if *params.Name == "" {
		errs.Add("name", validate.Required("name"))
	} else if len(*params.Name) > 100 {
		errs.Add("name", validate.MaxChars("name", 100))
	}

	if params.BirthDate != nil && *params.BirthDate != "" && !isValidDate(*params.BirthDate) {
		errs.Add("birth_date", validate.Date("birth_date"))
	}

	if params.Nationality != nil && len(*params.Nationality) > 50 {
		errs.Add("nationality", validate.MaxChars("nationality", 50))
	}

	if params.Biography != nil && len(*params.Biography) > 2000 {
		errs.Add("biography", validate.MaxChars("biography", 2000))
	}

	return errs
}
