package publishers

import (
	"time"

	"github.com/inkwellbooks/inkwell/pkg/validate"
)

type ListPublishersQuery struct {
	Search string `query:"search" json:"search,omitempty" mod:"trim"`
	Sort   string `query:"sort" json:"sort,omitempty" mod:"trim"`
	Order  string `query:"order" json:"order,omitempty" mod:"trim" default:"asc" validate:"oneof=asc desc"`
	Page   int    `query:"page" json:"page,omitempty" default:"1"`
}

type StorePublisherPayload struct {
	Name            *string `json:"name,omitempty" mod:"trim"`
	City            *string `json:"city,omitempty" mod:"trim"`
	EstablishedYear *int    `json:"established_year,omitempty"`
}

func validateStorePublisher(params StorePublisherPayload, requireName bool) *validate.Errors {
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

	if params.City != nil && len(*params.City) > 100 {
		errs.Add("city", validate.MaxChars("city", 100))
	}

	if params.EstablishedYear != nil {
		currentYear := time.Now().Year()
		if *params.EstablishedYear < 1000 {
			errs.Add("established_year", validate.Min("established_year", 1000))
		} else if *params.EstablishedYear > currentYear {
			errs.Add("established_year", validate.Max("established_year", currentYear))
		}
	}

	return errs
}
