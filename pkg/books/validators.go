package books

import (
	"time"

	"github.com/inkwellbooks/inkwell/pkg/validate"
)

type ListBooksQuery struct {
	Search      string `query:"search" json:"search,omitempty" mod:"trim"`
	AuthorID    *int   `query:"author_id" json:"author_id,omitempty"`
	PublisherID *int   `query:"publisher_id" json:"publisher_id,omitempty"`
	Sort        string `query:"sort" json:"sort,omitempty" mod:"trim"`
	Order       string `query:"order" json:"order,omitempty" mod:"trim" default:"asc" validate:"oneof=asc desc"`
	Page        int    `query:"page" json:"page,omitempty" default:"1"`
}

type StoreBookPayload struct {
	Title         *string `json:"title,omitempty" mod:"trim"`
	ISBN          *string `json:"isbn,omitempty" mod:"trim"`
	PublishedYear *int    `json:"published_year,omitempty"`
	Pages         *int    `json:"pages,omitempty"`
	Synopsis      *string `json:"synopsis,omitempty"`
	AuthorID      *int    `json:"author_id,omitempty"`
	PublisherID   *int    `json:"publisher_id,omitempty"`
}

// validateStoreBook checks every field rule and reports the failures
// together. Referential checks against authors/publishers happen in the
// service, inside the write transaction.
func validateStoreBook(params StoreBookPayload, requireAll bool) *validate.Errors {
	errs := &validate.Errors{}

	if params.Title == nil {
		if requireAll {
			errs.Add("title", validate.Required("title"))
		}
	} else if *params.Title == "" {
		errs.Add("title", validate.Required("title"))
	} else if len(*params.Title) > 200 {
		errs.Add("title", validate.MaxChars("title", 200))
	}

	if params.ISBN != nil && *params.ISBN != "" && len(*params.ISBN) != 13 {
		errs.Add("isbn", validate.Size("isbn", 13))
	}

	if params.PublishedYear != nil {
		maxYear := time.Now().Year() + 5
		if *params.PublishedYear < 1000 {
			errs.Add("published_year", validate.Min("published_year", 1000))
		} else if *params.PublishedYear > maxYear {
			errs.Add("published_year", validate.Max("published_year", maxYear))
		}
	}

	if params.Pages != nil {
		if *params.Pages < 1 {
			errs.Add("pages", validate.Min("pages", 1))
		} else if *params.Pages > 9999 {
			errs.Add("pages", validate.Max("pages", 9999))
		}
	}

	if params.Synopsis != nil && len(*params.Synopsis) > 5000 {
		errs.Add("synopsis", validate.MaxChars("synopsis", 5000))
	}

	if requireAll && params.AuthorID == nil {
		errs.Add("author_id", validate.Required("author_id"))
	}
	if requireAll && params.PublisherID == nil {
		errs.Add("publisher_id", validate.Required("publisher_id"))
	}

	return errs
}
