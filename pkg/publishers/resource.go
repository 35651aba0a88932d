package publishers

import "github.com/inkwellbooks/inkwell/pkg/models"

// Resource is the serialized shape of a publisher.
type Resource struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	City            *string `json:"city"`
	EstablishedYear *int    `json:"established_year"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
	BooksCount      *int    `json:"books_count,omitempty"`
}

func NewResource(publisher *models.Publisher) *Resource {
	return &Resource{
		ID:              publisher.ID,
		Name:            publisher.Name,
		City:            publisher.City,
		EstablishedYear: publisher.EstablishedYear,
		CreatedAt:       models.FormatTimestamp(publisher.CreatedAt),
		UpdatedAt:       models.FormatTimestamp(publisher.UpdatedAt),
	}
}

// NewResourceWithBookCount builds the detail view, which includes the number
// of books the publisher owns.
func NewResourceWithBookCount(publisher *models.Publisher, bookCount int) *Resource {
	resource := NewResource(publisher)
	resource.BooksCount = &bookCount
	return resource
}
