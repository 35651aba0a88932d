package authors

import "github.com/inkwellbooks/inkwell/pkg/models"

// Resource is the serialized shape of an author.
type Resource struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	BirthDate   *string `json:"birth_date"`
	Nationality *string `json:"nationality"`
	Biography   *string `json:"biography"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
	BooksCount  *int    `json:"books_count,omitempty"`
}

func NewResource(author *models.Author) *Resource {
	return &Resource{
		ID:          author.ID,
		Name:        author.Name,
		BirthDate:   author.BirthDate,
		Nationality: author.Nationality,
		Biography:   author.Biography,
		CreatedAt:   models.FormatTimestamp(author.CreatedAt),
		UpdatedAt:   models.FormatTimestamp(author.UpdatedAt),
	}
}

// NewResourceWithBookCount builds the detail view, which includes the number
// of books the author owns.
func NewResourceWithBookCount(author *models.Author, bookCount int) *Resource {
	resource := NewResource(author)
	resource.BooksCount = &bookCount
	return resource
}
