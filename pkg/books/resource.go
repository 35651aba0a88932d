package books

import "github.com/inkwellbooks/inkwell/pkg/models"

// RelatedResource is the {id, name} summary of a book's author or publisher.
type RelatedResource struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Resource is the serialized shape of a book.
type Resource struct {
	ID            int              `json:"id"`
	Title         string           `json:"title"`
	ISBN          *string          `json:"isbn"`
	PublishedYear *int             `json:"published_year"`
	Pages         *int             `json:"pages"`
	Synopsis      *string          `json:"synopsis"`
	CreatedAt     string           `json:"created_at"`
	UpdatedAt     string           `json:"updated_at"`
	Author        *RelatedResource `json:"author,omitempty"`
	Publisher     *RelatedResource `json:"publisher,omitempty"`
}

// NewResource builds the book view from the record and its loaded relations.
// The relations are explicit parameters so callers can't serialize a book
// without deciding whether the summaries are present.
func NewResource(book *models.Book, author *models.Author, publisher *models.Publisher) *Resource {
	resource := &Resource{
		ID:            book.ID,
		Title:         book.Title,
		ISBN:          book.ISBN,
		PublishedYear: book.PublishedYear,
		Pages:         book.Pages,
		Synopsis:      book.Synopsis,
		CreatedAt:     models.FormatTimestamp(book.CreatedAt),
		UpdatedAt:     models.FormatTimestamp(book.UpdatedAt),
	}
	if author != nil {
		resource.Author = &RelatedResource{ID: author.ID, Name: author.Name}
	}
	if publisher != nil {
		resource.Publisher = &RelatedResource{ID: publisher.ID, Name: publisher.Name}
	}
	return resource
}
