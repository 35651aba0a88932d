package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Book struct {
	bun.BaseModel `bun:"table:books,alias:b"`

	ID            int       `bun:",pk,nullzero" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Title         string    `bun:",nullzero" json:"title"`
	ISBN          *string   `json:"isbn"`
	PublishedYear *int      `json:"published_year"`
	Pages         *int      `json:"pages"`
	Synopsis      *string   `json:"synopsis"`
	AuthorID      int       `bun:",nullzero" json:"author_id"`
	PublisherID   int       `bun:",nullzero" json:"publisher_id"`

	Author    *Author    `bun:"rel:belongs-to,join:author_id=id" json:"author,omitempty"`
	Publisher *Publisher `bun:"rel:belongs-to,join:publisher_id=id" json:"publisher,omitempty"`
}
