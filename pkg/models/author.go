package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Author struct {
	bun.BaseModel `bun:"table:authors,alias:a"`

	ID          int       `bun:",pk,nullzero" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `bun:",nullzero" json:"name"`
	BirthDate   *string   `json:"birth_date"`
	Nationality *string   `json:"nationality"`
	Biography   *string   `json:"biography"`

	Books []*Book `bun:"rel:has-many,join:id=author_id" json:"books,omitempty"`
}
