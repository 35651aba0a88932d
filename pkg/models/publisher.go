package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Publisher struct {
	bun.BaseModel `bun:"table:publishers,alias:pub"`

	ID              int       `bun:",pk,nullzero" json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Name            string    `bun:",nullzero" json:"name"`
	City            *string   `json:"city"`
	EstablishedYear *int      `json:"established_year"`

	Books []*Book `bun:"rel:has-many,join:id=publisher_id" json:"books,omitempty"`
}
