package authors

import (
	"context"
	"database/sql"
	"time"

	"github.com/inkwellbooks/inkwell/pkg/database"
	"github.com/inkwellbooks/inkwell/pkg/errcodes"
	"github.com/inkwellbooks/inkwell/pkg/models"
	"github.com/inkwellbooks/inkwell/pkg/pagination"
	"github.com/inkwellbooks/inkwell/pkg/validate"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

var sorts = pagination.Sorts{
	Default: "name",
	Allowed: map[string]string{
		"name":       "a.name",
		"birth_date": "a.birth_date",
	},
}

type RetrieveAuthorOptions struct {
	ID *int
}

type ListAuthorsOptions struct {
	pagination.Request
}

type UpdateAuthorOptions struct {
	Columns []string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

func (svc *Service) CreateAuthor(ctx context.Context, author *models.Author) error {
	now := time.Now()
	if author.CreatedAt.IsZero() {
		author.CreatedAt = now
	}
	author.UpdatedAt = author.CreatedAt

	_, err := svc.db.
		NewInsert().
		Model(author).
		Returning("*").
		Exec(ctx)
	if err != nil {
		if database.IsUniqueViolation(err, "authors.name") {
			errs := &validate.Errors{}
			errs.Add("name", validate.Taken("name"))
			return errs.Err()
		}
		return errors.WithStack(err)
	}
	return nil
}

func (svc *Service) RetrieveAuthor(ctx context.Context, opts RetrieveAuthorOptions) (*models.Author, error) {
	author := &models.Author{}

	q := svc.db.
		NewSelect().
		Model(author)

	if opts.ID != nil {
		q = q.Where("a.id = ?", *opts.ID)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Author")
		}
		return nil, errors.WithStack(err)
	}

	return author, nil
}

// ListAuthors returns one page of authors plus the total match count. The
// pipeline runs in a fixed order: search, sort with id tie-break, page slice.
func (svc *Service) ListAuthors(ctx context.Context, opts ListAuthorsOptions) ([]*models.Author, int, error) {
	req := opts.Request
	req.Normalize()

	column, err := sorts.Resolve(req.Sort)
	if err != nil {
		return nil, 0, err
	}

	var authors []*models.Author

	q := svc.db.
		NewSelect().
		Model(&authors)
	q = pagination.ApplySearch(q, "a.name", req.Search)
	q = pagination.Apply(q, column, req.Order, "a.id", req.Page)

	total, err := q.ScanAndCount(ctx)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	return authors, total, nil
}

func (svc *Service) UpdateAuthor(ctx context.Context, author *models.Author, opts UpdateAuthorOptions) error {
	if len(opts.Columns) == 0 {
		return nil
	}

	author.UpdatedAt = time.Now()
	columns := append(opts.Columns, "updated_at")

	_, err := svc.db.
		NewUpdate().
		Model(author).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		if database.IsUniqueViolation(err, "authors.name") {
			errs := &validate.Errors{}
			errs.Add("name", validate.Taken("name"))
			return errs.Err()
		}
		return errors.WithStack(err)
	}
	return nil
}

// DeleteAuthor deletes an author and cascades to the author's books in the
// same transaction.
func (svc *Service) DeleteAuthor(ctx context.Context, authorID int) error {
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*models.Book)(nil)).
			Where("author_id = ?", authorID).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = tx.NewDelete().
			Model((*models.Author)(nil)).
			Where("id = ?", authorID).
			Exec(ctx)
		return errors.WithStack(err)
	})
}

// GetBookCount returns the count of books written by this author.
func (svc *Service) GetBookCount(ctx context.Context, authorID int) (int, error) {
	count, err := svc.db.NewSelect().
		Model((*models.Book)(nil)).
		Where("author_id = ?", authorID).
		Count(ctx)
	return count, errors.WithStack(err)
}
