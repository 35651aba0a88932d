package books

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
	Default: "title",
	Allowed: map[string]string{
		"title":          "b.title",
		"published_year": "b.published_year",
		"pages":          "b.pages",
	},
}

type RetrieveBookOptions struct {
	ID *int
}

type ListBooksOptions struct {
	pagination.Request

	AuthorID    *int
	PublisherID *int
}

type UpdateBookOptions struct {
	Columns []string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// CreateBook validates the author and publisher references inside the insert
// transaction and inserts the book. An ISBN collision surfaces as a field
// error from the unique index, atomically with the insert.
func (svc *Service) CreateBook(ctx context.Context, book *models.Book) error {
	now := time.Now()
	if book.CreatedAt.IsZero() {
		book.CreatedAt = now
	}
	book.UpdatedAt = book.CreatedAt

	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if err := svc.checkReferences(ctx, tx, &book.AuthorID, &book.PublisherID); err != nil {
			return err
		}

		_, err := tx.NewInsert().
			Model(book).
			Returning("*").
			Exec(ctx)
		if err != nil {
			if database.IsUniqueViolation(err, "books.isbn") {
				errs := &validate.Errors{}
				errs.Add("isbn", validate.Taken("isbn"))
				return errs.Err()
			}
			return errors.WithStack(err)
		}
		return nil
	})
}

// checkReferences verifies that the referenced author and publisher rows
// exist, collecting both failures into one error set.
func (svc *Service) checkReferences(ctx context.Context, tx bun.Tx, authorID, publisherID *int) error {
	errs := &validate.Errors{}

	if authorID != nil {
		exists, err := tx.NewSelect().
			Model((*models.Author)(nil)).
			Where("id = ?", *authorID).
			Exists(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if !exists {
			errs.Add("author_id", validate.Invalid("author_id"))
		}
	}

	if publisherID != nil {
		exists, err := tx.NewSelect().
			Model((*models.Publisher)(nil)).
			Where("id = ?", *publisherID).
			Exists(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if !exists {
			errs.Add("publisher_id", validate.Invalid("publisher_id"))
		}
	}

	return errs.Err()
}

func (svc *Service) RetrieveBook(ctx context.Context, opts RetrieveBookOptions) (*models.Book, error) {
	book := &models.Book{}

	q := svc.db.
		NewSelect().
		Model(book).
		Relation("Author").
		Relation("Publisher")

	if opts.ID != nil {
		q = q.Where("b.id = ?", *opts.ID)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Book")
		}
		return nil, errors.WithStack(err)
	}

	return book, nil
}

// ListBooks returns one page of books with their author and publisher loaded,
// plus the total match count. The pipeline runs in a fixed order: equality
// filters, search, sort with id tie-break, page slice.
func (svc *Service) ListBooks(ctx context.Context, opts ListBooksOptions) ([]*models.Book, int, error) {
	req := opts.Request
	req.Normalize()

	column, err := sorts.Resolve(req.Sort)
	if err != nil {
		return nil, 0, err
	}

	var books []*models.Book

	q := svc.db.
		NewSelect().
		Model(&books).
		Relation("Author").
		Relation("Publisher")

	if opts.AuthorID != nil {
		q = q.Where("b.author_id = ?", *opts.AuthorID)
	}
	if opts.PublisherID != nil {
		q = q.Where("b.publisher_id = ?", *opts.PublisherID)
	}
	q = pagination.ApplySearch(q, "b.title", req.Search)
	q = pagination.Apply(q, column, req.Order, "b.id", req.Page)

	total, err := q.ScanAndCount(ctx)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	return books, total, nil
}

func (svc *Service) UpdateBook(ctx context.Context, book *models.Book, opts UpdateBookOptions) error {
	if len(opts.Columns) == 0 {
		return nil
	}

	book.UpdatedAt = time.Now()
	columns := append(opts.Columns, "updated_at")

	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var authorID, publisherID *int
		for _, column := range opts.Columns {
			if column == "author_id" {
				authorID = &book.AuthorID
			}
			if column == "publisher_id" {
				publisherID = &book.PublisherID
			}
		}
		if err := svc.checkReferences(ctx, tx, authorID, publisherID); err != nil {
			return err
		}

		_, err := tx.NewUpdate().
			Model(book).
			Column(columns...).
			WherePK().
			Exec(ctx)
		if err != nil {
			if database.IsUniqueViolation(err, "books.isbn") {
				errs := &validate.Errors{}
				errs.Add("isbn", validate.Taken("isbn"))
				return errs.Err()
			}
			return errors.WithStack(err)
		}
		return nil
	})
}

func (svc *Service) DeleteBook(ctx context.Context, bookID int) error {
	_, err := svc.db.NewDelete().
		Model((*models.Book)(nil)).
		Where("id = ?", bookID).
		Exec(ctx)
	return errors.WithStack(err)
}
