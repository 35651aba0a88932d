package publishers

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
		"name":             "pub.name",
		"city":             "pub.city",
		"established_year": "pub.established_year",
	},
}

type RetrievePublisherOptions struct {
	ID *int
}

type ListPublishersOptions struct {
	pagination.Request
}

type UpdatePublisherOptions struct {
	Columns []string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

func (svc *Service) CreatePublisher(ctx context.Context, publisher *models.Publisher) error {
	now := time.Now()
	if publisher.CreatedAt.IsZero() {
		publisher.CreatedAt = now
	}
	publisher.UpdatedAt = publisher.CreatedAt

	_, err := svc.db.
		NewInsert().
		Model(publisher).
		Returning("*").
		Exec(ctx)
	if err != nil {
		if database.IsUniqueViolation(err, "publishers.name") {
			errs := &validate.Errors{}
			errs.Add("name", validate.Taken("name"))
			return errs.Err()
		}
		return errors.WithStack(err)
	}
	return nil
}

func (svc *Service) RetrievePublisher(ctx context.Context, opts RetrievePublisherOptions) (*models.Publisher, error) {
	publisher := &models.Publisher{}

	q := svc.db.
		NewSelect().
		Model(publisher)

	if opts.ID != nil {
		q = q.Where("pub.id = ?", *opts.ID)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Publisher")
		}
		return nil, errors.WithStack(err)
	}

	return publisher, nil
}

// ListPublishers returns one page of publishers plus the total match count.
func (svc *Service) ListPublishers(ctx context.Context, opts ListPublishersOptions) ([]*models.Publisher, int, error) {
	req := opts.Request
	req.Normalize()

	column, err := sorts.Resolve(req.Sort)
	if err != nil {
		return nil, 0, err
	}

	var publishers []*models.Publisher

	q := svc.db.
		NewSelect().
		Model(&publishers)
	q = pagination.ApplySearch(q, "pub.name", req.Search)
	q = pagination.Apply(q, column, req.Order, "pub.id", req.Page)

	total, err := q.ScanAndCount(ctx)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	return publishers, total, nil
}

func (svc *Service) UpdatePublisher(ctx context.Context, publisher *models.Publisher, opts UpdatePublisherOptions) error {
	if len(opts.Columns) == 0 {
		return nil
	}

	publisher.UpdatedAt = time.Now()
	columns := append(opts.Columns, "updated_at")

	_, err := svc.db.
		NewUpdate().
		Model(publisher).
		Column(columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		if database.IsUniqueViolation(err, "publishers.name") {
			errs := &validate.Errors{}
			errs.Add("name", validate.Taken("name"))
			return errs.Err()
		}
		return errors.WithStack(err)
	}
	return nil
}

// DeletePublisher deletes a publisher and cascades to the publisher's books
// in the same transaction.
func (svc *Service) DeletePublisher(ctx context.Context, publisherID int) error {
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*models.Book)(nil)).
			Where("publisher_id = ?", publisherID).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = tx.NewDelete().
			Model((*models.Publisher)(nil)).
			Where("id = ?", publisherID).
			Exec(ctx)
		return errors.WithStack(err)
	})
}

// GetBookCount returns the count of books released by this publisher.
func (svc *Service) GetBookCount(ctx context.Context, publisherID int) (int, error) {
	count, err := svc.db.NewSelect().
		Model((*models.Book)(nil)).
		Where("publisher_id = ?", publisherID).
		Count(ctx)
	return count, errors.WithStack(err)
}
