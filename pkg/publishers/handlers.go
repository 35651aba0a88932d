package publishers

import (
	"net/http"
	"strconv"

	"github.com/inkwellbooks/inkwell/pkg/errcodes"
	"github.com/inkwellbooks/inkwell/pkg/models"
	"github.com/inkwellbooks/inkwell/pkg/pagination"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	publisherService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListPublishersQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	req := pagination.Request{
		Search: params.Search,
		Sort:   params.Sort,
		Order:  params.Order,
		Page:   params.Page,
	}
	req.Normalize()

	publishers, total, err := h.publisherService.ListPublishers(ctx, ListPublishersOptions{Request: req})
	if err != nil {
		return errors.WithStack(err)
	}

	resources := make([]*Resource, len(publishers))
	for i, publisher := range publishers {
		resources[i] = NewResource(publisher)
	}

	page := pagination.NewPage(resources, req, total, c.Request().URL)

	return errors.WithStack(c.JSON(http.StatusOK, page))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Publisher")
	}

	publisher, err := h.publisherService.RetrievePublisher(ctx, RetrievePublisherOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	bookCount, err := h.publisherService.GetBookCount(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"data": NewResourceWithBookCount(publisher, bookCount),
	}))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := StorePublisherPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	if errs := validateStorePublisher(params, true); !errs.Empty() {
		return errs.Err()
	}

	publisher := &models.Publisher{
		Name:            *params.Name,
		City:            params.City,
		EstablishedYear: params.EstablishedYear,
	}

	if err := h.publisherService.CreatePublisher(ctx, publisher); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, map[string]any{
		"data": NewResource(publisher),
	}))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Publisher")
	}

	params := StorePublisherPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	publisher, err := h.publisherService.RetrievePublisher(ctx, RetrievePublisherOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if errs := validateStorePublisher(params, false); !errs.Empty() {
		return errs.Err()
	}

	// Only supplied fields are written
	columns := []string{}
	if params.Name != nil {
		publisher.Name = *params.Name
		columns = append(columns, "name")
	}
	if params.City != nil {
		publisher.City = params.City
		columns = append(columns, "city")
	}
	if params.EstablishedYear != nil {
		publisher.EstablishedYear = params.EstablishedYear
		columns = append(columns, "established_year")
	}

	err = h.publisherService.UpdatePublisher(ctx, publisher, UpdatePublisherOptions{Columns: columns})
	if err != nil {
		return errors.WithStack(err)
	}

	publisher, err = h.publisherService.RetrievePublisher(ctx, RetrievePublisherOptions{ID: &id})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"data": NewResource(publisher),
	}))
}

func (h *handler) deletePublisher(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Publisher")
	}

	_, err = h.publisherService.RetrievePublisher(ctx, RetrievePublisherOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	err = h.publisherService.DeletePublisher(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"message": "Publisher deleted",
	}))
}
