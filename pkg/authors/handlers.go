package authors

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
	authorService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListAuthorsQuery{}
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

	authors, total, err := h.authorService.ListAuthors(ctx, ListAuthorsOptions{Request: req})
	if err != nil {
		return errors.WithStack(err)
	}

	resources := make([]*Resource, len(authors))
	for i, author := range authors {
		resources[i] = NewResource(author)
	}

	page := pagination.NewPage(resources, req, total, c.Request().URL)

	return errors.WithStack(c.JSON(http.StatusOK, page))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Author")
	}

	author, err := h.authorService.RetrieveAuthor(ctx, RetrieveAuthorOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	bookCount, err := h.authorService.GetBookCount(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"data": NewResourceWithBookCount(author, bookCount),
	}))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := StoreAuthorPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	if errs := validateStoreAuthor(params, true); !errs.Empty() {
		return errs.Err()
	}

	author := &models.Author{
		Name:        *params.Name,
		BirthDate:   params.BirthDate,
		Nationality: params.Nationality,
		Biography:   params.Biography,
	}

	if err := h.authorService.CreateAuthor(ctx, author); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, map[string]any{
		"data": NewResource(author),
	}))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Author")
	}

	params := StoreAuthorPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	author, err := h.authorService.RetrieveAuthor(ctx, RetrieveAuthorOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if errs := validateStoreAuthor(params, false); !errs.Empty() {
		return errs.Err()
	}

	// Only supplied fields are written
	columns := []string{}
	if params.Name != nil {
		author.Name = *params.Name
		columns = append(columns, "name")
	}
	if params.BirthDate != nil {
		author.BirthDate = params.BirthDate
		columns = append(columns, "birth_date")
	}
	if params.Nationality != nil {
		author.Nationality = params.Nationality
		columns = append(columns, "nationality")
	}
	if params.Biography != nil {
		author.Biography = params.Biography
		columns = append(columns, "biography")
	}

	err = h.authorService.UpdateAuthor(ctx, author, UpdateAuthorOptions{Columns: columns})
	if err != nil {
		return errors.WithStack(err)
	}

	author, err = h.authorService.RetrieveAuthor(ctx, RetrieveAuthorOptions{ID: &id})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"data": NewResource(author),
	}))
}

func (h *handler) deleteAuthor(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Author")
	}

	_, err = h.authorService.RetrieveAuthor(ctx, RetrieveAuthorOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	err = h.authorService.DeleteAuthor(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"message": "Author deleted",
	}))
}
