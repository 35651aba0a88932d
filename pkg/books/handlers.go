package books

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
	bookService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListBooksQuery{}
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

	books, total, err := h.bookService.ListBooks(ctx, ListBooksOptions{
		Request:     req,
		AuthorID:    params.AuthorID,
		PublisherID: params.PublisherID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	resources := make([]*Resource, len(books))
	for i, book := range books {
		resources[i] = NewResource(book, book.Author, book.Publisher)
	}

	page := pagination.NewPage(resources, req, total, c.Request().URL)

	return errors.WithStack(c.JSON(http.StatusOK, page))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	book, err := h.bookService.RetrieveBook(ctx, RetrieveBookOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"data": NewResource(book, book.Author, book.Publisher),
	}))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := StoreBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	if errs := validateStoreBook(params, true); !errs.Empty() {
		return errs.Err()
	}

	book := &models.Book{
		Title:         *params.Title,
		ISBN:          params.ISBN,
		PublishedYear: params.PublishedYear,
		Pages:         params.Pages,
		Synopsis:      params.Synopsis,
		AuthorID:      *params.AuthorID,
		PublisherID:   *params.PublisherID,
	}

	if err := h.bookService.CreateBook(ctx, book); err != nil {
		return errors.WithStack(err)
	}

	// Reload with relations for the response
	book, err := h.bookService.RetrieveBook(ctx, RetrieveBookOptions{ID: &book.ID})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, map[string]any{
		"data": NewResource(book, book.Author, book.Publisher),
	}))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	params := StoreBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	book, err := h.bookService.RetrieveBook(ctx, RetrieveBookOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if errs := validateStoreBook(params, false); !errs.Empty() {
		return errs.Err()
	}

	// Only supplied fields are written
	columns := []string{}
	if params.Title != nil {
		book.Title = *params.Title
		columns = append(columns, "title")
	}
	if params.ISBN != nil {
		book.ISBN = params.ISBN
		columns = append(columns, "isbn")
	}
	if params.PublishedYear != nil {
		book.PublishedYear = params.PublishedYear
		columns = append(columns, "published_year")
	}
	if params.Pages != nil {
		book.Pages = params.Pages
		columns = append(columns, "pages")
	}
	if params.Synopsis != nil {
		book.Synopsis = params.Synopsis
		columns = append(columns, "synopsis")
	}
	if params.AuthorID != nil {
		book.AuthorID = *params.AuthorID
		columns = append(columns, "author_id")
	}
	if params.PublisherID != nil {
		book.PublisherID = *params.PublisherID
		columns = append(columns, "publisher_id")
	}

	err = h.bookService.UpdateBook(ctx, book, UpdateBookOptions{Columns: columns})
	if err != nil {
		return errors.WithStack(err)
	}

	book, err = h.bookService.RetrieveBook(ctx, RetrieveBookOptions{ID: &id})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"data": NewResource(book, book.Author, book.Publisher),
	}))
}

func (h *handler) deleteBook(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	_, err = h.bookService.RetrieveBook(ctx, RetrieveBookOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	err = h.bookService.DeleteBook(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"message": "Book deleted",
	}))
}
