package authors

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/inkwellbooks/inkwell/pkg/binder"
	"github.com/inkwellbooks/inkwell/pkg/errcodes"
	"github.com/inkwellbooks/inkwell/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthorsTestContext(t *testing.T, method, target, payload string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	var req *http.Request
	if payload == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rr := httptest.NewRecorder()
	return e.NewContext(req, rr), rr
}

func TestHandlerCreate(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{authorService: NewService(db)}

	c, rr := newAuthorsTestContext(t, http.MethodPost, "/api/authors",
		`{"name":"Dee Lestari","birth_date":"1976-01-20","nationality":"Indonesia"}`)

	err := h.create(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var body struct {
		Data struct {
			ID          int     `json:"id"`
			Name        string  `json:"name"`
			BirthDate   *string `json:"birth_date"`
			Nationality *string `json:"nationality"`
			CreatedAt   string  `json:"created_at"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.NotZero(t, body.Data.ID)
	assert.Equal(t, "Dee Lestari", body.Data.Name)
	require.NotNil(t, body.Data.BirthDate)
	assert.Equal(t, "1976-01-20", *body.Data.BirthDate)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, body.Data.CreatedAt)
}

func TestHandlerCreate_MissingName(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{authorService: NewService(db)}

	c, _ := newAuthorsTestContext(t, http.MethodPost, "/api/authors", `{"nationality":"Indonesia"}`)

	err := h.create(c)
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusUnprocessableEntity, codeErr.HTTPCode)
	assert.Equal(t, "The name field is required.", codeErr.Message)
	assert.Equal(t, []string{"The name field is required."}, codeErr.Fields["name"])
}

func TestHandlerCreate_InvalidBirthDate(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{authorService: NewService(db)}

	c, _ := newAuthorsTestContext(t, http.MethodPost, "/api/authors",
		`{"name":"Ann","birth_date":"20-01-1976"}`)

	err := h.create(c)
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, "The birth date field must be a valid date.", codeErr.Message)
}

func TestHandlerList_Envelope(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	h := &handler{authorService: svc}
	ctx := context.Background()

	createAuthor(ctx, t, svc, "Ann")
	createAuthor(ctx, t, svc, "Bob")
	createAuthor(ctx, t, svc, "Cid")

	c, rr := newAuthorsTestContext(t, http.MethodGet, "/api/authors?search=an", "")

	err := h.list(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
		Meta struct {
			CurrentPage int `json:"current_page"`
			LastPage    int `json:"last_page"`
			PerPage     int `json:"per_page"`
			Total       int `json:"total"`
		} `json:"meta"`
		Links struct {
			First string  `json:"first"`
			Last  string  `json:"last"`
			Prev  *string `json:"prev"`
			Next  *string `json:"next"`
		} `json:"links"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Ann", body.Data[0].Name)
	assert.Equal(t, 1, body.Meta.CurrentPage)
	assert.Equal(t, 1, body.Meta.LastPage)
	assert.Equal(t, 10, body.Meta.PerPage)
	assert.Equal(t, 1, body.Meta.Total)
	assert.Nil(t, body.Links.Prev)
	assert.Nil(t, body.Links.Next)
}

func TestHandlerList_EmptyDataIsArray(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{authorService: NewService(db)}

	c, rr := newAuthorsTestContext(t, http.MethodGet, "/api/authors", "")

	err := h.list(c)
	require.NoError(t, err)
	assert.Contains(t, rr.Body.String(), `"data":[]`)
}

func TestHandlerRetrieve_IncludesBookCount(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	h := &handler{authorService: svc}
	ctx := context.Background()

	author := createAuthor(ctx, t, svc, "Ann")

	publisher := &models.Publisher{Name: "Gramedia"}
	_, err := db.NewInsert().Model(publisher).Returning("*").Exec(ctx)
	require.NoError(t, err)
	book := &models.Book{Title: "Laskar Pelangi", AuthorID: author.ID, PublisherID: publisher.ID}
	_, err = db.NewInsert().Model(book).Exec(ctx)
	require.NoError(t, err)

	c, rr := newAuthorsTestContext(t, http.MethodGet, "/api/authors/"+strconv.Itoa(author.ID), "")
	c.SetPath("/api/authors/:id")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(author.ID))

	err = h.retrieve(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Data struct {
			Name       string `json:"name"`
			BooksCount *int   `json:"books_count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Ann", body.Data.Name)
	require.NotNil(t, body.Data.BooksCount)
	assert.Equal(t, 1, *body.Data.BooksCount)
}

func TestHandlerUpdate_PartialLeavesOtherFields(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	h := &handler{authorService: svc}
	ctx := context.Background()

	author := createAuthor(ctx, t, svc, "Ann")
	nationality := "Indonesia"
	author.Nationality = &nationality
	require.NoError(t, svc.UpdateAuthor(ctx, author, UpdateAuthorOptions{Columns: []string{"nationality"}}))

	c, rr := newAuthorsTestContext(t, http.MethodPut, "/api/authors/"+strconv.Itoa(author.ID),
		`{"biography":"Penulis."}`)
	c.SetPath("/api/authors/:id")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(author.ID))

	err := h.update(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	updated, err := svc.RetrieveAuthor(ctx, RetrieveAuthorOptions{ID: &author.ID})
	require.NoError(t, err)
	assert.Equal(t, "Ann", updated.Name)
	require.NotNil(t, updated.Nationality)
	assert.Equal(t, "Indonesia", *updated.Nationality)
	require.NotNil(t, updated.Biography)
	assert.Equal(t, "Penulis.", *updated.Biography)
}

func TestHandlerUpdate_NotFound(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{authorService: NewService(db)}

	c, _ := newAuthorsTestContext(t, http.MethodPut, "/api/authors/999", `{"name":"Ann"}`)
	c.SetPath("/api/authors/:id")
	c.SetParamNames("id")
	c.SetParamValues("999")

	err := h.update(c)
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusNotFound, codeErr.HTTPCode)
	assert.Equal(t, "Author not found", codeErr.Message)
}

func TestHandlerDelete(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	h := &handler{authorService: svc}
	ctx := context.Background()

	author := createAuthor(ctx, t, svc, "Ann")

	c, rr := newAuthorsTestContext(t, http.MethodDelete, "/api/authors/"+strconv.Itoa(author.ID), "")
	c.SetPath("/api/authors/:id")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(author.ID))

	err := h.deleteAuthor(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"message":"Author deleted"`)

	_, err = svc.RetrieveAuthor(ctx, RetrieveAuthorOptions{ID: &author.ID})
	require.Error(t, err)
}
