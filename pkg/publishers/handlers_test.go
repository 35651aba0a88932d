package publishers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/inkwellbooks/inkwell/pkg/binder"
	"github.com/inkwellbooks/inkwell/pkg/errcodes"
	"github.com/labstack/echo/v4"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPublishersTestContext(t *testing.T, method, target, payload string) (echo.Context, *httptest.ResponseRecorder) {
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
	h := &handler{publisherService: NewService(db)}

	c, rr := newPublishersTestContext(t, http.MethodPost, "/api/publishers",
		`{"name":"Gramedia Pustaka Utama","city":"Jakarta","established_year":1974}`)

	err := h.create(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var body struct {
		Data struct {
			ID              int     `json:"id"`
			Name            string  `json:"name"`
			City            *string `json:"city"`
			EstablishedYear *int    `json:"established_year"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.NotZero(t, body.Data.ID)
	assert.Equal(t, "Gramedia Pustaka Utama", body.Data.Name)
	require.NotNil(t, body.Data.EstablishedYear)
	assert.Equal(t, 1974, *body.Data.EstablishedYear)
}

func TestHandlerCreate_FutureEstablishedYear(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{publisherService: NewService(db)}

	c, _ := newPublishersTestContext(t, http.MethodPost, "/api/publishers",
		`{"name":"Gramedia","established_year":9999}`)

	err := h.create(c)
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusUnprocessableEntity, codeErr.HTTPCode)
	assert.Contains(t, codeErr.Fields["established_year"][0], "must not be greater than")
}

func TestHandlerUpdate_ClearingNameRejected(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	h := &handler{publisherService: svc}
	ctx := context.Background()

	publisher := createPublisher(ctx, t, svc, "Gramedia", 1974)

	c, _ := newPublishersTestContext(t, http.MethodPut, "/api/publishers/"+strconv.Itoa(publisher.ID),
		`{"name":""}`)
	c.SetPath("/api/publishers/:id")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(publisher.ID))

	err := h.update(c)
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, "The name field is required.", codeErr.Message)

	// nothing was written
	kept, err := svc.RetrievePublisher(ctx, RetrievePublisherOptions{ID: &publisher.ID})
	require.NoError(t, err)
	assert.Equal(t, "Gramedia", kept.Name)
}

func TestHandlerDelete(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	h := &handler{publisherService: svc}
	ctx := context.Background()

	publisher := createPublisher(ctx, t, svc, "Gramedia", 1974)

	c, rr := newPublishersTestContext(t, http.MethodDelete, "/api/publishers/"+strconv.Itoa(publisher.ID), "")
	c.SetPath("/api/publishers/:id")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(publisher.ID))

	err := h.deletePublisher(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"message":"Publisher deleted"`)

	_, err = svc.RetrievePublisher(ctx, RetrievePublisherOptions{ID: &publisher.ID})
	require.Error(t, err)
}
