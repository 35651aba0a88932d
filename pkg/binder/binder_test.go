package binder

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type params struct {
	Hello string `json:"hello" mod:"trim" validate:"max=9"`
	Omit  string `json:"-"`
}

type listParams struct {
	Search string `query:"search" json:"search,omitempty" mod:"trim"`
	Sort   string `query:"sort" json:"sort,omitempty" mod:"trim"`
	Order  string `query:"order" json:"order,omitempty" mod:"trim" default:"asc" validate:"oneof=asc desc"`
	Page   int    `query:"page" json:"page,omitempty" default:"1"`
}

var (
	goodJSON             = `{"hello":" world "}`
	unknownFieldsErrJSON = `{"hello":"world","foo":"bar"}`
	typeErrJSON          = `{"hello":123}`
	validationErrJSON    = `{"hello":"0123456789"}`
)

func TestNew(t *testing.T) {
	t.Parallel()
	b, err := New()
	require.NoError(t, err)
	assert.NotNil(t, b)

	t.Run("only allows application/json", func(tt *testing.T) {
		c := newContext(goodJSON, echo.MIMEApplicationXML)
		p := params{}
		err = b.Bind(&p, c)
		assert.Contains(tt, err.Error(), "Unsupported Media Type")
	})

	t.Run("disallows unknown fields", func(tt *testing.T) {
		c := newContext(unknownFieldsErrJSON, echo.MIMEApplicationJSON)
		p := params{}
		err = b.Bind(&p, c)
		assert.Contains(tt, err.Error(), `Unknown Parameter "foo"`)
	})

	t.Run("returns a good message for type errors", func(tt *testing.T) {
		c := newContext(typeErrJSON, echo.MIMEApplicationJSON)
		p := params{}
		err = b.Bind(&p, c)
		assert.Contains(tt, err.Error(), `"hello" should be of type string`)
	})

	t.Run("use mod tag to modify params", func(tt *testing.T) {
		c := newContext(goodJSON, echo.MIMEApplicationJSON)
		p := params{}
		err = b.Bind(&p, c)
		require.NoError(tt, err)
		assert.Equal(tt, "world", p.Hello)
	})

	t.Run("use validate tag to validate params", func(tt *testing.T) {
		c := newContext(validationErrJSON, echo.MIMEApplicationJSON)
		p := params{}
		err = b.Bind(&p, c)
		assert.Contains(tt, err.Error(), "length must be less than or equal to 9 characters")
	})
}

func TestBindQuery(t *testing.T) {
	t.Parallel()
	b, err := New()
	require.NoError(t, err)

	t.Run("decodes query params and applies defaults", func(tt *testing.T) {
		c := newQueryContext("/api/authors?search=an&page=3")
		p := listParams{}
		err = b.Bind(&p, c)
		require.NoError(tt, err)
		assert.Equal(tt, "an", p.Search)
		assert.Equal(tt, "asc", p.Order)
		assert.Equal(tt, 3, p.Page)
	})

	t.Run("rejects unknown order values", func(tt *testing.T) {
		c := newQueryContext("/api/authors?order=sideways")
		p := listParams{}
		err = b.Bind(&p, c)
		require.Error(tt, err)
		assert.Contains(tt, err.Error(), `"order" must be one of the following: "asc", "desc"`)
	})

	t.Run("rejects unknown query params", func(tt *testing.T) {
		c := newQueryContext("/api/authors?limit=100")
		p := listParams{}
		err = b.Bind(&p, c)
		require.Error(tt, err)
		assert.Contains(tt, err.Error(), `Unknown Parameter "limit"`)
	})

	t.Run("rejects non-integer page values", func(tt *testing.T) {
		c := newQueryContext("/api/authors?page=abc")
		p := listParams{}
		err = b.Bind(&p, c)
		require.Error(tt, err)
		assert.Contains(tt, err.Error(), `"page" should be of type int`)
	})
}

func TestValidateDate(t *testing.T) {
	t.Parallel()
	b, err := New()
	require.NoError(t, err)

	type datedParams struct {
		BirthDate string `json:"birth_date" validate:"date"`
	}

	c := newContext(`{"birth_date":"1985-02-29x"}`, echo.MIMEApplicationJSON)
	p := datedParams{}
	err = b.Bind(&p, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"birth_date" should be in the format of YYYY-MM-DD`)

	c = newContext(`{"birth_date":"1985-02-20"}`, echo.MIMEApplicationJSON)
	p = datedParams{}
	err = b.Bind(&p, c)
	require.NoError(t, err)
}

func newContext(payload, mime string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(echo.POST, "/", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, mime)
	rr := httptest.NewRecorder()
	return e.NewContext(req, rr)
}

func newQueryContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(echo.GET, target, nil)
	rr := httptest.NewRecorder()
	return e.NewContext(req, rr)
}
