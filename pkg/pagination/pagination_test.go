package pagination

import (
	"net/url"
	"testing"

	"github.com/inkwellbooks/inkwell/pkg/errcodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestNormalize(t *testing.T) {
	t.Parallel()

	req := Request{Page: 0}
	req.Normalize()
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, "asc", req.Order)

	req = Request{Page: -3, Order: "desc"}
	req.Normalize()
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, "desc", req.Order)

	req = Request{Page: 7}
	req.Normalize()
	assert.Equal(t, 7, req.Page)
}

func TestSortsResolve(t *testing.T) {
	t.Parallel()

	sorts := Sorts{
		Default: "name",
		Allowed: map[string]string{
			"name":       "a.name",
			"birth_date": "a.birth_date",
		},
	}

	column, err := sorts.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "a.name", column)

	column, err = sorts.Resolve("birth_date")
	require.NoError(t, err)
	assert.Equal(t, "a.birth_date", column)

	_, err = sorts.Resolve("password_hash")
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, 422, codeErr.HTTPCode)
	assert.Equal(t, "The selected sort is invalid.", codeErr.Message)
	assert.Equal(t, []string{"The selected sort is invalid."}, codeErr.Fields["sort"])
}

func TestNewPageMeta(t *testing.T) {
	t.Parallel()

	u, err := url.Parse("http://localhost/api/authors?search=an&page=2")
	require.NoError(t, err)

	page := NewPage([]int{1, 2, 3}, Request{Page: 2}, 23, u)

	assert.Equal(t, 2, page.Meta.CurrentPage)
	assert.Equal(t, 3, page.Meta.LastPage)
	assert.Equal(t, PerPage, page.Meta.PerPage)
	assert.Equal(t, 23, page.Meta.Total)
}

func TestNewPageEmptyCollection(t *testing.T) {
	t.Parallel()

	u, err := url.Parse("http://localhost/api/books?page=1")
	require.NoError(t, err)

	page := NewPage[int](nil, Request{Page: 1}, 0, u)

	// nil data still serializes as []
	assert.NotNil(t, page.Data)
	assert.Len(t, page.Data, 0)
	assert.Equal(t, 1, page.Meta.CurrentPage)
	assert.Equal(t, 1, page.Meta.LastPage)
	assert.Nil(t, page.Links.Prev)
	assert.Nil(t, page.Links.Next)
}

func TestNewPagePastEnd(t *testing.T) {
	t.Parallel()

	u, err := url.Parse("http://localhost/api/authors?page=99")
	require.NoError(t, err)

	page := NewPage([]int{}, Request{Page: 99}, 15, u)

	// current_page echoes the request even past the end
	assert.Equal(t, 99, page.Meta.CurrentPage)
	assert.Equal(t, 2, page.Meta.LastPage)
	assert.NotNil(t, page.Links.Prev)
	assert.Nil(t, page.Links.Next)
}

func TestNewPageLinksPreserveQuery(t *testing.T) {
	t.Parallel()

	u, err := url.Parse("http://localhost/api/authors?search=an&sort=name&page=2")
	require.NoError(t, err)

	page := NewPage([]int{1}, Request{Page: 2}, 25, u)

	assert.Equal(t, "http://localhost/api/authors?page=1&search=an&sort=name", page.Links.First)
	assert.Equal(t, "http://localhost/api/authors?page=3&search=an&sort=name", page.Links.Last)
	require.NotNil(t, page.Links.Prev)
	assert.Equal(t, "http://localhost/api/authors?page=1&search=an&sort=name", *page.Links.Prev)
	require.NotNil(t, page.Links.Next)
	assert.Equal(t, "http://localhost/api/authors?page=3&search=an&sort=name", *page.Links.Next)
}
