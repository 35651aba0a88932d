// Package pagination implements the list-query pipeline shared by every
// resource collection endpoint: equality filters, case-insensitive substring
// search on the resource's designated text field, allow-listed sorting with a
// stable primary-key tie-break, and a fixed-size page slice with page
// metadata and navigation links.
package pagination

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/inkwellbooks/inkwell/pkg/validate"
	"github.com/uptrace/bun"
)

// PerPage is the fixed page size for every list endpoint.
const PerPage = 10

// Request is the parsed list-query descriptor. Filters are resource-specific
// and applied by each service before the pipeline steps below.
type Request struct {
	Search string
	Sort   string
	Order  string
	Page   int
}

// Normalize applies the defaulting rules: pages below 1 become 1 and a missing
// order means ascending. Unknown order literals are rejected upstream by the
// binder, never normalized.
func (r *Request) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Order == "" {
		r.Order = "asc"
	}
}

// Sorts declares the sortable columns of one resource: the query values the
// API accepts mapped to qualified column names, plus the default applied when
// no sort is requested.
type Sorts struct {
	Default string
	Allowed map[string]string
}

// Resolve returns the column for the requested sort field. An empty field
// resolves to the default; a field outside the allow-list is rejected with a
// 422 rather than silently remapped.
func (s Sorts) Resolve(field string) (string, error) {
	if field == "" {
		field = s.Default
	}
	column, ok := s.Allowed[field]
	if !ok {
		errs := &validate.Errors{}
		errs.Add("sort", validate.Invalid("sort"))
		return "", errs.Err()
	}
	return column, nil
}

// ApplySearch adds the case-insensitive substring match on the designated
// text column. The column comes from the caller, never from request input.
func ApplySearch(q *bun.SelectQuery, column, search string) *bun.SelectQuery {
	search = strings.TrimSpace(search)
	if search == "" {
		return q
	}
	pattern := "%" + strings.ToLower(search) + "%"
	return q.Where(fmt.Sprintf("LOWER(%s) LIKE ?", column), pattern)
}

// Apply orders and slices the query. The sort column must already be resolved
// through an allow-list; the id column gives a deterministic order when the
// sort field has duplicate values.
func Apply(q *bun.SelectQuery, sortColumn, order, idColumn string, page int) *bun.SelectQuery {
	dir := "ASC"
	if order == "desc" {
		dir = "DESC"
	}
	return q.
		Order(sortColumn+" "+dir).
		Order(idColumn+" ASC").
		Limit(PerPage).
		Offset((page - 1) * PerPage)
}

type Meta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

type Links struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// Page is the envelope returned by every list endpoint.
type Page[T any] struct {
	Data  []T   `json:"data"`
	Meta  Meta  `json:"meta"`
	Links Links `json:"links"`
}

// NewPage assembles the envelope. current_page echoes the requested page even
// past the end of the collection; last_page is never below 1. The links
// preserve the other query parameters of the request URL.
func NewPage[T any](data []T, req Request, total int, requestURL *url.URL) *Page[T] {
	if data == nil {
		data = []T{}
	}

	lastPage := (total + PerPage - 1) / PerPage
	if lastPage < 1 {
		lastPage = 1
	}

	links := Links{
		First: pageURL(requestURL, 1),
		Last:  pageURL(requestURL, lastPage),
	}
	if req.Page > 1 {
		prev := pageURL(requestURL, req.Page-1)
		links.Prev = &prev
	}
	if req.Page < lastPage {
		next := pageURL(requestURL, req.Page+1)
		links.Next = &next
	}

	return &Page[T]{
		Data: data,
		Meta: Meta{
			CurrentPage: req.Page,
			LastPage:    lastPage,
			PerPage:     PerPage,
			Total:       total,
		},
		Links: links,
	}
}

func pageURL(u *url.URL, page int) string {
	out := *u
	q := out.Query()
	q.Set("page", strconv.Itoa(page))
	out.RawQuery = q.Encode()
	return out.String()
}
