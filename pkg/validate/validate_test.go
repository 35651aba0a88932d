package validate

import (
	"testing"

	"github.com/inkwellbooks/inkwell/pkg/errcodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorsEmpty(t *testing.T) {
	t.Parallel()

	errs := &Errors{}
	assert.True(t, errs.Empty())
	assert.NoError(t, errs.Err())
	assert.Nil(t, errs.Fields())
}

func TestErrorsSingle(t *testing.T) {
	t.Parallel()

	errs := &Errors{}
	errs.Add("name", Required("name"))

	err := errs.Err()
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, 422, codeErr.HTTPCode)
	assert.Equal(t, "The name field is required.", codeErr.Message)
	assert.Equal(t, map[string][]string{
		"name": {"The name field is required."},
	}, codeErr.Fields)
}

func TestErrorsSummarySuffix(t *testing.T) {
	t.Parallel()

	errs := &Errors{}
	errs.Add("title", Required("title"))
	errs.Add("author_id", Invalid("author_id"))

	var codeErr *errcodes.Error
	require.ErrorAs(t, errs.Err(), &codeErr)
	assert.Equal(t, "The title field is required. (and 1 more error)", codeErr.Message)

	errs.Add("publisher_id", Invalid("publisher_id"))
	require.ErrorAs(t, errs.Err(), &codeErr)
	assert.Equal(t, "The title field is required. (and 2 more errors)", codeErr.Message)
}

func TestErrorsFieldGrouping(t *testing.T) {
	t.Parallel()

	errs := &Errors{}
	errs.Add("isbn", Size("isbn", 13))
	errs.Add("isbn", Taken("isbn"))
	errs.Add("pages", Min("pages", 1))

	fields := errs.Fields()
	assert.Equal(t, []string{
		"The isbn field must be 13 characters.",
		"The isbn has already been taken.",
	}, fields["isbn"])
	assert.Equal(t, []string{"The pages field must be at least 1."}, fields["pages"])
}

func TestMessages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "The birth date field must be a valid date.", Date("birth_date"))
	assert.Equal(t, "The name field must not be greater than 100 characters.", MaxChars("name", 100))
	assert.Equal(t, "The published year field must not be greater than 2031.", Max("published_year", 2031))
	assert.Equal(t, "The selected author id is invalid.", Invalid("author_id"))
	assert.Equal(t, "The email has already been taken.", Taken("email"))
}
