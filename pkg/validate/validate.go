// Package validate collects field-level validation errors for a single write
// request and renders them as one 422 response. Errors keep insertion order
// so the summary message is deterministic.
package validate

import (
	"fmt"
	"strings"

	"github.com/inkwellbooks/inkwell/pkg/errcodes"
)

type fieldError struct {
	field   string
	message string
}

type Errors struct {
	list []fieldError
}

func (e *Errors) Add(field, message string) {
	e.list = append(e.list, fieldError{field, message})
}

func (e *Errors) Empty() bool {
	return len(e.list) == 0
}

// Fields groups the collected messages by field name.
func (e *Errors) Fields() map[string][]string {
	if e.Empty() {
		return nil
	}
	fields := make(map[string][]string, len(e.list))
	for _, fe := range e.list {
		fields[fe.field] = append(fields[fe.field], fe.message)
	}
	return fields
}

// Err returns nil when no errors were collected, otherwise a 422 error whose
// message is the first collected message, suffixed with the count of the
// remaining ones.
func (e *Errors) Err() error {
	if e.Empty() {
		return nil
	}

	msg := e.list[0].message
	if n := len(e.list) - 1; n == 1 {
		msg += " (and 1 more error)"
	} else if n > 1 {
		msg += fmt.Sprintf(" (and %d more errors)", n)
	}

	return errcodes.ValidationFailed(msg, e.Fields())
}

func label(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

func Required(field string) string {
	return fmt.Sprintf("The %s field is required.", label(field))
}

func MaxChars(field string, n int) string {
	return fmt.Sprintf("The %s field must not be greater than %d characters.", label(field), n)
}

func Size(field string, n int) string {
	return fmt.Sprintf("The %s field must be %d characters.", label(field), n)
}

func Min(field string, n int) string {
	return fmt.Sprintf("The %s field must be at least %d.", label(field), n)
}

func Max(field string, n int) string {
	return fmt.Sprintf("The %s field must not be greater than %d.", label(field), n)
}

func Date(field string) string {
	return fmt.Sprintf("The %s field must be a valid date.", label(field))
}

func Taken(field string) string {
	return fmt.Sprintf("The %s has already been taken.", label(field))
}

func Invalid(field string) string {
	return fmt.Sprintf("The selected %s is invalid.", label(field))
}
