package database

import "strings"

// IsUniqueViolation reports whether err is a SQLite unique-constraint failure
// on the given qualified column (e.g. "authors.name"). Both the mattn and
// modernc drivers include this fragment in the error text.
func IsUniqueViolation(err error, column string) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed: "+column)
}
