package models

import "time"

// TimestampFormat is how created_at/updated_at serialize in API responses.
const TimestampFormat = "2006-01-02 15:04:05"

func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampFormat)
}
