package model

import (
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is the ISO-8601 form used for server-assigned timestamps.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// NewID returns a fresh record identifier.
func NewID() string {
	return uuid.NewString()
}

// Timestamp formats t as a UTC ISO-8601 string with millisecond precision.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
