package validator

import (
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

var weekdayAbbrevs = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// IsWeekdayAbbrev reports whether s is a 3-letter English weekday
// abbreviation as used in roster date tokens ("Mon 02-Dec").
func IsWeekdayAbbrev(s string) bool {
	return IsInSlice(s, weekdayAbbrevs)
}

// ParseMonthAbbrev parses a 3-letter English month abbreviation.
func ParseMonthAbbrev(s string) (time.Month, bool) {
	t, err := time.Parse("Jan", s)
	if err != nil {
		return 0, false
	}
	return t.Month(), true
}
