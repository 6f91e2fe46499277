// Package validation holds the field-level predicates evaluated against raw
// request payloads before any domain logic runs. Every failing field is
// collected, not just the first.
package validation

import (
	"net/mail"
	"net/url"
	"strings"
	"time"
)

// Errors maps field names to their first failing rule's message.
type Errors map[string]string

func (e Errors) Add(field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

func (e Errors) Any() bool {
	return len(e) > 0
}

// Required reports whether s has content after trimming whitespace.
func Required(s string) bool {
	return strings.TrimSpace(s) != ""
}

// MinLen reports whether the trimmed string has at least n characters.
func MinLen(s string, n int) bool {
	return len(strings.TrimSpace(s)) >= n
}

// OneOf reports whether s is a member of set.
func OneOf(s string, set []string) bool {
	for _, v := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Email reports whether s parses as an RFC 5322 address.
func Email(s string) bool {
	_, err := mail.ParseAddress(strings.TrimSpace(s))
	return err == nil
}

// URL reports whether s parses as an absolute http(s) URL.
func URL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Date parses s as ISO-8601, accepting both date-only and timestamp forms.
func Date(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MinDaysAhead reports whether t is at least days full days after today,
// comparing against midnight so the rule does not drift within a day.
func MinDaysAhead(t time.Time, days int) bool {
	today := time.Now().Truncate(24 * time.Hour)
	minDate := today.AddDate(0, 0, days)
	return !t.Before(minDate)
}

// NotInFuture reports whether t is in the past or present.
func NotInFuture(t time.Time) bool {
	return !t.After(time.Now())
}
