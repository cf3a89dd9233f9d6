package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the on-disk and wire format of calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date that is either known or an explicit unknown marker.
// An unknown Date keeps the raw text it was parsed from so it can be written back untouched.
type Date struct {
	t     time.Time
	raw   string
	known bool
}

// NewDate returns a known date.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), known: true}
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// datetimeLayouts are also read as dates; the time of day is dropped.
// Fractional seconds are accepted by time.Parse without being in the layout.
var datetimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseDate parses s as YYYY-MM-DD, or as a datetime truncated to its date.
// Anything else yields an unknown Date.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return Date{t: t, known: true}
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t)
		}
	}
	return Date{raw: s}
}

// ParseDateStrict is ParseDate for client input: unparsable text is an error.
func ParseDateStrict(s string) (Date, error) {
	d := ParseDate(s)
	if !d.Known() {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return d, nil
}

// Known reports whether the date was parsed successfully.
func (d Date) Known() bool { return d.known }

// Time returns the date at midnight UTC. Zero for unknown dates.
func (d Date) Time() time.Time { return d.t }

// String returns YYYY-MM-DD, or the raw text for unknown dates.
func (d Date) String() string {
	if !d.known {
		return d.raw
	}
	return d.t.Format(DateLayout)
}

// Before reports whether d is strictly before o. Unknown dates are never before anything.
func (d Date) Before(o Date) bool {
	return d.known && o.known && d.t.Before(o.t)
}

// Within reports whether d lies in [from, to] inclusive. Unknown dates are never within.
func (d Date) Within(from, to Date) bool {
	if !d.known || !from.known || !to.known {
		return false
	}
	return !d.t.Before(from.t) && !d.t.After(to.t)
}

// Compare orders known dates chronologically and puts unknown dates last.
func (d Date) Compare(o Date) int {
	switch {
	case d.known && o.known:
		return d.t.Compare(o.t)
	case d.known:
		return -1
	case o.known:
		return 1
	default:
		return 0
	}
}

// MarshalJSON encodes known dates as "YYYY-MM-DD" and unknown ones as null.
func (d Date) MarshalJSON() ([]byte, error) {
	if !d.known {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "YYYY-MM-DD", null or an empty string (both unknown).
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDateStrict(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
