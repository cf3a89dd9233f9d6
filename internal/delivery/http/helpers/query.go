package helpers

import (
	"fmt"
	"net/http"
	"strings"

	"feriascalendar/internal/domain"
)

// Filter query parameter names for GET /events.
const (
	QueryDepartment = "department"
	QuerySector     = "sector"
	QueryFrom       = "from"
	QueryTo         = "to"
)

// FilterQuery is the filter selection read from the query string. A nil slice or
// unknown date means the parameter was absent and the default from FilterOptions applies.
type FilterQuery struct {
	Departments []string
	Sectors     []string
	From        domain.Date
	To          domain.Date
}

// Complete reports whether every filter parameter was supplied.
func (q FilterQuery) Complete() bool {
	return q.Departments != nil && q.Sectors != nil && q.From.Known() && q.To.Known()
}

// Criteria fills absent parameters from defaults and returns an approved-only selection.
func (q FilterQuery) Criteria(defaults domain.FilterOptions) domain.FilterCriteria {
	c := defaults.Criteria()
	if q.Departments != nil {
		c.Departments = q.Departments
	}
	if q.Sectors != nil {
		c.Sectors = q.Sectors
	}
	if q.From.Known() {
		c.From = q.From
	}
	if q.To.Known() {
		c.To = q.To
	}
	return c
}

// ParseFilterQuery reads department and sector (repeatable, one whole name per value) and
// from/to (YYYY-MM-DD) from the request query string. A parameter given with an empty
// value selects nothing.
func ParseFilterQuery(r *http.Request) (FilterQuery, error) {
	values := r.URL.Query()
	q := FilterQuery{
		Departments: multiValue(values[QueryDepartment]),
		Sectors:     multiValue(values[QuerySector]),
	}
	var err error
	if q.From, err = dateValue(values.Get(QueryFrom)); err != nil {
		return FilterQuery{}, fmt.Errorf("invalid %s: %w", QueryFrom, err)
	}
	if q.To, err = dateValue(values.Get(QueryTo)); err != nil {
		return FilterQuery{}, fmt.Errorf("invalid %s: %w", QueryTo, err)
	}
	return q, nil
}

func multiValue(raw []string) []string {
	if raw == nil {
		return nil
	}
	out := []string{}
	// Names may contain commas ("Comercio, servicios"), so values are never split.
	for _, v := range raw {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func dateValue(s string) (domain.Date, error) {
	if strings.TrimSpace(s) == "" {
		return domain.Date{}, nil
	}
	return domain.ParseDateStrict(s)
}

// Locale returns the raw Accept-Language header; the translator negotiates from it.
func Locale(r *http.Request) string {
	return r.Header.Get("Accept-Language")
}
