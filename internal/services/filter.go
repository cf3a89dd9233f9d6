package services

import (
	"slices"
	"sort"

	"feriascalendar/internal/domain"
)

// Filter returns the events matching criteria, ordered by StartDate with unknown dates last.
// It does not modify events.
func Filter(events []*domain.Event, criteria domain.FilterCriteria) []*domain.Event {
	departments := toSet(criteria.Departments)
	sectors := toSet(criteria.Sectors)

	out := make([]*domain.Event, 0)
	for _, e := range events {
		if criteria.ApprovedOnly && !e.Approved {
			continue
		}
		if _, ok := departments[e.Department]; !ok {
			continue
		}
		if _, ok := sectors[e.Sector]; !ok {
			continue
		}
		if !e.StartDate.Within(criteria.From, criteria.To) {
			continue
		}
		out = append(out, e)
	}
	sortByStartDate(out)
	return out
}

// Options derives the selectable filter values from approved events only.
// The default range spans the earliest known start date to the latest known end date.
func Options(events []*domain.Event) domain.FilterOptions {
	departments := make(map[string]struct{})
	sectors := make(map[string]struct{})
	var from, to domain.Date
	for _, e := range events {
		if !e.Approved {
			continue
		}
		if e.Department != "" {
			departments[e.Department] = struct{}{}
		}
		if e.Sector != "" {
			sectors[e.Sector] = struct{}{}
		}
		if e.StartDate.Known() && (!from.Known() || e.StartDate.Before(from)) {
			from = e.StartDate
		}
		if e.EndDate.Known() && (!to.Known() || to.Before(e.EndDate)) {
			to = e.EndDate
		}
	}
	return domain.FilterOptions{
		Departments: sortedKeys(departments),
		Sectors:     sortedKeys(sectors),
		From:        from,
		To:          to,
	}
}

// Choices lists every department and sector in use, pending events included.
func Choices(events []*domain.Event) domain.SuggestionChoices {
	departments := make(map[string]struct{})
	sectors := make(map[string]struct{})
	for _, e := range events {
		if e.Department != "" {
			departments[e.Department] = struct{}{}
		}
		if e.Sector != "" {
			sectors[e.Sector] = struct{}{}
		}
	}
	return domain.SuggestionChoices{
		Departments: sortedKeys(departments),
		Sectors:     sortedKeys(sectors),
	}
}

// sortByStartDate sorts ascending by start date, unknown dates last, keeping load order for ties.
func sortByStartDate(events []*domain.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartDate.Compare(events[j].StartDate) < 0
	})
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
