package filter

import (
	"github.com/brandoline/Kanbanize.me/internal/models"
)

// Facet option lists are derived by scanning the current snapshot for
// the unique non-empty values actually in use, preserving first-seen
// order. No caching: the data sets are small and the derivation is
// recomputed per request.

// UniqueCities returns the distinct contact cities in use.
func UniqueCities(contacts []models.Contact) []string {
	return uniqueStrings(contacts, func(c models.Contact) string { return c.City })
}

// UniqueInstitutions returns the distinct contact institutions in use.
func UniqueInstitutions(contacts []models.Contact) []string {
	return uniqueStrings(contacts, func(c models.Contact) string { return c.Institution })
}

// UniquePeriods returns the distinct course periods in use.
func UniquePeriods(courses []models.Course) []string {
	return uniqueStrings(courses, func(c models.Course) string { return string(c.Period) })
}

// UniqueModalities returns the distinct course modalities in use.
func UniqueModalities(courses []models.Course) []string {
	return uniqueStrings(courses, func(c models.Course) string { return string(c.Modality) })
}

// UniqueCoursePriorities returns the distinct course priorities in use.
func UniqueCoursePriorities(courses []models.Course) []string {
	return uniqueStrings(courses, func(c models.Course) string { return string(c.Priority) })
}

// UniqueColors returns the distinct course colors in use.
func UniqueColors(courses []models.Course) []string {
	return uniqueStrings(courses, func(c models.Course) string { return c.Color })
}

func uniqueStrings[T any](items []T, key func(T) string) []string {
	seen := make(map[string]struct{}, len(items))
	out := []string{}
	for _, item := range items {
		v := key(item)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
