// Package catalog serves the built-in browsable dataset. Filtering is a
// plain in-memory substring scan with no network or persistence involved.
package catalog

import (
	"strconv"
	"strings"

	"cinedex/models"
)

// Service holds the fixed catalog and answers filter queries over it.
type Service struct {
	entries []models.CatalogEntry
}

// NewService creates a catalog service over the built-in dataset.
func NewService() *Service {
	return &Service{entries: catalogEntries}
}

// NewServiceWithEntries creates a catalog service over a custom dataset.
func NewServiceWithEntries(entries []models.CatalogEntry) *Service {
	return &Service{entries: entries}
}

// Filter returns the entries whose title, alternate title, year, status,
// genres or studios contain the query, case-insensitively. An empty query
// returns the full catalog.
func (s *Service) Filter(query string) []models.CatalogEntry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]models.CatalogEntry, len(s.entries))
		copy(out, s.entries)
		return out
	}

	matched := make([]models.CatalogEntry, 0)
	for _, entry := range s.entries {
		if entryMatches(entry, query) {
			matched = append(matched, entry)
		}
	}
	return matched
}

func entryMatches(entry models.CatalogEntry, query string) bool {
	if strings.Contains(strings.ToLower(entry.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(entry.AltTitle), query) {
		return true
	}
	if entry.Year != 0 && strings.Contains(strconv.Itoa(entry.Year), query) {
		return true
	}
	if strings.Contains(strings.ToLower(entry.Status), query) {
		return true
	}
	for _, genre := range entry.Genres {
		if strings.Contains(strings.ToLower(genre), query) {
			return true
		}
	}
	for _, studio := range entry.Studios {
		if strings.Contains(strings.ToLower(studio), query) {
			return true
		}
	}
	return false
}
