// Package search filters the application index by name.
package search

import "rocket/internal/models"

// Search returns at most max entries whose name contains query, ignoring case.
// Results keep index order, and only the first entry with a given name is
// returned. An empty query matches every entry.
func Search(query string, entries []models.Entry, max int) []models.Entry {
	if max <= 0 {
		return []models.Entry{}
	}

	seen := make(map[string]bool)
	results := make([]models.Entry, 0, min(max, len(entries)))

	for _, e := range entries {
		if !e.Matches(query) {
			continue
		}
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		results = append(results, e)
		if len(results) == max {
			break
		}
	}
	return results
}
