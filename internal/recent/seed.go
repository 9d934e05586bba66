package recent

import "rocket/internal/models"

// Lookup resolves an application name to its index entry
type Lookup interface {
	Find(name string) (models.Entry, bool)
}

// Seed turns the cached names into an initial result list. Names without an
// index entry (uninstalled apps) are skipped; at most max entries are returned.
func Seed(c *Cache, idx Lookup, max int) []models.Entry {
	if c == nil || idx == nil || max <= 0 {
		return []models.Entry{}
	}

	// Names takes the lock only for the copy
	names := c.Names()

	results := make([]models.Entry, 0, min(max, len(names)))
	for _, name := range names {
		e, ok := idx.Find(name)
		if !ok {
			continue
		}
		results = append(results, e)
		if len(results) == max {
			break
		}
	}
	return results
}
