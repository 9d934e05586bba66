package models

import "strings"

// Entry represents a launchable application parsed from a desktop file
type Entry struct {
	Name    string // Display name (first Name= line)
	Command string // Shell command with field codes removed
	Path    string // Descriptor the entry was read from
}

// Valid reports whether the entry has both a name and a command
func (e Entry) Valid() bool {
	return e.Name != "" && e.Command != ""
}

// Matches reports whether the lowercased name contains the lowercased query
func (e Entry) Matches(query string) bool {
	return strings.Contains(strings.ToLower(e.Name), strings.ToLower(query))
}

// Names returns the display names of entries, in order
func Names(entries []Entry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}

// FindByName returns the first entry whose name equals name exactly
func FindByName(entries []Entry, name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
