package models

import (
	"testing"
)

// ============ Entry Tests ============

func TestEntryValid(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  bool
	}{
		{"complete", Entry{Name: "Firefox", Command: "firefox"}, true},
		{"missing name", Entry{Command: "firefox"}, false},
		{"missing command", Entry{Name: "Firefox"}, false},
		{"empty", Entry{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntryMatches(t *testing.T) {
	e := Entry{Name: "File Manager", Command: "pcmanfm"}

	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"file", true},
		{"FILE", true},
		{"manager", true},
		{"e m", true},
		{"firefox", false},
		{"filemanager", false},
	}

	for _, tt := range tests {
		if got := e.Matches(tt.query); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestNames(t *testing.T) {
	entries := []Entry{
		{Name: "Files", Command: "nautilus"},
		{Name: "Firefox", Command: "firefox"},
	}

	names := Names(entries)
	if len(names) != 2 {
		t.Fatalf("Expected 2 names, got %d", len(names))
	}
	if names[0] != "Files" || names[1] != "Firefox" {
		t.Errorf("Unexpected names: %v", names)
	}

	if got := Names(nil); len(got) != 0 {
		t.Errorf("Names(nil) should be empty, got %v", got)
	}
}

func TestFindByName(t *testing.T) {
	entries := []Entry{
		{Name: "Terminal", Command: "xterm"},
		{Name: "Terminal", Command: "gnome-terminal"},
		{Name: "Files", Command: "nautilus"},
	}

	e, ok := FindByName(entries, "Terminal")
	if !ok {
		t.Fatal("Expected Terminal to be found")
	}
	if e.Command != "xterm" {
		t.Errorf("Expected first match 'xterm', got %s", e.Command)
	}

	if _, ok := FindByName(entries, "terminal"); ok {
		t.Error("FindByName should be case-sensitive")
	}
	if _, ok := FindByName(entries, "Ghost"); ok {
		t.Error("FindByName should not find missing names")
	}
}
