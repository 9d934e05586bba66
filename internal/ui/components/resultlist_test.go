package components

import (
	"strings"
	"testing"
)

func TestNewResultList(t *testing.T) {
	list := NewResultList([]string{"Files", "Firefox"})

	if list == nil {
		t.Fatal("NewResultList should return a ResultList")
	}
	if len(list.Names) != 2 {
		t.Errorf("Expected 2 names, got %d", len(list.Names))
	}
	if list.Cursor != 0 {
		t.Errorf("Expected cursor at 0, got %d", list.Cursor)
	}
	if !list.Focused {
		t.Error("Expected Focused to be true")
	}
	if list.Title == "" {
		t.Error("Expected Title to be set")
	}
}

func TestResultList_SetNames(t *testing.T) {
	list := NewResultList(nil)
	list.Cursor = 5 // Set cursor beyond new list

	list.SetNames([]string{"Files", "Firefox"})
	if list.Cursor != 1 {
		t.Errorf("Expected cursor clamped to 1, got %d", list.Cursor)
	}

	list.SetNames(nil)
	if list.Cursor != 0 {
		t.Errorf("Expected cursor 0 for empty list, got %d", list.Cursor)
	}
}

func TestResultList_Movement(t *testing.T) {
	list := NewResultList([]string{"a", "b", "c"})

	list.MoveDown()
	list.MoveDown()
	if list.Cursor != 2 {
		t.Errorf("Expected cursor at 2, got %d", list.Cursor)
	}

	// Should not go past the end
	list.MoveDown()
	if list.Cursor != 2 {
		t.Errorf("Expected cursor to stay at 2, got %d", list.Cursor)
	}

	list.MoveUp()
	if list.Cursor != 1 {
		t.Errorf("Expected cursor at 1, got %d", list.Cursor)
	}

	list.GoToFirst()
	list.MoveUp()
	if list.Cursor != 0 {
		t.Errorf("Expected cursor to stay at 0, got %d", list.Cursor)
	}
}

func TestResultList_Current(t *testing.T) {
	list := NewResultList([]string{"Files", "Firefox"})
	list.MoveDown()

	name, ok := list.Current()
	if !ok || name != "Firefox" {
		t.Errorf("Expected Firefox, got %q (%v)", name, ok)
	}

	empty := NewResultList(nil)
	if _, ok := empty.Current(); ok {
		t.Error("Current should report false for an empty list")
	}
}

func TestResultList_View(t *testing.T) {
	list := NewResultList([]string{"Files", "File Manager"})
	view := list.View()

	for _, want := range []string{"Applications (2)", "Files", "File Manager"} {
		if !strings.Contains(view, want) {
			t.Errorf("View should contain %q", want)
		}
	}
}

func TestResultList_ViewEmpty(t *testing.T) {
	view := NewResultList(nil).View()
	if !strings.Contains(view, "No matching applications") {
		t.Error("Empty view should show placeholder")
	}
}

func TestResultList_ViewTruncatesLongNames(t *testing.T) {
	list := NewResultList([]string{strings.Repeat("x", 100)})
	list.Width = 20

	if strings.Contains(list.View(), strings.Repeat("x", 100)) {
		t.Error("Long names should be truncated")
	}
}

func TestResultList_ViewScrollsToCursor(t *testing.T) {
	list := NewResultList([]string{"a1", "a2", "a3", "a4", "a5"})
	list.Height = 4 // two visible rows
	list.Cursor = 4

	view := list.View()
	if !strings.Contains(view, "a5") {
		t.Error("Cursor row should be visible")
	}
	if strings.Contains(view, "a1") {
		t.Error("Rows above the window should be hidden")
	}
}
