package index

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"rocket/internal/models"
)

func writeDesktop(t *testing.T, dir, file, content string) {
	t.Helper()
	appDir := filepath.Join(dir, "applications")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(appDir, file), []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestBuild(t *testing.T) {
	user := t.TempDir()
	system := t.TempDir()

	writeDesktop(t, user, "a-files.desktop", "[Desktop Entry]\nName=Files\nExec=nautilus %U\n")
	writeDesktop(t, user, "b-broken.desktop", "[Desktop Entry]\nName=Broken\n")
	writeDesktop(t, system, "a-firefox.desktop", "[Desktop Entry]\nName=Firefox\nExec=firefox %u\n")
	writeDesktop(t, system, "b-files.desktop", "[Desktop Entry]\nName=Files\nExec=nautilus-old\n")

	idx := Build(context.Background(), []string{user, system})

	got := models.Names(idx.All())
	want := []string{"Files", "Firefox", "Files"}
	if len(got) != len(want) {
		t.Fatalf("Build() names = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("names[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	e, ok := idx.Find("Files")
	if !ok || e.Command != "nautilus" {
		t.Errorf("Find(Files) = %+v, %v; want first discovered entry", e, ok)
	}
}

func TestBuild_ManyFilesKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 100; i++ {
		writeDesktop(t, dir, fmt.Sprintf("app%03d.desktop", i), fmt.Sprintf("Name=App %03d\nExec=app%d\n", i, i))
	}

	idx := Build(context.Background(), []string{dir})
	if idx.Len() != 100 {
		t.Fatalf("Expected 100 apps, got %d", idx.Len())
	}
	for i, e := range idx.All() {
		if want := fmt.Sprintf("App %03d", i); e.Name != want {
			t.Fatalf("entry %d = %s, want %s", i, e.Name, want)
		}
	}
}

func TestBuild_Empty(t *testing.T) {
	idx := Build(context.Background(), []string{filepath.Join(t.TempDir(), "nothing")})
	if idx.Len() != 0 {
		t.Errorf("Expected empty index, got %d", idx.Len())
	}
	if _, ok := idx.Find("anything"); ok {
		t.Error("Find on empty index should fail")
	}
}

func TestNewCopiesEntries(t *testing.T) {
	entries := []models.Entry{{Name: "Files", Command: "nautilus"}}
	idx := New(entries)

	entries[0].Name = "Changed"
	if idx.All()[0].Name != "Files" {
		t.Error("New should copy its input")
	}
}

func TestNilIndex(t *testing.T) {
	var idx *Index
	if idx.Len() != 0 || idx.All() != nil {
		t.Error("nil index should behave as empty")
	}
}

func TestWorkerCount(t *testing.T) {
	n := workerCount()
	if n < 1 || n > 16 {
		t.Errorf("workerCount() = %d, want 1..16", n)
	}
}
