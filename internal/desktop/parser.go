package desktop

import (
	"os"
	"strings"
	"unicode/utf8"

	"rocket/internal/models"
)

const (
	namePrefix = "Name="
	execPrefix = "Exec="
)

// fieldCodes are the Exec= placeholders stripped before launching
var fieldCodes = []string{"%f", "%u", "%U", "%F", "%i", "%c", "%k"}

// Parse reads a desktop file and returns its entry. It returns false when the
// file can't be read as UTF-8 text or lacks a Name= or Exec= line.
func Parse(path string) (models.Entry, bool) {
	data, err := os.ReadFile(path)
	if err != nil || !utf8.Valid(data) {
		return models.Entry{}, false
	}

	entry, ok := parseText(string(data))
	if !ok {
		return models.Entry{}, false
	}
	entry.Path = path
	return entry, true
}

// parseText looks for the first Name= and the first Exec= line. Section
// headers are ignored and lines may be of any length.
func parseText(text string) (models.Entry, bool) {
	var name, exec string
	var haveName, haveExec bool

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		switch {
		case !haveName && strings.HasPrefix(line, namePrefix):
			name = strings.TrimSpace(line[len(namePrefix):])
			haveName = true
		case !haveExec && strings.HasPrefix(line, execPrefix):
			exec = strings.TrimSpace(line[len(execPrefix):])
			haveExec = true
		}
		if haveName && haveExec {
			break
		}
	}

	entry := models.Entry{Name: name, Command: CleanExec(exec)}
	if !entry.Valid() {
		return models.Entry{}, false
	}
	return entry, true
}

// CleanExec removes every field code from an Exec= value and trims it
func CleanExec(exec string) string {
	for _, code := range fieldCodes {
		exec = strings.ReplaceAll(exec, code, "")
	}
	return strings.TrimSpace(exec)
}
