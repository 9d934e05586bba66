// Package desktop finds and parses XDG desktop entry files.
package desktop

import (
	"os"
	"path/filepath"
	"strings"

	"rocket/internal/logging"

	"golang.org/x/sync/errgroup"
)

// Extension is the file extension of desktop entry files
const Extension = ".desktop"

// applicationsDir is the subdirectory of each data dir holding entries
const applicationsDir = "applications"

// DataDirs returns the XDG data directories in lookup order:
// $XDG_DATA_HOME (default ~/.local/share) followed by $XDG_DATA_DIRS
// (default /usr/local/share:/usr/share). Relative paths, duplicates and
// empties are dropped.
func DataDirs() []string {
	homeDir, _ := os.UserHomeDir()

	dataHome := os.Getenv("XDG_DATA_HOME")
	if !filepath.IsAbs(dataHome) && homeDir != "" {
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}

	parts := append([]string{dataHome}, strings.Split(dataDirs, ":")...)

	seen := make(map[string]bool)
	var dirs []string
	for _, p := range parts {
		if !filepath.IsAbs(p) || seen[p] {
			continue
		}
		seen[p] = true
		dirs = append(dirs, p)
	}
	return dirs
}

// Locate lists desktop files in the applications subdirectory of every base
// dir, scanning the directories in parallel. Missing or unreadable
// directories contribute nothing. Paths are grouped by base dir in the order
// given, and sorted by file name within each group.
func Locate(baseDirs []string) []string {
	found := make([][]string, len(baseDirs))

	var g errgroup.Group
	for i, dir := range baseDirs {
		g.Go(func() error {
			found[i] = listEntries(filepath.Join(dir, applicationsDir))
			return nil
		})
	}
	_ = g.Wait()

	var paths []string
	for _, group := range found {
		paths = append(paths, group...)
	}
	return paths
}

// listEntries returns the desktop files directly inside dir
func listEntries(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logging.Debug().Str("dir", dir).Err(err).Msg("skipping applications dir")
		return nil
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != Extension {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths
}
