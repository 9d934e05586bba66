// Package index builds the in-memory application index at startup.
package index

import (
	"context"
	"runtime"
	"time"

	"rocket/internal/desktop"
	"rocket/internal/logging"
	"rocket/internal/models"

	"golang.org/x/sync/errgroup"
)

// Index is the immutable collection of parsed applications, in discovery order.
// Entries with duplicate names are kept; search de-duplicates them.
type Index struct {
	entries []models.Entry
}

// New creates an index over entries. The slice is copied.
func New(entries []models.Entry) *Index {
	return &Index{entries: append([]models.Entry(nil), entries...)}
}

// Build locates desktop files under baseDirs and parses them in parallel.
// Files that fail to parse are skipped. The context only stops the fan-out
// early; a cancelled build returns whatever was parsed before cancellation.
func Build(ctx context.Context, baseDirs []string) *Index {
	start := time.Now()

	paths := desktop.Locate(baseDirs)
	logging.Debug().Int("files", len(paths)).Dur("elapsed", time.Since(start)).Msg("located desktop files")

	parsed := make([]models.Entry, len(paths))
	ok := make([]bool, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount())
	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			parsed[i], ok[i] = desktop.Parse(path)
			return nil
		})
	}
	_ = g.Wait()

	entries := make([]models.Entry, 0, len(paths))
	for i := range parsed {
		if ok[i] {
			entries = append(entries, parsed[i])
		}
	}

	logging.Debug().Int("apps", len(entries)).Dur("elapsed", time.Since(start)).Msg("built application index")
	return &Index{entries: entries}
}

// workerCount sizes the parse pool; parsing is IO-bound
func workerCount() int {
	n := runtime.NumCPU() * 2
	if n > 16 {
		n = 16
	}
	return n
}

// Len returns the number of indexed applications
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.entries)
}

// All returns the indexed applications without copying. Callers must not
// modify the returned slice.
func (x *Index) All() []models.Entry {
	if x == nil {
		return nil
	}
	return x.entries
}

// Find returns the first application whose name equals name exactly
func (x *Index) Find(name string) (models.Entry, bool) {
	return models.FindByName(x.All(), name)
}
