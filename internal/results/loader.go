package results

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spboyer/benchdiff/internal/discovery"
	"github.com/spboyer/benchdiff/internal/models"
	"golang.org/x/sync/errgroup"
)

//go:generate go tool mockgen -source loader.go -destination mock_loader_test.go -package results

// Loader loads every result file below a directory into a RunSet.
type Loader interface {
	Load(ctx context.Context, dir string) (models.RunSet, error)
}

// DirLoader reads result files from the local filesystem.
type DirLoader struct {
	Mode   IDMode
	Logger *slog.Logger
}

// NewDirLoader returns a DirLoader. logger may be nil.
func NewDirLoader(mode IDMode, logger *slog.Logger) *DirLoader {
	if logger == nil {
		logger = slog.Default()
	}
	return &DirLoader{Mode: mode, Logger: logger}
}

// Load reads every *.json and *.json.gz file below dir. Files that cannot be
// decoded are skipped; a missing or unreadable directory is an error.
func (l *DirLoader) Load(ctx context.Context, dir string) (models.RunSet, error) {
	files, err := discovery.FindResultFiles(dir)
	if err != nil {
		return nil, err
	}

	agg := NewAggregator(l.Mode, l.Logger)
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, err := ReadDocument(path)
		if err != nil {
			l.Logger.Debug("skipping result file", "path", path, "error", err)
			continue
		}
		agg.Add(doc)
	}

	set := agg.RunSet()
	l.Logger.Debug("loaded results", "dir", dir, "files", len(files), "tests", len(set))
	return set, nil
}

// ReadDocument decodes one result file, transparently gunzipping *.gz files.
func ReadDocument(path string) (*Document, error) {
	r, err := discovery.OpenResultFile(path)
	if err != nil {
		return nil, err
	}
	defer r.Close() //nolint:errcheck

	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &doc, nil
}

// LoadPair loads the baseline and actual directories concurrently.
func LoadPair(ctx context.Context, loader Loader, baselineDir, actualDir string) (baseline, actual models.RunSet, err error) {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var err error
		baseline, err = loader.Load(ctx, baselineDir)
		if err != nil {
			return fmt.Errorf("loading baseline %s: %w", baselineDir, err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		actual, err = loader.Load(ctx, actualDir)
		if err != nil {
			return fmt.Errorf("loading actual %s: %w", actualDir, err)
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	return baseline, actual, nil
}
