package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/davauxjs/project-knowledge-analyzer/internal/filter"
	"github.com/davauxjs/project-knowledge-analyzer/pkg/models"
)

// ProgressFunc is called once per accepted file during the walk.
type ProgressFunc func(accepted int, relPath string)

// Walker walks the project tree and collects file descriptors
type Walker struct {
	filter   *filter.Filter
	logger   *zap.Logger
	progress ProgressFunc
}

// NewWalker creates a new filesystem walker
func NewWalker(f *filter.Filter, logger *zap.Logger) *Walker {
	return &Walker{
		filter: f,
		logger: logger,
	}
}

// SetProgress sets the per-file progress callback.
func (w *Walker) SetProgress(fn ProgressFunc) {
	w.progress = fn
}

// Walk recursively walks the directory tree rooted at root, inserting
// accepted descriptors into coll and updating stats. Failures while listing
// a directory or reading a file are recorded and the walk continues; only a
// failure to list the root itself is returned as an error.
func (w *Walker) Walk(root string, coll *models.Collection, stats *models.Statistics) error {
	rootSeen := false

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		relPath := relativeTo(root, path)

		if err != nil {
			if !rootSeen {
				return fmt.Errorf("cannot read project root: %w", err)
			}
			// Listing error: record and abandon this subtree, siblings continue.
			stats.AddError(fmt.Sprintf("cannot access %s: %v", relPath, err))
			w.logger.Warn("Error accessing path", zap.String("path", relPath), zap.Error(err))
			return nil
		}

		if relPath == "." {
			rootSeen = true
			return nil
		}

		if d.IsDir() {
			if w.filter.ShouldExclude(relPath) {
				w.logger.Debug("Skipping excluded directory", zap.String("path", relPath))
				stats.SkippedFiles++
				return filepath.SkipDir
			}
			return nil
		}

		stats.TotalFiles++

		if w.filter.ShouldExclude(relPath) {
			stats.SkippedFiles++
			return nil
		}

		info, err := d.Info()
		if err != nil {
			stats.AddError(fmt.Sprintf("cannot stat %s: %v", relPath, err))
			stats.SkippedFiles++
			return nil
		}

		if !w.filter.WithinSizeLimit(info.Size()) {
			stats.AddError(fmt.Sprintf("file too large: %s (%s)", relPath, FormatSize(info.Size())))
			stats.SkippedFiles++
			return nil
		}

		if !w.filter.AcceptedByName(relPath, GetExtension(relPath)) {
			// Extension/name rejection is a silent counted skip.
			stats.SkippedFiles++
			return nil
		}

		descriptor, err := ReadDescriptor(path, relPath, info)
		if err != nil {
			if errors.Is(err, ErrBinaryContent) {
				stats.AddError(fmt.Sprintf("binary file skipped: %s", relPath))
			} else {
				stats.AddError(fmt.Sprintf("cannot read %s: %v", relPath, err))
			}
			stats.SkippedFiles++
			return nil
		}

		coll.Add(descriptor)
		stats.ProcessedFiles++
		stats.TotalSize += descriptor.SizeBytes

		if w.progress != nil {
			w.progress(stats.ProcessedFiles, relPath)
		}
		return nil
	})
}

// relativeTo returns the slash-normalized path of target relative to root
func relativeTo(root, target string) string {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		rel = target
	}
	return filepath.ToSlash(rel)
}
