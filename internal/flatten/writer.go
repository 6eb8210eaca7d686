// Package flatten persists accepted files into a single flat output
// directory under their generated names, each prefixed with a metadata
// header that maps it back to its original location.
package flatten

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/davauxjs/project-knowledge-analyzer/internal/filesystem"
	"github.com/davauxjs/project-knowledge-analyzer/pkg/models"
)

// ProgressFunc is called once per written file.
type ProgressFunc func(current, total int, flatName string)

// Writer writes flattened copies into the output directory
type Writer struct {
	outputDir string
	logger    *zap.Logger
	progress  ProgressFunc
}

// NewWriter creates a new flat writer
func NewWriter(outputDir string, logger *zap.Logger) *Writer {
	return &Writer{
		outputDir: outputDir,
		logger:    logger,
	}
}

// SetProgress sets the per-file progress callback.
func (w *Writer) SetProgress(fn ProgressFunc) {
	w.progress = fn
}

// Prepare creates the output directory, including intermediate segments.
// Pre-existing contents are left in place; stale files from earlier runs
// are not cleaned up.
func (w *Writer) Prepare() error {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", w.outputDir, err)
	}
	return nil
}

// WriteAll writes every descriptor to the output directory, overwriting
// existing files. A failure for one file is recorded on stats and the run
// continues with the remaining files.
func (w *Writer) WriteAll(coll *models.Collection, stats *models.Statistics) {
	descriptors := coll.Descriptors()
	total := len(descriptors)

	for i, d := range descriptors {
		if err := w.writeOne(d); err != nil {
			stats.AddError(fmt.Sprintf("cannot write %s: %v", d.FlatName, err))
			w.logger.Warn("Failed to write flattened file",
				zap.String("flat_name", d.FlatName),
				zap.Error(err))
			continue
		}
		if w.progress != nil {
			w.progress(i+1, total, d.FlatName)
		}
	}
}

// writeOne writes header + content for a single descriptor
func (w *Writer) writeOne(d *models.FileDescriptor) error {
	path := filepath.Join(w.outputDir, d.FlatName)

	data := append([]byte(Header(d)), d.Content...)
	return os.WriteFile(path, data, 0644)
}

// Header synthesizes the metadata block written ahead of the original
// content. Field order and labels are part of the output contract.
func Header(d *models.FileDescriptor) string {
	return fmt.Sprintf(`/*
 * Original Path: %s
 * File Type: %s
 * Size: %s
 * Last Modified: %s
 * Hash: %s
 */

`,
		d.OriginalPath,
		d.Category,
		filesystem.FormatSize(d.SizeBytes),
		d.ModTime.Format(time.RFC3339),
		d.Hash,
	)
}
