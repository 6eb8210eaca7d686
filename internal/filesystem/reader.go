package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/davauxjs/project-knowledge-analyzer/internal/classify"
	"github.com/davauxjs/project-knowledge-analyzer/internal/ident"
	"github.com/davauxjs/project-knowledge-analyzer/pkg/models"
)

// ErrBinaryContent marks a file whose content looks like binary data.
var ErrBinaryContent = errors.New("binary content")

// ReadDescriptor reads a file and builds its descriptor: content, path hash,
// flattened name, category and language label. Returns ErrBinaryContent for
// files that fail the text sniff.
func ReadDescriptor(absPath, relPath string, info fs.FileInfo) (*models.FileDescriptor, error) {
	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if classify.IsBinary(content) {
		return nil, ErrBinaryContent
	}

	hash := ident.Hash(relPath)

	return &models.FileDescriptor{
		OriginalPath: relPath,
		FlatName:     ident.FlatName(relPath, hash),
		AbsolutePath: absPath,
		Content:      content,
		SizeBytes:    int64(len(content)),
		Extension:    GetExtension(relPath),
		ModTime:      info.ModTime(),
		Hash:         hash,
		Category:     classify.Classify(relPath, content),
		Language:     classify.Language(relPath, content),
	}, nil
}

// GetExtension returns the file extension without dot
func GetExtension(path string) string {
	ext := filepath.Ext(path)
	if len(ext) > 0 && ext[0] == '.' {
		return ext[1:]
	}
	return ext
}

// ParseSize parses size string (e.g., "650K", "1M") to bytes
func ParseSize(sizeStr string) int64 {
	if len(sizeStr) == 0 {
		return 0
	}

	// Get last character (unit)
	last := sizeStr[len(sizeStr)-1]
	var multiplier int64 = 1

	switch last {
	case 'K', 'k':
		multiplier = 1024
		sizeStr = sizeStr[:len(sizeStr)-1]
	case 'M', 'm':
		multiplier = 1024 * 1024
		sizeStr = sizeStr[:len(sizeStr)-1]
	case 'G', 'g':
		multiplier = 1024 * 1024 * 1024
		sizeStr = sizeStr[:len(sizeStr)-1]
	}

	// Parse number
	var size int64
	fmt.Sscanf(sizeStr, "%d", &size)

	return size * multiplier
}

// FormatSize formats a byte count as a human-readable string
func FormatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
