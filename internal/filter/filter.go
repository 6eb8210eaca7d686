package filter

import (
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/davauxjs/project-knowledge-analyzer/internal/config"
)

// Filter decides whether a filesystem entry should be scanned, accepted or
// skipped. All predicates are pure; callers own the statistics counters.
type Filter struct {
	exclude    map[string]bool
	suffixes   []string
	extensions map[string]bool
	specials   map[string]bool
	maxSize    int64
	ignore     *gitignore.GitIgnore
}

// New builds a filter from configuration. maxSize is the accepted file size
// cap in bytes.
func New(cfg *config.Config, maxSize int64) *Filter {
	// Build lookup maps for fast checks
	exclude := make(map[string]bool, len(cfg.Exclude))
	for _, dir := range cfg.Exclude {
		exclude[dir] = true
	}

	extensions := make(map[string]bool, len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		extensions[strings.ToLower(ext)] = true
	}

	specials := make(map[string]bool, len(cfg.SpecialFiles))
	for _, name := range cfg.SpecialFiles {
		specials[name] = true
	}

	return &Filter{
		exclude:    exclude,
		suffixes:   cfg.ExcludeSuffixes,
		extensions: extensions,
		specials:   specials,
		maxSize:    maxSize,
	}
}

// ignoreFileNames are the ignore files honored at the scan root.
var ignoreFileNames = []string{".gitignore", ".pkaignore"}

// LoadIgnoreFiles compiles .gitignore and .pkaignore patterns from the scan
// root, when present. Missing files are not an error.
func (f *Filter) LoadIgnoreFiles(root string) error {
	var patterns []string
	for _, name := range ignoreFileNames {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		lines, err := readIgnoreFile(path)
		if err != nil {
			return err
		}
		patterns = append(patterns, lines...)
	}

	if len(patterns) > 0 {
		f.ignore = gitignore.CompileIgnoreLines(patterns...)
	}
	return nil
}

// ShouldExclude tests a relative path against the exclusion rules: excluded
// directory names anywhere in the path, excluded suffixes, and ignore-file
// patterns. A match on a directory excludes all its descendants.
func (f *Filter) ShouldExclude(relPath string) bool {
	for _, segment := range strings.Split(relPath, "/") {
		if f.exclude[segment] {
			return true
		}
	}

	for _, suffix := range f.suffixes {
		if strings.HasSuffix(relPath, suffix) {
			return true
		}
	}

	if f.ignore != nil && f.ignore.MatchesPath(relPath) {
		return true
	}

	return false
}

// WithinSizeLimit reports whether a file size is at or under the cap.
func (f *Filter) WithinSizeLimit(size int64) bool {
	return size <= f.maxSize
}

// AcceptedByName reports whether a file qualifies by extension or by being a
// well-known special filename.
func (f *Filter) AcceptedByName(relPath, ext string) bool {
	if f.extensions[strings.ToLower(ext)] {
		return true
	}
	return f.specials[filepath.Base(relPath)]
}

// IsAccepted is the combined predicate: size within cap and the name
// qualifies by extension or special filename.
func (f *Filter) IsAccepted(relPath string, size int64, ext string) bool {
	return f.WithinSizeLimit(size) && f.AcceptedByName(relPath, ext)
}

// readIgnoreFile reads an ignore file, skipping blank lines and comments
func readIgnoreFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var patterns []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns, nil
}
