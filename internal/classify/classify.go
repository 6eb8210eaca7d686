// Package classify assigns a coarse category to a file from its extension
// and a shallow content scan. This is a pure keyword heuristic, not parsing:
// a keyword inside a string or comment will misclassify, which is an
// accepted limitation.
package classify

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/davauxjs/project-knowledge-analyzer/pkg/models"
)

// scriptExts are extensions classified by content inspection.
var scriptExts = map[string]bool{
	".js":  true,
	".mjs": true,
	".ts":  true,
	".jsx": true,
	".tsx": true,
}

// extTable maps non-script extensions to fixed categories.
var extTable = map[string]models.Category{
	".json": models.CategoryConfig,
	".yml":  models.CategoryConfig,
	".yaml": models.CategoryConfig,
	".md":   models.CategoryDocumentation,
	".html": models.CategoryTemplate,
	".htm":  models.CategoryTemplate,
	".css":  models.CategoryStylesheet,
	".scss": models.CategoryStylesheet,
	".sass": models.CategoryStylesheet,
	".less": models.CategoryStylesheet,
}

// Classify infers the category for a file. Script-like extensions are
// inspected for import/export, class and function keywords in that order;
// everything else maps by extension table.
func Classify(path string, content []byte) models.Category {
	ext := strings.ToLower(filepath.Ext(path))

	if scriptExts[ext] {
		text := string(content)
		switch {
		case strings.Contains(text, "import ") || strings.Contains(text, "export "):
			return models.CategoryModule
		case strings.Contains(text, "class "):
			return models.CategoryClass
		case strings.Contains(text, "function"):
			return models.CategoryFunction
		default:
			return models.CategoryScript
		}
	}

	if category, ok := extTable[ext]; ok {
		return category
	}

	return models.CategoryOther
}

// Language returns a human-readable language label for a file, or empty
// when detection fails.
func Language(path string, content []byte) string {
	return enry.GetLanguage(filepath.Base(path), content)
}

// IsBinary reports whether content looks like binary data.
func IsBinary(content []byte) bool {
	return enry.IsBinary(content)
}
