package models

import (
	"time"
)

// Category is the coarse content-type label assigned to a file.
type Category string

const (
	CategoryModule        Category = "module"
	CategoryClass         Category = "class"
	CategoryFunction      Category = "function"
	CategoryScript        Category = "script"
	CategoryConfig        Category = "config"
	CategoryDocumentation Category = "documentation"
	CategoryTemplate      Category = "template"
	CategoryStylesheet    Category = "stylesheet"
	CategoryOther         Category = "other"
)

// Categories returns the category vocabulary in report order.
func Categories() []Category {
	return []Category{
		CategoryModule,
		CategoryClass,
		CategoryFunction,
		CategoryScript,
		CategoryConfig,
		CategoryDocumentation,
		CategoryTemplate,
		CategoryStylesheet,
		CategoryOther,
	}
}

// FileDescriptor captures one accepted source file with its metadata and content.
type FileDescriptor struct {
	OriginalPath string    `json:"originalPath"` // slash-separated path relative to the scan root
	FlatName     string    `json:"flatName"`     // generated unique output filename
	AbsolutePath string    `json:"-"`            // resolved source location, used only for reading
	Content      []byte    `json:"-"`            // full content as read at scan time
	SizeBytes    int64     `json:"sizeBytes"`
	Extension    string    `json:"extension"`
	ModTime      time.Time `json:"lastModified"`
	Hash         string    `json:"hash"` // 8-char identifier derived from OriginalPath
	Category     Category  `json:"category"`
	Language     string    `json:"language,omitempty"` // detected language label, best effort
}
