package report

import (
	"encoding/json"
	"time"

	"github.com/davauxjs/project-knowledge-analyzer/pkg/models"
)

// JSONIndex is the machine-readable companion of the project map.
type JSONIndex struct {
	GeneratedAt string             `json:"generated_at"`
	ProjectRoot string             `json:"project_root"`
	OutputDir   string             `json:"output_dir"`
	Statistics  *models.Statistics `json:"statistics"`
	Files       []JSONFileRecord   `json:"files"`
}

// JSONFileRecord is one descriptor entry, in collection order.
type JSONFileRecord struct {
	OriginalPath string          `json:"originalPath"`
	FlatName     string          `json:"flatName"`
	Category     models.Category `json:"category"`
	Language     string          `json:"language,omitempty"`
	SizeBytes    int64           `json:"sizeBytes"`
	Hash         string          `json:"hash"`
}

// RenderJSONIndex builds the pretty-printed JSON index document.
func RenderJSONIndex(result *models.AnalysisResult, now time.Time) ([]byte, error) {
	doc := JSONIndex{
		GeneratedAt: formatTimestamp(now),
		ProjectRoot: result.ProjectRoot,
		OutputDir:   result.OutputDir,
		Statistics:  result.Stats,
		Files:       []JSONFileRecord{},
	}

	for _, d := range result.Descriptors.Descriptors() {
		doc.Files = append(doc.Files, JSONFileRecord{
			OriginalPath: d.OriginalPath,
			FlatName:     d.FlatName,
			Category:     d.Category,
			Language:     d.Language,
			SizeBytes:    d.SizeBytes,
			Hash:         d.Hash,
		})
	}

	return json.MarshalIndent(doc, "", "  ")
}
