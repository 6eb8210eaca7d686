package models

import "time"

// Statistics contains process-wide counters for one analysis run.
// Mutated incrementally during the walk, read-only once the walk completes.
type Statistics struct {
	TotalFiles     int      `json:"total_files"`     // file entries visited
	ProcessedFiles int      `json:"processed_files"` // files accepted into the collection
	SkippedFiles   int      `json:"skipped_files"`   // entries rejected by filter, size or errors
	TotalSize      int64    `json:"total_size"`      // cumulative byte size of accepted files
	Errors         []string `json:"errors"`          // ordered human-readable error/warning messages

	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration"`
}

// NewStatistics creates zeroed statistics for a fresh run.
func NewStatistics() *Statistics {
	return &Statistics{Errors: []string{}}
}

// AddError appends a message to the ordered error list.
func (s *Statistics) AddError(msg string) {
	s.Errors = append(s.Errors, msg)
}

// AnalysisResult contains the complete outcome of one analysis run.
type AnalysisResult struct {
	ProjectRoot string      `json:"project_root"`
	OutputDir   string      `json:"output_dir"`
	Stats       *Statistics `json:"statistics"`

	// Documentation artifact paths, set once rendering completes.
	MapPath   string `json:"map_path,omitempty"`
	IndexPath string `json:"index_path,omitempty"`

	Descriptors *Collection `json:"-"`
}
