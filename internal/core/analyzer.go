package core

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/davauxjs/project-knowledge-analyzer/internal/config"
	"github.com/davauxjs/project-knowledge-analyzer/internal/filesystem"
	"github.com/davauxjs/project-knowledge-analyzer/internal/filter"
	"github.com/davauxjs/project-knowledge-analyzer/internal/flatten"
	"github.com/davauxjs/project-knowledge-analyzer/internal/index"
	"github.com/davauxjs/project-knowledge-analyzer/internal/report"
	"github.com/davauxjs/project-knowledge-analyzer/internal/rules"
	"github.com/davauxjs/project-knowledge-analyzer/pkg/models"
	"go.uber.org/zap"
)

// ProgressCallback is called to report analysis progress
type ProgressCallback func(phase string, current, total int, message string)

// Analyzer is the main analysis engine. One Analyzer serves one run:
// it owns the descriptor collection and statistics for that run.
type Analyzer struct {
	config           *config.Config
	logger           *zap.Logger
	filter           *filter.Filter
	walker           *filesystem.Walker
	writer           *flatten.Writer
	reporter         *report.Generator
	result           *models.AnalysisResult
	progressCallback ProgressCallback
}

// NewAnalyzer creates a new analyzer instance
func NewAnalyzer(cfg *config.Config, logger *zap.Logger) *Analyzer {
	return &Analyzer{
		config: cfg,
		logger: logger,
		result: &models.AnalysisResult{
			Stats:       models.NewStatistics(),
			Descriptors: models.NewCollection(),
		},
	}
}

// SetProgressCallback sets the progress callback function
func (a *Analyzer) SetProgressCallback(cb ProgressCallback) {
	a.progressCallback = cb
}

// reportProgress calls the progress callback if set
func (a *Analyzer) reportProgress(phase string, current, total int, message string) {
	if a.progressCallback != nil {
		a.progressCallback(phase, current, total, message)
	}
}

// Run performs the full analysis: walk, flatten, index, document.
func (a *Analyzer) Run(path string) (*models.AnalysisResult, error) {
	a.logger.Info("Starting analysis",
		zap.String("path", path),
		zap.String("output_dir", a.config.OutputDir))

	stats := a.result.Stats
	stats.StartTime = time.Now()

	absRoot, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve project root %s: %w", path, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("cannot access project root %s: %w", absRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project root %s is not a directory", absRoot)
	}
	a.result.ProjectRoot = absRoot

	absOut, err := filepath.Abs(a.config.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve output directory %s: %w", a.config.OutputDir, err)
	}
	a.result.OutputDir = absOut

	if a.config.RulesFile != "" {
		ruleFile, err := rules.Load(a.config.RulesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load rules file: %w", err)
		}
		ruleFile.Apply(a.config)
		a.logger.Info("Applied rules file", zap.String("path", a.config.RulesFile))
	}

	maxSize := filesystem.ParseSize(a.config.MaxSize)
	a.filter = filter.New(a.config, maxSize)
	if a.config.UseGitignore {
		if err := a.filter.LoadIgnoreFiles(absRoot); err != nil {
			// Ignore files are best-effort: note the failure and continue.
			stats.AddError(fmt.Sprintf("cannot load ignore files: %v", err))
			a.logger.Warn("Failed to load ignore files", zap.Error(err))
		}
	}

	a.writer = flatten.NewWriter(absOut, a.logger)
	if err := a.writer.Prepare(); err != nil {
		return nil, err
	}

	// Count candidate files first so progress has a total
	a.reportProgress("counting", 0, 0, "Counting files...")
	totalFiles := a.countFiles(absRoot)
	a.logger.Info("Counted candidate files", zap.Int("total", totalFiles))

	// Walk the tree and collect descriptors
	a.reportProgress("scanning", 0, totalFiles, "Scanning project...")
	a.walker = filesystem.NewWalker(a.filter, a.logger)
	a.walker.SetProgress(func(accepted int, relPath string) {
		a.reportProgress("scanning", accepted, totalFiles, relPath)
	})
	if err := a.walker.Walk(absRoot, a.result.Descriptors, stats); err != nil {
		return nil, err
	}

	// Flatten accepted files into the output directory
	a.reportProgress("writing", 0, a.result.Descriptors.Len(), "Writing flattened files...")
	a.writer.SetProgress(func(current, total int, flatName string) {
		a.reportProgress("writing", current, total, flatName)
	})
	a.writer.WriteAll(a.result.Descriptors, stats)

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	// Render and persist the documentation artifacts
	a.reportProgress("documenting", 0, 0, "Generating documentation...")
	idx := index.Build(a.result.Descriptors)
	a.reporter = report.NewGenerator(absOut, a.logger)
	mapPath, indexPath, err := a.reporter.Generate(a.result, idx)
	if err != nil {
		return nil, err
	}
	a.result.MapPath = mapPath
	a.result.IndexPath = indexPath

	a.reportProgress("done", a.result.Descriptors.Len(), a.result.Descriptors.Len(), "Analysis complete")
	a.logger.Info("Analysis complete",
		zap.Int("processed", stats.ProcessedFiles),
		zap.Int("skipped", stats.SkippedFiles),
		zap.Duration("duration", stats.Duration))

	return a.result, nil
}

// countFiles counts file entries under root, skipping excluded directories.
// Errors during counting are ignored; the walk proper reports them.
func (a *Analyzer) countFiles(root string) int {
	count := 0
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if a.filter.ShouldExclude(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		count++
		return nil
	})
	return count
}
