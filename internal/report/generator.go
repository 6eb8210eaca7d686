package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/davauxjs/project-knowledge-analyzer/internal/filesystem"
	"github.com/davauxjs/project-knowledge-analyzer/internal/index"
	"github.com/davauxjs/project-knowledge-analyzer/pkg/models"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[38;5;220m"
	colorGray   = "\033[38;5;245m"
	colorCyan   = "\033[36m"
)

// MapFileName and IndexFileName are the fixed documentation artifact names.
const (
	MapFileName   = "PROJECT_MAP.md"
	IndexFileName = "project-index.json"
)

// Generator writes the documentation artifacts for an analysis run
type Generator struct {
	outputDir string
	logger    *zap.Logger
}

// NewGenerator creates a new report generator
func NewGenerator(outputDir string, logger *zap.Logger) *Generator {
	return &Generator{
		outputDir: outputDir,
		logger:    logger,
	}
}

// Generate renders and persists PROJECT_MAP.md and project-index.json,
// returning their absolute paths.
func (g *Generator) Generate(result *models.AnalysisResult, idx *index.Index) (string, string, error) {
	mapPath := filepath.Join(g.outputDir, MapFileName)
	indexPath := filepath.Join(g.outputDir, IndexFileName)

	g.logger.Info("Generating documentation",
		zap.String("map", mapPath),
		zap.String("index", indexPath))

	markdown := RenderDocument(result, idx)
	if err := os.WriteFile(mapPath, []byte(markdown), 0644); err != nil {
		return "", "", fmt.Errorf("failed to write %s: %w", MapFileName, err)
	}

	data, err := RenderJSONIndex(result, time.Now())
	if err != nil {
		return "", "", fmt.Errorf("failed to render JSON index: %w", err)
	}
	if err := os.WriteFile(indexPath, data, 0644); err != nil {
		return "", "", fmt.Errorf("failed to write %s: %w", IndexFileName, err)
	}

	absMap, _ := filepath.Abs(mapPath)
	absIndex, _ := filepath.Abs(indexPath)
	return absMap, absIndex, nil
}

// PrintConsole prints a run summary to stdout with colors
func PrintConsole(result *models.AnalysisResult) {
	stats := result.Stats

	fmt.Println()
	fmt.Printf("%s%sANALYSIS COMPLETE%s\n", colorBold, colorCyan, colorReset)
	fmt.Println()
	fmt.Printf("  %sProject:%s    %s\n", colorGray, colorReset, result.ProjectRoot)
	fmt.Printf("  %sOutput:%s     %s\n", colorGray, colorReset, result.OutputDir)
	fmt.Printf("  %sScanned:%s    %d\n", colorGray, colorReset, stats.TotalFiles)
	fmt.Printf("  %sProcessed:%s  %d\n", colorGray, colorReset, stats.ProcessedFiles)
	fmt.Printf("  %sSkipped:%s    %d\n", colorGray, colorReset, stats.SkippedFiles)
	fmt.Printf("  %sSize:%s       %s\n", colorGray, colorReset, filesystem.FormatSize(stats.TotalSize))
	fmt.Printf("  %sDuration:%s   %s\n", colorGray, colorReset, stats.Duration.Round(time.Millisecond))
	fmt.Println()

	if len(stats.Errors) == 0 {
		fmt.Printf("  %s%s✓ No errors%s\n", colorBold, colorGreen, colorReset)
	} else {
		fmt.Printf("  %s%s⚠ %d problem(s) recorded%s\n", colorBold, colorYellow, len(stats.Errors), colorReset)
		for _, msg := range stats.Errors {
			fmt.Printf("    %s- %s%s\n", colorGray, msg, colorReset)
		}
	}
	fmt.Println()

	if result.MapPath != "" {
		fmt.Printf("  %sMap:%s        %s\n", colorGray, colorReset, result.MapPath)
	}
	if result.IndexPath != "" {
		fmt.Printf("  %sIndex:%s      %s\n", colorGray, colorReset, result.IndexPath)
	}
	fmt.Println()
}
