package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/davauxjs/project-knowledge-analyzer/internal/filesystem"
	"github.com/davauxjs/project-knowledge-analyzer/internal/index"
	"github.com/davauxjs/project-knowledge-analyzer/pkg/models"
)

// RenderDocument assembles the PROJECT_MAP.md markdown document: statistics,
// rendered tree, flat-index table, per-category sections, the error list
// when non-empty, and usage instructions referencing the output directory.
func RenderDocument(result *models.AnalysisResult, idx *index.Index) string {
	var sb strings.Builder
	stats := result.Stats

	// Header
	sb.WriteString("# Project Map\n\n")
	sb.WriteString(fmt.Sprintf("Source: `%s`\n\n", result.ProjectRoot))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", stats.EndTime.Format("2006-01-02 15:04:05")))

	// Statistics
	sb.WriteString("## Statistics\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Files Scanned | %d |\n", stats.TotalFiles))
	sb.WriteString(fmt.Sprintf("| Files Processed | %d |\n", stats.ProcessedFiles))
	sb.WriteString(fmt.Sprintf("| Files Skipped | %d |\n", stats.SkippedFiles))
	sb.WriteString(fmt.Sprintf("| Total Size | %s |\n", filesystem.FormatSize(stats.TotalSize)))
	sb.WriteString(fmt.Sprintf("| Errors | %d |\n", len(stats.Errors)))
	sb.WriteString("\n")

	// Project structure
	sb.WriteString("## Project Structure\n\n")
	sb.WriteString("```\n")
	sb.WriteString(RenderTree(idx.Tree))
	sb.WriteString("```\n\n")

	// Flat index
	sb.WriteString("## File Index\n\n")
	sb.WriteString("| Original Path | Flattened Name | Type | Size | Extension |\n")
	sb.WriteString("|---------------|----------------|------|------|-----------|\n")
	for _, entry := range idx.Flat {
		sb.WriteString(fmt.Sprintf("| `%s` | `%s` | %s | %s | %s |\n",
			entry.Original, entry.Flattened, entry.Type, entry.HumanSize, entry.Extension))
	}
	sb.WriteString("\n")

	// Type groups
	sb.WriteString("## Files by Type\n\n")
	for _, category := range models.Categories() {
		group := idx.Groups[category]
		if len(group) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("### %s (%d)\n\n", category, len(group)))
		for _, member := range group {
			sb.WriteString(fmt.Sprintf("- `%s` ← `%s`\n", member.Flattened, member.Original))
		}
		sb.WriteString("\n")
	}

	// Errors, only when something went wrong
	if len(stats.Errors) > 0 {
		sb.WriteString("## Errors\n\n")
		for _, msg := range stats.Errors {
			sb.WriteString(fmt.Sprintf("- %s\n", msg))
		}
		sb.WriteString("\n")
	}

	// Usage instructions
	sb.WriteString("## Usage\n\n")
	sb.WriteString(fmt.Sprintf("All files in `%s` are flattened copies of the project tree above.\n", result.OutputDir))
	sb.WriteString("Each copy starts with a metadata header naming its original path; the\n")
	sb.WriteString("`File Index` table and `project-index.json` map flattened names back to\n")
	sb.WriteString("their original locations. Upload the whole directory to any interface\n")
	sb.WriteString("that cannot preserve directory structure.\n")

	return sb.String()
}

// formatTimestamp renders the shared timestamp format of the JSON index.
func formatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
