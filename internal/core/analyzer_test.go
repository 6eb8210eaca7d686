package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davauxjs/project-knowledge-analyzer/internal/config"
	"github.com/davauxjs/project-knowledge-analyzer/internal/ident"
	"github.com/davauxjs/project-knowledge-analyzer/internal/report"
	"go.uber.org/zap"
)

func testConfig(outputDir string) *config.Config {
	return &config.Config{
		MaxSize:         "1M",
		Extensions:      config.DefaultExtensions(),
		Exclude:         config.DefaultExclude(),
		ExcludeSuffixes: config.DefaultExcludeSuffixes(),
		SpecialFiles:    config.DefaultSpecialFiles(),
		UseGitignore:    true,
		OutputDir:       outputDir,
	}
}

func writeFixture(t *testing.T, root, relPath, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestAnalyzerRun(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(t.TempDir(), "knowledge")
	writeFixture(t, root, "src/app.js", "export default function main() {}\n")
	writeFixture(t, root, "README.md", "# Demo\n")

	analyzer := NewAnalyzer(testConfig(out), zap.NewNop())
	result, err := analyzer.Run(root)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	stats := result.Stats
	if stats.TotalFiles != 2 || stats.ProcessedFiles != 2 || stats.SkippedFiles != 0 {
		t.Errorf("stats = total %d processed %d skipped %d, want 2/2/0",
			stats.TotalFiles, stats.ProcessedFiles, stats.SkippedFiles)
	}
	if len(stats.Errors) != 0 {
		t.Errorf("unexpected errors: %v", stats.Errors)
	}
	if stats.Duration <= 0 {
		t.Error("duration was not recorded")
	}

	appFlat := ident.FlatName("src/app.js", ident.Hash("src/app.js"))
	appData, err := os.ReadFile(filepath.Join(out, appFlat))
	if err != nil {
		t.Fatalf("flattened app.js missing: %v", err)
	}
	if !strings.HasPrefix(string(appData), "/*\n * Original Path: src/app.js\n * File Type: module\n") {
		t.Errorf("flattened header wrong:\n%s", appData)
	}
	if !strings.HasSuffix(string(appData), "export default function main() {}\n") {
		t.Error("flattened file does not end with original content")
	}

	readmeFlat := ident.FlatName("README.md", ident.Hash("README.md"))
	if _, err := os.Stat(filepath.Join(out, readmeFlat)); err != nil {
		t.Errorf("flattened README.md missing: %v", err)
	}

	mapData, err := os.ReadFile(filepath.Join(out, report.MapFileName))
	if err != nil {
		t.Fatalf("project map missing: %v", err)
	}
	for _, want := range []string{"# Project Map", "src/", "README.md", appFlat} {
		if !strings.Contains(string(mapData), want) {
			t.Errorf("project map missing %q", want)
		}
	}

	indexData, err := os.ReadFile(filepath.Join(out, report.IndexFileName))
	if err != nil {
		t.Fatalf("JSON index missing: %v", err)
	}
	if !strings.Contains(string(indexData), `"originalPath": "src/app.js"`) {
		t.Error("JSON index missing src/app.js record")
	}

	if result.MapPath == "" || result.IndexPath == "" {
		t.Error("artifact paths not set on result")
	}
	d, ok := result.Descriptors.Get("src/app.js")
	if !ok || d.Category != "module" {
		t.Errorf("src/app.js descriptor = %+v, want module category", d)
	}
}

func TestAnalyzerRunIdempotent(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(t.TempDir(), "knowledge")
	writeFixture(t, root, "src/app.js", "export default function main() {}\n")
	writeFixture(t, root, "README.md", "# Demo\n")

	run := func() map[string][]byte {
		analyzer := NewAnalyzer(testConfig(out), zap.NewNop())
		if _, err := analyzer.Run(root); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		files := map[string][]byte{}
		for _, rel := range []string{"src/app.js", "README.md"} {
			name := ident.FlatName(rel, ident.Hash(rel))
			data, err := os.ReadFile(filepath.Join(out, name))
			if err != nil {
				t.Fatal(err)
			}
			files[name] = data
		}
		return files
	}

	first := run()
	second := run()
	for name, data := range first {
		if string(second[name]) != string(data) {
			t.Errorf("flattened file %s changed between runs", name)
		}
	}
}

func TestAnalyzerRunMissingRoot(t *testing.T) {
	out := t.TempDir()
	analyzer := NewAnalyzer(testConfig(out), zap.NewNop())
	if _, err := analyzer.Run(filepath.Join(t.TempDir(), "no-such-dir")); err == nil {
		t.Fatal("expected error for missing project root")
	}
}

func TestAnalyzerRunRootIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	analyzer := NewAnalyzer(testConfig(t.TempDir()), zap.NewNop())
	if _, err := analyzer.Run(file); err == nil {
		t.Fatal("expected error when root is a file")
	}
}

func TestAnalyzerRunRulesFile(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(t.TempDir(), "knowledge")
	writeFixture(t, root, "src/app.js", "console.log('hi');\n")
	writeFixture(t, root, "generated/schema.js", "export const schema = {};\n")

	rulesPath := filepath.Join(t.TempDir(), "rules.yml")
	if err := os.WriteFile(rulesPath, []byte("exclude:\n  - generated\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig(out)
	cfg.RulesFile = rulesPath
	analyzer := NewAnalyzer(cfg, zap.NewNop())
	result, err := analyzer.Run(root)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if _, ok := result.Descriptors.Get("generated/schema.js"); ok {
		t.Error("rules file exclusion was not applied")
	}
	if _, ok := result.Descriptors.Get("src/app.js"); !ok {
		t.Error("src/app.js should have been accepted")
	}
}

func TestAnalyzerRunGitignore(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(t.TempDir(), "knowledge")
	writeFixture(t, root, ".gitignore", "secrets.env\n")
	writeFixture(t, root, "secrets.env", "TOKEN=abc\n")
	writeFixture(t, root, "app.js", "console.log('hi');\n")

	analyzer := NewAnalyzer(testConfig(out), zap.NewNop())
	result, err := analyzer.Run(root)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if _, ok := result.Descriptors.Get("secrets.env"); ok {
		t.Error("gitignored file was accepted")
	}
	if _, ok := result.Descriptors.Get(".gitignore"); !ok {
		t.Error(".gitignore itself should be accepted as a special file")
	}
}

func TestAnalyzerProgressPhases(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(t.TempDir(), "knowledge")
	writeFixture(t, root, "app.js", "console.log('hi');\n")

	analyzer := NewAnalyzer(testConfig(out), zap.NewNop())
	seen := map[string]bool{}
	analyzer.SetProgressCallback(func(phase string, current, total int, message string) {
		seen[phase] = true
	})
	if _, err := analyzer.Run(root); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for _, phase := range []string{"counting", "scanning", "writing", "documenting", "done"} {
		if !seen[phase] {
			t.Errorf("phase %q was never reported", phase)
		}
	}
}
