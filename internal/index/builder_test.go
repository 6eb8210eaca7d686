package index

import (
	"testing"

	"github.com/davauxjs/project-knowledge-analyzer/pkg/models"
)

func descriptor(path, flat string, category models.Category, size int64) *models.FileDescriptor {
	return &models.FileDescriptor{
		OriginalPath: path,
		FlatName:     flat,
		Category:     category,
		SizeBytes:    size,
		Extension:    extOf(path),
	}
}

func extOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			return path[i+1:]
		}
		if path[i] == '/' {
			break
		}
	}
	return ""
}

func buildSample() *Index {
	coll := models.NewCollection()
	coll.Add(descriptor("src/app.js", "h1_src_app.js", models.CategoryModule, 120))
	coll.Add(descriptor("src/util/strings.js", "h2_src_util_strings.js", models.CategoryFunction, 80))
	coll.Add(descriptor("README.md", "h3_README.md", models.CategoryDocumentation, 40))
	coll.Add(descriptor("src/index.js", "h4_src_index.js", models.CategoryModule, 60))
	return Build(coll)
}

func TestBuildTree(t *testing.T) {
	idx := buildSample()

	// Top level keeps insertion order: src first, README.md second.
	if len(idx.Tree.Children) != 2 {
		t.Fatalf("tree has %d top-level entries, want 2", len(idx.Tree.Children))
	}
	src := idx.Tree.Children[0]
	if src.Name != "src" || src.IsFile {
		t.Errorf("first top-level entry = %+v, want directory src", src)
	}
	readme := idx.Tree.Children[1]
	if readme.Name != "README.md" || !readme.IsFile || readme.Path != "README.md" {
		t.Errorf("second top-level entry = %+v, want file README.md", readme)
	}

	// src children in insertion order: app.js, util/, index.js.
	if len(src.Children) != 3 {
		t.Fatalf("src has %d children, want 3", len(src.Children))
	}
	if src.Children[0].Name != "app.js" || src.Children[1].Name != "util" || src.Children[2].Name != "index.js" {
		t.Errorf("src children order = [%s %s %s], want [app.js util index.js]",
			src.Children[0].Name, src.Children[1].Name, src.Children[2].Name)
	}

	util := src.Children[1]
	if util.IsFile || len(util.Children) != 1 || util.Children[0].Path != "src/util/strings.js" {
		t.Errorf("util subtree wrong: %+v", util)
	}
}

func TestBuildFlatIndexSorted(t *testing.T) {
	idx := buildSample()

	want := []string{"README.md", "src/app.js", "src/index.js", "src/util/strings.js"}
	if len(idx.Flat) != len(want) {
		t.Fatalf("flat index has %d entries, want %d", len(idx.Flat), len(want))
	}
	for i, entry := range idx.Flat {
		if entry.Original != want[i] {
			t.Errorf("Flat[%d].Original = %q, want %q", i, entry.Original, want[i])
		}
	}

	first := idx.Flat[0]
	if first.Flattened != "h3_README.md" || first.Type != models.CategoryDocumentation ||
		first.HumanSize != "40 B" || first.Extension != "md" {
		t.Errorf("Flat[0] = %+v", first)
	}
}

func TestBuildTypeGroups(t *testing.T) {
	idx := buildSample()

	modules := idx.Groups[models.CategoryModule]
	if len(modules) != 2 {
		t.Fatalf("module group has %d entries, want 2", len(modules))
	}
	// Insertion order within a group follows the walk, not sorting.
	if modules[0].Original != "src/app.js" || modules[1].Original != "src/index.js" {
		t.Errorf("module group order = [%s %s], want [src/app.js src/index.js]",
			modules[0].Original, modules[1].Original)
	}

	if len(idx.Groups[models.CategoryDocumentation]) != 1 {
		t.Errorf("documentation group = %v, want one entry", idx.Groups[models.CategoryDocumentation])
	}
	if len(idx.Groups[models.CategoryStylesheet]) != 0 {
		t.Errorf("stylesheet group = %v, want empty", idx.Groups[models.CategoryStylesheet])
	}
}

func TestBuildEmpty(t *testing.T) {
	idx := Build(models.NewCollection())

	if len(idx.Tree.Children) != 0 {
		t.Errorf("empty collection produced tree children: %+v", idx.Tree.Children)
	}
	if len(idx.Flat) != 0 {
		t.Errorf("empty collection produced flat entries: %v", idx.Flat)
	}
	if len(idx.Groups) != 0 {
		t.Errorf("empty collection produced groups: %v", idx.Groups)
	}
}
