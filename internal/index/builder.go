// Package index builds the in-memory artifacts that make the flattening
// reversible: a hierarchical tree for rendering, a sorted flat index, and a
// grouping of files by category.
package index

import (
	"sort"
	"strings"

	"github.com/davauxjs/project-knowledge-analyzer/internal/filesystem"
	"github.com/davauxjs/project-knowledge-analyzer/pkg/models"
)

// TreeNode is one segment of the accepted-file ancestry tree. Children keep
// insertion order so rendering follows the walk order. Directories with no
// accepted files never appear.
type TreeNode struct {
	Name     string
	Path     string // full original path, set for files only
	IsFile   bool
	Children []*TreeNode
}

// child returns the existing child with the given name, or nil.
func (n *TreeNode) child(name string) *TreeNode {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Entry is one row of the flat index.
type Entry struct {
	Original  string          `json:"original"`
	Flattened string          `json:"flattened"`
	Type      models.Category `json:"type"`
	HumanSize string          `json:"humanSize"`
	Extension string          `json:"extension"`
}

// GroupEntry is one member of a type group.
type GroupEntry struct {
	Original  string `json:"original"`
	Flattened string `json:"flattened"`
}

// Index holds the three documentation artifacts built from one collection.
type Index struct {
	Tree   *TreeNode
	Flat   []Entry // sorted lexicographically by original path
	Groups map[models.Category][]GroupEntry
}

// Build constructs the index from a descriptor collection.
func Build(coll *models.Collection) *Index {
	idx := &Index{
		Tree:   &TreeNode{},
		Groups: make(map[models.Category][]GroupEntry),
	}

	for _, d := range coll.Descriptors() {
		insert(idx.Tree, d)

		idx.Flat = append(idx.Flat, Entry{
			Original:  d.OriginalPath,
			Flattened: d.FlatName,
			Type:      d.Category,
			HumanSize: filesystem.FormatSize(d.SizeBytes),
			Extension: d.Extension,
		})

		idx.Groups[d.Category] = append(idx.Groups[d.Category], GroupEntry{
			Original:  d.OriginalPath,
			Flattened: d.FlatName,
		})
	}

	sort.Slice(idx.Flat, func(i, j int) bool {
		return idx.Flat[i].Original < idx.Flat[j].Original
	})

	return idx
}

// insert threads a descriptor's path segments into the tree
func insert(root *TreeNode, d *models.FileDescriptor) {
	segments := strings.Split(d.OriginalPath, "/")
	node := root

	for i, segment := range segments {
		leaf := i == len(segments)-1
		next := node.child(segment)
		if next == nil {
			next = &TreeNode{Name: segment}
			if leaf {
				next.IsFile = true
				next.Path = d.OriginalPath
			}
			node.Children = append(node.Children, next)
		}
		node = next
	}
}
