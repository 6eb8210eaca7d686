package report

import (
	"strings"

	"github.com/davauxjs/project-knowledge-analyzer/internal/index"
)

// RenderTree renders the accepted-file ancestry as ASCII art. Entries appear
// in insertion order, directories carry a trailing slash.
func RenderTree(root *index.TreeNode) string {
	var sb strings.Builder
	renderChildren(&sb, root.Children, "")
	return sb.String()
}

func renderChildren(sb *strings.Builder, nodes []*index.TreeNode, prefix string) {
	for i, node := range nodes {
		last := i == len(nodes)-1

		connector := "├── "
		if last {
			connector = "└── "
		}

		name := node.Name
		if !node.IsFile {
			name += "/"
		}

		sb.WriteString(prefix)
		sb.WriteString(connector)
		sb.WriteString(name)
		sb.WriteString("\n")

		if !node.IsFile {
			childPrefix := prefix + "│   "
			if last {
				childPrefix = prefix + "    "
			}
			renderChildren(sb, node.Children, childPrefix)
		}
	}
}
