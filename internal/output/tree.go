package output

import (
	"strings"
)

const (
	treeEdge = "├── "
	treeLast = "└── "

	// descriptionColumn is where file descriptions start.
	descriptionColumn = 36
)

// FileEntry is a single line in a rendered file tree.
type FileEntry struct {
	Path        string
	Description string
}

// RenderFileTree renders root followed by entries in the given order, with
// descriptions aligned at a fixed column.
func RenderFileTree(styles Styles, root string, entries []FileEntry) string {
	var sb strings.Builder

	sb.WriteString(styles.Bold.Render(strings.TrimSuffix(root, "/") + "/"))
	sb.WriteString("\n")

	for i, e := range entries {
		connector := treeEdge
		if i == len(entries)-1 {
			connector = treeLast
		}

		line := connector + e.Path
		sb.WriteString(styles.Muted.Render(connector))
		sb.WriteString(e.Path)

		if e.Description != "" {
			padding := descriptionColumn - len([]rune(line))
			if padding < 2 {
				padding = 2
			}
			sb.WriteString(strings.Repeat(" ", padding))
			sb.WriteString(styles.Muted.Render(e.Description))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
