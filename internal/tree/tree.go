// Package tree turns the flat scan records into an immutable hierarchy of
// nodes carrying cumulative (inclusive) sizes.
package tree

import (
	"path/filepath"
	"sort"

	"github.com/raghav-rama/disk-usage-analyzer-tui/internal/scanner"
)

// Node is one element of the sized tree. The tree is built once and is
// immutable afterwards; only the display order of Children may be changed.
type Node struct {
	// Path is the full path of the file or directory.
	Path string
	// Size is the aggregate (inclusive) size in bytes: the node's own size
	// plus the sizes of all descendants.
	Size uint64
	// IsDir indicates whether the node is a directory.
	IsDir bool
	// Children holds the immediate children, initially in path order.
	Children []*Node
}

// Name returns the last path component, for display.
func (n *Node) Name() string {
	return filepath.Base(n.Path)
}

// Aggregate computes, for every path that appears as a file or as an ancestor
// directory of any entry, the sum of its own size plus all descendant sizes.
// Each entry's size is added once to its own total and once to every strict
// ancestor up to root, walking the parent chain, so the cost is
// O(entries x average depth) with no second full-tree pass.
//
// Directories with no files anywhere beneath them still get an entry with
// total 0. Duplicate paths should not occur under a correct scan; if they do,
// their sizes accumulate (documented edge case, not a guaranteed convention).
func Aggregate(entries []scanner.Entry, root string) map[string]uint64 {
	sizes := make(map[string]uint64, len(entries))
	sizes[root] = 0

	for _, entry := range entries {
		sizes[entry.Path] += entry.Size

		for cur := entry.Path; cur != root; {
			parent := filepath.Dir(cur)
			if parent == cur {
				// Walked past the filesystem root without meeting the scan
				// root; entry lies outside the subtree.
				break
			}

			sizes[parent] += entry.Size
			cur = parent
		}
	}

	return sizes
}

// Build assembles the node tree for root from the flat entries and the size
// mapping produced by Aggregate. The root node is synthesized even when the
// scan produced no explicit record for it.
//
// A node's children are exactly the entries whose parent path equals the
// node's own path. That grouping is evaluated per node over the full entry
// set, which is quadratic in entry count at very large fan-outs; see the
// package tests for the property.
func Build(root string, entries []scanner.Entry, sizes map[string]uint64) *Node {
	sorted := make([]scanner.Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	return buildNode(root, true, sorted, sizes)
}

func buildNode(path string, isDir bool, entries []scanner.Entry, sizes map[string]uint64) *Node {
	node := &Node{
		Path:  path,
		Size:  sizes[path],
		IsDir: isDir,
	}

	if !isDir {
		return node
	}

	for _, entry := range entries {
		if entry.Path == path || filepath.Dir(entry.Path) != path {
			continue
		}

		node.Children = append(node.Children, buildNode(entry.Path, entry.IsDir, entries, sizes))
	}

	return node
}
