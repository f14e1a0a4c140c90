package tree

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/raghav-rama/disk-usage-analyzer-tui/internal/scanner"
)

// scenarioEntries mirrors the reference layout used throughout the tests:
//
//	root/
//	  dirA/f1 (100), dirA/f2 (200)
//	  fileB (50)
//	  dirC/ (empty)
func scenarioEntries(root string) []scanner.Entry {
	return []scanner.Entry{
		{Path: root, IsDir: true},
		{Path: filepath.Join(root, "dirA"), IsDir: true},
		{Path: filepath.Join(root, "dirA", "f1"), Size: 100},
		{Path: filepath.Join(root, "dirA", "f2"), Size: 200},
		{Path: filepath.Join(root, "fileB"), Size: 50},
		{Path: filepath.Join(root, "dirC"), IsDir: true},
	}
}

func TestAggregate_InclusiveTotals(t *testing.T) {
	root := filepath.FromSlash("/scan")
	sizes := Aggregate(scenarioEntries(root), root)

	cases := []struct {
		path string
		want uint64
	}{
		{root, 350},
		{filepath.Join(root, "dirA"), 300},
		{filepath.Join(root, "dirA", "f1"), 100},
		{filepath.Join(root, "dirA", "f2"), 200},
		{filepath.Join(root, "fileB"), 50},
		{filepath.Join(root, "dirC"), 0},
	}

	for _, c := range cases {
		path, want := c.path, c.want
		got, ok := sizes[path]
		if !ok {
			t.Errorf("Missing size entry for %s", path)
			continue
		}
		if got != want {
			t.Errorf("Size for %s: expected %d, got %d", path, want, got)
		}
	}
}

func TestAggregate_EmptyDirectoryGetsZeroEntry(t *testing.T) {
	root := filepath.FromSlash("/scan")
	entries := []scanner.Entry{
		{Path: root, IsDir: true},
		{Path: filepath.Join(root, "empty"), IsDir: true},
	}

	sizes := Aggregate(entries, root)

	got, ok := sizes[filepath.Join(root, "empty")]
	if !ok {
		t.Fatal("Empty directory should still receive a size entry")
	}
	if got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
}

func TestAggregate_MissingRootRecord(t *testing.T) {
	root := filepath.FromSlash("/scan")
	entries := []scanner.Entry{
		{Path: filepath.Join(root, "f"), Size: 42},
	}

	sizes := Aggregate(entries, root)

	if sizes[root] != 42 {
		t.Errorf("Root should aggregate descendants without an explicit record, got %d", sizes[root])
	}
}

func TestBuild_Structure(t *testing.T) {
	root := filepath.FromSlash("/scan")
	entries := scenarioEntries(root)
	node := Build(root, entries, Aggregate(entries, root))

	if node.Path != root || !node.IsDir {
		t.Fatalf("Unexpected root node: %+v", node)
	}
	if node.Size != 350 {
		t.Errorf("Root aggregate: expected 350, got %d", node.Size)
	}
	if len(node.Children) != 3 {
		t.Fatalf("Expected 3 root children, got %d", len(node.Children))
	}

	// Initial order is path order.
	names := []string{node.Children[0].Name(), node.Children[1].Name(), node.Children[2].Name()}
	want := []string{"dirA", "dirC", "fileB"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Child %d: expected %s, got %s", i, want[i], names[i])
		}
	}

	dirA := node.Children[0]
	if len(dirA.Children) != 2 {
		t.Fatalf("Expected 2 children under dirA, got %d", len(dirA.Children))
	}
	if dirA.Size != 300 {
		t.Errorf("dirA aggregate: expected 300, got %d", dirA.Size)
	}

	dirC := node.Children[1]
	if !dirC.IsDir || len(dirC.Children) != 0 || dirC.Size != 0 {
		t.Errorf("Unexpected empty directory node: %+v", dirC)
	}
}

func TestBuild_SynthesizesRootWithoutRecord(t *testing.T) {
	root := filepath.FromSlash("/scan")
	entries := []scanner.Entry{
		{Path: filepath.Join(root, "f"), Size: 7},
	}

	node := Build(root, entries, Aggregate(entries, root))

	if node.Path != root || !node.IsDir {
		t.Fatalf("Root should be synthesized: %+v", node)
	}
	if node.Size != 7 || len(node.Children) != 1 {
		t.Errorf("Unexpected synthesized root: size=%d children=%d", node.Size, len(node.Children))
	}
}

// checkInvariant verifies that every directory's aggregate equals the sum of
// its children's aggregates.
func checkInvariant(t *testing.T, n *Node) {
	t.Helper()

	if !n.IsDir {
		return
	}

	var sum uint64
	for _, c := range n.Children {
		sum += c.Size
		checkInvariant(t, c)
	}

	if n.Size != sum {
		t.Errorf("Invariant violated at %s: aggregate %d != children sum %d", n.Path, n.Size, sum)
	}
}

func TestBuild_DirectoryAggregateInvariant(t *testing.T) {
	root := filepath.FromSlash("/scan")
	entries := scenarioEntries(root)
	entries = append(entries,
		scanner.Entry{Path: filepath.Join(root, "dirA", "deep"), IsDir: true},
		scanner.Entry{Path: filepath.Join(root, "dirA", "deep", "f3"), Size: 25},
	)

	node := Build(root, entries, Aggregate(entries, root))

	checkInvariant(t, node)

	if node.Size != 375 {
		t.Errorf("Root aggregate: expected 375, got %d", node.Size)
	}
}

func TestBuild_LargeFlatFanOut(t *testing.T) {
	root := filepath.FromSlash("/scan")
	entries := []scanner.Entry{{Path: root, IsDir: true}}

	const n = 2000
	for i := 0; i < n; i++ {
		entries = append(entries, scanner.Entry{
			Path: filepath.Join(root, fmt.Sprintf("file-%04d", i)),
			Size: 1,
		})
	}

	node := Build(root, entries, Aggregate(entries, root))

	if len(node.Children) != n {
		t.Fatalf("Expected %d children, got %d", n, len(node.Children))
	}
	if node.Size != n {
		t.Errorf("Root aggregate: expected %d, got %d", n, node.Size)
	}
}
