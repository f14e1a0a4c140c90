// Package nav holds the navigation state machine: a stack of references into
// the immutable sized tree, a selection index, and a sort order, driven by
// discrete actions. All actions are total; invalid requests are no-ops.
package nav

import (
	"sort"

	"github.com/raghav-rama/disk-usage-analyzer-tui/internal/tree"
)

// SortOrder is the display ordering policy for a node's children.
type SortOrder int

const (
	// SortBySize orders children by aggregate size, descending.
	SortBySize SortOrder = iota
	// SortByName orders children by last path component, ascending,
	// case-sensitive byte ordering.
	SortByName
)

// Action is a semantic navigation action produced by the input dispatcher.
type Action int

const (
	// ActionNone is the zero action; applying it changes nothing.
	ActionNone Action = iota
	// ActionQuit ends the navigation loop. It is observed by the caller,
	// not performed by the controller.
	ActionQuit
	// ActionToggleSort flips between size and name ordering.
	ActionToggleSort
	// ActionSelectNext moves the selection down one row, wrapping.
	ActionSelectNext
	// ActionSelectPrev moves the selection up one row, wrapping.
	ActionSelectPrev
	// ActionNavigateIn drills into the selected directory.
	ActionNavigateIn
	// ActionNavigateOut returns to the parent directory.
	ActionNavigateOut
)

// Row is one displayable child of the current node.
type Row struct {
	Name  string
	Size  uint64
	IsDir bool
}

// Snapshot is everything a presenter needs for one redraw.
type Snapshot struct {
	// Path is the full path of the node currently being viewed.
	Path string
	// Total is the aggregate size of the viewed node.
	Total uint64
	// Rows lists the node's children in the active sort order.
	Rows []Row
	// Selection is the index of the highlighted row.
	Selection int
	// Files and Dirs count the children by kind.
	Files, Dirs int
	// Depth is the navigation stack depth (1 = root).
	Depth int
	// Order is the active sort order.
	Order SortOrder
}

// Controller is the navigation state machine over one immutable tree. It holds
// references into the tree and never copies or mutates node content; the only
// tree-touching operation is reordering a child slice for display.
//
// Controller is not safe for concurrent use; the navigation loop is
// single-threaded by design.
type Controller struct {
	stack     []*tree.Node
	selection int
	order     SortOrder
}

// NewController creates a controller viewing root with size ordering active.
func NewController(root *tree.Node) *Controller {
	c := &Controller{
		stack: []*tree.Node{root},
		order: SortBySize,
	}
	c.sortCurrent()

	return c
}

// Apply performs a single action. ActionQuit and ActionNone are no-ops here;
// quitting belongs to the caller's loop.
func (c *Controller) Apply(action Action) {
	switch action {
	case ActionToggleSort:
		c.ToggleSort()
	case ActionSelectNext:
		c.MoveSelection(1)
	case ActionSelectPrev:
		c.MoveSelection(-1)
	case ActionNavigateIn:
		c.NavigateIn()
	case ActionNavigateOut:
		c.NavigateOut()
	}
}

// Current returns the node at the top of the stack.
func (c *Controller) Current() *tree.Node {
	return c.stack[len(c.stack)-1]
}

// Selection returns the index of the highlighted child.
func (c *Controller) Selection() int {
	return c.selection
}

// Depth returns the navigation stack depth; the root alone is depth 1.
func (c *Controller) Depth() int {
	return len(c.stack)
}

// Order returns the active sort order.
func (c *Controller) Order() SortOrder {
	return c.order
}

// MoveSelection shifts the selection by delta, wrapping in both directions.
// No-op when the current node has no children.
func (c *Controller) MoveSelection(delta int) {
	n := len(c.Current().Children)
	if n == 0 {
		return
	}

	c.selection = ((c.selection+delta)%n + n) % n
}

// NavigateIn pushes the selected child onto the stack and resets the
// selection. Files and empty directories are not enterable; the action
// degrades to a no-op for them.
func (c *Controller) NavigateIn() {
	children := c.Current().Children
	if c.selection >= len(children) {
		return
	}

	child := children[c.selection]
	if !child.IsDir || len(child.Children) == 0 {
		return
	}

	c.stack = append(c.stack, child)
	c.selection = 0
	c.sortCurrent()
}

// NavigateOut pops the stack and resets the selection to 0. No-op at the
// root. Resetting rather than restoring the prior selection is a deliberate
// policy choice.
func (c *Controller) NavigateOut() {
	if len(c.stack) <= 1 {
		return
	}

	c.stack = c.stack[:len(c.stack)-1]
	c.selection = 0
	c.sortCurrent()
}

// ToggleSort flips the sort order and reorders the current node's children
// in place for display.
func (c *Controller) ToggleSort() {
	if c.order == SortByName {
		c.order = SortBySize
	} else {
		c.order = SortByName
	}

	c.sortCurrent()
}

// sortCurrent applies the active order to the children of the top node.
// Both orderings are stable with respect to prior relative order among
// equal keys.
func (c *Controller) sortCurrent() {
	children := c.Current().Children

	switch c.order {
	case SortByName:
		sort.SliceStable(children, func(i, j int) bool {
			return children[i].Name() < children[j].Name()
		})
	case SortBySize:
		sort.SliceStable(children, func(i, j int) bool {
			return children[i].Size > children[j].Size
		})
	}
}

// Snapshot produces the view state for the presenter: the current node's
// path and aggregate size, its children in display order, the selection,
// and file/directory counts.
func (c *Controller) Snapshot() Snapshot {
	current := c.Current()

	snap := Snapshot{
		Path:      current.Path,
		Total:     current.Size,
		Rows:      make([]Row, 0, len(current.Children)),
		Selection: c.selection,
		Depth:     len(c.stack),
		Order:     c.order,
	}

	for _, child := range current.Children {
		snap.Rows = append(snap.Rows, Row{
			Name:  child.Name(),
			Size:  child.Size,
			IsDir: child.IsDir,
		})

		if child.IsDir {
			snap.Dirs++
		} else {
			snap.Files++
		}
	}

	return snap
}
