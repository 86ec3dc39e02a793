package flattree

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
)

// Tree is a hierarchy stored as a single pre-order sequence of nodes.
//
// Tree is not safe for concurrent use; a host that shares it between
// goroutines must serialize access itself.
type Tree[T any] struct {
	nodes   []Node[T]
	logf    func(format string, args ...any)
	verbose bool
}

// Options configures logging of a Tree.
type Options struct {
	// Logf receives verbose log lines. Defaults to slog at debug level.
	Logf    func(format string, args ...any)
	Verbose bool
}

func (opt Options) logf() func(format string, args ...any) {
	if opt.Logf != nil {
		return opt.Logf
	}
	return func(format string, args ...any) {
		slog.Debug(fmt.Sprintf(format, args...))
	}
}

// New expands roots via children and builds a tree out of the result.
func New[T any](roots []T, children ChildrenFunc[T], opt Options) *Tree[T] {
	t := &Tree[T]{
		logf:    opt.logf(),
		verbose: opt.Verbose,
	}
	t.nodes = Resolve(Expand(roots, children))
	if t.verbose {
		t.logf("flattree: BUILD roots=%d nodes=%d", len(roots), len(t.nodes))
	}
	return t
}

// FromRaw builds a tree from a sequence that is already flattened in
// pre-order. It fails if raw is not a valid flattening.
func FromRaw[T any](raw []RawNode[T], opt Options) (*Tree[T], error) {
	if i, err := validatePreOrder(raw); err != nil {
		return nil, fmt.Errorf("flattree: invalid pre-order sequence at node %d: %w", i, err)
	}
	t := &Tree[T]{
		nodes:   Resolve(raw),
		logf:    opt.logf(),
		verbose: opt.Verbose,
	}
	if t.verbose {
		t.logf("flattree: BUILD.RAW nodes=%d", len(t.nodes))
	}
	return t, nil
}

func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// Nodes returns a copy of the node sequence. Payloads are copied shallowly.
func (t *Tree[T]) Nodes() []Node[T] {
	return slices.Clone(t.nodes)
}

// FindIndex returns the index of the first node matching pred.
func (t *Tree[T]) FindIndex(pred func(node Node[T]) bool) (int, bool) {
	i := slices.IndexFunc(t.nodes, pred)
	return i, i >= 0
}

func (t *Tree[T]) Get(index int) (Node[T], error) {
	if !t.has(index) {
		return Node[T]{}, indexMissing(index)
	}
	return t.nodes[index], nil
}

// GetPtr returns a pointer to the node stored at index. The pointer is
// invalidated by Delete. Changing Level, HasChildren or LastChildIndex
// through it desynchronizes the tree.
func (t *Tree[T]) GetPtr(index int) (*Node[T], error) {
	if !t.has(index) {
		return nil, indexMissing(index)
	}
	return &t.nodes[index], nil
}

func (t *Tree[T]) has(index int) bool {
	return index >= 0 && index < len(t.nodes)
}

// ForEach calls fn for every node in sequence order.
func (t *Tree[T]) ForEach(fn func(node Node[T], index int)) {
	for i, node := range t.nodes {
		fn(node, i)
	}
}

// All iterates over (index, node) pairs in sequence order.
func (t *Tree[T]) All() iter.Seq2[int, Node[T]] {
	return func(yield func(int, Node[T]) bool) {
		for i, node := range t.nodes {
			if !yield(i, node) {
				return
			}
		}
	}
}

// ForEachChild calls fn for every node of the subtree rooted at parent,
// starting with parent itself.
func (t *Tree[T]) ForEachChild(parent int, fn func(node Node[T], index int)) error {
	if !t.has(parent) {
		return indexMissing(parent)
	}
	last := t.nodes[parent].LastChildIndex
	for i := parent; i <= last; i++ {
		fn(t.nodes[i], i)
	}
	return nil
}

// ForEachParent calls fn for every ancestor of child, nearest first.
func (t *Tree[T]) ForEachParent(child int, fn func(node Node[T], index int)) error {
	if !t.has(child) {
		return indexMissing(child)
	}
	level := t.nodes[child].Level
	if level == 0 {
		return nil
	}
	want := decLevel(level)
	for i := child - 1; i >= 0; i-- {
		node := t.nodes[i]
		if node.Level != want {
			continue
		}
		fn(node, i)
		if want == 0 {
			break
		}
		want = decLevel(want)
	}
	return nil
}

// SubTree returns a copy of the subtree rooted at root, root included.
// LastChildIndex values still refer to positions in t.
func (t *Tree[T]) SubTree(root int) ([]Node[T], error) {
	if !t.has(root) {
		return nil, indexMissing(root)
	}
	return slices.Clone(t.nodes[root : t.nodes[root].LastChildIndex+1]), nil
}

// SubTreeAtLevel is SubTree with every level shifted so that the root ends
// up at the given level. Descendants are always deeper than the root, so the
// shift never takes a level below zero; a negative level is treated as 0.
func (t *Tree[T]) SubTreeAtLevel(root, level int) ([]Node[T], error) {
	result, err := t.SubTree(root)
	if err != nil {
		return nil, err
	}
	level = max(level, 0)
	if delta := level - result[0].Level; delta != 0 {
		for i := range result {
			result[i].Level += delta
		}
	}
	return result, nil
}

// ReplacePayload overwrites the payload of the node at index, leaving the
// structure untouched. The caller keeps the new payload consistent with the
// node's HasChildren and subtree range.
func (t *Tree[T]) ReplacePayload(index int, payload T) error {
	if !t.has(index) {
		return indexMissing(index)
	}
	t.nodes[index].Payload = payload
	if t.verbose {
		t.logf("flattree: REPLACE %d => %v", index, payload)
	}
	return nil
}

// Delete removes the whole subtree rooted at root, root included, and
// recomputes the subtree ranges of the remaining nodes. A parent left
// without descendants becomes a leaf. Delete is O(n) regardless of the
// subtree size.
func (t *Tree[T]) Delete(root int) error {
	if !t.has(root) {
		return indexMissing(root)
	}
	last := t.nodes[root].LastChildIndex

	raw := make([]RawNode[T], 0, len(t.nodes)-(last-root+1))
	for _, node := range t.nodes[:root] {
		raw = append(raw, node.RawNode)
	}
	for _, node := range t.nodes[last+1:] {
		raw = append(raw, node.RawNode)
	}

	nodes := Resolve(raw)
	if parent := t.parentOf(root); parent >= 0 && nodes[parent].LastChildIndex == parent {
		nodes[parent].HasChildren = false
	}
	t.nodes = nodes

	if t.verbose {
		t.logf("flattree: DELETE %d..%d => nodes=%d", root, last, len(t.nodes))
	}
	return nil
}

// parentOf returns the index of the nearest ancestor of index, or -1 for a root.
func (t *Tree[T]) parentOf(index int) int {
	level := t.nodes[index].Level
	if level == 0 {
		return -1
	}
	for i := index - 1; i >= 0; i-- {
		if t.nodes[i].Level < level {
			return i
		}
	}
	return -1
}
