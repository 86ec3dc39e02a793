package flattree

import "fmt"

// closing marks a node that ends a run at its level: the node at index is the
// last one before the sequence returns to nextLevel.
type closing struct {
	index     int
	nextLevel int
}

// Resolve annotates a pre-order sequence of raw nodes with the index of each
// node's last descendant.
//
// It walks the sequence backwards once. Whenever the level drops after a node,
// that node closes every open subtree deeper than the level that follows it,
// and is remembered on a stack. A parent takes the most recent closing whose
// following level is not deeper than the parent itself. Closings above that
// one lie inside the parent's subtree and can never match an earlier node, so
// they are popped; the stack stays bounded by tree depth and the pass is O(n).
func Resolve[T any](raw []RawNode[T]) []Node[T] {
	n := len(raw)
	result := make([]Node[T], n)
	var closings []closing

	for i := n - 1; i >= 0; i-- {
		level := raw[i].Level
		nextLevel := 0
		if i+1 < n {
			nextLevel = raw[i+1].Level
		}

		if nextLevel < level {
			closings = append(closings, closing{i, nextLevel})
		}

		last := i
		if level < nextLevel {
			for len(closings) > 0 && closings[len(closings)-1].nextLevel > level {
				closings = closings[:len(closings)-1]
			}
			if len(closings) == 0 {
				panic(fmt.Errorf("flattree: last child is not defined for node %d at level %d", i, level))
			}
			last = closings[len(closings)-1].index
		}

		result[i] = Node[T]{RawNode: raw[i], LastChildIndex: last}
	}
	return result
}

// validatePreOrder returns the position of the first node at which raw stops
// being a valid pre-order flattening, or -1 if it is valid. Roots are at
// level 0, no step descends by more than one level, and HasChildren is set
// exactly on nodes followed by a deeper one.
func validatePreOrder[T any](raw []RawNode[T]) (int, error) {
	for i, r := range raw {
		deeperNext := i+1 < len(raw) && raw[i+1].Level > r.Level
		switch {
		case r.Level < 0:
			return i, fmt.Errorf("negative level %d", r.Level)
		case i == 0 && r.Level != 0:
			return i, fmt.Errorf("first node at level %d", r.Level)
		case i > 0 && r.Level > raw[i-1].Level+1:
			return i, fmt.Errorf("level %d follows level %d", r.Level, raw[i-1].Level)
		case r.HasChildren != deeperNext:
			return i, fmt.Errorf("children=%v, but next node is deeper=%v", r.HasChildren, deeperNext)
		}
	}
	return -1, nil
}
