package flattree

import (
	"fmt"
	"strings"
)

type DumpFlags uint64

const (
	DumpPayloads = DumpFlags(1 << iota)
	DumpIndent
	DumpLevels
	DumpRanges

	DumpAll = DumpFlags(0xFFFFFFFFFFFFFFFF)

	indentStep = "  "
)

func (f DumpFlags) Contains(v DumpFlags) bool {
	return (f & v) == v
}

// Dump renders one line per node, e.g. "2:   A2 level=1 children last=3".
func (t *Tree[T]) Dump(f DumpFlags) string {
	var buf strings.Builder
	for i, node := range t.nodes {
		fmt.Fprintf(&buf, "%d:", i)
		if f.Contains(DumpIndent) {
			buf.WriteString(strings.Repeat(indentStep, node.Level))
		}
		if f.Contains(DumpPayloads) {
			fmt.Fprintf(&buf, " %v", node.Payload)
		}
		if f.Contains(DumpLevels) {
			fmt.Fprintf(&buf, " level=%d", node.Level)
		}
		if f.Contains(DumpRanges) {
			if node.HasChildren {
				buf.WriteString(" children")
			}
			fmt.Fprintf(&buf, " last=%d", node.LastChildIndex)
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}

// Check verifies that the sequence is a valid pre-order flattening whose
// subtree ranges and HasChildren flags agree with the levels. It returns the
// first violation found.
func (t *Tree[T]) Check() error {
	nodes := t.nodes
	n := len(nodes)
	for i, node := range nodes {
		if i == 0 && node.Level != 0 {
			return fmt.Errorf("flattree: node 0 at level %d", node.Level)
		}
		if i > 0 && node.Level > nodes[i-1].Level+1 {
			return fmt.Errorf("flattree: node %d at level %d follows level %d", i, node.Level, nodes[i-1].Level)
		}
		last := node.LastChildIndex
		if last < i || last >= n {
			return fmt.Errorf("flattree: node %d has last=%d outside [%d, %d)", i, last, i, n)
		}
		for j := i + 1; j <= last; j++ {
			if nodes[j].Level <= node.Level {
				return fmt.Errorf("flattree: node %d (level %d) in subtree of node %d (level %d)", j, nodes[j].Level, i, node.Level)
			}
		}
		if last+1 < n && nodes[last+1].Level > node.Level {
			return fmt.Errorf("flattree: subtree of node %d ends at %d, but node %d is at level %d", i, last, last+1, nodes[last+1].Level)
		}
		if node.HasChildren != (last != i) {
			return fmt.Errorf("flattree: node %d has children=%v, but last=%d", i, node.HasChildren, last)
		}
	}
	return nil
}
