package flattree

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

type TreeStats struct {
	Nodes  int
	Roots  int
	Leaves int

	// MaxLevel is the deepest node level, so it is 0 for a tree of roots only.
	MaxLevel int
}

func (t *Tree[T]) Stats() TreeStats {
	var s TreeStats
	s.Nodes = len(t.nodes)
	for i, node := range t.nodes {
		if node.Level == 0 {
			s.Roots++
		}
		if node.IsLeaf(i) {
			s.Leaves++
		}
		s.MaxLevel = max(s.MaxLevel, node.Level)
	}
	return s
}

// Fingerprint hashes the shape of the tree (levels, child flags and subtree
// ranges), ignoring payloads.
func (t *Tree[T]) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [3 * binary.MaxVarintLen64]byte
	for _, node := range t.nodes {
		b := binary.AppendUvarint(buf[:0], uint64(node.Level))
		if node.HasChildren {
			b = append(b, 1)
		} else {
			b = append(b, 0)
		}
		b = binary.AppendUvarint(b, uint64(node.LastChildIndex))
		d.Write(b)
	}
	return d.Sum64()
}
