package flattree

// RawNode is a node of the flattened sequence before its last descendant
// is known.
type RawNode[T any] struct {
	Payload     T
	Level       int
	HasChildren bool
}

// Node is a RawNode annotated with the index of the last node of its subtree.
// For a leaf, LastChildIndex is the node's own index.
type Node[T any] struct {
	RawNode[T]
	LastChildIndex int
}

// Raw returns the node without its subtree range.
func (n Node[T]) Raw() RawNode[T] {
	return n.RawNode
}

// IsLeaf reports whether the node's subtree range is empty, given its own index.
func (n Node[T]) IsLeaf(index int) bool {
	return n.LastChildIndex == index
}

// SubtreeLen returns the number of nodes in [index, LastChildIndex].
func (n Node[T]) SubtreeLen(index int) int {
	return n.LastChildIndex - index + 1
}
