package flattree

import "slices"

// ChildrenFunc returns the direct children of parent, in order. It must be
// a pure, synchronous function of its input, and the hierarchy it describes
// must be finite and acyclic.
type ChildrenFunc[T any] func(parent T) []T

type pendingPayload[T any] struct {
	payload T
	level   int
}

// Expand flattens the hierarchy rooted at roots into pre-order (depth-first,
// left to right). children is called exactly once per emitted node, when
// that node is reached.
//
// The work list is a stack whose top is the front of the pending queue, so
// pushing a node's children in reverse makes its first child the next node
// to be emitted. Deep trees therefore never recurse.
func Expand[T any](roots []T, children ChildrenFunc[T]) []RawNode[T] {
	result := make([]RawNode[T], 0, len(roots))

	pending := make([]pendingPayload[T], 0, len(roots))
	for _, payload := range slices.Backward(roots) {
		pending = append(pending, pendingPayload[T]{payload, 0})
	}

	for len(pending) > 0 {
		n := len(pending) - 1
		cur := pending[n]
		pending[n] = pendingPayload[T]{} // release payload
		pending = pending[:n]

		kids := children(cur.payload)
		result = append(result, RawNode[T]{
			Payload:     cur.payload,
			Level:       cur.level,
			HasChildren: len(kids) > 0,
		})

		kidLevel := incLevel(cur.level)
		for _, payload := range slices.Backward(kids) {
			pending = append(pending, pendingPayload[T]{payload, kidLevel})
		}
	}
	return result
}
