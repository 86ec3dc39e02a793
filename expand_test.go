package flattree

import (
	"slices"
	"testing"
)

var exampleChildren = map[string][]string{
	"A":  {"A1", "A2"},
	"A2": {"A2x"},
}

func exampleChildrenOf(p string) []string {
	return exampleChildren[p]
}

func TestExpand_example(t *testing.T) {
	deepEqual(t, Expand([]string{"A", "B"}, exampleChildrenOf), []RawNode[string]{
		{"A", 0, true},
		{"A1", 1, false},
		{"A2", 1, true},
		{"A2x", 2, false},
		{"B", 0, false},
	})
}

func TestExpand_empty(t *testing.T) {
	raw := Expand(nil, exampleChildrenOf)
	if len(raw) != 0 {
		t.Fatalf("Expand(nil) = %v, wanted empty", raw)
	}
}

func TestExpand_callsChildrenOncePerNode(t *testing.T) {
	calls := make(map[string]int)
	var order []string
	raw := Expand([]string{"A", "B"}, func(p string) []string {
		calls[p]++
		order = append(order, p)
		return exampleChildren[p]
	})
	if len(calls) != len(raw) {
		t.Errorf("children called for %d payloads, wanted %d", len(calls), len(raw))
	}
	for p, n := range calls {
		if n != 1 {
			t.Errorf("children(%q) called %d times, wanted 1", p, n)
		}
	}
	deepEqual(t, order, []string{"A", "A1", "A2", "A2x", "B"})
}

func TestExpand_preOrderAcrossRoots(t *testing.T) {
	children := map[int][]int{
		1:  {11, 12},
		11: {111},
		2:  {21},
		21: {211, 212},
		3:  {31},
	}
	raw := Expand([]int{1, 2, 3}, func(p int) []int { return children[p] })

	var payloads, levels []int
	for _, r := range raw {
		payloads = append(payloads, r.Payload)
		levels = append(levels, r.Level)
	}
	deepEqual(t, payloads, []int{1, 11, 111, 12, 2, 21, 211, 212, 3, 31})
	deepEqual(t, levels, []int{0, 1, 2, 1, 0, 1, 2, 2, 0, 1})
}

func TestExpand_deepChain(t *testing.T) {
	const depth = 100_000
	raw := Expand([]int{0}, func(p int) []int {
		if p+1 < depth {
			return []int{p + 1}
		}
		return nil
	})
	if len(raw) != depth {
		t.Fatalf("len = %d, wanted %d", len(raw), depth)
	}
	last := raw[depth-1]
	if last.Payload != depth-1 || last.Level != depth-1 || last.HasChildren {
		t.Fatalf("last = %+v, wanted leaf %d at level %d", last, depth-1, depth-1)
	}
	if !slices.IsSortedFunc(raw, func(a, b RawNode[int]) int { return a.Level - b.Level }) {
		t.Fatalf("levels are not increasing along a chain")
	}
}
