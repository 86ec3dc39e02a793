// Package flattreetest builds flattree fixtures out of indented outlines.
package flattreetest

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/andreyvit/flattree"
)

// Source is an outline that exercises deep nesting, several returns of
// different depth, and a duplicate value.
var Source = []string{
	"1",
	" 2",
	" 3",
	" 4",
	"  5",
	"  6",
	"   7",
	"   8",
	"    9",
	"    10",
	"    11",
	"     12",
	"      13",
	"       14",
	"        15",
	"   16",
	"  17",
	" 18",
	"  19",
	"   20",
	"    21",
	"     21",
}

// Item is an outline entry. Its level is the number of leading spaces of
// the line it was parsed from.
type Item struct {
	Value    string
	Level    int
	Children []*Item
}

func (it *Item) String() string {
	return it.Value
}

// Children is the flattree.ChildrenFunc of outline items.
func Children(it *Item) []*Item {
	return it.Children
}

// Level returns the number of leading spaces of line.
func Level(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}

// Parse turns an outline into root items. A line indented deeper than its
// predecessor becomes the predecessor's child, no matter by how much.
func Parse(lines ...string) []*Item {
	var roots []*Item
	var stack []*Item
	for _, line := range lines {
		it := &Item{Value: strings.TrimSpace(line), Level: Level(line)}
		for len(stack) > 0 && stack[len(stack)-1].Level >= it.Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, it)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, it)
		}
		stack = append(stack, it)
	}
	return roots
}

// Values returns the trimmed values of lines, which is also the order in
// which a flat tree built from them lists its payloads.
func Values(lines ...string) []string {
	values := make([]string, len(lines))
	for i, line := range lines {
		values[i] = strings.TrimSpace(line)
	}
	return values
}

// Build parses lines and builds a verbose tree that logs to t.
func Build(t testing.TB, lines ...string) *flattree.Tree[*Item] {
	return flattree.New(Parse(lines...), Children, flattree.Options{
		Logf:    t.Logf,
		Verbose: true,
	})
}

// Random generates an outline of n lines nested at most maxDepth levels
// deep. Values are "n0", "n1" and so on, in line order.
func Random(rng *rand.Rand, n, maxDepth int) []string {
	lines := make([]string, n)
	level := 0
	for i := range lines {
		if i > 0 {
			level = rng.IntN(min(level+1, maxDepth) + 1)
		}
		lines[i] = fmt.Sprintf("%sn%d", strings.Repeat(" ", level), i)
	}
	return lines
}

// Eq compares tree.Dump(flattree.DumpAll &^ flattree.DumpIndent) with the
// expected lines.
func Eq[T any](t testing.TB, tree *flattree.Tree[T], expected ...string) {
	t.Helper()
	actual := tree.Dump(flattree.DumpAll &^ flattree.DumpIndent)
	wanted := strings.Join(expected, "\n")
	if len(expected) > 0 {
		wanted += "\n"
	}
	if actual != wanted {
		t.Errorf("** got:\n%s\nwanted:\n%s", actual, wanted)
	}
}

// Checked fails the test if tree violates any of its structural invariants.
func Checked[T any](t testing.TB, tree *flattree.Tree[T]) *flattree.Tree[T] {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("** %v\n%s", err, tree.Dump(flattree.DumpAll))
	}
	return tree
}
