package flattreetest

import (
	"math/rand/v2"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	roots := Parse(
		"a",
		"  b",
		"  c",
		"    d",
		"e",
	)
	if len(roots) != 2 || roots[0].Value != "a" || roots[1].Value != "e" {
		t.Fatalf("roots = %v, wanted [a e]", roots)
	}
	kids := Children(roots[0])
	if len(kids) != 2 || kids[0].Value != "b" || kids[1].Value != "c" || kids[1].Level != 2 {
		t.Fatalf("children of a = %v, wanted [b c]", kids)
	}
	if len(kids[1].Children) != 1 || kids[1].Children[0].Value != "d" {
		t.Fatalf("children of c = %v, wanted [d]", kids[1].Children)
	}
	if len(roots[1].Children) != 0 {
		t.Fatalf("children of e = %v, wanted none", roots[1].Children)
	}
}

func TestParse_source(t *testing.T) {
	roots := Parse(Source...)
	if len(roots) != 1 || roots[0].Value != "1" {
		t.Fatalf("roots = %v, wanted [1]", roots)
	}
	if a := Values(" 2", "  x "); !reflect.DeepEqual(a, []string{"2", "x"}) {
		t.Fatalf("Values = %q", a)
	}
}

func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	for round := 0; round < 20; round++ {
		lines := Random(rng, 100, 4)
		if len(lines) != 100 || Level(lines[0]) != 0 {
			t.Fatalf("Random produced %d lines starting at level %d", len(lines), Level(lines[0]))
		}
		for i := 1; i < len(lines); i++ {
			level, prev := Level(lines[i]), Level(lines[i-1])
			if level > prev+1 || level > 4 {
				t.Fatalf("line %d at level %d follows level %d", i, level, prev)
			}
		}
	}
}

func TestBuild(t *testing.T) {
	tree := Checked(t, Build(t, Source...))
	if tree.Len() != len(Source) {
		t.Fatalf("Len = %d, wanted %d", tree.Len(), len(Source))
	}
	Eq(t, Build(t, "x", " y"),
		"0: x level=0 children last=1",
		"1: y level=1 last=1",
	)
}
