package flattree

import (
	"strings"
	"testing"
)

func TestTree_Dump(t *testing.T) {
	tree := exampleTree(t)

	expected := strings.Join([]string{
		"0: A level=0 children last=3",
		"1:   A1 level=1 last=1",
		"2:   A2 level=1 children last=3",
		"3:     A2x level=2 last=3",
		"4: B level=0 last=4",
	}, "\n") + "\n"
	if a := tree.Dump(DumpAll); a != expected {
		t.Errorf("Dump(DumpAll) = %q, wanted %q", a, expected)
	}

	expected = "0: A\n1: A1\n2: A2\n3: A2x\n4: B\n"
	if a := tree.Dump(DumpPayloads); a != expected {
		t.Errorf("Dump(DumpPayloads) = %q, wanted %q", a, expected)
	}

	if a := New(nil, exampleChildrenOf, Options{}).Dump(DumpAll); a != "" {
		t.Errorf("Dump of empty tree = %q, wanted empty", a)
	}
}

func TestTree_Check(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(nodes []Node[string])
		msg    string
	}{
		{"valid", func([]Node[string]) {}, ""},
		{"range too short", func(n []Node[string]) { n[0].LastChildIndex = 2 }, "subtree of node 0 ends at 2"},
		{"range too long", func(n []Node[string]) { n[2].LastChildIndex = 4 }, "node 4 (level 0) in subtree of node 2"},
		{"range outside", func(n []Node[string]) { n[4].LastChildIndex = 5 }, "outside"},
		{"leaf flag", func(n []Node[string]) { n[1].HasChildren = true }, "children=true"},
		{"level jump", func(n []Node[string]) { n[3].Level = 3 }, "follows level 1"},
		{"root level", func(n []Node[string]) { n[0].Level = 1 }, "node 0 at level 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := exampleTree(t)
			tt.mutate(tree.nodes)
			err := tree.Check()
			if tt.msg == "" {
				if err != nil {
					t.Fatalf("Check() = %v, wanted nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.msg) {
				t.Fatalf("Check() = %v, wanted error mentioning %q", err, tt.msg)
			}
		})
	}
}

func TestDumpFlags_Contains(t *testing.T) {
	if !DumpAll.Contains(DumpRanges | DumpLevels) {
		t.Errorf("DumpAll does not contain DumpRanges|DumpLevels")
	}
	if DumpPayloads.Contains(DumpPayloads | DumpIndent) {
		t.Errorf("DumpPayloads contains DumpIndent")
	}
}
