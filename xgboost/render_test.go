package xgboost

import (
	"bytes"
	"testing"

	gberrors "github.com/YuminosukeSato/gbtree/pkg/errors"
)

// Node 2 prints before node 1: children are pushed left-then-right, so
// the right child pops first.
func TestRenderNumericalTree(t *testing.T) {
	m := mustDecode(t, newModelDoc(newTreeDoc(0)))
	tree, _ := m.Tree(0)

	want := "  {node id: 0, gain: 10.5, cover: 25, condition: 0.5}\n" +
		"  {node id: 2, gain: 0, cover: 13, weight: 0.7}\n" +
		"  {node id: 1, gain: 0, cover: 12, weight: -0.3}"
	if got := tree.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

// A categorical root carries its category set and never a condition.
func TestRenderCategoricalTree(t *testing.T) {
	m := mustDecode(t, newModelDoc(newCategoricalTreeDoc(0)))
	tree, _ := m.Tree(0)

	want := "  {node id: 0, gain: 10.5, cover: 25, categories: [3 7 9]}\n" +
		"  {node id: 2, gain: 0, cover: 13, weight: 0.7}\n" +
		"  {node id: 1, gain: 0, cover: 12, weight: -0.3}"
	got := tree.String()
	if got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
	if bytes.Contains([]byte(got), []byte("condition")) {
		t.Error("categorical tree rendered a condition field")
	}
}

// A deleted leaf still reports its weight slot; the leaf check does not
// depend on the deleted flag.
func TestRenderDeletedLeaf(t *testing.T) {
	tree := NewTree(0, []Node{
		{Left: 1, Right: 2, Parent: -1, SplitIndex: 0, SplitCondition: 1.5, LossChange: 4, SumHessian: 9},
		{Left: -1, Right: -1, Parent: 0, SplitIndex: DeletedNodeMarker, SplitCondition: 0.25, LossChange: 1, SumHessian: 2},
		{Left: -1, Right: -1, Parent: 0, SplitIndex: 0, SplitCondition: -1, SumHessian: 3},
	})

	want := "  {node id: 0, gain: 4, cover: 9, condition: 1.5}\n" +
		"  {node id: 2, gain: 0, cover: 3, weight: -1}\n" +
		"  {node id: 1, gain: 1, cover: 2, weight: 0.25}"
	if got := tree.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

// A deleted internal node is printed bare and its children are never
// visited.
func TestRenderDeletedInternalNode(t *testing.T) {
	tree := NewTree(0, []Node{
		{Left: 1, Right: 2, Parent: -1, SplitIndex: DeletedNodeMarker, SplitCondition: 0.5, LossChange: 1, SumHessian: 2},
		{Left: -1, Right: -1, Parent: 0, SplitIndex: 0, SplitCondition: 0.1, SumHessian: 1},
		{Left: -1, Right: -1, Parent: 0, SplitIndex: 0, SplitCondition: 0.2, SumHessian: 1},
	})

	want := "  {node id: 0, gain: 1, cover: 2}"
	if got := tree.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRenderEmptyTree(t *testing.T) {
	tree := NewTree(0, nil)

	var buf bytes.Buffer
	if err := tree.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Render() wrote %q, want nothing", buf.String())
	}
	if tree.String() != "" {
		t.Errorf("String() = %q, want empty", tree.String())
	}
}

// A child reference outside the node array aborts the dump; String cuts
// the output short at the lines rendered so far.
func TestRenderBadChildReference(t *testing.T) {
	tree := NewTree(4, []Node{
		{Left: 1, Right: 6, Parent: -1, SplitIndex: 0, SplitCondition: 0.5, LossChange: 1, SumHessian: 2},
		{Left: -1, Right: -1, Parent: 0, SplitIndex: 0, SplitCondition: 3, SumHessian: 1},
	})

	var buf bytes.Buffer
	err := tree.Render(&buf)
	var oob *gberrors.NodeIndexOutOfBoundsError
	if !gberrors.As(err, &oob) {
		t.Fatalf("Render() error = %v, want *NodeIndexOutOfBoundsError", err)
	}
	if oob.TreeID != 4 || oob.NodeID != 6 || oob.NumNodes != 2 {
		t.Errorf("TreeID/NodeID/NumNodes = %d/%d/%d, want 4/6/2", oob.TreeID, oob.NodeID, oob.NumNodes)
	}

	want := "  {node id: 0, gain: 1, cover: 2, condition: 0.5}"
	if got := tree.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRenderMatchesString(t *testing.T) {
	m := mustDecode(t, newModelDoc(newCategoricalTreeDoc(0)))
	tree, _ := m.Tree(0)

	var buf bytes.Buffer
	if err := tree.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if buf.String() != tree.String() {
		t.Errorf("Render output %q differs from String() %q", buf.String(), tree.String())
	}
}
