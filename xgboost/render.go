package xgboost

import (
	"fmt"
	"io"
	"strings"

	gberrors "github.com/YuminosukeSato/gbtree/pkg/errors"
)

// Render writes a text dump of the tree to w, one line per visited node.
// Traversal is pre-order with an explicit stack seeded with the root:
// popping a node records its id, gain (loss change) and cover (hessian
// sum). A live internal node pushes its children left-then-right, so the
// right subtree prints before the left one, and carries either its
// category set or its numeric threshold. A leaf carries its output weight
// instead. Deleted nodes are printed but never expanded. An empty tree
// produces no output.
//
// A child reference that points outside the node array aborts the dump
// with a node index error.
func (t *Tree) Render(w io.Writer) error {
	if len(t.nodes) == 0 {
		return nil
	}

	stack := []int{0}
	visited := 0
	for len(stack) > 0 {
		nid := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if nid < 0 || nid >= len(t.nodes) {
			return gberrors.NewNodeIndexOutOfBoundsError(t.id, nid, len(t.nodes))
		}
		n := &t.nodes[nid]

		var line strings.Builder
		if visited > 0 {
			line.WriteByte('\n')
		}
		fmt.Fprintf(&line, "  {node id: %d, gain: %v, cover: %v", nid, n.LossChange, n.SumHessian)
		if !n.IsLeaf() && !n.IsDeleted() {
			stack = append(stack, n.Left, n.Right)
			if len(n.Categories) > 0 {
				fmt.Fprintf(&line, ", categories: %v", n.Categories)
			} else {
				fmt.Fprintf(&line, ", condition: %v", n.SplitCondition)
			}
		}
		if n.IsLeaf() {
			fmt.Fprintf(&line, ", weight: %v", n.SplitCondition)
		}
		line.WriteByte('}')

		if _, err := io.WriteString(w, line.String()); err != nil {
			return gberrors.Wrap(err, "write rendered node")
		}
		visited++
	}
	return nil
}

// String renders the tree into a string. A malformed child reference cuts
// the dump short at the lines rendered so far.
func (t *Tree) String() string {
	var sb strings.Builder
	_ = t.Render(&sb)
	return sb.String()
}
