package xgboost

import (
	gberrors "github.com/YuminosukeSato/gbtree/pkg/errors"
)

// Tree owns the flat node array of one decoded tree. Nodes are addressed
// by id, which is the index into that array; the root is node 0. A Tree is
// immutable once built, so it is safe for concurrent readers.
type Tree struct {
	id    int
	nodes []Node
}

// NewTree wraps an already validated node array. The tree takes ownership
// of nodes; callers must not modify the slice afterwards.
func NewTree(id int, nodes []Node) *Tree {
	return &Tree{id: id, nodes: nodes}
}

// ID returns the tree's position in the forest.
func (t *Tree) ID() int {
	return t.id
}

// NumNodes returns the number of array slots, deleted nodes included.
func (t *Tree) NumNodes() int {
	return len(t.nodes)
}

func (t *Tree) checkNode(nid int) error {
	if nid < 0 || nid >= len(t.nodes) {
		return gberrors.NewNodeIndexOutOfBoundsError(t.id, nid, len(t.nodes))
	}
	return nil
}

// Node returns a copy of the full node record at nid. The category list of
// the copy is detached from the tree's storage.
func (t *Tree) Node(nid int) (Node, error) {
	if err := t.checkNode(nid); err != nil {
		return Node{}, err
	}
	n := t.nodes[nid]
	n.Categories = append([]int(nil), n.Categories...)
	return n, nil
}

// Parent returns the parent id of nid, or -1 for the root.
func (t *Tree) Parent(nid int) (int, error) {
	if err := t.checkNode(nid); err != nil {
		return 0, err
	}
	return t.nodes[nid].Parent, nil
}

// Left returns the left child id of nid, or -1 for a leaf.
func (t *Tree) Left(nid int) (int, error) {
	if err := t.checkNode(nid); err != nil {
		return 0, err
	}
	return t.nodes[nid].Left, nil
}

// Right returns the right child id of nid, or -1 for a leaf.
func (t *Tree) Right(nid int) (int, error) {
	if err := t.checkNode(nid); err != nil {
		return 0, err
	}
	return t.nodes[nid].Right, nil
}

// SplitIndex returns the feature index nid splits on. For deleted nodes
// this is DeletedNodeMarker.
func (t *Tree) SplitIndex(nid int) (uint32, error) {
	if err := t.checkNode(nid); err != nil {
		return 0, err
	}
	return t.nodes[nid].SplitIndex, nil
}

// SplitCondition returns the numeric threshold of nid, or the leaf output
// weight when nid is a leaf.
func (t *Tree) SplitCondition(nid int) (float64, error) {
	if err := t.checkNode(nid); err != nil {
		return 0, err
	}
	return t.nodes[nid].SplitCondition, nil
}

// SplitCategories returns a copy of the category set routed to the right
// child of nid. Numerical and leaf nodes yield an empty list.
func (t *Tree) SplitCategories(nid int) ([]int, error) {
	if err := t.checkNode(nid); err != nil {
		return nil, err
	}
	return append([]int(nil), t.nodes[nid].Categories...), nil
}

// DefaultLeft reports which branch rows with a missing feature value take.
func (t *Tree) DefaultLeft(nid int) (bool, error) {
	if err := t.checkNode(nid); err != nil {
		return false, err
	}
	return t.nodes[nid].DefaultLeft, nil
}

// BaseWeight returns the stored base weight of nid.
func (t *Tree) BaseWeight(nid int) (float64, error) {
	if err := t.checkNode(nid); err != nil {
		return 0, err
	}
	return t.nodes[nid].BaseWeight, nil
}

// LossChange returns the training gain recorded for nid.
func (t *Tree) LossChange(nid int) (float64, error) {
	if err := t.checkNode(nid); err != nil {
		return 0, err
	}
	return t.nodes[nid].LossChange, nil
}

// SumHessian returns the hessian sum (cover) recorded for nid.
func (t *Tree) SumHessian(nid int) (float64, error) {
	if err := t.checkNode(nid); err != nil {
		return 0, err
	}
	return t.nodes[nid].SumHessian, nil
}

// IsLeaf reports whether nid is a leaf.
func (t *Tree) IsLeaf(nid int) (bool, error) {
	if err := t.checkNode(nid); err != nil {
		return false, err
	}
	return t.nodes[nid].IsLeaf(), nil
}

// IsDeleted reports whether nid was pruned.
func (t *Tree) IsDeleted(nid int) (bool, error) {
	if err := t.checkNode(nid); err != nil {
		return false, err
	}
	return t.nodes[nid].IsDeleted(), nil
}

// IsCategorical reports whether nid splits on a category set.
func (t *Tree) IsCategorical(nid int) (bool, error) {
	if err := t.checkNode(nid); err != nil {
		return false, err
	}
	return t.nodes[nid].IsCategorical(), nil
}

// IsNumerical reports whether nid splits on a numeric threshold.
func (t *Tree) IsNumerical(nid int) (bool, error) {
	if err := t.checkNode(nid); err != nil {
		return false, err
	}
	return t.nodes[nid].IsNumerical(), nil
}
