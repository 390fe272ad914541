package xgboost

import (
	"fmt"
	"math"
)

// SplitType identifies how an internal node routes rows to its children.
type SplitType uint8

const (
	// NumericalSplit compares a feature value against a threshold.
	NumericalSplit SplitType = 0
	// CategoricalSplit tests membership in an explicit category set.
	CategoricalSplit SplitType = 1
)

// String returns the lower-case name of the split type.
func (s SplitType) String() string {
	switch s {
	case NumericalSplit:
		return "numerical"
	case CategoricalSplit:
		return "categorical"
	default:
		return fmt.Sprintf("SplitType(%d)", uint8(s))
	}
}

// DeletedNodeMarker is the split index XGBoost writes into pruned nodes.
// It cannot collide with a real feature index.
const DeletedNodeMarker uint32 = math.MaxUint32

// Node is one slot of a tree's flat node array. Left, Right and Parent are
// indices into the same array, with -1 meaning absent: a leaf has
// Left == -1 and the root has Parent == -1.
//
// SplitCondition doubles as storage for the leaf output weight. Whether it
// is a threshold or a weight is decided by IsLeaf, never by a separate tag.
type Node struct {
	Left   int
	Right  int
	Parent int

	// SplitIndex is the feature the node splits on, or DeletedNodeMarker
	// for pruned nodes that still occupy their array slot.
	SplitIndex     uint32
	SplitCondition float64
	DefaultLeft    bool
	SplitType      SplitType

	// Categories holds the category values routed to the right child.
	// Empty for numerical splits and leaves.
	Categories []int

	BaseWeight float64
	LossChange float64
	SumHessian float64
}

// IsLeaf reports whether the node has no children. Only Left is consulted;
// Right is expected to agree but is not authoritative.
func (n Node) IsLeaf() bool {
	return n.Left == -1
}

// IsDeleted reports whether the node was pruned out of the tree.
func (n Node) IsDeleted() bool {
	return n.SplitIndex == DeletedNodeMarker
}

// IsCategorical reports whether the node splits on a category set.
func (n Node) IsCategorical() bool {
	return n.SplitType == CategoricalSplit
}

// IsNumerical reports whether the node splits on a numeric threshold.
func (n Node) IsNumerical() bool {
	return !n.IsCategorical()
}
