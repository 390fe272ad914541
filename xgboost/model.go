package xgboost

import (
	"fmt"
	"io"

	gberrors "github.com/YuminosukeSato/gbtree/pkg/errors"
)

// Model is a decoded forest together with the global shape parameters of
// the booster. It is immutable after decoding; all accessors are safe for
// concurrent use.
type Model struct {
	numOutputGroup int
	numFeature     int
	baseScore      float64
	treeInfo       []int
	trees          []*Tree
}

func newModel(shape modelShape, trees []*Tree) *Model {
	return &Model{
		numOutputGroup: shape.numClass,
		numFeature:     shape.numFeature,
		baseScore:      shape.baseScore,
		treeInfo:       shape.treeInfo,
		trees:          trees,
	}
}

// NumOutputGroup returns num_class as declared by the model. XGBoost
// writes 0 for single-output objectives; the value is kept as-is.
func (m *Model) NumOutputGroup() int {
	return m.numOutputGroup
}

// NumFeature returns the feature count the model was trained with.
func (m *Model) NumFeature() int {
	return m.numFeature
}

// BaseScore returns the global bias of the booster.
func (m *Model) BaseScore() float64 {
	return m.baseScore
}

// NumTrees returns the number of trees in the forest.
func (m *Model) NumTrees() int {
	return len(m.trees)
}

// TreeInfo returns a copy of the mapping from tree index to the output
// group that tree contributes to.
func (m *Model) TreeInfo() []int {
	return append([]int(nil), m.treeInfo...)
}

// Trees returns the decoded trees in forest order. The slice is a copy;
// the trees themselves are shared and immutable.
func (m *Model) Trees() []*Tree {
	return append([]*Tree(nil), m.trees...)
}

// Tree returns the tree at index i.
func (m *Model) Tree(i int) (*Tree, error) {
	if i < 0 || i >= len(m.trees) {
		return nil, gberrors.Newf("gbtree: tree index %d out of range [0, %d)", i, len(m.trees))
	}
	return m.trees[i], nil
}

// Dump writes the text rendering of every tree to w in forest order, each
// preceded by a blank line and a tree_id header.
func (m *Model) Dump(w io.Writer) error {
	for i, tree := range m.trees {
		if _, err := fmt.Fprintf(w, "\ntree_id: %d\n", i); err != nil {
			return gberrors.Wrap(err, "write tree header")
		}
		if err := tree.Render(w); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return gberrors.Wrap(err, "write tree trailer")
		}
	}
	return nil
}
