package xgboost

import (
	"gonum.org/v1/gonum/floats"

	gberrors "github.com/YuminosukeSato/gbtree/pkg/errors"
)

// Importance kinds accepted by FeatureImportance.
const (
	// ImportanceSplit counts how often each feature is split on.
	ImportanceSplit = "split"
	// ImportanceGain sums the loss change of each feature's splits.
	ImportanceGain = "gain"
	// ImportanceCover sums the hessian (cover) of each feature's splits.
	ImportanceCover = "cover"
)

// FeatureImportance aggregates per-feature importance over all live
// internal nodes of the forest and normalizes the result to sum to 1.
// Leaves and deleted nodes contribute nothing. The returned slice has
// NumFeature entries.
func (m *Model) FeatureImportance(importanceType string) ([]float64, error) {
	switch importanceType {
	case ImportanceSplit, ImportanceGain, ImportanceCover:
	default:
		return nil, gberrors.Newf("gbtree: unknown importance type %q", importanceType)
	}

	importance := make([]float64, m.numFeature)
	for _, tree := range m.trees {
		for i := range tree.nodes {
			n := &tree.nodes[i]
			if n.IsLeaf() || n.IsDeleted() {
				continue
			}
			idx := int(n.SplitIndex)
			if idx >= len(importance) {
				// Split on a feature beyond the declared count;
				// nothing to attribute it to.
				continue
			}
			switch importanceType {
			case ImportanceSplit:
				importance[idx]++
			case ImportanceGain:
				importance[idx] += n.LossChange
			case ImportanceCover:
				importance[idx] += n.SumHessian
			}
		}
	}

	if total := floats.Sum(importance); total > 0 {
		floats.Scale(1/total, importance)
	}
	return importance, nil
}
