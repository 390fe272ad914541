package xgboost

import (
	gberrors "github.com/YuminosukeSato/gbtree/pkg/errors"
)

// decodeNodeCategories expands XGBoost's CSR-style category storage into a
// dense per-node view of length numNodes. catNodes lists the ids of nodes
// that own a category set in strictly increasing order, and catSegments
// plus catSizes address each node's run inside the flat categories array.
// Nodes absent from catNodes get a nil list.
//
// The three run arrays must have equal lengths, every run must be
// non-empty, stay inside the categories array and contain no duplicate
// values. Any violation is reported as a malformed tree.
func decodeNodeCategories(treeID int, catNodes, catSegments, catSizes, categories []int, numNodes int) ([][]int, error) {
	if len(catSegments) != len(catNodes) {
		return nil, gberrors.NewMalformedTreeError(treeID, "categories_segments",
			"length differs from categories_nodes")
	}
	if len(catSizes) != len(catNodes) {
		return nil, gberrors.NewMalformedTreeError(treeID, "categories_sizes",
			"length differs from categories_nodes")
	}

	perNode := make([][]int, numNodes)
	lastNode := -1
	for k, nid := range catNodes {
		if nid < 0 || nid >= numNodes {
			return nil, gberrors.NewMalformedTreeError(treeID, "categories_nodes",
				"node id out of range")
		}
		if nid <= lastNode {
			return nil, gberrors.NewMalformedTreeError(treeID, "categories_nodes",
				"node ids are not strictly increasing")
		}
		lastNode = nid

		beg, size := catSegments[k], catSizes[k]
		if size <= 0 {
			return nil, gberrors.NewMalformedTreeError(treeID, "categories_sizes",
				"empty categorical run")
		}
		if beg < 0 || beg+size > len(categories) {
			return nil, gberrors.NewMalformedTreeError(treeID, "categories_segments",
				"run exceeds the categories array")
		}

		run := make([]int, size)
		copy(run, categories[beg:beg+size])
		seen := make(map[int]struct{}, size)
		for _, c := range run {
			if _, dup := seen[c]; dup {
				return nil, gberrors.NewMalformedTreeError(treeID, "categories",
					"duplicate category within one node")
			}
			seen[c] = struct{}{}
		}
		perNode[nid] = run
	}
	return perNode, nil
}
