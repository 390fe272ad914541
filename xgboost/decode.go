// Package xgboost decodes gradient-boosted tree ensembles saved by XGBoost
// into an immutable in-memory forest.
//
// The decoder consumes the generic document produced by either the JSON or
// the UBJSON codec (see LoadModelFromFile) and rebuilds every tree from
// XGBoost's parallel flat arrays, including the CSR-encoded category sets
// of categorical splits. A decoded Model exposes read-only accessors, a
// deterministic text dump, feature importance scores and Graphviz
// rendering of single trees. The package never runs inference; it exists
// for model inspection tooling.
package xgboost

import (
	"github.com/YuminosukeSato/gbtree/core/parallel"
	"github.com/YuminosukeSato/gbtree/document"
	gberrors "github.com/YuminosukeSato/gbtree/pkg/errors"
)

// Decode reconstructs a Model from a parsed model document. doc must be
// the generic value produced by one of the Load functions or any JSON
// decoder. Decoding is all-or-nothing: the first malformed tree aborts it
// and a partial forest is never returned.
func Decode(doc interface{}) (m *Model, err error) {
	defer gberrors.Recover(&err, "Decode")

	shape, treeDocs, err := decodeShape(doc)
	if err != nil {
		return nil, err
	}

	trees := make([]*Tree, len(treeDocs))
	for i, treeDoc := range treeDocs {
		if trees[i], err = decodeTree(treeDoc, i); err != nil {
			return nil, err
		}
	}
	return newModel(shape, trees), nil
}

// DecodeParallel behaves exactly like Decode but decodes the trees of a
// large forest concurrently. The result is indistinguishable from the
// sequential path: trees are reassembled in forest order and the error of
// the lowest-indexed failing tree is the one reported.
func DecodeParallel(doc interface{}) (m *Model, err error) {
	defer gberrors.Recover(&err, "DecodeParallel")

	shape, treeDocs, err := decodeShape(doc)
	if err != nil {
		return nil, err
	}

	const parallelThreshold = 8

	trees := make([]*Tree, len(treeDocs))
	errs := make([]error, len(treeDocs))
	parallel.ParallelizeWithThreshold(len(treeDocs), parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			trees[i], errs[i] = decodeTree(treeDocs[i], i)
		}
	})
	for _, treeErr := range errs {
		if treeErr != nil {
			return nil, treeErr
		}
	}
	return newModel(shape, trees), nil
}

// modelShape carries the global scalar parameters read ahead of the trees.
type modelShape struct {
	numClass   int
	numFeature int
	baseScore  float64
	treeInfo   []int
}

func decodeShape(doc interface{}) (modelShape, []document.Object, error) {
	var shape modelShape

	root, err := document.Root(doc)
	if err != nil {
		return shape, nil, err
	}

	params, err := root.Object("learner", "learner_model_param")
	if err != nil {
		return shape, nil, err
	}
	numClass, err := params.Int("num_class")
	if err != nil {
		return shape, nil, err
	}
	numFeature, err := params.Int("num_feature")
	if err != nil {
		return shape, nil, err
	}
	baseScore, err := params.Float("base_score")
	if err != nil {
		return shape, nil, err
	}

	booster, err := root.Object("learner", "gradient_booster", "model")
	if err != nil {
		return shape, nil, err
	}
	treeInfo, err := booster.Ints("tree_info")
	if err != nil {
		return shape, nil, err
	}
	gbtreeParam, err := booster.Object("gbtree_model_param")
	if err != nil {
		return shape, nil, err
	}
	numTrees, err := gbtreeParam.Int("num_trees")
	if err != nil {
		return shape, nil, err
	}
	treeDocs, err := booster.Objects("trees")
	if err != nil {
		return shape, nil, err
	}

	if len(treeDocs) != numTrees {
		return shape, nil, gberrors.NewLengthMismatchError(-1, "trees", numTrees, len(treeDocs))
	}
	if len(treeInfo) != numTrees {
		return shape, nil, gberrors.NewLengthMismatchError(-1, "tree_info", numTrees, len(treeInfo))
	}

	shape = modelShape{
		numClass:   numClass,
		numFeature: numFeature,
		baseScore:  baseScore,
		treeInfo:   treeInfo,
	}
	return shape, treeDocs, nil
}

// decodeTree validates one tree document and zips its parallel per-node
// arrays into Node records. position is the tree's index among its
// siblings and must match the declared id.
func decodeTree(obj document.Object, position int) (*Tree, error) {
	id, err := obj.Int("id")
	if err != nil {
		return nil, err
	}
	if id != position {
		return nil, gberrors.NewTreeIDMismatchError(id, position)
	}

	// left_children defines the node count every other per-node array
	// must match.
	left, err := obj.Ints("left_children")
	if err != nil {
		return nil, err
	}
	numNodes := len(left)

	right, err := treeInts(obj, "right_children", position, numNodes)
	if err != nil {
		return nil, err
	}
	parents, err := treeInts(obj, "parents", position, numNodes)
	if err != nil {
		return nil, err
	}
	conditions, err := treeFloats(obj, "split_conditions", position, numNodes)
	if err != nil {
		return nil, err
	}
	indices, err := treeUint32s(obj, "split_indices", position, numNodes)
	if err != nil {
		return nil, err
	}
	defaultLeft, err := treeSmallUints(obj, "default_left", position, numNodes)
	if err != nil {
		return nil, err
	}
	splitTypes, err := treeSmallUints(obj, "split_type", position, numNodes)
	if err != nil {
		return nil, err
	}
	baseWeights, err := treeFloats(obj, "base_weights", position, numNodes)
	if err != nil {
		return nil, err
	}
	lossChanges, err := treeFloats(obj, "loss_changes", position, numNodes)
	if err != nil {
		return nil, err
	}
	sumHessian, err := treeFloats(obj, "sum_hessian", position, numNodes)
	if err != nil {
		return nil, err
	}

	// The categorical-run arrays are CSR-compressed, not per-node, so
	// they get no length check here.
	catSegments, err := obj.Ints("categories_segments")
	if err != nil {
		return nil, err
	}
	catSizes, err := obj.Ints("categories_sizes")
	if err != nil {
		return nil, err
	}
	catNodes, err := obj.Ints("categories_nodes")
	if err != nil {
		return nil, err
	}
	categories, err := obj.Ints("categories")
	if err != nil {
		return nil, err
	}

	if err := checkDeclaredNumNodes(obj, position, numNodes); err != nil {
		return nil, err
	}

	for i, v := range splitTypes {
		if v > uint8(CategoricalSplit) {
			return nil, gberrors.NewInvalidSplitTypeError(position, i, int(v))
		}
	}

	nodeCats, err := decodeNodeCategories(position, catNodes, catSegments, catSizes, categories, numNodes)
	if err != nil {
		return nil, err
	}

	nodes := make([]Node, numNodes)
	for i := range nodes {
		nodes[i] = Node{
			Left:           left[i],
			Right:          right[i],
			Parent:         parents[i],
			SplitIndex:     indices[i],
			SplitCondition: conditions[i],
			DefaultLeft:    defaultLeft[i] == 1,
			SplitType:      SplitType(splitTypes[i]),
			Categories:     nodeCats[i],
			BaseWeight:     baseWeights[i],
			LossChange:     lossChanges[i],
			SumHessian:     sumHessian[i],
		}
	}
	return NewTree(id, nodes), nil
}

// checkDeclaredNumNodes cross-checks the optional tree_param.num_nodes
// field against the actual array length. Older dumps omit the field
// entirely, so absence is not an error.
func checkDeclaredNumNodes(obj document.Object, treeID, numNodes int) error {
	if !obj.Has("tree_param") {
		return nil
	}
	treeParam, err := obj.Object("tree_param")
	if err != nil {
		return err
	}
	if !treeParam.Has("num_nodes") {
		return nil
	}
	declared, err := treeParam.Int("num_nodes")
	if err != nil {
		return err
	}
	if declared != numNodes {
		return gberrors.NewLengthMismatchError(treeID, "tree_param.num_nodes", declared, numNodes)
	}
	return nil
}

func treeInts(obj document.Object, key string, treeID, want int) ([]int, error) {
	vals, err := obj.Ints(key)
	if err != nil {
		return nil, err
	}
	if len(vals) != want {
		return nil, gberrors.NewLengthMismatchError(treeID, key, want, len(vals))
	}
	return vals, nil
}

func treeFloats(obj document.Object, key string, treeID, want int) ([]float64, error) {
	vals, err := obj.Floats(key)
	if err != nil {
		return nil, err
	}
	if len(vals) != want {
		return nil, gberrors.NewLengthMismatchError(treeID, key, want, len(vals))
	}
	return vals, nil
}

func treeUint32s(obj document.Object, key string, treeID, want int) ([]uint32, error) {
	vals, err := obj.Uint32s(key)
	if err != nil {
		return nil, err
	}
	if len(vals) != want {
		return nil, gberrors.NewLengthMismatchError(treeID, key, want, len(vals))
	}
	return vals, nil
}

func treeSmallUints(obj document.Object, key string, treeID, want int) ([]uint8, error) {
	vals, err := obj.SmallUints(key)
	if err != nil {
		return nil, err
	}
	if len(vals) != want {
		return nil, gberrors.NewLengthMismatchError(treeID, key, want, len(vals))
	}
	return vals, nil
}
