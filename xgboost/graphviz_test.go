package xgboost

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gberrors "github.com/YuminosukeSato/gbtree/pkg/errors"
)

func TestTreeGraph(t *testing.T) {
	m := mustDecode(t, newModelDoc(newCategoricalTreeDoc(0)))
	tree, _ := m.Tree(0)

	gv, graph, err := tree.Graph()
	require.NoError(t, err)
	require.NotNil(t, gv)
	require.NotNil(t, graph)
}

func TestTreeGraphBadChildReference(t *testing.T) {
	tree := NewTree(2, []Node{
		{Left: 1, Right: 9, Parent: -1, SplitIndex: 0, SplitCondition: 0.5},
		{Left: -1, Right: -1, Parent: 0},
	})

	_, _, err := tree.Graph()
	var oob *gberrors.NodeIndexOutOfBoundsError
	require.True(t, gberrors.As(err, &oob), "error = %v", err)
	assert.Equal(t, 2, oob.TreeID)
	assert.Equal(t, 9, oob.NodeID)
}

func TestRenderTrees(t *testing.T) {
	m := mustDecode(t, newModelDoc(newTreeDoc(0), newCategoricalTreeDoc(1)))

	dir := t.TempDir()
	require.NoError(t, m.RenderTrees(dir, "tree", "svg"))

	for _, name := range []string{"tree_00000.svg", "tree_00001.svg"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "expected %s to be rendered", name)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestRenderTreesUnsupportedType(t *testing.T) {
	m := mustDecode(t, newModelDoc(newTreeDoc(0)))

	err := m.RenderTrees(t.TempDir(), "tree", "tiff")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported figure type")
}
