package xgboost

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	gberrors "github.com/YuminosukeSato/gbtree/pkg/errors"
)

// Graph draws the tree as a Graphviz graph, walking live children from the
// root. Leaves and deleted nodes are boxes; internal nodes are ellipses
// labelled with id, gain, cover and the split description. The returned
// Graphviz handle is needed to render the graph to a file.
func (t *Tree) Graph() (*graphviz.Graphviz, *cgraph.Graph, error) {
	gv := graphviz.New()
	graph, err := gv.Graph()
	if err != nil {
		return nil, nil, gberrors.Wrap(err, "create graph")
	}
	if len(t.nodes) > 0 {
		if err := t.draw(graph, 0, nil); err != nil {
			return nil, nil, err
		}
	}
	return gv, graph, nil
}

func (t *Tree) draw(g *cgraph.Graph, nid int, parent *cgraph.Node) error {
	if nid < 0 || nid >= len(t.nodes) {
		return gberrors.NewNodeIndexOutOfBoundsError(t.id, nid, len(t.nodes))
	}
	n := &t.nodes[nid]

	current, err := g.CreateNode(strconv.Itoa(nid))
	if err != nil {
		return gberrors.Wrapf(err, "create graph node %d", nid)
	}
	if parent != nil {
		if _, err := g.CreateEdge("", parent, current); err != nil {
			return gberrors.Wrapf(err, "create edge to node %d", nid)
		}
	}

	switch {
	case n.IsDeleted():
		current.Set("label", fmt.Sprintf("id: %d\ndeleted", nid))
		current.Set("shape", "box")
	case n.IsLeaf():
		current.Set("label", fmt.Sprintf("id: %d\nweight: %v", nid, n.SplitCondition))
		current.Set("shape", "box")
	default:
		current.Set("label", splitLabel(nid, n))
		if err := t.draw(g, n.Left, current); err != nil {
			return err
		}
		if err := t.draw(g, n.Right, current); err != nil {
			return err
		}
	}
	return nil
}

func splitLabel(nid int, n *Node) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintln("id:", nid))
	sb.WriteString(fmt.Sprintln("gain:", n.LossChange))
	sb.WriteString(fmt.Sprintln("cover:", n.SumHessian))
	if n.IsCategorical() {
		sb.WriteString(fmt.Sprintf("f_%d in %v", n.SplitIndex, n.Categories))
	} else {
		sb.WriteString(fmt.Sprintf("f_%d < %v", n.SplitIndex, n.SplitCondition))
	}
	return sb.String()
}

// RenderTrees renders every tree of the forest into picturesDirectory, one
// image per tree named prefix_00000.figureType onwards. Supported figure
// types are png, svg and jpg.
func (m *Model) RenderTrees(picturesDirectory, prefix, figureType string) error {
	format, ok := map[string]graphviz.Format{
		"png": graphviz.PNG,
		"svg": graphviz.SVG,
		"jpg": graphviz.JPG,
	}[figureType]
	if !ok {
		return gberrors.Newf("gbtree: unsupported figure type %q", figureType)
	}

	for i, tree := range m.trees {
		gv, graph, err := tree.Graph()
		if err != nil {
			return err
		}
		filename := fmt.Sprintf("%s_%05d.%s", prefix, i, figureType)
		if err := gv.RenderFilename(graph, format, filepath.Join(picturesDirectory, filename)); err != nil {
			return gberrors.Wrapf(err, "render tree %d", i)
		}
	}
	return nil
}
