package xgboost

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	gberrors "github.com/YuminosukeSato/gbtree/pkg/errors"
)

// PlotImportance writes a bar chart of the model's feature importance to
// path. The image format follows the file extension (.png, .svg, .pdf and
// the other formats gonum/plot supports). Features are labelled f0..fN-1
// the way XGBoost names unnamed features.
func (m *Model) PlotImportance(path, importanceType string) error {
	values, err := m.FeatureImportance(importanceType)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Feature importance (%s)", importanceType)
	p.Y.Label.Text = importanceType

	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(20))
	if err != nil {
		return gberrors.Wrap(err, "build importance bars")
	}
	p.Add(bars)

	names := make([]string, len(values))
	for i := range names {
		names[i] = fmt.Sprintf("f%d", i)
	}
	p.NominalX(names...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return gberrors.Wrap(err, "save importance plot")
	}
	return nil
}
