// Command xgbdump prints the tree structure of an XGBoost model dump.
//
// The model is loaded from a .json or .ubj file, decoded into a forest and
// written to stdout in a deterministic per-node text form. Optional flags
// render every tree as an image, report feature importance and plot it as
// a bar chart. Logs go to stderr so the dump on stdout stays pipeable.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/alexflint/go-arg"

	"github.com/YuminosukeSato/gbtree/core/parallel"
	"github.com/YuminosukeSato/gbtree/pkg/log"
	"github.com/YuminosukeSato/gbtree/xgboost"
)

func main() {
	args := struct {
		Model       string `arg:"required" help:"path to the model file (.json or .ubj)"`
		LogLevel    string `help:"debug, info, warn or error"`
		Parallel    bool   `help:"decode trees concurrently"`
		Importance  string `help:"report feature importance: split, gain or cover"`
		Plot        string `help:"write an importance bar chart to this file"`
		GraphDir    string `help:"render every tree as an image into this directory"`
		GraphFormat string `help:"tree image format: png, svg or jpg"`
	}{
		LogLevel:    "info",
		GraphFormat: "png",
	}
	arg.MustParse(&args)

	log.SetupLogger(args.LogLevel)
	logger := slog.Default()

	start := time.Now()
	doc, err := xgboost.LoadDocumentFromFile(args.Model)
	if err != nil {
		fatal(logger, "Failed to load model document", err, args.Model)
	}

	decode := xgboost.Decode
	if args.Parallel {
		decode = xgboost.DecodeParallel
	}
	model, err := decode(doc)
	if err != nil {
		fatal(logger, "Failed to decode model", err, args.Model)
	}
	if args.Parallel {
		logger.Debug("Concurrent tree decoding enabled",
			slog.Int(log.WorkersKey, parallel.Workers(model.NumTrees())),
		)
	}
	logger.Info("Model decoded",
		slog.String(log.ModelPathKey, args.Model),
		slog.String(log.OperationKey, log.OperationDecode),
		slog.Int(log.NumTreesKey, model.NumTrees()),
		slog.Int(log.NumFeaturesKey, model.NumFeature()),
		slog.Int(log.NumClassKey, model.NumOutputGroup()),
		slog.Int64(log.DurationMsKey, time.Since(start).Milliseconds()),
	)

	if err := model.Dump(os.Stdout); err != nil {
		fatal(logger, "Failed to dump model", err, args.Model)
	}

	if args.Importance != "" {
		scores, err := model.FeatureImportance(args.Importance)
		if err != nil {
			fatal(logger, "Failed to compute feature importance", err, args.Model)
		}
		logger.Info("Feature importance",
			slog.String(log.OperationKey, log.OperationImportance),
			slog.String("importance.type", args.Importance),
			slog.Any("importance.scores", scores),
		)
	}

	if args.Plot != "" {
		kind := args.Importance
		if kind == "" {
			kind = xgboost.ImportanceGain
		}
		if err := model.PlotImportance(args.Plot, kind); err != nil {
			fatal(logger, "Failed to plot feature importance", err, args.Model)
		}
		logger.Info("Importance plot written", slog.String("plot.path", args.Plot))
	}

	if args.GraphDir != "" {
		if err := model.RenderTrees(args.GraphDir, "tree", args.GraphFormat); err != nil {
			fatal(logger, "Failed to render trees", err, args.Model)
		}
		logger.Info("Trees rendered",
			slog.String(log.OperationKey, log.OperationRender),
			slog.String("graph.dir", args.GraphDir),
			slog.Int(log.NumTreesKey, model.NumTrees()),
		)
	}
}

func fatal(logger *slog.Logger, msg string, err error, modelPath string) {
	logger.Error(msg, log.ErrAttr(err), slog.String(log.ModelPathKey, modelPath))
	os.Exit(1)
}
