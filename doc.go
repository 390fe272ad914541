// Package gbtree provides decoding and inspection of gradient-boosted tree
// models saved by XGBoost, designed for backend services and tooling that
// need to look inside a trained model without a Python runtime.
//
// gbtree reads the JSON and UBJSON dump formats produced by XGBoost's
// save_model, validates the tree arrays and exposes the forest through typed
// accessors, deterministic text rendering and Graphviz visualization.
//
// # Features
//
// - Format Detection: Loads .json and .ubj model files through one entry point
// - Strict Validation: Typed errors for missing fields, length and shape mismatches
// - Categorical Splits: Decodes the compressed per-node category runs
// - Deterministic Dumps: Stack-based rendering with a stable node order
// - CPU-parallel Decoding: Optional concurrent per-tree decoding for large forests
//
// # Installation
//
// Install gbtree using go get:
//
//	go get github.com/YuminosukeSato/gbtree
//
// # Quick Start
//
// Here's a simple example of dumping a model:
//
//	package main
//
//	import (
//	    "log"
//	    "os"
//
//	    "github.com/YuminosukeSato/gbtree/xgboost"
//	)
//
//	func main() {
//	    model, err := xgboost.LoadModelFromFile("model.json")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    if err := model.Dump(os.Stdout); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - xgboost: Model loading, forest decoding, rendering and importance
//   - document: Schema-checked navigation of parsed model documents
//   - pkg/errors: Typed decode errors with stack traces
//   - pkg/log: Structured logging helpers and attribute keys
//   - core/parallel: Parallel processing utilities
//
// # Command Line
//
// The xgbdump command prints a model's trees to stdout:
//
//	xgbdump --model model.json
//	xgbdump --model model.ubj --parallel --graphdir ./trees --graphformat svg
//
// # Contributing
//
// Contributions are welcome! Please see our GitHub repository:
// https://github.com/YuminosukeSato/gbtree
//
// # License
//
// gbtree is released under the MIT License.
package gbtree
