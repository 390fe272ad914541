// Package log defines standard attribute keys for model decoding operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in gbtree. Using these standard keys enables better
// log analysis, monitoring, and debugging of model loading workflows.
//
// The attributes are organized into categories:
//   - Model and Operation Context
//   - Model Shape
//   - Performance Metrics
//   - Error Context
//
// These keys follow a hierarchical naming convention (e.g., "model.path",
// "tree.nodes") to enable structured log analysis and filtering.

package log

// Model and Operation Context
// These attributes identify the model document and the operation being performed.
const (
	// ModelPathKey identifies the model file being processed.
	// Examples: "model.json", "/data/models/clf.ubj"
	ModelPathKey = "model.path"

	// ModelFormatKey identifies the serialization format of the model document.
	// Standard values: "json", "ubj"
	ModelFormatKey = "model.format"

	// OperationKey specifies the decoding operation being performed.
	// Standard values: "load", "decode", "render", "importance"
	OperationKey = "decode.operation"

	// ComponentKey identifies which component or package is performing the operation.
	// Examples: "document", "xgboost", "xgbdump"
	ComponentKey = "decode.component"
)

// Model Shape
// These attributes describe the structure of the decoded forest.
const (
	// NumTreesKey indicates the number of trees in the decoded forest.
	NumTreesKey = "model.num_trees"

	// NumFeaturesKey indicates the number of features the model was trained on.
	NumFeaturesKey = "model.num_features"

	// NumClassKey indicates the number of output groups declared by the model.
	NumClassKey = "model.num_class"

	// TreeIDKey identifies an individual tree within the forest.
	TreeIDKey = "tree.id"

	// NodesKey indicates the number of nodes in a tree or forest.
	NodesKey = "tree.nodes"

	// DataSizeKey indicates the size of the model document in bytes.
	// Useful for correlating decode latency with input size.
	DataSizeKey = "model.size_bytes"
)

// Performance Metrics
// These attributes capture timing and resource usage information.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// WorkersKey records the number of workers used for parallel decoding.
	WorkersKey = "perf.workers"
)

// Error Context
// These attributes provide additional context for error messages.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Examples: "MISSING_FIELD", "MALFORMED_TREE"
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "TypeMismatchError", "LengthMismatchError"
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	// Automatically populated by the error logging functions.
	StacktraceKey = "error.stacktrace"

	// SuggestionKey provides helpful suggestions for resolving issues.
	// Examples: "Check the model file extension", "Re-export the model"
	SuggestionKey = "error.suggestion"
)

// Standard attribute value constants for common operations.
// Using these constants ensures consistency across the codebase.
const (
	// Standard decoding operations
	OperationLoad       = "load"
	OperationDecode     = "decode"
	OperationRender     = "render"
	OperationImportance = "importance"

	// Standard error codes
	ErrorMissingField         = "MISSING_FIELD"
	ErrorTypeMismatch         = "TYPE_MISMATCH"
	ErrorLengthMismatch       = "LENGTH_MISMATCH"
	ErrorInvalidSplitType     = "INVALID_SPLIT_TYPE"
	ErrorTreeIDMismatch       = "TREE_ID_MISMATCH"
	ErrorMalformedTree        = "MALFORMED_TREE"
	ErrorNodeIndexOutOfBounds = "NODE_INDEX_OUT_OF_BOUNDS"
	ErrorUnknownFormat        = "UNKNOWN_FORMAT"
)
