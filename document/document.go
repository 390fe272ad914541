// Package document provides typed, path-tracking access to generic JSON-like
// model documents.
//
// A decoded model file arrives as nested map[string]interface{} /
// []interface{} values, produced either by encoding/json (with UseNumber) or
// by a binary JSON decoder. The Object accessor extracts required fields with
// strict kind checking and reports every failure with the full dotted path
// from the document root, e.g. "learner.gradient_booster.model.trees[2].id".
package document

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	gberrors "github.com/YuminosukeSato/gbtree/pkg/errors"
)

// Object wraps one JSON object inside a document together with its path from
// the document root. All accessors treat their field as required: an absent
// key yields MissingFieldError and a value of the wrong kind yields
// TypeMismatchError, both carrying the full path.
type Object struct {
	path   string
	fields map[string]interface{}
}

// Root wraps the top-level value of a decoded document.
// The value must be a JSON object.
func Root(v interface{}) (Object, error) {
	if v == nil {
		return Object{}, gberrors.WithStack(gberrors.ErrNilDocument)
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return Object{}, gberrors.NewTypeMismatchError("document", "object", kindOf(v))
	}
	return Object{fields: m}, nil
}

// Path returns the dotted path of this object from the document root.
// The root object has an empty path.
func (o Object) Path() string {
	return o.path
}

// Has reports whether the given key is present, without any kind checking.
// Used for fields that are optional in the document layout.
func (o Object) Has(key string) bool {
	_, ok := o.fields[key]
	return ok
}

// Object walks the given keys through nested objects and returns the object
// at the end of the chain.
func (o Object) Object(keys ...string) (Object, error) {
	cur := o
	for _, key := range keys {
		v, ok := cur.fields[key]
		if !ok {
			return Object{}, gberrors.NewMissingFieldError(cur.childPath(key))
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			return Object{}, gberrors.NewTypeMismatchError(cur.childPath(key), "object", kindOf(v))
		}
		cur = Object{path: cur.childPath(key), fields: m}
	}
	return cur, nil
}

// Objects returns the array of objects stored under key. Element paths are
// suffixed with their index ("trees[3]").
func (o Object) Objects(key string) ([]Object, error) {
	v, ok := o.fields[key]
	if !ok {
		return nil, gberrors.NewMissingFieldError(o.childPath(key))
	}
	arr, ok := v.([]interface{})
	if !ok {
		return nil, gberrors.NewTypeMismatchError(o.childPath(key), "array", kindOf(v))
	}
	objs := make([]Object, len(arr))
	for i, elem := range arr {
		m, ok := elem.(map[string]interface{})
		if !ok {
			return nil, gberrors.NewTypeMismatchError(o.elemPath(key, i), "object", kindOf(elem))
		}
		objs[i] = Object{path: o.elemPath(key, i), fields: m}
	}
	return objs, nil
}

// Int returns the integer scalar stored under key. Integer-valued floats and
// string-encoded numbers are accepted; XGBoost serializes the scalars under
// learner_model_param as strings ("num_class": "3").
func (o Object) Int(key string) (int, error) {
	v, ok := o.fields[key]
	if !ok {
		return 0, gberrors.NewMissingFieldError(o.childPath(key))
	}
	n, err := asInt(v)
	if err != nil {
		return 0, gberrors.NewTypeMismatchError(o.childPath(key), "integer", kindOf(v))
	}
	if n < math.MinInt || n > math.MaxInt {
		return 0, gberrors.NewTypeMismatchError(o.childPath(key), "integer", "out-of-range number")
	}
	return int(n), nil
}

// Float returns the floating-point scalar stored under key. Integers and
// string-encoded numbers ("5E-1") are accepted.
func (o Object) Float(key string) (float64, error) {
	v, ok := o.fields[key]
	if !ok {
		return 0, gberrors.NewMissingFieldError(o.childPath(key))
	}
	f, err := asFloat(v)
	if err != nil {
		return 0, gberrors.NewTypeMismatchError(o.childPath(key), "number", kindOf(v))
	}
	return f, nil
}

// Bool returns the boolean scalar stored under key. No coercions; 0/1
// integers standing in for booleans travel through SmallUints instead.
func (o Object) Bool(key string) (bool, error) {
	v, ok := o.fields[key]
	if !ok {
		return false, gberrors.NewMissingFieldError(o.childPath(key))
	}
	b, ok := v.(bool)
	if !ok {
		return false, gberrors.NewTypeMismatchError(o.childPath(key), "boolean", kindOf(v))
	}
	return b, nil
}

// String returns the string scalar stored under key. No coercions.
func (o Object) String(key string) (string, error) {
	v, ok := o.fields[key]
	if !ok {
		return "", gberrors.NewMissingFieldError(o.childPath(key))
	}
	s, ok := v.(string)
	if !ok {
		return "", gberrors.NewTypeMismatchError(o.childPath(key), "string", kindOf(v))
	}
	return s, nil
}

// Ints returns the integer sequence stored under key. Elements must be
// numeric; string elements are not accepted.
func (o Object) Ints(key string) ([]int, error) {
	v, ok := o.fields[key]
	if !ok {
		return nil, gberrors.NewMissingFieldError(o.childPath(key))
	}
	switch arr := v.(type) {
	case []interface{}:
		out := make([]int, len(arr))
		for i, elem := range arr {
			n, err := asInt(elem)
			if err != nil {
				return nil, gberrors.NewTypeMismatchError(o.elemPath(key, i), "integer", kindOf(elem))
			}
			if n < math.MinInt || n > math.MaxInt {
				return nil, gberrors.NewTypeMismatchError(o.elemPath(key, i), "integer", "out-of-range number")
			}
			out[i] = int(n)
		}
		return out, nil
	case []int:
		out := make([]int, len(arr))
		copy(out, arr)
		return out, nil
	case []int32:
		out := make([]int, len(arr))
		for i, n := range arr {
			out[i] = int(n)
		}
		return out, nil
	case []int64:
		out := make([]int, len(arr))
		for i, n := range arr {
			out[i] = int(n)
		}
		return out, nil
	default:
		return nil, gberrors.NewTypeMismatchError(o.childPath(key), "array", kindOf(v))
	}
}

// Floats returns the floating-point sequence stored under key.
func (o Object) Floats(key string) ([]float64, error) {
	v, ok := o.fields[key]
	if !ok {
		return nil, gberrors.NewMissingFieldError(o.childPath(key))
	}
	switch arr := v.(type) {
	case []interface{}:
		out := make([]float64, len(arr))
		for i, elem := range arr {
			f, err := asFloat(elem)
			if err != nil {
				return nil, gberrors.NewTypeMismatchError(o.elemPath(key, i), "number", kindOf(elem))
			}
			out[i] = f
		}
		return out, nil
	case []float64:
		out := make([]float64, len(arr))
		copy(out, arr)
		return out, nil
	case []float32:
		out := make([]float64, len(arr))
		for i, f := range arr {
			out[i] = float64(f)
		}
		return out, nil
	default:
		return nil, gberrors.NewTypeMismatchError(o.childPath(key), "array", kindOf(v))
	}
}

// Uint32s returns the unsigned 32-bit sequence stored under key. Elements
// outside [0, 2^32-1] are rejected. The maximum value 4294967295 marks
// deleted nodes in split_indices and must round-trip exactly.
func (o Object) Uint32s(key string) ([]uint32, error) {
	v, ok := o.fields[key]
	if !ok {
		return nil, gberrors.NewMissingFieldError(o.childPath(key))
	}
	switch arr := v.(type) {
	case []interface{}:
		out := make([]uint32, len(arr))
		for i, elem := range arr {
			n, err := asInt(elem)
			if err != nil {
				return nil, gberrors.NewTypeMismatchError(o.elemPath(key, i), "uint32", kindOf(elem))
			}
			if n < 0 || n > math.MaxUint32 {
				return nil, gberrors.NewTypeMismatchError(o.elemPath(key, i), "uint32", "out-of-range number")
			}
			out[i] = uint32(n)
		}
		return out, nil
	case []uint32:
		out := make([]uint32, len(arr))
		copy(out, arr)
		return out, nil
	case []int64:
		out := make([]uint32, len(arr))
		for i, n := range arr {
			if n < 0 || n > math.MaxUint32 {
				return nil, gberrors.NewTypeMismatchError(o.elemPath(key, i), "uint32", "out-of-range number")
			}
			out[i] = uint32(n)
		}
		return out, nil
	case []int32:
		out := make([]uint32, len(arr))
		for i, n := range arr {
			if n < 0 {
				return nil, gberrors.NewTypeMismatchError(o.elemPath(key, i), "uint32", "out-of-range number")
			}
			out[i] = uint32(n)
		}
		return out, nil
	default:
		return nil, gberrors.NewTypeMismatchError(o.childPath(key), "array", kindOf(v))
	}
}

// SmallUints returns the small unsigned integer sequence stored under key.
// Binary JSON decoders deliver uint8-typed arrays as raw byte buffers, so
// both a []byte value and a numeric sequence with elements in [0, 255] are
// accepted. XGBoost stores default_left and split_type this way.
func (o Object) SmallUints(key string) ([]uint8, error) {
	v, ok := o.fields[key]
	if !ok {
		return nil, gberrors.NewMissingFieldError(o.childPath(key))
	}
	switch arr := v.(type) {
	case []byte:
		out := make([]uint8, len(arr))
		copy(out, arr)
		return out, nil
	case []interface{}:
		out := make([]uint8, len(arr))
		for i, elem := range arr {
			n, err := asInt(elem)
			if err != nil {
				return nil, gberrors.NewTypeMismatchError(o.elemPath(key, i), "uint8", kindOf(elem))
			}
			if n < 0 || n > math.MaxUint8 {
				return nil, gberrors.NewTypeMismatchError(o.elemPath(key, i), "uint8", "out-of-range number")
			}
			out[i] = uint8(n)
		}
		return out, nil
	case []int16:
		out := make([]uint8, len(arr))
		for i, n := range arr {
			if n < 0 || n > math.MaxUint8 {
				return nil, gberrors.NewTypeMismatchError(o.elemPath(key, i), "uint8", "out-of-range number")
			}
			out[i] = uint8(n)
		}
		return out, nil
	case []int32:
		out := make([]uint8, len(arr))
		for i, n := range arr {
			if n < 0 || n > math.MaxUint8 {
				return nil, gberrors.NewTypeMismatchError(o.elemPath(key, i), "uint8", "out-of-range number")
			}
			out[i] = uint8(n)
		}
		return out, nil
	case []int64:
		out := make([]uint8, len(arr))
		for i, n := range arr {
			if n < 0 || n > math.MaxUint8 {
				return nil, gberrors.NewTypeMismatchError(o.elemPath(key, i), "uint8", "out-of-range number")
			}
			out[i] = uint8(n)
		}
		return out, nil
	default:
		return nil, gberrors.NewTypeMismatchError(o.childPath(key), "array", kindOf(v))
	}
}

func (o Object) childPath(key string) string {
	if o.path == "" {
		return key
	}
	return o.path + "." + key
}

func (o Object) elemPath(key string, i int) string {
	return o.childPath(key) + "[" + strconv.Itoa(i) + "]"
}

// asInt converts a scalar to int64. Floats must be integer-valued; strings
// must parse as integers. All the integer widths a binary JSON decoder can
// produce are handled.
func asInt(v interface{}) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, err
		}
		return floatToInt(f)
	case string:
		if i, err := strconv.ParseInt(n, 10, 64); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, err
		}
		return floatToInt(f)
	case float64:
		return floatToInt(n)
	case float32:
		return floatToInt(float64(n))
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("uint64 value %d overflows int64", n)
		}
		return int64(n), nil
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, fmt.Errorf("uint value %d overflows int64", n)
		}
		return int64(n), nil
	default:
		return 0, fmt.Errorf("not an integer: %T", v)
	}
}

func floatToInt(f float64) (int64, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("not an integer: %v", f)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("out of int64 range: %v", f)
	}
	return int64(f), nil
}

// asFloat converts a scalar to float64. String-encoded numbers are accepted.
func asFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case json.Number:
		return n.Float64()
	case string:
		return strconv.ParseFloat(n, 64)
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("not a number: %T", v)
	}
}

// kindOf names the JSON kind of a value for error messages.
func kindOf(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]interface{}:
		return "object"
	case []interface{}:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float32, float64,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return "number"
	case []byte:
		return "byte buffer"
	default:
		return fmt.Sprintf("%T", v)
	}
}
