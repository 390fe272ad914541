package xgboost

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmank88/ubjson"

	gberrors "github.com/YuminosukeSato/gbtree/pkg/errors"
)

// Format selects the wire codec of a model document.
type Format string

const (
	// FormatJSON is the text dump written by save_model("model.json").
	FormatJSON Format = "json"
	// FormatUBJSON is the binary dump written by save_model("model.ubj").
	FormatUBJSON Format = "ubjson"
)

// FormatForPath maps a model file extension to its codec: .json selects
// JSON and .ubj selects UBJSON. Anything else is ErrUnknownFormat.
func FormatForPath(path string) (Format, error) {
	switch ext := filepath.Ext(path); ext {
	case ".json":
		return FormatJSON, nil
	case ".ubj":
		return FormatUBJSON, nil
	default:
		return "", gberrors.Wrapf(gberrors.ErrUnknownFormat, "file extension %q", ext)
	}
}

// LoadDocumentFromFile reads a model file and parses it into the generic
// document form Decode consumes. The codec is chosen by the file
// extension.
func LoadDocumentFromFile(filePath string) (interface{}, error) {
	// Validate file path
	cleanPath := filepath.Clean(filePath)
	if strings.Contains(cleanPath, "..") {
		return nil, fmt.Errorf("path traversal detected in file path: %s", filePath)
	}

	format, err := FormatForPath(cleanPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}
	return parseDocument(data, format)
}

// LoadDocumentFromReader parses a model document from an open stream using
// the given codec.
func LoadDocumentFromReader(r io.Reader, format Format) (interface{}, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read model document: %w", err)
	}
	return parseDocument(data, format)
}

// LoadModelFromFile reads, parses and decodes a model file in one step.
func LoadModelFromFile(filePath string) (*Model, error) {
	doc, err := LoadDocumentFromFile(filePath)
	if err != nil {
		return nil, err
	}
	return Decode(doc)
}

// LoadModelFromReader decodes a model from an open stream using the given
// codec.
func LoadModelFromReader(r io.Reader, format Format) (*Model, error) {
	doc, err := LoadDocumentFromReader(r, format)
	if err != nil {
		return nil, err
	}
	return Decode(doc)
}

// parseDocument unmarshals raw bytes with the selected codec. A codec
// panic on garbage input surfaces as a PanicError, not a crash.
func parseDocument(data []byte, format Format) (doc interface{}, err error) {
	defer gberrors.Recover(&err, "ParseDocument")

	switch format {
	case FormatJSON:
		// UseNumber keeps integers exact instead of going through
		// float64.
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON model: %w", err)
		}
	case FormatUBJSON:
		if err := ubjson.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse UBJSON model: %w", err)
		}
	default:
		return nil, gberrors.Wrapf(gberrors.ErrUnknownFormat, "format %q", string(format))
	}
	return doc, nil
}
