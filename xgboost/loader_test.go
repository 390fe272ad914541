package xgboost

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	gberrors "github.com/YuminosukeSato/gbtree/pkg/errors"
)

func writeModelFile(t *testing.T, name string, doc interface{}) string {
	t.Helper()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "model.json", want: FormatJSON},
		{path: "/data/models/booster.json", want: FormatJSON},
		{path: "model.ubj", want: FormatUBJSON},
		{path: "model.bin", wantErr: true},
		{path: "model", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatForPath(tt.path)
			if tt.wantErr {
				if !gberrors.Is(err, gberrors.ErrUnknownFormat) {
					t.Errorf("error = %v, want ErrUnknownFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FormatForPath() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatForPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

// A model written through the JSON codec must decode to the same forest
// as the in-memory document it came from.
func TestLoadModelFromFile(t *testing.T) {
	doc := newModelDoc(newTreeDoc(0), newCategoricalTreeDoc(1))
	path := writeModelFile(t, "model.json", doc)

	fromFile, err := LoadModelFromFile(path)
	if err != nil {
		t.Fatalf("LoadModelFromFile() error = %v", err)
	}
	fromMemory := mustDecode(t, doc)
	if !reflect.DeepEqual(fromFile, fromMemory) {
		t.Error("model loaded from file differs from the in-memory decode")
	}
}

func TestLoadModelFromFileErrors(t *testing.T) {
	t.Run("unknown extension", func(t *testing.T) {
		_, err := LoadModelFromFile(filepath.Join(t.TempDir(), "model.txt"))
		if !gberrors.Is(err, gberrors.ErrUnknownFormat) {
			t.Errorf("error = %v, want ErrUnknownFormat", err)
		}
	})

	t.Run("path traversal", func(t *testing.T) {
		_, err := LoadModelFromFile("../model.json")
		if err == nil || !strings.Contains(err.Error(), "path traversal") {
			t.Errorf("error = %v, want path traversal rejection", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadModelFromFile(filepath.Join(t.TempDir(), "missing.json"))
		if err == nil || !strings.Contains(err.Error(), "failed to read model file") {
			t.Errorf("error = %v", err)
		}
	})
}

func TestLoadModelFromReader(t *testing.T) {
	data, err := json.Marshal(newModelDoc(newTreeDoc(0)))
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}

	m, err := LoadModelFromReader(strings.NewReader(string(data)), FormatJSON)
	if err != nil {
		t.Fatalf("LoadModelFromReader() error = %v", err)
	}
	if m.NumTrees() != 1 {
		t.Errorf("NumTrees() = %d, want 1", m.NumTrees())
	}
	if m.BaseScore() != 0.5 {
		t.Errorf("BaseScore() = %v, want 0.5", m.BaseScore())
	}
}

func TestLoadModelFromReaderErrors(t *testing.T) {
	t.Run("unsupported format", func(t *testing.T) {
		_, err := LoadModelFromReader(strings.NewReader("{}"), Format("xml"))
		if !gberrors.Is(err, gberrors.ErrUnknownFormat) {
			t.Errorf("error = %v, want ErrUnknownFormat", err)
		}
	})

	t.Run("truncated JSON", func(t *testing.T) {
		_, err := LoadModelFromReader(strings.NewReader(`{"learner":`), FormatJSON)
		if err == nil || !strings.Contains(err.Error(), "failed to parse JSON model") {
			t.Errorf("error = %v", err)
		}
	})
}

// Large integers must survive the file round trip exactly; the JSON
// decoder is configured to keep numbers out of float64.
func TestLoadModelFromFileKeepsSentinel(t *testing.T) {
	treeDoc := newTreeDoc(0)
	treeDoc["split_indices"] = []interface{}{2, int64(4294967295), 0}
	path := writeModelFile(t, "model.json", newModelDoc(treeDoc))

	m, err := LoadModelFromFile(path)
	if err != nil {
		t.Fatalf("LoadModelFromFile() error = %v", err)
	}
	tree, _ := m.Tree(0)
	deleted, err := tree.IsDeleted(1)
	if err != nil {
		t.Fatalf("IsDeleted(1) error = %v", err)
	}
	if !deleted {
		t.Error("deleted-node sentinel lost in the file round trip")
	}
}
