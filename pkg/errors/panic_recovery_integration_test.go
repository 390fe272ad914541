package errors

import (
	"errors"
	"strings"
	"testing"
)

// mockPanicFunction is a helper function that panics with a given value
func mockPanicFunction(panicValue interface{}) func() error {
	return func() error {
		panic(panicValue)
	}
}

// TestPanicRecoveryIntegration tests the complete panic recovery flow
// from a simulated decode operation that panics
func TestPanicRecoveryIntegration(t *testing.T) {
	testCases := []struct {
		name       string
		panicValue interface{}
		// wantPrefix is checked with HasPrefix because Go appends its own
		// hint to the nil-panic message.
		wantPrefix    string
		shouldContain []string
	}{
		{
			name:          "String panic recovery",
			panicValue:    "unexpected nil pointer",
			wantPrefix:    "panic in ModelDecode: unexpected nil pointer",
			shouldContain: []string{"panic in ModelDecode", "unexpected nil pointer"},
		},
		{
			name:          "Error panic recovery",
			panicValue:    errors.New("slice bounds out of range"),
			wantPrefix:    "panic in ModelDecode: slice bounds out of range",
			shouldContain: []string{"panic in ModelDecode", "slice bounds out of range"},
		},
		{
			name:          "Integer panic recovery",
			panicValue:    42,
			wantPrefix:    "panic in ModelDecode: 42",
			shouldContain: []string{"panic in ModelDecode", "42"},
		},
		{
			name:          "Nil panic recovery",
			panicValue:    nil,
			wantPrefix:    "panic in ModelDecode: panic called with nil argument",
			shouldContain: []string{"panic in ModelDecode", "panic called with nil argument"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Simulate a decode operation that panics
			err := SafeExecute("ModelDecode", mockPanicFunction(tc.panicValue))

			if err == nil {
				t.Fatal("SafeExecute should have produced an error")
			}

			var panicErr *PanicError
			if !errors.As(err, &panicErr) {
				t.Fatalf("got %T (%v), want *PanicError", err, err)
			}

			errMsg := err.Error()
			if !strings.HasPrefix(errMsg, tc.wantPrefix) {
				t.Errorf("Error() = %q, want prefix %q", errMsg, tc.wantPrefix)
			}

			for _, expected := range tc.shouldContain {
				if !strings.Contains(errMsg, expected) {
					t.Errorf("Error() = %q, want substring %q", errMsg, expected)
				}
			}

			if panicErr.StackTrace == "" {
				t.Error("StackTrace is empty")
			}

			if panicErr.Operation != "ModelDecode" {
				t.Errorf("Operation = %q, want %q", panicErr.Operation, "ModelDecode")
			}
		})
	}
}

// TestPanicRecoveryWithDeferRecover tests the defer-based recovery pattern
func TestPanicRecoveryWithDeferRecover(t *testing.T) {
	simulateDecode := func() (err error) {
		defer Recover(&err, "Decoder.Decode")

		// Simulate some successful operations first
		_ = "document accessor ready"

		// Then panic occurs
		panic("index out of range")
	}

	err := simulateDecode()

	if err == nil {
		t.Fatal("Recover should have produced an error")
	}

	var panicErr *PanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("got %T, want *PanicError", err)
	}

	if want := "panic in Decoder.Decode: index out of range"; panicErr.Error() != want {
		t.Errorf("Error() = %q, want %q", panicErr.Error(), want)
	}
}

// TestPanicRecoveryWithExistingError tests panic recovery when function already has an error
func TestPanicRecoveryWithExistingError(t *testing.T) {
	originalErr := NewTypeMismatchError("learner.gradient_booster.model.trees", "array", "string")

	simulateDecode := func() (err error) {
		defer Recover(&err, "DecodeTree")

		// Set an error first
		err = originalErr

		// Then panic occurs
		panic("unexpected panic after error")
	}

	err := simulateDecode()

	if err == nil {
		t.Fatal("Recover should have produced an error")
	}

	// The wrap keeps both the panic and the original decode failure.
	errMsg := err.Error()
	for _, expected := range []string{
		"panic in DecodeTree",
		"unexpected panic after error",
		"original error",
		"expected array, got string",
	} {
		if !strings.Contains(errMsg, expected) {
			t.Errorf("Error() = %q, want substring %q", errMsg, expected)
		}
	}

	if !errors.Is(err, originalErr) {
		t.Error("errors.Is lost the original error through the panic wrap")
	}
}

// TestPanicRecoveryChaining tests chaining multiple operations with panic recovery
func TestPanicRecoveryChaining(t *testing.T) {
	// Simulate a chain: load -> decode -> render
	load := func() error {
		return SafeExecute("Load", func() error {
			return nil // Success
		})
	}

	decode := func() error {
		return SafeExecute("Decode", func() error {
			panic("malformed document")
		})
	}

	render := func() error {
		return SafeExecute("Render", func() error {
			return nil // This won't be reached due to decode panic
		})
	}

	// Run the pipeline
	if err := load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	err := decode()
	if err == nil {
		t.Fatal("decode should fail due to panic")
	}

	var panicErr *PanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("got %T, want *PanicError from decode", err)
	}

	if panicErr.Operation != "Decode" {
		t.Errorf("Operation = %q, want %q", panicErr.Operation, "Decode")
	}

	// Render should still work if called independently
	if err := render(); err != nil {
		t.Fatalf("render failed: %v", err)
	}
}

// TestNoPanicScenario tests that normal operations are not affected by panic recovery
func TestNoPanicScenario(t *testing.T) {
	normalOperation := func() (err error) {
		defer Recover(&err, "NormalOperation")

		// Normal operations without panic
		result := 2 + 2
		if result != 4 {
			return errors.New("math is broken")
		}

		return nil
	}

	if err := normalOperation(); err != nil {
		t.Fatalf("normal operation failed: %v", err)
	}
}

// TestPanicRecoveryPerformance benchmarks the performance overhead
func BenchmarkPanicRecoveryOverhead(b *testing.B) {
	b.Run("WithRecover", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			func() (err error) {
				defer Recover(&err, "BenchOperation")
				// Minimal work
				_ = i * 2
				return nil
			}()
		}
	})

	b.Run("WithoutRecover", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			func() error {
				// Same minimal work, no recovery
				_ = i * 2
				return nil
			}()
		}
	})
}
