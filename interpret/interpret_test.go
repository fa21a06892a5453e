package interpret

import (
	"context"
	"strings"
	"testing"

	"loxvm/vm"
)

func interpret(t *testing.T, src string) (string, Result, error) {
	t.Helper()
	var out strings.Builder
	result, err := Interpret(context.Background(), []byte(src), &out)
	return strings.TrimSuffix(out.String(), "\n"), result, err
}

func TestEndToEndScenarios(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"addition", "1 + 2", "3"},
		{"mixed arithmetic", "-(1 + 2) * 3 - -4", "-5"},
		{"comparisons and equality", "!(5 - 4 > 3 * 2 == !nil)", "true"},
		{"grouping", "(-1 + 2) * 3 - -4", "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, result, err := interpret(t, tt.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != Ok {
				t.Fatalf("got result %v, want Ok", result)
			}
			if out != tt.want {
				t.Errorf("got %q, want %q", out, tt.want)
			}
		})
	}
}

func TestEndToEndRuntimeErrorOnTypeMismatch(t *testing.T) {
	_, result, err := interpret(t, "1 + true")
	if result != RuntimeError {
		t.Fatalf("got result %v, want RuntimeError", result)
	}
	rerr, ok := err.(*vm.RuntimeError)
	if !ok {
		t.Fatalf("expected *vm.RuntimeError, got %T", err)
	}
	if rerr.Message != "Operands must be numbers." || rerr.Line != 1 {
		t.Errorf("got %q at line %d", rerr.Message, rerr.Line)
	}
}

func TestEndToEndCompileErrorOnUnclosedGroup(t *testing.T) {
	_, result, err := interpret(t, "(1 + 2")
	if result != CompileError {
		t.Fatalf("got result %v, want CompileError", result)
	}
	want := "[line 1] Error at end: Expect ')' after expression."
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestInterpretConstructsFreshStatePerCall(t *testing.T) {
	// A runtime error on one call must not leak stack/chunk state into the
	// next call against a fresh source, matching the REPL's per-line reuse.
	if _, result, _ := interpret(t, "1 + true"); result != RuntimeError {
		t.Fatal("setup call should have errored")
	}
	out, result, err := interpret(t, "1 + 2")
	if err != nil || result != Ok {
		t.Fatalf("got result %v err %v, want Ok", result, err)
	}
	if out != "3" {
		t.Errorf("got %q, want 3", out)
	}
}
