// Package interpret wires the scanner (via compiler.Compile), the Pratt
// compiler, and the VM into the single entry point the CLI and REPL call.
// It mirrors the shape of the teacher's cmd_run.go/cmd_repl.go pipelines
// (read source -> lex/parse -> compile -> interpret -> report), collapsed
// into one function since the direct-emission compiler needs no separate
// AST stage.
package interpret

import (
	"context"
	"fmt"
	"io"

	"loxvm/chunk"
	"loxvm/compiler"
	"loxvm/vm"
)

// Result classifies how an Interpret call finished.
type Result int

const (
	Ok Result = iota
	CompileError
	RuntimeError
)

func (r Result) String() string {
	switch r {
	case Ok:
		return "Ok"
	case CompileError:
		return "CompileError"
	case RuntimeError:
		return "RuntimeError"
	default:
		return "Unknown"
	}
}

// Interpret compiles source and, on success, runs it. out receives the
// program's standard output (the OP_RETURN print); compile and runtime
// diagnostics are returned as err rather than written anywhere, so the
// caller (CLI or REPL) controls exactly how and where they're reported.
//
// A fresh compiler.Compiler and vm.VM are constructed per call; no state
// survives between invocations, matching §6's "constructed per invocation"
// contract so REPL lines never leak stack or chunk state into each other.
func Interpret(ctx context.Context, source []byte, out io.Writer) (Result, error) {
	ch := chunk.New()
	ok, errs := compiler.Compile(source, ch)
	if !ok {
		return CompileError, firstCompileError(errs)
	}

	machine := vm.New()
	machine.Stdout = out
	if err := machine.Run(ctx, ch); err != nil {
		return RuntimeError, err
	}
	return Ok, nil
}

// firstCompileError reports the first recorded compile error: panicMode
// collapses a syntax-error cascade down to one diagnostic, so there is
// never more than one to choose from in practice, but Compile's contract
// returns the full slice.
func firstCompileError(errs []compiler.CompileError) error {
	if len(errs) == 0 {
		return fmt.Errorf("compilation failed with no recorded error")
	}
	return errs[0]
}
