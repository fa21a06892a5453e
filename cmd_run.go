package main

import (
	"context"
	"fmt"
	"os"

	"loxvm/interpret"
	"loxvm/vm"
)

// runFile reads path, interprets it, and returns the process exit code.
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read file: %v\n", err)
		return exitIOError
	}

	result, err := interpret.Interpret(context.Background(), source, os.Stdout)
	switch result {
	case interpret.Ok:
		return exitOk
	case interpret.CompileError:
		fmt.Fprintln(os.Stderr, err)
		return exitCompileError
	case interpret.RuntimeError:
		rerr := err.(*vm.RuntimeError)
		fmt.Fprintln(os.Stderr, rerr.Message)
		fmt.Fprintf(os.Stderr, "[line %d] in script\n", rerr.Line)
		return exitRuntimeError
	default:
		fmt.Fprintf(os.Stderr, "internal error: unknown interpret result %v\n", result)
		return exitRuntimeError
	}
}
