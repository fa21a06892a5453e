package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"loxvm/chunk"
	"loxvm/compiler"
	"loxvm/scanner"
	"loxvm/token"
)

// tokensCmd prints every token the scanner yields for a source file, one
// per line, grounded on the teacher's cmd_emit_bytecode.go's read-file/
// report-errors shape.
type tokensCmd struct{}

func (*tokensCmd) Name() string     { return "tokens" }
func (*tokensCmd) Synopsis() string { return "Print the token stream for a source file" }
func (*tokensCmd) Usage() string    { return "tools tokens <file>\n" }
func (*tokensCmd) SetFlags(f *flag.FlagSet) {}

func (*tokensCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "File not provided")
		return subcommands.ExitUsageError
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read file: %v\n", err)
		return subcommands.ExitFailure
	}

	s := scanner.New(source)
	for {
		tok := s.ScanToken()
		fmt.Println(tok.String())
		if tok.Kind == token.Eof {
			break
		}
	}
	return subcommands.ExitSuccess
}

// disasmCmd compiles a source file and prints the disassembly of its
// chunk, grounded on the teacher's emitBytecodeCmd/DiassembleBytecode.
type disasmCmd struct{}

func (*disasmCmd) Name() string     { return "disasm" }
func (*disasmCmd) Synopsis() string { return "Compile a source file and print its disassembly" }
func (*disasmCmd) Usage() string    { return "tools disasm <file>\n" }
func (*disasmCmd) SetFlags(f *flag.FlagSet) {}

func (*disasmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "File not provided")
		return subcommands.ExitUsageError
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read file: %v\n", err)
		return subcommands.ExitFailure
	}

	ch := chunk.New()
	ok, errs := compiler.Compile(source, ch)
	if !ok {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
		return subcommands.ExitFailure
	}

	fmt.Print(ch.Disassemble(args[0]))
	return subcommands.ExitSuccess
}
