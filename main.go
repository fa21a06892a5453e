package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// Exit codes follow sysexits.h, as named by the CLI contract.
const (
	exitOk           = 0
	exitUsage        = 64
	exitCompileError = 65
	exitRuntimeError = 70
	exitIOError      = 74
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "tools" {
		os.Exit(runTools(os.Args[2:]))
	}

	switch len(os.Args) {
	case 1:
		os.Exit(runRepl())
	case 2:
		os.Exit(runFile(os.Args[1]))
	default:
		fmt.Fprintln(os.Stderr, "Usage: loxvm [path]")
		os.Exit(exitUsage)
	}
}

// runTools hands args to the google/subcommands-based developer command
// group ("tools tokens <file>", "tools disasm <file>"), in the teacher's
// cmd_*.go style (see cmd_tools.go).
func runTools(args []string) int {
	fs := flag.NewFlagSet("tools", flag.ExitOnError)
	commander := subcommands.NewCommander(fs, "tools")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(&tokensCmd{}, "")
	commander.Register(&disasmCmd{}, "")

	fs.Parse(args)
	return int(commander.Execute(context.Background()))
}
