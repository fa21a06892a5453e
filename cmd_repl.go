package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"loxvm/interpret"
	"loxvm/vm"
)

// runRepl drives an interactive line-at-a-time session over readline, in
// place of the teacher's bufio.Scanner loop (cmd_repl.go/main.go): history
// and line editing come from the library instead of being hand-rolled, and
// Ctrl-C interrupts the current line rather than the process.
func runRepl() int {
	rl, err := readline.New(">>> ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start REPL: %v\n", err)
		return exitIOError
	}
	defer rl.Close()

	fmt.Println("loxvm REPL. Ctrl-D to exit.")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return exitOk
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Readline error: %v\n", err)
			return exitIOError
		}
		if line == "" {
			continue
		}

		result, rerr := interpret.Interpret(context.Background(), []byte(line), os.Stdout)
		switch result {
		case interpret.Ok:
		case interpret.CompileError:
			fmt.Fprintln(os.Stderr, rerr)
		case interpret.RuntimeError:
			re := rerr.(*vm.RuntimeError)
			fmt.Fprintln(os.Stderr, re.Message)
			fmt.Fprintf(os.Stderr, "[line %d] in script\n", re.Line)
		}
	}
}
