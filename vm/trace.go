//go:build trace

package vm

import "fmt"

// traceDispatch prints the live stack and the instruction about to be
// executed, mirroring original_source's trace_execution/debug_assertions
// gate. Built only into "trace"-tagged binaries (the teacher's debug bool
// field generalizes here to a build tag, since this core has no notion of a
// running "debug mode" the way the teacher's REPL does).
func traceDispatch(vm *VM) {
	fmt.Print("          ")
	for i := 0; i < vm.sp; i++ {
		fmt.Printf("[ %s ]", vm.stack[i].String())
	}
	fmt.Println()
	line, _ := vm.chunk.DisassembleInstruction(vm.ip)
	fmt.Println(line)
}
