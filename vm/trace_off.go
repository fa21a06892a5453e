//go:build !trace

package vm

// traceDispatch is a no-op outside "trace"-tagged builds.
func traceDispatch(vm *VM) {}
