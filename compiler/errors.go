package compiler

import "fmt"

// CompileError is one reported compile-time diagnostic, in the
// "[line L] Error[ at <context>]: <message>" form of spec §7. It plays the
// role the teacher split across compiler.SemanticError/DeveloperError and
// parser.SyntaxError{Line, Column, Message}; line/column narrows to just
// the source line here, since tokens in this core carry no column.
type CompileError struct {
	Line int
	// Context is the token's lexeme, or "end" at EOF. Ignored when
	// OmitContext is set (an Error token already carries its own message
	// as the payload, so no " at <context>" clause is appended).
	Context     string
	OmitContext bool
	Message     string
}

func (e CompileError) Error() string {
	if e.OmitContext {
		return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] Error at %s: %s", e.Line, e.Context, e.Message)
}
