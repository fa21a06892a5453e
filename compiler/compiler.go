// Package compiler implements the Pratt parser that drives the scanner
// and emits bytecode directly into a chunk.Chunk, with no intermediate
// AST. Its structure — a parsingRules table of method expressions keyed by
// token kind, a one-token lookahead, and emit helpers writing straight
// into the chunk — follows the teacher's original token-driven
// compiler.Compiler (compiler/compiler.go), before that file grew a
// second, AST-based compiler for statements and globals; this spec keeps
// only the direct-emission half and extends its opcode coverage with the
// comparison/boolean/negation operators the teacher's newer ASTCompiler
// visitor methods (VisitBinary/VisitUnary) had already wired up for a
// richer grammar.
package compiler

import (
	"strconv"

	"loxvm/chunk"
	"loxvm/scanner"
	"loxvm/token"
	"loxvm/value"
)

// Precedence levels, lowest to highest. Only a subset is exercised by this
// core's grammar (expression := parsePrecedence(PrecAssignment)); the full
// ladder is kept per spec §4.2 so the table stays meaningful if statements,
// assignment, and logical and/or are ever added back.
const (
	PrecNone = iota
	PrecAssignment
	PrecOr
	PrecAnd
	PrecEquality
	PrecComparison
	PrecTerm
	PrecFactor
	PrecUnary
	PrecCall
	PrecPrimary
)

// ParseFn is a prefix or infix parsing action bound to the compiler whose
// turn it is to consume the current token.
type ParseFn func(*Compiler)

type parseRule struct {
	prefix     ParseFn
	infix      ParseFn
	precedence int
}

// Compiler drives a scanner over one source buffer and emits bytecode
// directly into a chunk.Chunk. It owns a one-token lookahead (current,
// previous) and the panicMode/hadError latch described in spec §7.
type Compiler struct {
	scanner *scanner.Scanner
	chunk   *chunk.Chunk

	current  token.Token
	previous token.Token

	hadError  bool
	panicMode bool
	errors    []CompileError
}

var rules map[token.Kind]parseRule

func init() {
	rules = map[token.Kind]parseRule{
		token.LeftParen:    {prefix: (*Compiler).grouping, precedence: PrecNone},
		token.Minus:        {prefix: (*Compiler).unary, infix: (*Compiler).binary, precedence: PrecTerm},
		token.Plus:         {infix: (*Compiler).binary, precedence: PrecTerm},
		token.Slash:        {infix: (*Compiler).binary, precedence: PrecFactor},
		token.Star:         {infix: (*Compiler).binary, precedence: PrecFactor},
		token.Bang:         {prefix: (*Compiler).unary, precedence: PrecNone},
		token.BangEqual:    {infix: (*Compiler).binary, precedence: PrecEquality},
		token.EqualEqual:   {infix: (*Compiler).binary, precedence: PrecEquality},
		token.Greater:      {infix: (*Compiler).binary, precedence: PrecComparison},
		token.GreaterEqual: {infix: (*Compiler).binary, precedence: PrecComparison},
		token.Less:         {infix: (*Compiler).binary, precedence: PrecComparison},
		token.LessEqual:    {infix: (*Compiler).binary, precedence: PrecComparison},
		token.Number:       {prefix: (*Compiler).number, precedence: PrecNone},
		token.Nil:          {prefix: (*Compiler).literal, precedence: PrecNone},
		token.True:         {prefix: (*Compiler).literal, precedence: PrecNone},
		token.False:        {prefix: (*Compiler).literal, precedence: PrecNone},
		token.String:       {prefix: (*Compiler).stringLiteral, precedence: PrecNone},
	}
}

func (c *Compiler) getRule(kind token.Kind) parseRule {
	return rules[kind]
}

// Compile compiles source into ch, a chunk the caller must have created
// empty. It returns whether compilation succeeded and every compile error
// recorded along the way (panicMode collapses a cascade down to the
// first); on failure ch's contents are unspecified and must be discarded.
func Compile(source []byte, ch *chunk.Chunk) (bool, []CompileError) {
	c := &Compiler{scanner: scanner.New(source), chunk: ch}

	c.advance()
	c.expression()
	c.consume(token.Eof, "Expect end of expression.")
	c.emitReturn()

	return !c.hadError, c.errors
}

func (c *Compiler) advance() {
	c.previous = c.current
	for {
		c.current = c.scanner.ScanToken()
		if c.current.Kind != token.Error {
			break
		}
		c.errorAtCurrent(string(c.current.Lexeme))
	}
}

func (c *Compiler) consume(kind token.Kind, message string) {
	if c.current.Kind == kind {
		c.advance()
		return
	}
	c.errorAtCurrent(message)
}

func (c *Compiler) errorAtCurrent(message string) {
	c.errorAt(c.current, message)
}

func (c *Compiler) error(message string) {
	c.errorAt(c.previous, message)
}

func (c *Compiler) errorAt(tok token.Token, message string) {
	if c.panicMode {
		return
	}
	c.panicMode = true
	c.hadError = true

	ce := CompileError{Line: tok.Line, Message: message}
	switch tok.Kind {
	case token.Eof:
		ce.Context = "end"
	case token.Error:
		ce.OmitContext = true
	default:
		ce.Context = string(tok.Lexeme)
	}
	c.errors = append(c.errors, ce)
}

func (c *Compiler) expression() {
	c.parsePrecedence(PrecAssignment)
}

// parsePrecedence advances to the next token, applies its prefix rule, and
// then keeps folding in infix operators whose precedence is at least
// level. Left-associativity comes from each infix rule recursing into its
// right operand one level higher than its own.
func (c *Compiler) parsePrecedence(level int) {
	c.advance()
	prefix := c.getRule(c.previous.Kind).prefix
	if prefix == nil {
		c.error("Expect expression.")
		return
	}
	prefix(c)

	for level <= c.getRule(c.current.Kind).precedence {
		c.advance()
		infix := c.getRule(c.previous.Kind).infix
		infix(c)
	}
}

func (c *Compiler) grouping() {
	c.expression()
	c.consume(token.RightParen, "Expect ')' after expression.")
}

func (c *Compiler) unary() {
	opKind := c.previous.Kind
	c.parsePrecedence(PrecUnary)
	switch opKind {
	case token.Minus:
		c.emitOpCode(chunk.OpNegate)
	case token.Bang:
		c.emitOpCode(chunk.OpNot)
	}
}

func (c *Compiler) binary() {
	opKind := c.previous.Kind
	rule := c.getRule(opKind)
	c.parsePrecedence(rule.precedence + 1)

	switch opKind {
	case token.Plus:
		c.emitOpCode(chunk.OpAdd)
	case token.Minus:
		c.emitOpCode(chunk.OpSubtract)
	case token.Star:
		c.emitOpCode(chunk.OpMultiply)
	case token.Slash:
		c.emitOpCode(chunk.OpDivide)
	case token.EqualEqual:
		c.emitOpCode(chunk.OpEqual)
	case token.BangEqual:
		c.emitOpCode(chunk.OpEqual)
		c.emitOpCode(chunk.OpNot)
	case token.Less:
		c.emitOpCode(chunk.OpLess)
	case token.LessEqual:
		c.emitOpCode(chunk.OpGreater)
		c.emitOpCode(chunk.OpNot)
	case token.Greater:
		c.emitOpCode(chunk.OpGreater)
	case token.GreaterEqual:
		c.emitOpCode(chunk.OpLess)
		c.emitOpCode(chunk.OpNot)
	}
}

func (c *Compiler) number() {
	f, err := strconv.ParseFloat(string(c.previous.Lexeme), 64)
	if err != nil {
		// Unreachable: the scanner only ever hands the compiler a digit
		// run it has already validated. Kept as a defensive default per
		// spec §9's open question rather than panicking on it.
		f = 0.0
	}
	c.emitConstant(value.Number(f))
}

func (c *Compiler) literal() {
	switch c.previous.Kind {
	case token.Nil:
		c.emitOpCode(chunk.OpNil)
	case token.True:
		c.emitOpCode(chunk.OpTrue)
	case token.False:
		c.emitOpCode(chunk.OpFalse)
	}
}

// stringLiteral strips the surrounding quotes from the lexeme and emits the
// interior as a String constant. No interning happens: see Non-goals.
func (c *Compiler) stringLiteral() {
	lexeme := c.previous.Lexeme
	interior := string(lexeme[1 : len(lexeme)-1])
	c.emitConstant(value.String(interior))
}

func (c *Compiler) emitByte(b byte) {
	c.chunk.WriteByte(b, c.previous.Line)
}

func (c *Compiler) emitOpCode(op chunk.OpCode) {
	c.chunk.WriteOpCode(op, c.previous.Line)
}

func (c *Compiler) emitReturn() {
	c.emitOpCode(chunk.OpReturn)
}

// emitConstant adds value to the chunk's constant pool and emits
// OP_CONSTANT <idx>. If the pool would overflow a one-byte index, it
// reports "Too many constants in one chunk." and emits a zero operand so
// the instruction stream stays well-formed (the caller discards the chunk
// on failure regardless).
func (c *Compiler) emitConstant(v value.Value) {
	idx := c.chunk.AddConstant(v)
	c.emitOpCode(chunk.OpConstant)
	if idx >= chunk.MaxConstants {
		c.error("Too many constants in one chunk.")
		c.emitByte(0)
		return
	}
	c.emitByte(byte(idx))
}
