package formula

import (
	"fmt"

	"github.com/kalexmills/cellsheet/internal/position"
)

// Builder is the stack machine a parser drives to assemble a Node tree: push
// operand nodes, then apply an operator to pop its operands and push the
// combined node. The parser and the builder are decoupled on purpose, so a
// different front end (e.g. one with range or function-call syntax) could
// drive the same builder.
type Builder struct {
	stack []Node
}

// NewBuilder returns an empty Builder ready to accept push/apply calls.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) push(n Node) {
	b.stack = append(b.stack, n)
}

func (b *Builder) pop() (Node, error) {
	if len(b.stack) == 0 {
		return nil, fmt.Errorf("%w: pop on empty stack", ErrBuilderStack)
	}
	n := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return n, nil
}

// PushNumber pushes a numeric literal node.
func (b *Builder) PushNumber(v float64) { b.push(NumLit{Value: v}) }

// PushText pushes a string literal node.
func (b *Builder) PushText(s string) { b.push(TextLit{Value: s}) }

// PushRef parses raw (e.g. "$A$1") as a reference and pushes it.
func (b *Builder) PushRef(raw string) error {
	ref, err := parseRef(raw)
	if err != nil {
		return err
	}
	b.push(ref)
	return nil
}

// PushRange and Call exist to satisfy the stack-machine contract a richer
// front end might drive; this engine has no range or user-defined-function
// support, so both are unsupported no-ops.
func (b *Builder) PushRange(raw string) error {
	return fmt.Errorf("%w: ranges", ErrUnsupported)
}

func (b *Builder) Call(name string, argc int) error {
	return fmt.Errorf("%w: function calls", ErrUnsupported)
}

// ApplyNeg pops one operand and pushes its negation.
func (b *Builder) ApplyNeg() error {
	x, err := b.pop()
	if err != nil {
		return err
	}
	b.push(UnaryExpr{X: x, Op: TokenSub})
	return nil
}

func (b *Builder) applyBinary(op Token) error {
	if len(b.stack) < 2 {
		return fmt.Errorf("%w: %s needs two operands", ErrBuilderStack, op)
	}
	y, _ := b.pop()
	x, _ := b.pop()
	b.push(BinaryExpr{X: x, Op: op, Y: y})
	return nil
}

func (b *Builder) ApplyAdd() error { return b.applyBinary(TokenAdd) }
func (b *Builder) ApplySub() error { return b.applyBinary(TokenSub) }
func (b *Builder) ApplyMul() error { return b.applyBinary(TokenMul) }
func (b *Builder) ApplyDiv() error { return b.applyBinary(TokenDiv) }
func (b *Builder) ApplyPow() error { return b.applyBinary(TokenPow) }
func (b *Builder) ApplyEq() error  { return b.applyBinary(TokenEq) }
func (b *Builder) ApplyNe() error  { return b.applyBinary(TokenNe) }
func (b *Builder) ApplyLt() error  { return b.applyBinary(TokenLt) }
func (b *Builder) ApplyLe() error  { return b.applyBinary(TokenLe) }
func (b *Builder) ApplyGt() error  { return b.applyBinary(TokenGt) }
func (b *Builder) ApplyGe() error  { return b.applyBinary(TokenGe) }

// Apply dispatches to the ApplyX method matching op's glyph; it exists so a
// precedence-climbing parser can drive the builder generically instead of
// switching on the operator itself.
func (b *Builder) Apply(op Token) error {
	switch op {
	case TokenAdd:
		return b.ApplyAdd()
	case TokenSub:
		return b.ApplySub()
	case TokenMul:
		return b.ApplyMul()
	case TokenDiv:
		return b.ApplyDiv()
	case TokenPow:
		return b.ApplyPow()
	case TokenEq:
		return b.ApplyEq()
	case TokenNe:
		return b.ApplyNe()
	case TokenLt:
		return b.ApplyLt()
	case TokenLe:
		return b.ApplyLe()
	case TokenGt:
		return b.ApplyGt()
	case TokenGe:
		return b.ApplyGe()
	}
	return fmt.Errorf("%w: unknown operator %q", ErrBuilderStack, op)
}

// Root returns the finished tree. The stack must hold exactly one node; zero
// or more than one is always a parser bug or malformed input.
func (b *Builder) Root() (Node, error) {
	switch len(b.stack) {
	case 0:
		return nil, fmt.Errorf("%w: nothing was ever pushed", ErrBuilderStack)
	case 1:
		return b.stack[0], nil
	default:
		return nil, fmt.Errorf("%w: %d operands left unconsumed", ErrBuilderStack, len(b.stack))
	}
}

// parseRef parses a reference token's raw text (e.g. "$A$1", "b12") into a
// Ref, honoring the optional '$' pin on each axis.
func parseRef(raw string) (Ref, error) {
	i := 0
	colFixed := false
	if i < len(raw) && raw[i] == '$' {
		colFixed = true
		i++
	}
	start := i
	for i < len(raw) && isAlpha(raw[i]) {
		i++
	}
	if i == start {
		return Ref{}, fmt.Errorf("%w: reference %q has no column letters", ErrParseFormula, raw)
	}
	colStr := raw[start:i]

	rowFixed := false
	if i < len(raw) && raw[i] == '$' {
		rowFixed = true
		i++
	}
	start2 := i
	for i < len(raw) && isDigit(raw[i]) {
		i++
	}
	if i == start2 {
		return Ref{}, fmt.Errorf("%w: reference %q has no row digits", ErrParseFormula, raw)
	}
	if i != len(raw) {
		return Ref{}, fmt.Errorf("%w: trailing characters in reference %q", ErrParseFormula, raw)
	}

	col, err := position.DecodeColumn(colStr)
	if err != nil {
		return Ref{}, fmt.Errorf("%w: bad column in reference %q", ErrParseFormula, raw)
	}
	row := 0
	for _, ch := range raw[start2:i] {
		row = row*10 + int(ch-'0')
	}
	if row < 1 {
		return Ref{}, fmt.Errorf("%w: row must be >= 1 in reference %q", ErrParseFormula, raw)
	}
	return Ref{Target: position.New(col, row), ColFixed: colFixed, RowFixed: rowFixed}, nil
}
