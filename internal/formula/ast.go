// Package formula implements the expression AST that backs a formula cell:
// parsing, evaluation against a sheet, shifting references for copy/paste,
// and rendering back to textual form.
package formula

import (
	"github.com/kalexmills/cellsheet/internal/position"
	"github.com/kalexmills/cellsheet/internal/value"
)

// DefaultCycleBound is the recommended ceiling on reference dereferences
// performed while evaluating a single top-level cell, used when a Sheet
// doesn't configure its own.
const DefaultCycleBound = 500

// Evaluator is satisfied by anything a Ref can resolve to and evaluate -
// in practice, a sheet cell. Keeping this interface in the formula package
// (rather than depending on the sheet package) is what lets a Ref
// dereference a cell without the AST importing the container that holds it.
type Evaluator interface {
	Eval(ctx *EvalCtx) value.Value
}

// Resolver looks up the cell living at a position, if any.
type Resolver interface {
	Resolve(p position.Position) (Evaluator, bool)
}

// EvalCtx threads the sheet being evaluated against and the single mutable
// cycle counter for the current top-level GetValue call through every
// nested Eval. It is never shared across separate top-level calls.
type EvalCtx struct {
	Resolver Resolver
	Counter  *int
	Bound    int
}

// NewEvalCtx starts a fresh evaluation context with its counter at zero. A
// non-positive bound falls back to DefaultCycleBound.
func NewEvalCtx(r Resolver, bound int) *EvalCtx {
	if bound <= 0 {
		bound = DefaultCycleBound
	}
	counter := 0
	return &EvalCtx{Resolver: r, Counter: &counter, Bound: bound}
}

// Node is an expression AST node: a value literal, a reference, or an
// operator applied to child nodes.
type Node interface {
	Evaluator
	// CloneShifted returns a deep copy of the node with every non-fixed
	// reference's column and row shifted by dx and dy.
	CloneShifted(dx, dy int) Node
	// Render writes the node back to its textual form. top is true only
	// for the outermost call, which alone gets the leading '='.
	Render(top bool) string
}

// NumLit is a numeric literal.
type NumLit struct{ Value float64 }

// TextLit is a quoted string literal.
type TextLit struct{ Value string }

// Ref is a reference to another cell. ColFixed/RowFixed mark the
// corresponding axis as pinned against CloneShifted (the "$" prefix).
type Ref struct {
	Target   position.Position
	ColFixed bool
	RowFixed bool
}

// UnaryExpr is unary negation applied to X.
type UnaryExpr struct {
	X  Node
	Op Token // always TokenSub
}

// BinaryExpr is Op applied to X and Y, in that order.
type BinaryExpr struct {
	X  Node
	Op Token
	Y  Node
}
