package sheet

import (
	"math"
	"strconv"
	"strings"

	"github.com/kalexmills/cellsheet/internal/formula"
	"github.com/kalexmills/cellsheet/internal/value"
)

// Cell is either a literal value or a formula's parsed root. There is no
// third, "uninitialized" state: a Cell always holds one or the other, and a
// position absent from a Sheet's map means "no cell", distinct from a cell
// holding Literal(Empty).
type Cell struct {
	isFormula bool
	lit       value.Value
	root      formula.Node
}

// NewLiteralCell wraps v as a literal cell.
func NewLiteralCell(v value.Value) *Cell {
	return &Cell{lit: v}
}

// NewFormulaCell wraps root as a formula cell.
func NewFormulaCell(root formula.Node) *Cell {
	return &Cell{isFormula: true, root: root}
}

// Eval satisfies formula.Evaluator so a Ref node can dereference a cell
// without the formula package knowing anything about Sheet or Cell.
func (c *Cell) Eval(ctx *formula.EvalCtx) value.Value {
	if c.isFormula {
		return c.root.Eval(ctx)
	}
	return c.lit
}

// CloneShifted deep-copies the cell, shifting any non-fixed references by
// (dx, dy). Literal cells are unaffected by the shift.
func (c *Cell) CloneShifted(dx, dy int) *Cell {
	if c.isFormula {
		return &Cell{isFormula: true, root: c.root.CloneShifted(dx, dy)}
	}
	return &Cell{lit: c.lit}
}

// IsFormula reports whether the cell holds a formula rather than a literal.
func (c *Cell) IsFormula() bool { return c.isFormula }

// Payload renders the exact bytes persistence writes for this cell: a
// formula cell renders its root (with the leading '='); a literal cell
// renders its number in canonical decimal form, its text raw, or nothing
// for an empty literal.
func (c *Cell) Payload() string {
	if c.isFormula {
		return c.root.Render(true)
	}
	switch c.lit.Kind() {
	case value.KindNumber:
		return value.FormatNumber(c.lit.Number())
	case value.KindText:
		return c.lit.Text()
	default:
		return ""
	}
}

// buildCell implements the cell-construction rule from raw user text: an
// empty string becomes an empty text literal, a leading '=' is parsed as a
// formula, a string that parses entirely as a finite double becomes a
// number literal, and anything else is kept as text.
func buildCell(raw string) (*Cell, error) {
	if raw == "" {
		return NewLiteralCell(value.Str("")), nil
	}
	if strings.HasPrefix(raw, "=") {
		root, err := formula.Parse(raw)
		if err != nil {
			return nil, err
		}
		return NewFormulaCell(root), nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return NewLiteralCell(value.Num(f)), nil
	}
	return NewLiteralCell(value.Str(raw)), nil
}

// cellFromPayload reconstructs a cell from a persisted payload using the
// same heuristic buildCell uses for raw user text. A zero-length payload
// reconstructs as Literal(Text("")): that is the only zero-length payload
// buildCell can ever actually produce (see DESIGN.md), so this is the
// reading that keeps save/load idempotent for every cell reachable through
// SetCell.
func cellFromPayload(payload string) (*Cell, error) {
	if payload == "" {
		return NewLiteralCell(value.Str("")), nil
	}
	return buildCell(payload)
}
