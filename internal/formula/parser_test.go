package formula

import (
	"testing"

	"github.com/kalexmills/cellsheet/internal/position"
	"github.com/kalexmills/cellsheet/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(v float64) Node { return NumLit{Value: v} }
func txt(s string) Node { return TextLit{Value: s} }
func ref(pos string, colFixed, rowFixed bool) Node {
	p, err := position.Parse(pos)
	if err != nil {
		panic(err)
	}
	return Ref{Target: p, ColFixed: colFixed, RowFixed: rowFixed}
}
func neg(x Node) Node         { return UnaryExpr{X: x, Op: TokenSub} }
func bin(x Node, op Token, y Node) Node { return BinaryExpr{X: x, Op: op, Y: y} }

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Node
		wantErr bool
	}{
		{name: "literal", input: "=42", want: num(42)},
		{name: "addition", input: "=1+2", want: bin(num(1), TokenAdd, num(2))},
		{name: "precedence", input: "=1+2*3", want: bin(num(1), TokenAdd, bin(num(2), TokenMul, num(3)))},
		{name: "power right assoc", input: "=2^3^2", want: bin(num(2), TokenPow, bin(num(3), TokenPow, num(2)))},
		{name: "unary below power", input: "=-A1^2", want: neg(bin(ref("A1", false, false), TokenPow, num(2)))},
		{name: "double unary", input: "=-123*-456", want: bin(neg(num(123)), TokenMul, neg(num(456)))},
		{name: "string literal", input: `="hi"`, want: txt("hi")},
		{name: "escaped quote", input: `="a""b"`, want: txt(`a"b`)},
		{name: "fixed reference", input: "=$A$1", want: ref("A1", true, true)},
		{name: "comparison", input: "=A1<=B2", want: bin(ref("A1", false, false), TokenLe, ref("B2", false, false))},
		{name: "parens", input: "=(1+2)*3", want: bin(bin(num(1), TokenAdd, num(2)), TokenMul, num(3))},
		{name: "whitespace tolerant", input: "= -A1 ^ 2 - A2 / 2   ", want: bin(neg(bin(ref("A1", false, false), TokenPow, num(2))), TokenSub, bin(ref("A2", false, false), TokenDiv, num(2)))},
		{name: "scientific notation", input: "=5e+1", want: num(50)},
		{name: "missing operand", input: "=1+", wantErr: true},
		{name: "unbalanced paren", input: "=(1+2", wantErr: true},
		{name: "bad char", input: "=1&2", wantErr: true},
		{name: "no leading equals", input: "1+2", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.EqualValues(t, tt.want, got)
		})
	}
}

func TestRenderRoundTrip(t *testing.T) {
	inputs := []string{
		"=42",
		"=1+2*3",
		`="a""b"`,
		"=$A$1",
		"=(-A1)",
		"=A1<>B2",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			root, err := Parse(in)
			require.NoError(t, err)
			rendered := root.Render(true)
			reparsed, err := Parse(rendered)
			require.NoError(t, err)
			assert.EqualValues(t, root, reparsed, "re-parsing %q produced a different tree", rendered)
		})
	}
}

type fixedResolver map[position.Position]value.Value

func (f fixedResolver) Resolve(p position.Position) (Evaluator, bool) {
	v, ok := f[p]
	if !ok {
		return nil, false
	}
	return literalEvaluator{v}, true
}

type literalEvaluator struct{ v value.Value }

func (l literalEvaluator) Eval(ctx *EvalCtx) value.Value { return l.v }

func TestEvalWithResolver(t *testing.T) {
	root, err := Parse("=A1+B1*2")
	require.NoError(t, err)
	resolver := fixedResolver{
		position.New(1, 1): value.Num(3),
		position.New(2, 1): value.Num(4),
	}
	ctx := NewEvalCtx(resolver, 0)
	got := root.Eval(ctx)
	assert.True(t, value.Equal(value.Num(11), got))
}

func TestEvalMissingRefIsEmpty(t *testing.T) {
	root, err := Parse("=A1+1")
	require.NoError(t, err)
	ctx := NewEvalCtx(fixedResolver{}, 0)
	got := root.Eval(ctx)
	assert.True(t, value.Equal(value.Empty(), got))
}

func TestCloneShiftedHonorsFixedAxes(t *testing.T) {
	root, err := Parse("=A1+$B$2")
	require.NoError(t, err)
	shifted := root.CloneShifted(2, 3)
	want := bin(ref("C4", false, false), TokenAdd, ref("B2", true, true))
	assert.EqualValues(t, want, shifted)
}
