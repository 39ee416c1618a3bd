package formula

import "github.com/kalexmills/cellsheet/internal/value"

func (n NumLit) Eval(ctx *EvalCtx) value.Value { return value.Num(n.Value) }

func (n TextLit) Eval(ctx *EvalCtx) value.Value { return value.Str(n.Value) }

// Eval increments the shared cycle counter before doing anything else, so
// that a chain of references - cyclic or not - is bounded the same way
// regardless of which cell started the chain. Exceeding the bound and
// dereferencing an absent cell both silently resolve to Empty.
func (r Ref) Eval(ctx *EvalCtx) value.Value {
	*ctx.Counter++
	if *ctx.Counter > ctx.Bound {
		return value.Empty()
	}
	target, ok := ctx.Resolver.Resolve(r.Target)
	if !ok {
		return value.Empty()
	}
	return target.Eval(ctx)
}

func (u UnaryExpr) Eval(ctx *EvalCtx) value.Value {
	return value.Neg(u.X.Eval(ctx))
}

func (b BinaryExpr) Eval(ctx *EvalCtx) value.Value {
	x := b.X.Eval(ctx)
	y := b.Y.Eval(ctx)
	switch b.Op {
	case TokenAdd:
		return value.Add(x, y)
	case TokenSub:
		return value.Sub(x, y)
	case TokenMul:
		return value.Mul(x, y)
	case TokenDiv:
		return value.Div(x, y)
	case TokenPow:
		return value.Pow(x, y)
	case TokenEq:
		return value.Eq(x, y)
	case TokenNe:
		return value.Ne(x, y)
	case TokenLt:
		return value.Lt(x, y)
	case TokenLe:
		return value.Le(x, y)
	case TokenGt:
		return value.Gt(x, y)
	case TokenGe:
		return value.Ge(x, y)
	}
	return value.Empty()
}
