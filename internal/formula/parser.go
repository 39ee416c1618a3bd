package formula

import "fmt"

// Parse parses a formula string (including its leading '=') into an
// expression tree, driving a fresh Builder through a recursive-descent
// pass over the tokenizer's output. Precedence, low to high: comparison,
// additive, multiplicative, unary minus, power, primary.
func Parse(str string) (Node, error) {
	toks, err := tokenize(str)
	if err != nil {
		return nil, err
	}
	b := NewBuilder()
	rest, err := parseComparison(b, toks)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: unconsumed input after expression", ErrParseFormula)
	}
	return b.Root()
}

var comparisonOps = map[Token]bool{
	TokenEq: true, TokenNe: true, TokenLt: true, TokenLe: true, TokenGt: true, TokenGe: true,
}
var additiveOps = map[Token]bool{TokenAdd: true, TokenSub: true}
var multiplicativeOps = map[Token]bool{TokenMul: true, TokenDiv: true}

// parseLeftAssoc implements a single left-associative precedence level: it
// parses one operand via next, then repeatedly consumes an operator in ops
// followed by another operand, applying the operator via the builder after
// each one (so a < b < c parses as (a < b) < c).
func parseLeftAssoc(b *Builder, toks []tok, ops map[Token]bool, next func(*Builder, []tok) ([]tok, error)) ([]tok, error) {
	rest, err := next(b, toks)
	if err != nil {
		return nil, err
	}
	for len(rest) > 0 && rest[0].kind == tkOp && ops[rest[0].op] {
		op := rest[0].op
		rest, err = next(b, rest[1:])
		if err != nil {
			return nil, err
		}
		if err := b.Apply(op); err != nil {
			return nil, err
		}
	}
	return rest, nil
}

func parseComparison(b *Builder, toks []tok) ([]tok, error) {
	return parseLeftAssoc(b, toks, comparisonOps, parseAdditive)
}

func parseAdditive(b *Builder, toks []tok) ([]tok, error) {
	return parseLeftAssoc(b, toks, additiveOps, parseMultiplicative)
}

func parseMultiplicative(b *Builder, toks []tok) ([]tok, error) {
	return parseLeftAssoc(b, toks, multiplicativeOps, parseUnary)
}

// parseUnary handles a leading run of unary minuses; each wraps the
// remaining expression (parsed at power precedence or above) in a negation.
func parseUnary(b *Builder, toks []tok) ([]tok, error) {
	if len(toks) > 0 && toks[0].kind == tkOp && toks[0].op == TokenSub {
		rest, err := parseUnary(b, toks[1:])
		if err != nil {
			return nil, err
		}
		if err := b.ApplyNeg(); err != nil {
			return nil, err
		}
		return rest, nil
	}
	return parsePower(b, toks)
}

// parsePower handles right-associative exponentiation: a ^ b ^ c is
// a ^ (b ^ c).
func parsePower(b *Builder, toks []tok) ([]tok, error) {
	rest, err := parsePrimary(b, toks)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 && rest[0].kind == tkOp && rest[0].op == TokenPow {
		rest, err = parsePower(b, rest[1:])
		if err != nil {
			return nil, err
		}
		if err := b.ApplyPow(); err != nil {
			return nil, err
		}
	}
	return rest, nil
}

func parsePrimary(b *Builder, toks []tok) ([]tok, error) {
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: expression ended unexpectedly", ErrParseFormula)
	}
	t := toks[0]
	switch t.kind {
	case tkNumber:
		b.PushNumber(t.num)
		return toks[1:], nil
	case tkText:
		b.PushText(t.text)
		return toks[1:], nil
	case tkRef:
		if err := b.PushRef(t.text); err != nil {
			return nil, err
		}
		return toks[1:], nil
	case tkLParen:
		rest, err := parseComparison(b, toks[1:])
		if err != nil {
			return nil, err
		}
		if len(rest) == 0 || rest[0].kind != tkRParen {
			return nil, fmt.Errorf("%w: expected closing ')'", ErrParseFormula)
		}
		return rest[1:], nil
	default:
		return nil, fmt.Errorf("%w: unexpected token in expression", ErrParseFormula)
	}
}
