package formula

import "errors"

var (
	// ErrParseFormula is wrapped by every syntax error the tokenizer or
	// parser reports.
	ErrParseFormula = errors.New("formula parse error")
	// ErrBuilderStack is returned when the builder's operand stack does not
	// have the shape an apply/root call requires.
	ErrBuilderStack = errors.New("builder stack error")
	// ErrUnsupported is returned by builder hooks that exist to satisfy the
	// stack-machine contract but have no implementation in this engine
	// (ranges, function calls).
	ErrUnsupported = errors.New("unsupported formula operation")
)
