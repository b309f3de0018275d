package calc

import (
	"errors"
	"fmt"
)

// Kind classifies a calculation failure.
type Kind int

const (
	// EmptyExpression is returned for blank or whitespace-only input, or when
	// a full reduction produces no output tokens.
	EmptyExpression Kind = iota
	// InvalidExpression is returned for disallowed characters, an unparseable
	// token stream, or a malformed postfix shape.
	InvalidExpression
	// InvalidNumber is returned when a numeric literal fails finite-number
	// parsing after unary-minus merging.
	InvalidNumber
	// NumberOutOfRange is returned when an operand or result lies outside the
	// safe integer magnitude.
	NumberOutOfRange
	// MismatchedParentheses is returned for unbalanced parentheses, whether
	// detected at validation, conversion, or drain time.
	MismatchedParentheses
	// MissingOperand is returned when an operator finds fewer than two
	// operands on the stack.
	MissingOperand
	// DivisionByZero is returned when the right-hand operand of / is zero.
	DivisionByZero
	// CalculationError is returned when a computed result is not finite, or
	// for an unclassified internal failure.
	CalculationError
)

// String returns the taxonomy name of the kind.
func (k Kind) String() string {
	switch k {
	case EmptyExpression:
		return "EmptyExpression"
	case InvalidExpression:
		return "InvalidExpression"
	case InvalidNumber:
		return "InvalidNumber"
	case NumberOutOfRange:
		return "NumberOutOfRange"
	case MismatchedParentheses:
		return "MismatchedParentheses"
	case MissingOperand:
		return "MissingOperand"
	case DivisionByZero:
		return "DivisionByZero"
	case CalculationError:
		return "CalculationError"
	default:
		return "UnknownError"
	}
}

// Error is a classified calculation failure. Every pipeline stage returns
// *Error values; failures propagate to the caller unchanged, with no silent
// recovery and no best-effort result.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// KindOf extracts the failure kind from an error returned by this package.
// Errors from outside the taxonomy report CalculationError.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return CalculationError
}

// Constructors, one per kind.

// NewEmptyExpressionError reports blank input or an empty reduction.
func NewEmptyExpressionError() *Error {
	return &Error{Kind: EmptyExpression, Message: "expression is empty"}
}

// NewInvalidExpressionError reports a malformed expression.
func NewInvalidExpressionError(msg string) *Error {
	return &Error{Kind: InvalidExpression, Message: msg}
}

// NewInvalidNumberError reports a literal that failed numeric parsing.
func NewInvalidNumberError(literal string) *Error {
	return &Error{Kind: InvalidNumber, Message: fmt.Sprintf("invalid number %q", literal)}
}

// NewNumberOutOfRangeError reports a value outside the safe integer magnitude.
func NewNumberOutOfRangeError(what string) *Error {
	return &Error{Kind: NumberOutOfRange, Message: fmt.Sprintf("%s exceeds the safe number range", what)}
}

// NewMismatchedParenthesesError reports unbalanced parentheses.
func NewMismatchedParenthesesError(msg string) *Error {
	return &Error{Kind: MismatchedParentheses, Message: msg}
}

// NewMissingOperandError reports an operator with too few operands.
func NewMissingOperandError(op string) *Error {
	return &Error{Kind: MissingOperand, Message: fmt.Sprintf("operator %q is missing an operand", op)}
}

// NewDivisionByZeroError reports a division whose right operand is zero.
func NewDivisionByZeroError() *Error {
	return &Error{Kind: DivisionByZero, Message: "division by zero"}
}

// NewCalculationError reports a non-finite result or internal failure.
func NewCalculationError(msg string) *Error {
	return &Error{Kind: CalculationError, Message: msg}
}
