// Package calc implements an arithmetic expression evaluator. It accepts a
// textual infix expression (digits, + - * /, parentheses, decimals, unary
// minus) and produces a numeric result or a classified error. The pipeline
// runs validation, tokenization, unary-minus normalization, infix-to-postfix
// conversion (shunting yard), and postfix evaluation, in that order.
//
// The package holds no state between calls: every function is pure given its
// input and safe to invoke concurrently.
package calc

// TokenKind classifies a lexical token. Classification happens exactly once,
// during tokenization; later stages switch on the kind rather than re-parsing
// the token text.
type TokenKind int

const (
	TokenNumber   TokenKind = iota // numeric literal, possibly signed after normalization
	TokenOperator                  // one of + - * /
	TokenLParen                    // (
	TokenRParen                    // )
)

// Token is an immutable lexical token. Text holds the raw literal or operator
// symbol; no parser state lives on the token.
type Token struct {
	Kind TokenKind
	Text string
}

// String returns a debug-friendly representation of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "NUMBER"
	case TokenOperator:
		return "OPERATOR"
	case TokenLParen:
		return "LPAREN"
	case TokenRParen:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// precedence ranks the binary operators. * and / outrank + and -; all four
// are left-associative, which the converter realizes by popping while the
// stack top's rank is >= the incoming operator's rank.
var precedence = map[string]int{
	"+": 1,
	"-": 1,
	"*": 2,
	"/": 2,
}

// isOperator reports whether s is one of the four binary operator symbols.
func isOperator(s string) bool {
	_, ok := precedence[s]
	return ok
}
