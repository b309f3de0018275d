package calc

import (
	"fmt"
	"strings"
)

// ValidateExpression rejects input the pipeline should never see: empty or
// whitespace-only text, and any character outside the calculator's alphabet
// of digits, + - * /, '.', parentheses, and spaces.
func ValidateExpression(text string) error {
	if strings.TrimSpace(text) == "" {
		return NewEmptyExpressionError()
	}
	for i := 0; i < len(text); i++ {
		if !isAllowed(text[i]) {
			return NewInvalidExpressionError(fmt.Sprintf("disallowed character %q at position %d", text[i], i))
		}
	}
	return nil
}

// ValidateParentheses scans left to right with a signed counter: +1 per '(',
// -1 per ')'. A negative counter means a close appeared before its open; a
// nonzero counter at end of scan means unclosed opens. The input is never
// mutated, so repeated calls yield the same verdict.
func ValidateParentheses(text string) error {
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return NewMismatchedParenthesesError(fmt.Sprintf("unexpected ')' at position %d", i))
			}
		}
	}
	if depth != 0 {
		return NewMismatchedParenthesesError(fmt.Sprintf("%d unclosed '('", depth))
	}
	return nil
}

func isAllowed(ch byte) bool {
	if ch >= '0' && ch <= '9' {
		return true
	}
	switch ch {
	case '+', '-', '*', '/', '.', '(', ')', ' ':
		return true
	}
	return false
}
