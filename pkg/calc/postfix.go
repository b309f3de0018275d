package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxSafeNumber is the largest magnitude (2^53 - 1) at which float64 still
// represents every integer exactly. Operands and results beyond it fail with
// NumberOutOfRange. The range is checked at conversion, at operand push, and
// on every computed result: each checkpoint guards a different malformed
// input, so none of the three is dropped.
const MaxSafeNumber = float64(1<<53 - 1)

// InfixToPostfix converts a normalized token sequence to postfix notation
// using the shunting-yard algorithm. The returned string holds the postfix
// tokens space-joined, e.g. "3+4*2" becomes "3 4 2 * +".
func InfixToPostfix(tokens []Token) (string, error) {
	var output []string
	var stack []Token

	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNumber:
			if err := checkOperand(tok.Text); err != nil {
				return "", err
			}
			output = append(output, tok.Text)

		case TokenOperator:
			// Equal precedence pops too: all four operators are
			// left-associative, hence >= rather than >.
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != TokenOperator || precedence[top.Text] < precedence[tok.Text] {
					break
				}
				output = append(output, top.Text)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)

		case TokenLParen:
			stack = append(stack, tok)

		case TokenRParen:
			found := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == TokenLParen {
					found = true
					break
				}
				output = append(output, top.Text)
			}
			if !found {
				return "", NewMismatchedParenthesesError("')' without matching '('")
			}

		default:
			return "", NewInvalidExpressionError(fmt.Sprintf("invalid token: %s", tok.Text))
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == TokenLParen || top.Kind == TokenRParen {
			return "", NewMismatchedParenthesesError("unclosed '('")
		}
		output = append(output, top.Text)
	}

	if len(output) == 0 {
		return "", NewEmptyExpressionError()
	}
	return strings.Join(output, " "), nil
}

// EvaluatePostfix executes a space-separated postfix expression on an operand
// stack and returns the single remaining value.
func EvaluatePostfix(postfix string) (float64, error) {
	fields := strings.Fields(postfix)
	if len(fields) == 0 {
		return 0, NewEmptyExpressionError()
	}

	var stack []float64
	for _, tok := range fields {
		if isOperator(tok) {
			if len(stack) < 2 {
				return 0, NewMissingOperandError(tok)
			}
			// b was pushed last, so a is the left operand.
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			var result float64
			switch tok {
			case "+":
				result = a + b
			case "-":
				result = a - b
			case "*":
				result = a * b
			case "/":
				if b == 0 {
					return 0, NewDivisionByZeroError()
				}
				result = a / b
			}

			if math.IsNaN(result) || math.IsInf(result, 0) {
				return 0, NewCalculationError(fmt.Sprintf("result of %g %s %g is not finite", a, tok, b))
			}
			if math.Abs(result) > MaxSafeNumber {
				return 0, NewNumberOutOfRangeError("intermediate result")
			}
			stack = append(stack, result)
			continue
		}

		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, NewNumberOutOfRangeError(fmt.Sprintf("operand %q", tok))
			}
			return 0, NewInvalidExpressionError(fmt.Sprintf("invalid token: %s", tok))
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > MaxSafeNumber {
			return 0, NewNumberOutOfRangeError(fmt.Sprintf("operand %q", tok))
		}
		stack = append(stack, v)
	}

	// Unreachable when the converter produced the postfix, but the evaluator
	// accepts arbitrary postfix strings and must not trust its caller.
	if len(stack) != 1 {
		return 0, NewInvalidExpressionError(fmt.Sprintf("malformed postfix expression: %d values remain", len(stack)))
	}
	return stack[0], nil
}

// checkOperand verifies a literal parses to a finite value within the safe
// number range.
func checkOperand(literal string) error {
	v, err := strconv.ParseFloat(literal, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > MaxSafeNumber {
		return NewNumberOutOfRangeError(fmt.Sprintf("operand %q", literal))
	}
	return nil
}
