package calc

import "strconv"

// Calculate evaluates an infix arithmetic expression and returns its value.
// The pipeline runs validation, tokenization, unary-minus normalization,
// postfix conversion, and postfix evaluation, short-circuiting on the first
// failure; the failure's kind reaches the caller unchanged.
func Calculate(expression string) (float64, error) {
	if err := ValidateExpression(expression); err != nil {
		return 0, err
	}
	if err := ValidateParentheses(expression); err != nil {
		return 0, err
	}

	tokens, err := Tokenize(expression)
	if err != nil {
		return 0, err
	}
	tokens, err = MergeNegativeNumbers(tokens)
	if err != nil {
		return 0, err
	}

	postfix, err := InfixToPostfix(tokens)
	if err != nil {
		return 0, err
	}
	return EvaluatePostfix(postfix)
}

// FormatResult renders a value the way the calculator displays it: the
// shortest decimal form that round-trips, with no exponent for integral
// results ("11", not "11.000000").
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
