package calc

import "strconv"

// MergeNegativeNumbers rewrites the token sequence so a '-' in unary position
// is fused into the following number as a signed literal. A '-' is unary when
// it is the first token or immediately follows an operator or '('. Any other
// '-' is binary subtraction and passes through untouched. This single rule
// distinguishes "5-3" from "-5+3" and "5*-3" without teaching the downstream
// shunting yard about unary operators.
func MergeNegativeNumbers(tokens []Token) ([]Token, error) {
	merged := make([]Token, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.Kind == TokenOperator && tok.Text == "-" &&
			unaryPosition(tokens, i) &&
			i+1 < len(tokens) && tokens[i+1].Kind == TokenNumber {
			literal := "-" + tokens[i+1].Text
			// The tokenizer's grammar should make this unfailable; guarded anyway.
			if _, err := strconv.ParseFloat(literal, 64); err != nil {
				return nil, NewInvalidNumberError(literal)
			}
			merged = append(merged, Token{Kind: TokenNumber, Text: literal})
			i++
			continue
		}
		merged = append(merged, tok)
	}

	return merged, nil
}

// unaryPosition reports whether a '-' at index i negates the next operand
// rather than subtracting two operands.
func unaryPosition(tokens []Token, i int) bool {
	if i == 0 {
		return true
	}
	prev := tokens[i-1]
	return prev.Kind == TokenOperator || prev.Kind == TokenLParen
}
