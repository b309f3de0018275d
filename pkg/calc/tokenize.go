package calc

import "fmt"

// Tokenize splits a validated expression into number and operator tokens.
// Numbers are maximal runs of digits with at most one '.'; everything else is
// a single-character operator or parenthesis token. Characters outside the
// alphabet are rejected here too, so the tokenizer stands on its own even
// though ValidateExpression normally runs first.
func Tokenize(text string) ([]Token, error) {
	var tokens []Token

	for pos := 0; pos < len(text); {
		ch := text[pos]
		switch {
		case ch == ' ':
			pos++

		case (ch >= '0' && ch <= '9') || ch == '.':
			start := pos
			seenDot := false
			seenDigit := false
			for pos < len(text) {
				c := text[pos]
				if c >= '0' && c <= '9' {
					seenDigit = true
					pos++
					continue
				}
				if c == '.' && !seenDot {
					seenDot = true
					pos++
					continue
				}
				break
			}
			if !seenDigit {
				return nil, NewInvalidExpressionError(fmt.Sprintf("stray '.' at position %d", start))
			}
			tokens = append(tokens, Token{Kind: TokenNumber, Text: text[start:pos]})

		case ch == '(':
			tokens = append(tokens, Token{Kind: TokenLParen, Text: "("})
			pos++

		case ch == ')':
			tokens = append(tokens, Token{Kind: TokenRParen, Text: ")"})
			pos++

		case isOperator(string(ch)):
			tokens = append(tokens, Token{Kind: TokenOperator, Text: string(ch)})
			pos++

		default:
			return nil, NewInvalidExpressionError(fmt.Sprintf("unexpected character %q at position %d", ch, pos))
		}
	}

	if len(tokens) == 0 {
		return nil, NewInvalidExpressionError("expression produced no tokens")
	}
	return tokens, nil
}
