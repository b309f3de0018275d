package calc

import (
	"reflect"
	"testing"
)

func tok(kind TokenKind, text string) Token {
	return Token{Kind: kind, Text: text}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{"2+3", []Token{tok(TokenNumber, "2"), tok(TokenOperator, "+"), tok(TokenNumber, "3")}},
		{"12.5*(3)", []Token{
			tok(TokenNumber, "12.5"), tok(TokenOperator, "*"),
			tok(TokenLParen, "("), tok(TokenNumber, "3"), tok(TokenRParen, ")"),
		}},
		{" 1 - .5 ", []Token{tok(TokenNumber, "1"), tok(TokenOperator, "-"), tok(TokenNumber, ".5")}},
		{"-5", []Token{tok(TokenOperator, "-"), tok(TokenNumber, "5")}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []string{"", "   ", ".", "2+a"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Tokenize(input)
			if err == nil {
				t.Fatalf("Tokenize(%q) succeeded, want error", input)
			}
			if got := KindOf(err); got != InvalidExpression {
				t.Errorf("kind = %s, want InvalidExpression", got)
			}
		})
	}
}

func TestMergeNegativeNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			"leading minus fuses",
			"-5+3",
			[]Token{tok(TokenNumber, "-5"), tok(TokenOperator, "+"), tok(TokenNumber, "3")},
		},
		{
			"minus after operator fuses",
			"5*-3",
			[]Token{tok(TokenNumber, "5"), tok(TokenOperator, "*"), tok(TokenNumber, "-3")},
		},
		{
			"minus after open paren fuses",
			"(-5)",
			[]Token{tok(TokenLParen, "("), tok(TokenNumber, "-5"), tok(TokenRParen, ")")},
		},
		{
			"binary minus unchanged",
			"5-3",
			[]Token{tok(TokenNumber, "5"), tok(TokenOperator, "-"), tok(TokenNumber, "3")},
		},
		{
			"minus before paren stays binary",
			"-(2+3)",
			[]Token{
				tok(TokenOperator, "-"), tok(TokenLParen, "("), tok(TokenNumber, "2"),
				tok(TokenOperator, "+"), tok(TokenNumber, "3"), tok(TokenRParen, ")"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tt.input, err)
			}
			got, err := MergeNegativeNumbers(tokens)
			if err != nil {
				t.Fatalf("MergeNegativeNumbers error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MergeNegativeNumbers(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
