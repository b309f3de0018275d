package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Projekt-ERROR/calc/pkg/calc"
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate an infix arithmetic expression",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEval,
}

func init() {
	evalCmd.Flags().Bool("postfix", false, "also print the postfix (RPN) form of the expression")
}

func runEval(cmd *cobra.Command, args []string) error {
	expression := strings.Join(args, " ")

	if showPostfix, _ := cmd.Flags().GetBool("postfix"); showPostfix {
		postfix, err := toPostfix(expression)
		if err != nil {
			return fmt.Errorf("%s: %s", calc.KindOf(err), err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "postfix: %s\n", postfix)
	}

	value, err := calc.Calculate(expression)
	if err != nil {
		return fmt.Errorf("%s: %s", calc.KindOf(err), err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), calc.FormatResult(value))
	return nil
}

// toPostfix runs the front half of the pipeline so --postfix shows the same
// conversion the evaluator consumes.
func toPostfix(expression string) (string, error) {
	if err := calc.ValidateExpression(expression); err != nil {
		return "", err
	}
	if err := calc.ValidateParentheses(expression); err != nil {
		return "", err
	}
	tokens, err := calc.Tokenize(expression)
	if err != nil {
		return "", err
	}
	tokens, err = calc.MergeNegativeNumbers(tokens)
	if err != nil {
		return "", err
	}
	return calc.InfixToPostfix(tokens)
}
