package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Projekt-ERROR/calc/pkg/calc"
	"github.com/Projekt-ERROR/calc/pkg/history"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive read-eval-print loop",
	Long: `Reads one expression per line and prints the result or the error
classification. Session commands: :history, :clear, :quit.`,
	RunE: runRepl,
}

func init() {
	replCmd.Flags().Int("history-limit", history.DefaultLimit, "entries retained by the session history")
}

func runRepl(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("history-limit")
	hist := history.NewMemoryStore(limit)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "calc repl: enter an expression, or :history, :clear, :quit")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case ":quit", ":q", ":exit":
			return nil
		case ":history":
			entries, err := hist.All()
			if err != nil {
				fmt.Fprintf(out, "history unavailable: %v\n", err)
				continue
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "(empty)")
				continue
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s = %s\n", e.Expression, calc.FormatResult(e.Result))
			}
			continue
		case ":clear":
			if err := hist.Clear(); err != nil {
				fmt.Fprintf(out, "history unavailable: %v\n", err)
			}
			continue
		}

		value, err := calc.Calculate(line)
		if err != nil {
			fmt.Fprintf(out, "%s: %s\n", calc.KindOf(err), err)
			continue
		}
		fmt.Fprintln(out, calc.FormatResult(value))
		if _, err := hist.Push(line, value); err != nil {
			fmt.Fprintf(out, "history unavailable: %v\n", err)
		}
	}
}
