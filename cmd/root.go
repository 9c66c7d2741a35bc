package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/adriang/golox/lexer"
	"github.com/adriang/golox/report"
)

var rootCmd = &cobra.Command{
	Use:   "golox [script]",
	Short: "golox — tokenizer for the Lox scripting language",
	Long: `golox scans Lox source text and prints the resulting token stream.

With a script argument it scans the file; with no argument it starts a REPL.
`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return repl()
		}
		code, err := runFile(args[0], os.Stdout, os.Stderr)
		if err != nil {
			return err
		}
		if code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

// runFile scans one source file, printing tokens to out and diagnostics
// to errOut, and returns the process exit code: 65 when the scan recorded
// at least one error, 0 otherwise.
func runFile(path string, out, errOut io.Writer) (int, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	rep := report.NewReporter(errOut)
	run(string(src), rep, out)
	if rep.HadError() {
		return 65, nil
	}

	return 0, nil
}

func run(src string, rep report.Reporter, out io.Writer) {
	lex := lexer.NewLexer(src, rep)
	for _, tok := range lex.ScanTokens() {
		fmt.Fprintln(out, tok)
	}
}
