package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/slc/internal/diag"
	"github.com/cwbudde/slc/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	lexShowPos  bool
	lexShowType bool
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a source file and print the resulting tokens",
	Long: `Tokenize a source file and print every token the lexer produces.

This command is useful for debugging the lexer without running the rest
of the pipeline.`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexShowType, "show-type", false, "show token type names")
}

func runLex(cmd *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	diags := diag.NewBag()
	l := lexer.New(filename, string(content), lexer.WithDiagnostics(diags))

	for {
		tok := l.Next()
		printToken(tok)
		if tok.Type == lexer.EOF {
			break
		}
	}

	for _, d := range diags.All() {
		fmt.Fprintln(os.Stderr, d)
	}
	if diags.HasErrors() {
		return fmt.Errorf("lexing failed with %d error(s)", diags.ErrorCount())
	}
	return nil
}

func printToken(tok lexer.Token) {
	out := ""
	if lexShowType {
		out = fmt.Sprintf("[%-12s]", tok.Type)
	}
	if tok.Literal == "" {
		out += fmt.Sprintf(" %s", tok.Type)
	} else {
		out += fmt.Sprintf(" %q", tok.Literal)
	}
	if lexShowPos {
		out += fmt.Sprintf(" @%s", tok.Pos)
	}
	fmt.Println(out)
}
