package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/slc/internal/ast"
	"github.com/cwbudde/slc/internal/diag"
	"github.com/cwbudde/slc/internal/lexer"
	"github.com/cwbudde/slc/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and dump its declaration tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	diags := diag.NewBag()
	l := lexer.New(filename, string(content), lexer.WithDiagnostics(diags))
	p := parser.New(l, diags)
	decls := p.ParseProgram()

	for _, d := range diags.All() {
		fmt.Fprintln(os.Stderr, d)
	}
	if diags.HasErrors() {
		return fmt.Errorf("parsing failed with %d error(s)", diags.ErrorCount())
	}

	for _, d := range decls {
		dumpDecl(d, 0)
	}
	return nil
}

func indentOf(n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += "  "
	}
	return out
}

func dumpDecl(d ast.Decl, indent int) {
	pre := indentOf(indent)
	switch n := d.(type) {
	case *ast.FunctionDecl:
		fmt.Printf("%sFunc %s (%d params)\n", pre, n.Name, len(n.Params))
	case *ast.ExtFunctionDecl:
		fmt.Printf("%sExtFunc %s -> %s\n", pre, n.Name, n.ExternalName)
	case *ast.GlobalVarDecl:
		fmt.Printf("%sGlobalVar %s\n", pre, n.Name)
	case *ast.ClassDecl:
		fmt.Printf("%sClass %s (%d fields, %d methods)\n", pre, n.Name, len(n.Fields), len(n.Methods))
	default:
		fmt.Printf("%s%T\n", pre, d)
	}
}
