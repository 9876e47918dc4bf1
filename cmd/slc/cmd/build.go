package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/slc/internal/diag"
	"github.com/cwbudde/slc/internal/emit"
	"github.com/cwbudde/slc/internal/lexer"
	"github.com/cwbudde/slc/internal/parser"
	"github.com/cwbudde/slc/internal/semantic/passes"
	"github.com/cwbudde/slc/internal/types"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Run the full pipeline and print the lowered module",
	Long: `build runs a source file through lexing, parsing, the two
resolution passes and the emitter, printing the resulting module.

If any stage reports an error, build prints every diagnostic to stderr
and exits non-zero instead of printing a module, per the no-lowering-
on-error rule.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	diags := diag.NewBag()

	l := lexer.New(filename, string(content), lexer.WithDiagnostics(diags))
	p := parser.New(l, diags)
	decls := p.ParseProgram()

	interner := types.NewInterner()
	ctx := passes.NewPassContext(interner, diags)
	passes.Run(ctx, decls)

	module := emit.EmitProgram(ctx, decls, filename)

	for _, d := range diags.All() {
		fmt.Fprintln(os.Stderr, d)
	}
	if diags.HasErrors() {
		return fmt.Errorf("build failed with %d error(s)", diags.ErrorCount())
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "built %s: %d function(s), %d struct(s)\n",
			filename, len(module.Functions), len(module.Structs))
	}
	module.Dump(os.Stdout)
	return nil
}
