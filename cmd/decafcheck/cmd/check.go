package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/decafsema/internal/fixture"
	"github.com/cwbudde/decafsema/internal/sema"
)

var checkColor bool

var checkCmd = &cobra.Command{
	Use:   "check [fixture.yaml]",
	Short: "Run semantic analysis on a YAML AST fixture",
	Long: `check loads a YAML fixture describing an already-parsed program (see
internal/fixture), runs the scope builder and type checker over it, and
prints every diagnostic found.

Examples:
  decafcheck check testdata/valid_class.yaml
  decafcheck check --color testdata/override_mismatch.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkColor, "color", false, "colorize diagnostic output")
}

func runCheck(_ *cobra.Command, args []string) error {
	filename := args[0]

	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open fixture %s: %w", filename, err)
	}
	defer f.Close()

	program, err := fixture.Load(f)
	if err != nil {
		return fmt.Errorf("failed to load fixture %s: %w", filename, err)
	}

	ctx, analysisErr := sema.CheckProgram(program)
	if analysisErr == nil {
		fmt.Printf("%s: no semantic errors\n", filename)
		return nil
	}

	analysis, ok := analysisErr.(*sema.AnalysisError)
	if !ok {
		return analysisErr
	}

	for _, d := range analysis.Diagnostics {
		fmt.Fprintln(os.Stderr, ctx.Reporter.Format(d, checkColor))
	}
	return fmt.Errorf("%s: %d semantic error(s)", filename, len(analysis.Diagnostics))
}
