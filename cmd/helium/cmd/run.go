package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/helium-lang/helium/evaluator"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Helium script file or inline expression",
	Long: `Execute a Helium program from a file or an inline expression.

Examples:
  helium run script.he
  helium run -e "print(1 + 2);"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from a file")
}

func runScript(_ *cobra.Command, args []string) error {
	var src string

	switch {
	case evalExpr != "":
		src = evalExpr
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		src = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	ev := evaluator.New()
	_, errs := evaluator.Run(ev, src)
	if len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err)
		}
		return fmt.Errorf("execution failed with %d error(s)", len(errs))
	}

	return nil
}
