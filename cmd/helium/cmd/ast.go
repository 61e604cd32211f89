package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/helium-lang/helium/lexer"
	"github.com/helium-lang/helium/parser"
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Parse a Helium script and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		p := parser.New(lexer.New(string(content)))
		program := p.ParseProgram()

		if len(p.Errors()) > 0 {
			for _, err := range p.Errors() {
				fmt.Fprintln(os.Stderr, err)
			}
			return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
		}

		for _, stmt := range program.Statements {
			fmt.Println(stmt.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(astCmd)
}
