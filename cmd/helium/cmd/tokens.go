package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/helium-lang/helium/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream for a Helium script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		l := lexer.New(string(content))
		for {
			tok := l.NextToken()
			fmt.Printf("%-12s %q (line %d, col %d)\n", tok.Type, tok.Literal, tok.Line, tok.Column)
			if tok.Type == lexer.EOF {
				break
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
