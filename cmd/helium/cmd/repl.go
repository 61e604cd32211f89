package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/helium-lang/helium/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Helium session",
	RunE: func(cmd *cobra.Command, args []string) error {
		repl.New(Version).Start(os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
