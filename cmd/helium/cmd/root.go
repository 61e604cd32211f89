package cmd

import (
	"github.com/spf13/cobra"
)

// Version is stamped at build time via -ldflags; defaulted here for
// `go run` and local builds.
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:     "helium",
	Short:   "Helium interpreter",
	Long:    `helium is a tree-walking interpreter for the Helium scripting language.`,
	Version: Version,
}

// Execute runs the root command, dispatching to whichever subcommand
// (or none, which falls through to replCmd) the user invoked.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.RunE = replCmd.RunE
}
