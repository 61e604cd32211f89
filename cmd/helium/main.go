// Command helium is the Helium interpreter's CLI: a REPL by default,
// plus subcommands to run a script file, dump its token stream, or
// print its AST.
package main

import (
	"fmt"
	"os"

	"github.com/helium-lang/helium/cmd/helium/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
