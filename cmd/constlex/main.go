// Command constlex tokenizes and repairs const int declaration files
// from the command line, and can serve diagnostics over LSP.
package main

import (
	"os"

	"github.com/conduit-lang/constlex/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
