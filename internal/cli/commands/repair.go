package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conduit-lang/constlex/internal/cli/config"
	"github.com/conduit-lang/constlex/internal/compiler/facade"
	"github.com/conduit-lang/constlex/internal/compiler/lexer"
	"github.com/conduit-lang/constlex/internal/compiler/repair"
)

var repairWrite bool

// NewRepairCommand creates the repair command.
func NewRepairCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repair [file]",
		Short: "Print the minimum-edit repaired token stream for a declaration",
		Long: `Tokenize the given file and print the repaired token sequence
produced by the best-first search, one token per line. Tokens that were
synthesized by an edit are marked with a leading '+'.

Examples:
  constlex repair decl.txt
  constlex repair --write decl.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runRepair,
	}

	cmd.Flags().BoolVar(&repairWrite, "write", false, "Rewrite the file with the repaired source reconstructed from tokens")

	return cmd
}

func runRepair(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	maxEdits := facade.DefaultConfig().MaxEdits
	if err == nil && cfg != nil {
		maxEdits = cfg.Repair.MaxEdits
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	tokens, _ := facade.Tokenize(string(content))
	repaired, edits, _ := facade.Repair(tokens, facade.Config{MaxEdits: maxEdits})
	synthesized := repair.SynthesizedMask(tokens, edits)

	infoColor := color.New(color.FgCyan)
	markerColor := color.New(color.FgMagenta, color.Bold)

	for i, tok := range repaired {
		marker := " "
		if i < len(synthesized) && synthesized[i] {
			marker = "+"
		}
		markerColor.Fprint(cmd.OutOrStdout(), marker)
		infoColor.Fprintf(cmd.OutOrStdout(), " %s %q\n", tok.Kind, tok.Value)
	}

	if repairWrite {
		rebuilt := rebuildSource(repaired)
		if err := os.WriteFile(args[0], []byte(rebuilt), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", args[0], err)
		}
	}

	return nil
}

func rebuildSource(tokens []lexer.Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Value)
	}
	b.WriteByte('\n')
	return b.String()
}
