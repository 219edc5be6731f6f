package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conduit-lang/constlex/internal/cli/config"
	"github.com/conduit-lang/constlex/internal/cli/ui"
	"github.com/conduit-lang/constlex/internal/compiler/facade"
	"github.com/conduit-lang/constlex/internal/compiler/lexer"
)

var (
	analyzeJSON   bool
	analyzeTokens bool
)

// keywordCandidates are the reserved words a near-miss identifier is
// checked against when suggesting a correction.
var keywordCandidates = []string{"const", "constexpr", "int"}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Tokenize and repair a const int declaration file",
		Long: `Tokenize the given file, attempt the minimum-edit repair walk
needed to make it a valid const int declaration, and print diagnostics
for every scan error and every edit applied.

Examples:
  constlex analyze decl.txt
  constlex analyze --tokens decl.txt
  constlex analyze --json decl.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit diagnostics as JSON")
	cmd.Flags().BoolVar(&analyzeTokens, "tokens", false, "Print the scanned token table before diagnostics")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = nil
	}

	maxEdits := facade.DefaultConfig().MaxEdits
	useJSON := analyzeJSON
	noColor := false
	if cfg != nil {
		maxEdits = cfg.Repair.MaxEdits
		useJSON = useJSON || cfg.Output.Format == "json"
		noColor = !cfg.Output.Color
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), ui.UnreadableFileError(args[0], err, noColor))
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	analysis := facade.Analyze(string(content), facade.Config{MaxEdits: maxEdits})

	if useJSON {
		out, err := analysis.Diagnostics.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to render diagnostics: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	if analyzeTokens {
		printTokenTable(cmd, analysis.Tokens, noColor)
	}
	printDiagnosticsText(cmd, args[0], analysis, noColor)
	return nil
}

// printTokenTable renders the scanned tokens per the tabular contract:
// (line, start_column, end_column, kind_name, value).
func printTokenTable(cmd *cobra.Command, tokens []lexer.Token, noColor bool) {
	table := ui.NewTable(cmd.OutOrStdout(), []string{"LINE", "START", "END", "KIND", "VALUE"}, &ui.TableOptions{NoColor: noColor})
	for _, tok := range tokens {
		start := tok.Column
		end := start + len([]rune(tok.Value)) - 1
		table.AddRow(
			strconv.Itoa(tok.Line),
			strconv.Itoa(start),
			strconv.Itoa(end),
			tok.Kind.String(),
			tok.Value,
		)
	}
	table.Render()
}

func printDiagnosticsText(cmd *cobra.Command, path string, analysis facade.Analysis, noColor bool) {
	if len(analysis.Diagnostics) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, ui.FormatSuccess("no issues found", noColor))
		return
	}

	errorColor := color.New(color.FgRed)
	infoColor := color.New(color.FgYellow)
	if noColor {
		errorColor.DisableColor()
		infoColor.DisableColor()
	}

	for _, d := range analysis.Diagnostics {
		c := infoColor
		if d.Category == "scan" {
			c = errorColor
		}
		c.Fprintf(cmd.OutOrStdout(), "%s:%d:%d: %s\n", path, d.Line, d.Column, d.Message)
	}

	suggestKeywordTypos(cmd, path, analysis.Tokens, noColor)
}

// suggestKeywordTypos flags identifiers that are a close edit distance
// from a reserved word, in case the user meant the keyword.
func suggestKeywordTypos(cmd *cobra.Command, path string, tokens []lexer.Token, noColor bool) {
	for _, tok := range tokens {
		if tok.Kind != lexer.VARIABLE {
			continue
		}
		match := ui.FindBestMatch(tok.Value, keywordCandidates, nil)
		if match == "" || match == tok.Value {
			continue
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.Warning(
			fmt.Sprintf("%s:%d:%d: '%s' looks like a misspelled keyword", path, tok.Line, tok.Column, tok.Value),
			[]string{match},
			noColor,
		))
	}
}
