package diagnostics

import (
	"fmt"
	"strings"
)

// FormatCompact renders a single diagnostic as a one-line, tool-friendly
// string: "line:column: message [category]".
func FormatCompact(d Diagnostic) string {
	return fmt.Sprintf("%d:%d: %s [%s]", d.Line, d.Column, d.Message, d.Category)
}

// Format renders the full diagnostic list for terminal display, one
// diagnostic per line, in the order provided (scan errors before repair
// edits, per the facade's ordering guarantee).
func Format(diags List) string {
	if len(diags) == 0 {
		return "no diagnostics"
	}

	var b strings.Builder
	for i, d := range diags {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(FormatCompact(d))
	}
	return b.String()
}
