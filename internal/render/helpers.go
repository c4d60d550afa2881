package render

import (
	"fmt"
	"strings"

	"boundedterm/internal/verdict"
)

// dotEscape escapes a string for use in a DOT HTML-like label.
func dotEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}

// dotID creates a safe DOT identifier from a function or block name.
func dotID(name string) string {
	var b strings.Builder
	b.WriteString("n_")
	for _, c := range name {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' {
			b.WriteRune(c)
		} else {
			fmt.Fprintf(&b, "_%04x", c)
		}
	}
	return b.String()
}

// truncLabel shortens a label to maxLen, appending "..." if truncated.
func truncLabel(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// verdictFill returns the node fill color for a verdict under t.
func verdictFill(v verdict.DoesThisTerminate, t Theme) string {
	switch v {
	case verdict.Bounded:
		return t.VerdictBounded
	case verdict.Unbounded:
		return t.VerdictUnbounded
	case verdict.Unknown:
		return t.VerdictUnknown
	default:
		return t.VerdictUnevaluated
	}
}
