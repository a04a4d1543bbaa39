package ui

import "fmt"

// Status symbols prefixed to human-mode result lines.
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
)

// Successf formats a success line with a leading checkmark.
func Successf(format string, args ...any) string {
	return SymbolSuccess + " " + fmt.Sprintf(format, args...)
}

// Errorf formats a failure line with a leading cross.
func Errorf(format string, args ...any) string {
	return SymbolError + " " + fmt.Sprintf(format, args...)
}

// Warningf formats a warning line.
func Warningf(format string, args ...any) string {
	return SymbolWarning + " " + fmt.Sprintf(format, args...)
}

// FilePath renders a file path in the accent style.
func FilePath(path string) string {
	return Accent.Render(path)
}

// Address renders a node address in the accent style.
func Address(addr string) string {
	return Accent.Render(addr)
}

// Hint renders muted follow-up guidance under a result.
func Hint(msg string) string {
	return Muted.Render(msg)
}

// Count renders a parenthesized count with the right noun form, e.g.
// "(3 errors)".
func Count(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("(%d %s)", n, singular)
	}
	return fmt.Sprintf("(%d %s)", n, plural)
}

// Pluralf formats a count with an s-pluralized noun.
func Pluralf(count int, singular string) string {
	noun := singular
	if count != 1 {
		noun += "s"
	}
	return fmt.Sprintf("%d %s", count, noun)
}
