// Package shellquote quotes strings for copy-pasteable shell hints, such
// as the replay lines printed by skm journal show.
package shellquote

import "strings"

// Quote single-quotes s for a POSIX shell. Command payload JSON is full of
// braces and quotes, so everything is quoted unconditionally.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
