package checktree

import "strings"

const indentUnit = "  "

// Indent prefixes every line of s with two spaces. Lines end at "\n", "\r"
// or "\r\n"; a trailing terminator does not start a new line and no trailing
// newline is added. The empty string has no lines and indents to itself.
func Indent(s string) string {
	lines := splitLines(s)
	for i, l := range lines {
		lines[i] = indentUnit + l
	}
	return strings.Join(lines, "\n")
}

func splitLines(s string) []string {
	var lines []string
	for len(s) > 0 {
		i := strings.IndexAny(s, "\r\n")
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i])
		if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			i++
		}
		s = s[i+1:]
	}
	return lines
}
