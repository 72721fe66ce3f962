package asm

import (
	"strings"
	"unicode"
)

// stripComment removes any "@", "//" or "/* */" comment that isn't inside a
// quoted string.
func stripComment(line string) string {
	var b strings.Builder
	inQuotes := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case inQuotes:
		case c == '@':
			return b.String()
		case c == '/' && i+1 < len(line) && line[i+1] == '/':
			return b.String()
		case c == '/' && i+1 < len(line) && line[i+1] == '*':
			end := strings.Index(line[i+2:], "*/")
			if end == -1 {
				return b.String()
			}
			i += end + 3
			b.WriteByte(' ')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// splitOutsideQuotes splits s on every sep that isn't inside a quoted string.
func splitOutsideQuotes(s string, sep byte) []string {
	var parts []string
	inQuotes := false
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuotes = !inQuotes
		case sep:
			if !inQuotes {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

func isSymbolChar(c byte) bool {
	return c == '_' || c == '.' || c == '$' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// splitLabel returns the label defined at the start of a statement, if any,
// and the remainder following the colon(s).
func splitLabel(s string) (string, string, bool) {
	i := 0
	for i < len(s) && isSymbolChar(s[i]) {
		i++
	}
	if i == 0 || i >= len(s) || s[i] != ':' {
		return "", s, false
	}
	rest := strings.TrimLeft(s[i:], ":")
	return s[:i], strings.TrimSpace(rest), true
}

func parseStatement(s string) Command {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i == -1 {
		return Command{Name: s}
	}

	cmd := Command{Name: s[:i]}
	rest := strings.TrimSpace(s[i:])
	if rest == "" {
		return cmd
	}
	for _, p := range splitOutsideQuotes(rest, ',') {
		cmd.Params = append(cmd.Params, strings.TrimSpace(p))
	}
	return cmd
}

// Parse tokenizes text into an ordered list of Commands. Labels become
// ".label" Commands, everything else is kept as written with no attempt to
// interpret the directive.
func Parse(text string) Commands {
	var cmds Commands

	// Generated tables can make for very long lines so there is no cap
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(stripComment(line))
		if line == "" {
			continue
		}
		for _, stmt := range splitOutsideQuotes(line, ';') {
			stmt = strings.TrimSpace(stmt)
			for {
				label, rest, ok := splitLabel(stmt)
				if !ok {
					break
				}
				cmds = append(cmds, Command{Name: Label, Params: []string{label}})
				stmt = rest
			}
			if stmt == "" {
				continue
			}
			cmds = append(cmds, parseStatement(stmt))
		}
	}

	return cmds
}
