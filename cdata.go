package tilemap

import (
	"strings"
	"unicode"

	"github.com/bodgit/tilemap/asm"
)

const objectGraphicsTable = "gMapObjectGraphicsInfoPointers"

// picField is the position of the pic table within a graphics info struct.
const picField = 14

func isIdentChar(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// cDefinition finds the initializer of the C variable label, returning the
// text following "label[] =".
func cDefinition(text, label string) (string, bool) {
	if label == "" {
		return "", false
	}
	for offset := 0; ; {
		i := strings.Index(text[offset:], label)
		if i == -1 {
			return "", false
		}
		start := offset + i
		end := start + len(label)
		offset = end

		if start > 0 && isIdentChar(text[start-1]) || end < len(text) && isIdentChar(text[end]) {
			continue
		}

		rest := strings.TrimLeftFunc(text[end:], unicode.IsSpace)
		if strings.HasPrefix(rest, "[") {
			j := strings.IndexByte(rest, ']')
			if j == -1 {
				continue
			}
			rest = strings.TrimLeftFunc(rest[j+1:], unicode.IsSpace)
		}
		if !strings.HasPrefix(rest, "=") {
			continue
		}
		return strings.TrimLeftFunc(rest[1:], unicode.IsSpace), true
	}
}

func removeSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// readCArray returns the entries of the brace-enclosed initializer of label,
// with all whitespace removed.
func readCArray(text, label string) []string {
	rest, ok := cDefinition(text, label)
	if !ok || !strings.HasPrefix(rest, "{") {
		return nil
	}
	end := strings.IndexByte(rest, '}')
	if end == -1 {
		return nil
	}
	return strings.Split(removeSpace(rest[1:end]), ",")
}

// readCIncbin returns the path of an INCBIN_xx("path") initializer of label.
func readCIncbin(text, label string) string {
	rest, ok := cDefinition(text, label)
	if !ok || !strings.HasPrefix(rest, "INCBIN_") {
		return ""
	}
	open := strings.Index(rest, "(\"")
	if open == -1 {
		return ""
	}
	rest = rest[open+2:]
	end := strings.IndexByte(rest, '"')
	if end == -1 {
		return ""
	}
	return rest[:end]
}

// innerLabel returns the text between the first pair of parentheses in s.
func innerLabel(s string) string {
	open := strings.IndexByte(s, '(')
	if open == -1 {
		return ""
	}
	s = s[open+1:]
	if end := strings.IndexAny(s, "()"); end != -1 {
		s = s[:end]
	}
	return s
}

// ObjectGraphicsPath returns the root-relative path of the image used by the
// given object sprite constant, or an empty string if it can't be found. The
// sprite is followed through the graphics info pointer table, the info
// struct and its pic table to the INCBIN holding the graphics.
func (p *Project) ObjectGraphicsPath(sprite string) string {
	id := p.ObjectGfxConstants()[sprite]

	pointers := readCArray(p.readTextFile(p.path(p.layout.ObjectGraphicsPointers)), objectGraphicsTable)
	infoLabel := strings.ReplaceAll(asm.Value(pointers, id), "&", "")

	info := readCArray(p.readTextFile(p.path(p.layout.ObjectGraphicsInfo)), infoLabel)
	picLabel := asm.Value(info, picField)

	pics := readCArray(p.readTextFile(p.path(p.layout.ObjectPicTables)), picLabel)
	gfxLabel := innerLabel(asm.Value(pics, 0))

	path := readCIncbin(p.readTextFile(p.path(p.layout.ObjectGraphics)), gfxLabel)
	if path == "" {
		return ""
	}
	return fixGraphicPath(path)
}
