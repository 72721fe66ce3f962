package asm

import (
	"strconv"
	"strings"
)

// Quoted returns the text between the first pair of double quotes in s, as
// found in an .incbin reference.
func Quoted(s string) (string, bool) {
	start := strings.IndexByte(s, '"')
	if start == -1 {
		return "", false
	}
	end := strings.IndexByte(s[start+1:], '"')
	if end == -1 {
		return "", false
	}
	return s[start+1 : start+1+end], true
}

// Int parses a numeric literal, honouring 0x, 0b and 0 prefixes. Anything
// that isn't a plain number is 0.
func Int(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return int(n)
	}
	if n, err := strconv.ParseUint(s, 0, 64); err == nil {
		return int(n)
	}
	return 0
}

// Constant is a symbol assigned by an .equiv or .set directive.
type Constant struct {
	Name  string
	Value string
}

// Constants returns every symbol defined with the given directive, in order.
func (c Commands) Constants(directive string) []Constant {
	var constants []Constant
	for _, cmd := range c {
		if cmd.Name == directive {
			constants = append(constants, Constant{
				Name:  cmd.Param(0),
				Value: cmd.Param(1),
			})
		}
	}
	return constants
}
