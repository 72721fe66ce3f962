/*
Package asm implements a tokenizer for the GNU assembler style macro text used
by the map, tileset and event sources of a decompiled GBA project.

The text is never assembled. Each statement is reduced to a Command holding
the directive or macro name and its comma-separated parameters exactly as
written, and labels are emitted as ".label" Commands so that blocks can be
recovered later by name.
*/
package asm

import "strings"

// Directive names with special meaning to the label index and to callers.
const (
	Label = ".label"
	Align = ".align"
	Byte  = ".byte"
	Byte2 = ".2byte"
	Byte4 = ".4byte"
	Equiv = ".equiv"
	Set   = ".set"
)

// Command is a single parsed statement.
type Command struct {
	Name   string
	Params []string
}

// Param returns the i'th parameter or an empty string if there isn't one.
func (c Command) Param(i int) string {
	if i < 0 || i >= len(c.Params) {
		return ""
	}
	return c.Params[i]
}

// IsLabel reports whether the command is a label definition.
func (c Command) IsLabel() bool {
	return c.Name == Label
}

// Commands is an ordered list of parsed statements.
type Commands []Command

// String formats the command as a single statement, parameters separated by
// ", ".
func (c Command) String() string {
	if len(c.Params) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Params, ", ")
}
