package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const labelText = `
First::
	.4byte 1, 2
	.align 2
	.byte 3
Second:
Alias:
	.2byte 4
	.2byte 5
Third:
	.byte 6
`

func TestLabelMacros(t *testing.T) {
	cmds := Parse(labelText)

	assert.Equal(t, Commands{
		{Name: Byte4, Params: []string{"1", "2"}},
		{Name: Align, Params: []string{"2"}},
		{Name: Byte, Params: []string{"3"}},
	}, cmds.LabelMacros("First"))

	assert.Empty(t, cmds.LabelMacros("Missing"))
	assert.Empty(t, cmds.LabelMacros(""))
}

func TestLabelMacrosStacked(t *testing.T) {
	cmds := Parse(labelText)

	want := Commands{
		{Name: Byte2, Params: []string{"4"}},
		{Name: Byte2, Params: []string{"5"}},
	}
	assert.Equal(t, want, cmds.LabelMacros("Second"))
	assert.Equal(t, want, cmds.LabelMacros("Alias"))
}

func TestLabelValues(t *testing.T) {
	cmds := Parse(labelText)

	assert.Equal(t, []string{"1", "2", "3"}, cmds.LabelValues("First"))
	assert.Equal(t, []string{"6"}, cmds.LabelValues("Third"))
	assert.Empty(t, cmds.LabelValues("Missing"))

	assert.Equal(t, "2", Value([]string{"1", "2"}, 1))
	assert.Equal(t, "", Value([]string{"1", "2"}, 2))
}
