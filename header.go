package tilemap

import (
	"fmt"
	"strings"

	"github.com/bodgit/tilemap/asm"
)

// Header is the fixed table at the start of every map.
type Header struct {
	AttributesLabel  string
	EventsLabel      string
	ScriptsLabel     string
	ConnectionsLabel string
	Song             string
	Index            string
	Location         string
	Visibility       string
	Weather          string
	Type             string
	Unknown          string
	ShowLocation     string
	BattleScene      string
}

// DecodeHeader reads the header labelled label. Any missing field is left
// empty.
func DecodeHeader(cmds asm.Commands, label string) Header {
	v := cmds.LabelValues(label)
	return Header{
		AttributesLabel:  asm.Value(v, 0),
		EventsLabel:      asm.Value(v, 1),
		ScriptsLabel:     asm.Value(v, 2),
		ConnectionsLabel: asm.Value(v, 3),
		Song:             asm.Value(v, 4),
		Index:            asm.Value(v, 5),
		Location:         asm.Value(v, 6),
		Visibility:       asm.Value(v, 7),
		Weather:          asm.Value(v, 8),
		Type:             asm.Value(v, 9),
		Unknown:          asm.Value(v, 10),
		ShowLocation:     asm.Value(v, 11),
		BattleScene:      asm.Value(v, 12),
	}
}

// Encode writes the header as a block labelled label.
func (h *Header) Encode(label string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s::\n", label)
	for _, f := range []struct {
		directive string
		value     string
	}{
		{asm.Byte4, h.AttributesLabel},
		{asm.Byte4, h.EventsLabel},
		{asm.Byte4, h.ScriptsLabel},
		{asm.Byte4, h.ConnectionsLabel},
		{asm.Byte2, h.Song},
		{asm.Byte2, h.Index},
		{asm.Byte, h.Location},
		{asm.Byte, h.Visibility},
		{asm.Byte, h.Weather},
		{asm.Byte, h.Type},
		{asm.Byte2, h.Unknown},
		{asm.Byte, h.ShowLocation},
		{asm.Byte, h.BattleScene},
	} {
		fmt.Fprintf(&b, "\t%s %s\n", f.directive, f.value)
	}
	return b.String()
}
