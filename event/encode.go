package event

import (
	"strings"

	"github.com/bodgit/tilemap/asm"
)

// EncodeObject writes an object event using the long layout. The id is the
// 1-based position of the event and the radius is always packed into one
// byte.
func EncodeObject(index int, e *Event) asm.Command {
	radius := e.Int(RadiusX)&0xf + (e.Int(RadiusY)&0xf)<<4
	x := uint16(e.Int(X))
	y := uint16(e.Int(Y))

	return asm.Command{
		Name: ObjectMacro,
		Params: []string{
			itoa(index + 1),
			e.Get(Sprite),
			e.Get(Replacement),
			itoa(int(x & 0xff)),
			itoa(int(x >> 8 & 0xff)),
			itoa(int(y & 0xff)),
			itoa(int(y >> 8 & 0xff)),
			e.Get(Elevation),
			e.Get(Behavior),
			itoa(radius),
			"0",
			e.Get(Property),
			"0",
			e.Get(SightRadius),
			"0",
			e.Get(ScriptLabel),
			e.Get(EventFlag),
			"0",
			"0",
		},
	}
}

// EncodeWarp writes a warp event.
func EncodeWarp(e *Event) asm.Command {
	return asm.Command{
		Name: WarpMacro,
		Params: []string{
			e.Get(X),
			e.Get(Y),
			e.Get(Elevation),
			e.Get(DestinationWarp),
			e.Get(DestinationMap),
		},
	}
}

// EncodeCoord writes a coordinate trigger, including the reserved slots.
func EncodeCoord(e *Event) asm.Command {
	return asm.Command{
		Name: CoordMacro,
		Params: []string{
			e.Get(X),
			e.Get(Y),
			e.Get(Elevation),
			"0",
			e.Get(CoordUnknown1),
			e.Get(CoordUnknown2),
			"0",
			e.Get(ScriptLabel),
		},
	}
}

// EncodeBG writes a sign or hidden item depending on the kind of e.
func EncodeBG(e *Event) asm.Command {
	params := []string{
		e.Get(X),
		e.Get(Y),
		e.Get(Elevation),
		e.Get(Type),
		"0",
	}
	if e.Kind == KindHiddenItem {
		params = append(params, e.Get(Item), e.Get(ItemUnknown5), e.Get(ItemUnknown6))
	} else {
		params = append(params, e.Get(ScriptLabel))
	}
	return asm.Command{Name: BGMacro, Params: params}
}

func writeBlock(b *strings.Builder, label string, cmds []asm.Command) {
	b.WriteString(label + "::\n")
	for _, cmd := range cmds {
		b.WriteString("\t" + cmd.String() + "\n")
	}
	b.WriteString("\n")
}

// Encode serializes the events of a map as four labelled blocks followed by
// the map_events table under eventsLabel.
func Encode(eventsLabel string, labels Labels, events *Events) string {
	var b strings.Builder

	var cmds []asm.Command
	for i, e := range events.Objects {
		cmds = append(cmds, EncodeObject(i, e))
	}
	writeBlock(&b, labels.Objects, cmds)

	cmds = cmds[:0]
	for _, e := range events.Warps {
		cmds = append(cmds, EncodeWarp(e))
	}
	writeBlock(&b, labels.Warps, cmds)

	cmds = cmds[:0]
	for _, e := range events.Coords {
		cmds = append(cmds, EncodeCoord(e))
	}
	writeBlock(&b, labels.Coords, cmds)

	cmds = cmds[:0]
	for _, e := range events.BGs {
		cmds = append(cmds, EncodeBG(e))
	}
	writeBlock(&b, labels.BGs, cmds)

	b.WriteString(eventsLabel + "::\n")
	b.WriteString("\t" + asm.Command{
		Name:   EventsMacro,
		Params: []string{labels.Objects, labels.Warps, labels.Coords, labels.BGs},
	}.String() + "\n")

	return b.String()
}
