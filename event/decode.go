package event

import (
	"strconv"

	"github.com/bodgit/tilemap/asm"
)

// Macro names
const (
	ObjectMacro = "object_event"
	WarpMacro   = "warp_def"
	CoordMacro  = "coord_event"
	BGMacro     = "bg_event"
	EventsMacro = "map_events"
)

const (
	legacyObjectParams = 19
	legacyCoordParams  = 8
)

var (
	// Slots only present in the long object_event layout: the id, which is
	// just the position in the list, and the reserved zeroes.
	legacyObjectSlots = map[int]struct{}{0: {}, 10: {}, 12: {}, 14: {}, 17: {}, 18: {}}
	legacyCoordSlots  = map[int]struct{}{3: {}, 6: {}}
)

func dropSlots(params []string, slots map[int]struct{}) []string {
	kept := make([]string, 0, len(params))
	for i, p := range params {
		if _, ok := slots[i]; !ok {
			kept = append(kept, p)
		}
	}
	return kept
}

// cursor walks a parameter list, yielding an empty string once exhausted.
type cursor struct {
	params []string
	i      int
}

func (c *cursor) next() string {
	v := asm.Value(c.params, c.i)
	c.i++
	return v
}

func (c *cursor) skip() {
	c.i++
}

func (c *cursor) word() int {
	lo := asm.Int(c.next())
	hi := asm.Int(c.next())
	return int(int16(uint16(lo | hi<<8)))
}

func newEvent(k Kind, mapName string) *Event {
	e := New(k)
	e.Set(MapName, mapName)
	return e
}

// DecodeObject reads an object_event command in either layout.
func DecodeObject(cmd asm.Command, mapName string) *Event {
	e := newEvent(KindObject, mapName)

	legacy := len(cmd.Params) >= legacyObjectParams
	params := cmd.Params
	if legacy {
		params = dropSlots(params, legacyObjectSlots)
	}

	c := &cursor{params: params}
	e.Set(Sprite, c.next())
	e.Set(Replacement, c.next())
	e.SetInt(X, c.word())
	e.SetInt(Y, c.word())
	e.Set(Elevation, c.next())
	e.Set(Behavior, c.next())
	if legacy {
		radius := asm.Int(c.next())
		e.SetInt(RadiusX, radius&0xf)
		e.SetInt(RadiusY, radius>>4&0xf)
	} else {
		e.Set(RadiusX, c.next())
		e.Set(RadiusY, c.next())
	}
	e.Set(Property, c.next())
	e.Set(SightRadius, c.next())
	e.Set(ScriptLabel, c.next())
	e.Set(EventFlag, c.next())

	return e
}

// DecodeWarp reads a warp_def command.
func DecodeWarp(cmd asm.Command, mapName string) *Event {
	e := newEvent(KindWarp, mapName)

	c := &cursor{params: cmd.Params}
	e.Set(X, c.next())
	e.Set(Y, c.next())
	e.Set(Elevation, c.next())
	e.Set(DestinationWarp, c.next())
	e.Set(DestinationMap, c.next())

	return e
}

// DecodeCoord reads a coord_event command in either layout.
func DecodeCoord(cmd asm.Command, mapName string) *Event {
	e := newEvent(KindCoord, mapName)

	params := cmd.Params
	if len(params) >= legacyCoordParams {
		params = dropSlots(params, legacyCoordSlots)
	}

	c := &cursor{params: params}
	e.Set(X, c.next())
	e.Set(Y, c.next())
	e.Set(Elevation, c.next())
	e.Set(CoordUnknown1, c.next())
	e.Set(CoordUnknown2, c.next())
	e.Set(ScriptLabel, c.next())

	return e
}

// DecodeBG reads a bg_event command as either a sign or a hidden item.
func DecodeBG(cmd asm.Command, mapName string) *Event {
	e := newEvent(KindSign, mapName)

	c := &cursor{params: cmd.Params}
	e.Set(X, c.next())
	e.Set(Y, c.next())
	e.Set(Elevation, c.next())
	e.Set(Type, c.next())
	c.skip()
	if e.IsHiddenItem() {
		e.Kind = KindHiddenItem
		e.Set(Item, c.next())
		e.Set(ItemUnknown5, c.next())
		e.Set(ItemUnknown6, c.next())
	} else {
		e.Set(ScriptLabel, c.next())
	}

	return e
}

func decodeBlock(cmds asm.Commands, label, macro, mapName string, fn func(asm.Command, string) *Event) []*Event {
	var events []*Event
	for _, cmd := range cmds.LabelMacros(label) {
		if cmd.Name == macro {
			events = append(events, fn(cmd, mapName))
		}
	}
	return events
}

// Decode reads every event for a map. The block for eventsLabel names the
// four blocks holding each group of events, in the order objects, warps,
// coords, bgs. Missing labels simply produce empty groups.
func Decode(cmds asm.Commands, mapName, eventsLabel string) (Labels, Events) {
	values := cmds.LabelValues(eventsLabel)
	labels := Labels{
		Objects: asm.Value(values, 0),
		Warps:   asm.Value(values, 1),
		Coords:  asm.Value(values, 2),
		BGs:     asm.Value(values, 3),
	}

	return labels, Events{
		Objects: decodeBlock(cmds, labels.Objects, ObjectMacro, mapName, DecodeObject),
		Warps:   decodeBlock(cmds, labels.Warps, WarpMacro, mapName, DecodeWarp),
		Coords:  decodeBlock(cmds, labels.Coords, CoordMacro, mapName, DecodeCoord),
		BGs:     decodeBlock(cmds, labels.BGs, BGMacro, mapName, DecodeBG),
	}
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
