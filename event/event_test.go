package event

import (
	"testing"

	"github.com/bodgit/tilemap/asm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func command(name string, params ...string) asm.Command {
	return asm.Command{Name: name, Params: params}
}

func TestDecodeObject(t *testing.T) {
	current := command(ObjectMacro,
		"MAP_OBJ_GFX_BOY_1", "0", "0x0c", "0", "0xff", "0xff", "3", "8", "1", "2", "0", "0", "Town_EventScript_Boy", "FLAG_HIDE_BOY")

	e := DecodeObject(current, "Town")
	assert.Equal(t, KindObject, e.Kind)
	assert.Equal(t, "Town", e.Get(MapName))
	assert.Equal(t, "MAP_OBJ_GFX_BOY_1", e.Get(Sprite))
	assert.Equal(t, "12", e.Get(X))
	assert.Equal(t, "-1", e.Get(Y))
	assert.Equal(t, "3", e.Get(Elevation))
	assert.Equal(t, "8", e.Get(Behavior))
	assert.Equal(t, "1", e.Get(RadiusX))
	assert.Equal(t, "2", e.Get(RadiusY))
	assert.Equal(t, "Town_EventScript_Boy", e.Get(ScriptLabel))
	assert.Equal(t, "FLAG_HIDE_BOY", e.Get(EventFlag))
}

func TestDecodeObjectLegacy(t *testing.T) {
	current := command(ObjectMacro,
		"MAP_OBJ_GFX_BOY_1", "0", "12", "0", "7", "0", "3", "8", "1", "2", "0", "0", "Town_EventScript_Boy", "FLAG_HIDE_BOY")
	legacy := command(ObjectMacro,
		"1", "MAP_OBJ_GFX_BOY_1", "0", "12", "0", "7", "0", "3", "8", "0x21", "0", "0", "0", "0", "0", "Town_EventScript_Boy", "FLAG_HIDE_BOY", "0", "0")
	require.Len(t, legacy.Params, 19)

	assert.Equal(t, DecodeObject(current, "Town"), DecodeObject(legacy, "Town"))
}

func TestDecodeCoordLegacy(t *testing.T) {
	current := command(CoordMacro, "4", "5", "3", "VAR_TEMP_1", "0", "Town_EventScript_Trigger")
	legacy := command(CoordMacro, "4", "5", "3", "0", "VAR_TEMP_1", "0", "0", "Town_EventScript_Trigger")

	e := DecodeCoord(current, "Town")
	assert.Equal(t, KindCoord, e.Kind)
	assert.Equal(t, "VAR_TEMP_1", e.Get(CoordUnknown1))
	assert.Equal(t, "Town_EventScript_Trigger", e.Get(ScriptLabel))
	assert.Equal(t, e, DecodeCoord(legacy, "Town"))
}

func TestDecodeBG(t *testing.T) {
	sign := DecodeBG(command(BGMacro, "1", "2", "0", "0", "0", "Town_EventScript_Sign"), "Town")
	assert.Equal(t, KindSign, sign.Kind)
	assert.Equal(t, "Town_EventScript_Sign", sign.Get(ScriptLabel))
	assert.Equal(t, "", sign.Get(Item))

	item := DecodeBG(command(BGMacro, "1", "2", "0", "7", "0", "ITEM_POTION", "0x1", "1"), "Town")
	assert.Equal(t, KindHiddenItem, item.Kind)
	assert.Equal(t, "ITEM_POTION", item.Get(Item))
	assert.Equal(t, "0x1", item.Get(ItemUnknown5))
	assert.Equal(t, "1", item.Get(ItemUnknown6))

	symbolic := DecodeBG(command(BGMacro, "1", "2", "0", "BG_EVENT_HIDDEN_ITEM", "0", "ITEM_NONE", "0", "0"), "Town")
	assert.Equal(t, KindHiddenItem, symbolic.Kind)
}

func TestDecodeShortCommand(t *testing.T) {
	e := DecodeWarp(command(WarpMacro, "1"), "Town")
	assert.Equal(t, "1", e.Get(X))
	assert.Equal(t, "", e.Get(DestinationMap))
}

const eventsText = `
Town_EventObjects::
	object_event 1, MAP_OBJ_GFX_BOY_1, 0, 12, 0, 7, 0, 3, 8, 0x21, 0, 0, 0, 0, 0, Town_EventScript_Boy, FLAG_HIDE_BOY, 0, 0

Town_MapWarps::
	warp_def 5, 6, 0, 1, Route101
	.byte 0 @ ignored

Town_MapCoordEvents::

Town_MapBGEvents::
	bg_event 1, 2, 0, 0, 0, Town_EventScript_Sign
	bg_event 3, 4, 0, 7, 0, ITEM_POTION, 1, 1

Town_MapEvents::
	map_events Town_EventObjects, Town_MapWarps, Town_MapCoordEvents, Town_MapBGEvents
`

func TestDecode(t *testing.T) {
	labels, events := Decode(asm.Parse(eventsText), "Town", "Town_MapEvents")

	assert.Equal(t, DefaultLabels("Town"), labels)
	assert.Len(t, events.Objects, 1)
	assert.Len(t, events.Warps, 1)
	assert.Empty(t, events.Coords)
	assert.Len(t, events.BGs, 2)
	assert.Equal(t, 4, events.Len())
	assert.Len(t, events.Kind(KindSign), 1)
	assert.Len(t, events.Kind(KindHiddenItem), 1)
	assert.Equal(t, "Route101", events.Warps[0].Get(DestinationMap))
}

func TestDecodeMissingLabel(t *testing.T) {
	labels, events := Decode(asm.Parse(eventsText), "Town", "Missing")
	assert.Equal(t, Labels{}, labels)
	assert.Equal(t, 0, events.Len())
}

func roundTrip(t *testing.T, events *Events) Events {
	labels := DefaultLabels("Town")
	text := Encode("Town_MapEvents", labels, events)

	gotLabels, got := Decode(asm.Parse(text), "Town", "Town_MapEvents")
	assert.Equal(t, labels, gotLabels)
	return got
}

func TestRoundTrip(t *testing.T) {
	_, events := Decode(asm.Parse(`
Objects:
	object_event MAP_OBJ_GFX_GIRL_2, 0, 0x10, 0x01, 0xfe, 0xff, 3, 2, 3, 4, 1, 5, Town_Girl, 0
	object_event MAP_OBJ_GFX_BOY_1, 1, 2, 0, 3, 0, 0, 1, 0, 0, 0, 0, 0x0, FLAG_BOY
Warps:
	warp_def 5, 6, 0, 1, Route101
Coords:
	coord_event 4, 5, 3, VAR_TEMP_1, 0, Town_Trigger
BGs:
	bg_event 3, 4, 0, 7, 0, ITEM_POTION, 1, 1
	bg_event 1, 2, 0, 0, 0, Town_Sign
Events:
	map_events Objects, Warps, Coords, BGs
`), "Town", "Events")
	require.Equal(t, 6, events.Len())

	got := roundTrip(t, &events)
	assert.Equal(t, events.Objects, got.Objects)
	assert.Equal(t, events.Warps, got.Warps)
	assert.Equal(t, events.Coords, got.Coords)
	assert.Equal(t, events.BGs, got.BGs)
}

func TestRoundTripEmpty(t *testing.T) {
	got := roundTrip(t, &Events{})
	assert.Equal(t, 0, got.Len())
}

func TestEncodeObjectRadius(t *testing.T) {
	e := New(KindObject)
	e.SetInt(RadiusX, 0x13)
	e.SetInt(RadiusY, 2)
	e.SetInt(X, -2)

	cmd := EncodeObject(0, e)
	assert.Equal(t, "1", cmd.Param(0))
	assert.Equal(t, "254", cmd.Param(3))
	assert.Equal(t, "255", cmd.Param(4))
	assert.Equal(t, "35", cmd.Param(9))
}

func TestEncode(t *testing.T) {
	e := New(KindWarp)
	e.Set(X, "1")
	e.Set(Y, "2")
	e.Set(Elevation, "0")
	e.Set(DestinationWarp, "3")
	e.Set(DestinationMap, "Route101")

	text := Encode("Town_MapEvents", Labels{"O", "W", "C", "B"}, &Events{Warps: []*Event{e}})
	assert.Equal(t, "O::\n\nW::\n\twarp_def 1, 2, 0, 3, Route101\n\nC::\n\nB::\n\nTown_MapEvents::\n\tmap_events O, W, C, B\n", text)
}

func TestLabelsFill(t *testing.T) {
	l := Labels{Warps: "Custom"}.Fill("Town")
	assert.Equal(t, "Town_EventObjects", l.Objects)
	assert.Equal(t, "Custom", l.Warps)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "hidden item", KindHiddenItem.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}
