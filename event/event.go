/*
Package event converts map events between their macro text form and a
property bag model.

Four macros are recognised: object_event, warp_def, coord_event and
bg_event. A bg_event is either a sign or a hidden item depending on its type.
Older projects write object_event and coord_event with extra reserved
parameters; both layouts are read and the longer one is always written.
*/
package event

import (
	"sort"
	"strconv"
	"strings"

	"github.com/bodgit/tilemap/asm"
)

// Kind identifies the type of an event.
type Kind int

// Event kinds
const (
	KindObject Kind = iota
	KindWarp
	KindCoord
	KindSign
	KindHiddenItem
)

var kindNames = [...]string{
	KindObject:     "object",
	KindWarp:       "warp",
	KindCoord:      "trap",
	KindSign:       "sign",
	KindHiddenItem: "hidden item",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Property names
const (
	MapName         = "map_name"
	X               = "x"
	Y               = "y"
	Elevation       = "elevation"
	Sprite          = "sprite"
	Replacement     = "replacement"
	Behavior        = "behavior"
	RadiusX         = "radius_x"
	RadiusY         = "radius_y"
	Property        = "property"
	SightRadius     = "sight_radius"
	ScriptLabel     = "script_label"
	EventFlag       = "event_flag"
	DestinationWarp = "destination_warp"
	DestinationMap  = "destination_map"
	CoordUnknown1   = "coord_unknown1"
	CoordUnknown2   = "coord_unknown2"
	Type            = "type"
	Item            = "item"
	ItemUnknown5    = "item_unknown5"
	ItemUnknown6    = "item_unknown6"
)

// Event is a kind-tagged bag of properties. All values are kept as the text
// found in the source.
type Event struct {
	Kind   Kind
	fields map[string]string
}

// New returns an empty event of kind k.
func New(k Kind) *Event {
	return &Event{
		Kind:   k,
		fields: make(map[string]string),
	}
}

// Get returns the value of property key or an empty string.
func (e *Event) Get(key string) string {
	return e.fields[key]
}

// Set stores value for property key.
func (e *Event) Set(key, value string) {
	if e.fields == nil {
		e.fields = make(map[string]string)
	}
	e.fields[key] = value
}

// Int returns property key as a number, or 0 if it isn't one.
func (e *Event) Int(key string) int {
	return asm.Int(e.fields[key])
}

// SetInt stores a number for property key.
func (e *Event) SetInt(key string, value int) {
	e.Set(key, strconv.Itoa(value))
}

// Keys returns the names of every property that has been set, sorted.
func (e *Event) Keys() []string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsHiddenItem reports whether a background event is a hidden item rather
// than a sign. Numeric types of 5 and above are hidden items, as is any
// symbolic type naming one.
func (e *Event) IsHiddenItem() bool {
	t := strings.TrimSpace(e.Get(Type))
	if strings.Contains(strings.ToUpper(t), "HIDDEN_ITEM") {
		return true
	}
	return e.Int(Type) >= 5
}

// Events holds the events of a map split into the four on-disk groups. The
// BG group holds both signs and hidden items.
type Events struct {
	Objects []*Event
	Warps   []*Event
	Coords  []*Event
	BGs     []*Event
}

// Len returns the total number of events.
func (e *Events) Len() int {
	return len(e.Objects) + len(e.Warps) + len(e.Coords) + len(e.BGs)
}

// Kind returns every event of kind k.
func (e *Events) Kind(k Kind) []*Event {
	switch k {
	case KindObject:
		return e.Objects
	case KindWarp:
		return e.Warps
	case KindCoord:
		return e.Coords
	}
	var events []*Event
	for _, ev := range e.BGs {
		if ev.Kind == k {
			events = append(events, ev)
		}
	}
	return events
}

// Labels names the block holding each group of events.
type Labels struct {
	Objects string
	Warps   string
	Coords  string
	BGs     string
}

// DefaultLabels returns the conventional block labels for the events of
// mapName, used when a map doesn't have any yet.
func DefaultLabels(mapName string) Labels {
	return Labels{
		Objects: mapName + "_EventObjects",
		Warps:   mapName + "_MapWarps",
		Coords:  mapName + "_MapCoordEvents",
		BGs:     mapName + "_MapBGEvents",
	}
}

// Fill replaces any empty label with its default for mapName.
func (l Labels) Fill(mapName string) Labels {
	d := DefaultLabels(mapName)
	if l.Objects == "" {
		l.Objects = d.Objects
	}
	if l.Warps == "" {
		l.Warps = d.Warps
	}
	if l.Coords == "" {
		l.Coords = d.Coords
	}
	if l.BGs == "" {
		l.BGs = d.BGs
	}
	return l
}
