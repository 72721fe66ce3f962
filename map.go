package tilemap

import (
	"github.com/bodgit/tilemap/asm"
	"github.com/bodgit/tilemap/blockdata"
	"github.com/bodgit/tilemap/event"
)

// Map is a single map with everything it refers to resolved.
type Map struct {
	Name string
	Header

	Width                 string
	Height                string
	BorderLabel           string
	BlockdataLabel        string
	PrimaryTilesetLabel   string
	SecondaryTilesetLabel string

	EventLabels event.Labels
	Events      event.Events

	Blockdata   blockdata.Blockdata
	Border      blockdata.Blockdata
	Connections []Connection

	PrimaryTileset   *Tileset
	SecondaryTileset *Tileset
}

// fillEventLabels makes sure there is somewhere to write the events to.
func (m *Map) fillEventLabels() {
	if m.EventsLabel == "" {
		m.EventsLabel = m.Name + "_MapEvents"
	}
	m.EventLabels = m.EventLabels.Fill(m.Name)
}

func (p *Project) loadMap(name string) *Map {
	m := &Map{Name: name}

	p.readMapHeader(m)
	p.readMapAttributes(m)
	p.loadMapTilesets(m)
	p.loadBlockdata(m)
	p.loadMapBorder(m)
	p.readMapEvents(m)
	p.loadMapConnections(m)

	p.maps[name] = m
	p.logger.WithField("map", name).Debug("Loaded map")
	return m
}

func (p *Project) readMapHeader(m *Map) {
	cmds := p.parseFile(p.mapPath(p.layout.MapHeader, m.Name))
	m.Header = DecodeHeader(cmds, m.Name)
}

func (p *Project) saveMapHeader(m *Map) error {
	return p.writeFile(p.mapPath(p.layout.MapHeader, m.Name), []byte(m.Header.Encode(m.Name)))
}

func (p *Project) readMapAttributes(m *Map) {
	v := p.pool(p.layout.MapAssets).LabelValues(m.AttributesLabel)
	m.Width = asm.Value(v, 0)
	m.Height = asm.Value(v, 1)
	m.BorderLabel = asm.Value(v, 2)
	m.BlockdataLabel = asm.Value(v, 3)
	m.PrimaryTilesetLabel = asm.Value(v, 4)
	m.SecondaryTilesetLabel = asm.Value(v, 5)
}

func (p *Project) loadMapTilesets(m *Map) {
	m.PrimaryTileset = p.Tileset(m.PrimaryTilesetLabel)
	m.SecondaryTileset = p.Tileset(m.SecondaryTilesetLabel)
}

// resolveAssetPath looks label up in the shared assets file. If it refers to
// a file that is used, otherwise the default path for the map is.
func (p *Project) resolveAssetPath(label, fallback string) string {
	v := p.pool(p.layout.MapAssets).LabelValues(label)
	if rel, ok := asm.Quoted(asm.Value(v, 0)); ok {
		return p.path(rel)
	}
	return p.path(fallback)
}

func (p *Project) blockdataPath(m *Map) string {
	return p.resolveAssetPath(m.BlockdataLabel, fmtName(p.layout.MapBlockdata, m.Name))
}

func (p *Project) borderPath(m *Map) string {
	return p.resolveAssetPath(m.BorderLabel, fmtName(p.layout.MapBorder, m.Name))
}

func (p *Project) readBlockdata(file string) blockdata.Blockdata {
	b, _ := p.readFile(file)
	return blockdata.Decode(b)
}

func (p *Project) loadBlockdata(m *Map) {
	m.Blockdata = p.readBlockdata(p.blockdataPath(m))
}

func (p *Project) loadMapBorder(m *Map) {
	m.Border = p.readBlockdata(p.borderPath(m))
}

func (p *Project) saveBlockdata(m *Map) error {
	return p.writeFile(p.blockdataPath(m), m.Blockdata.Encode())
}

func (p *Project) readMapEvents(m *Map) {
	cmds := p.parseFile(p.mapPath(p.layout.MapEvents, m.Name))
	m.EventLabels, m.Events = event.Decode(cmds, m.Name, m.EventsLabel)
}

func (p *Project) saveMapEvents(m *Map) error {
	text := event.Encode(m.EventsLabel, m.EventLabels, &m.Events)
	return p.writeFile(p.mapPath(p.layout.MapEvents, m.Name), []byte(text))
}

func (p *Project) loadMapConnections(m *Map) {
	m.Connections = nil
	if m.ConnectionsLabel == "" {
		return
	}

	m.Connections = DecodeConnections(p.parseFile(p.mapPath(p.layout.MapConnections, m.Name)), m.ConnectionsLabel)
	if m.Connections == nil {
		m.Connections = DecodeConnections(p.pool(p.layout.MapAssets), m.ConnectionsLabel)
	}
}
