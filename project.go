/*
Package tilemap is a library for loading and saving the maps and tilesets of
a decompiled GBA Pokémon project.

Maps and tilesets are described by handwritten assembler macro files that
refer to each other by label, plus raw binary blobs for the map layers,
metatiles and palettes. A Project resolves all of these under a root
directory. Missing or partial files never stop a load; they are logged and
the affected fields are left empty so that incomplete projects can still be
opened.

A Project is not safe for concurrent use.
*/
package tilemap

import (
	"errors"
	"path/filepath"

	"github.com/bodgit/tilemap/asm"
	"github.com/dgraph-io/ristretto/v2"
	"github.com/sirupsen/logrus"
)

const (
	poolCounters = 1 << 14
	poolMaxCost  = 1 << 20
)

// Project is a decompiled project rooted at a directory. Maps and tilesets
// are loaded on first request and kept for the lifetime of the Project.
type Project struct {
	root   string
	layout Layout
	logger logrus.FieldLogger

	// Parsed shared text files, keyed by path
	pools *ristretto.Cache[string, asm.Commands]

	maps     map[string]*Map
	tilesets map[string]*Tileset
	groups   *GroupIndex
}

// New returns a Project rooted at root.
func New(root string, layout Layout, logger logrus.FieldLogger) (*Project, error) {
	pools, err := ristretto.NewCache(&ristretto.Config[string, asm.Commands]{
		NumCounters: poolCounters,
		MaxCost:     poolMaxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	return &Project{
		root:     root,
		layout:   layout,
		logger:   logger,
		pools:    pools,
		maps:     make(map[string]*Map),
		tilesets: make(map[string]*Tileset),
	}, nil
}

// Close releases any resources held by the Project.
func (p *Project) Close() error {
	p.pools.Close()
	return nil
}

// Root returns the project root directory.
func (p *Project) Root() string {
	return p.root
}

// Title returns the name of the project, which is the last element of its
// root directory.
func (p *Project) Title() string {
	if p.root == "" {
		return ""
	}
	return filepath.Base(p.root)
}

// Map returns the map called name, loading it if necessary.
func (p *Project) Map(name string) *Map {
	if m, ok := p.maps[name]; ok {
		return m
	}
	return p.loadMap(name)
}

// Maps returns every map loaded so far, keyed by name.
func (p *Project) Maps() map[string]*Map {
	return p.maps
}

// Tileset returns the tileset with the given label, loading it if
// necessary.
func (p *Project) Tileset(label string) *Tileset {
	if t, ok := p.tilesets[label]; ok {
		return t
	}
	return p.loadTileset(label)
}

// SaveMap writes the blockdata, header and events of m. Each is attempted
// regardless of whether the others succeed; any errors are joined together.
// Nothing is rolled back.
func (p *Project) SaveMap(m *Map) error {
	m.fillEventLabels()

	var errs []error
	if err := p.saveBlockdata(m); err != nil {
		errs = append(errs, err)
	}
	if err := p.saveMapHeader(m); err != nil {
		errs = append(errs, err)
	}
	if err := p.saveMapEvents(m); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SaveAllMaps saves every loaded map.
func (p *Project) SaveAllMaps() error {
	var errs []error
	for _, name := range sortedKeys(p.maps) {
		if err := p.SaveMap(p.maps[name]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
