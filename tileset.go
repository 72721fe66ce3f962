package tilemap

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // decoded tile sheets
	"path"
	"strings"

	"github.com/bodgit/tilemap/asm"
	"github.com/bodgit/tilemap/palette"
	"github.com/bodgit/tilemap/tile"
	"github.com/sirupsen/logrus"
)

const (
	palettesPerTileset = 16
	flagTrue           = "TRUE"
)

// Tileset is a set of tiles, metatiles and palettes shared between maps.
// Tilesets are read-only.
type Tileset struct {
	Name string

	IsCompressed       string
	IsSecondary        string
	Padding            string
	TilesLabel         string
	PalettesLabel      string
	MetatilesLabel     string
	MetatileAttrsLabel string
	CallbackLabel      string

	Tiles     []*image.Paletted
	Metatiles []tile.Metatile
	Palettes  []color.Palette
}

// Compressed reports whether the tile graphics are LZ77 compressed.
func (t *Tileset) Compressed() bool {
	return t.IsCompressed == flagTrue
}

// Secondary reports whether this is a secondary tileset.
func (t *Tileset) Secondary() bool {
	return t.IsSecondary == flagTrue
}

// fixGraphicPath maps the path of a compressed or raw graphic onto the PNG
// it is built from.
func fixGraphicPath(p string) string {
	p = strings.TrimSuffix(p, ".lz")
	for _, bpp := range []string{".1bpp", ".2bpp", ".4bpp", ".8bpp"} {
		if strings.HasSuffix(p, bpp) {
			return strings.TrimSuffix(p, bpp) + ".png"
		}
	}
	return p
}

func (p *Project) loadTileset(label string) *Tileset {
	v := p.pool(p.layout.TilesetHeaders).LabelValues(label)
	t := &Tileset{
		Name:               label,
		IsCompressed:       asm.Value(v, 0),
		IsSecondary:        asm.Value(v, 1),
		Padding:            asm.Value(v, 2),
		TilesLabel:         asm.Value(v, 3),
		PalettesLabel:      asm.Value(v, 4),
		MetatilesLabel:     asm.Value(v, 5),
		MetatileAttrsLabel: asm.Value(v, 6),
		CallbackLabel:      asm.Value(v, 7),
	}

	p.loadTilesetAssets(t)

	p.tilesets[label] = t
	return t
}

// tilesetDir is the default directory holding the assets of t.
func (p *Project) tilesetDir(t *Tileset) string {
	category := "primary"
	if t.Secondary() {
		category = "secondary"
	}
	name := strings.ToLower(strings.ReplaceAll(t.Name, p.layout.TilesetPrefix, ""))
	return path.Join(p.layout.TilesetDir, category, name)
}

// assetPath returns the file referenced by label in cmds, or the default
// path under dir.
func (p *Project) assetPath(cmds asm.Commands, label, dir, fallback string) string {
	if rel, ok := asm.Quoted(asm.Value(cmds.LabelValues(label), 0)); ok {
		return p.path(rel)
	}
	return p.path(path.Join(dir, fallback))
}

func (p *Project) palettePaths(graphics asm.Commands, t *Tileset, dir string) []string {
	var paths []string
	for _, v := range graphics.LabelValues(t.PalettesLabel) {
		if rel, ok := asm.Quoted(v); ok {
			paths = append(paths, p.path(rel))
		}
	}
	if len(paths) > 0 {
		return paths
	}

	for i := 0; i < palettesPerTileset; i++ {
		paths = append(paths, p.path(path.Join(dir, "palettes", fmt.Sprintf("%02d.gbapal", i))))
	}
	return paths
}

func (p *Project) loadTilesetAssets(t *Tileset) {
	if t.Name == "" {
		return
	}
	logger := p.logger.WithField("tileset", t.Name)

	dir := p.tilesetDir(t)
	graphics := p.pool(p.layout.TilesetGraphics)
	metatiles := p.pool(p.layout.TilesetMetatiles)

	tilesFile := "tiles.4bpp"
	if t.Compressed() {
		tilesFile += ".lz"
	}
	tilesPath := p.assetPath(graphics, t.TilesLabel, dir, tilesFile)
	t.Tiles = p.loadTiles(logger, fixGraphicPath(tilesPath))

	metatilesPath := p.assetPath(metatiles, t.MetatilesLabel, dir, "metatiles.bin")
	if b, ok := p.readFile(metatilesPath); ok {
		t.Metatiles = tile.DecodeMetatiles(b)
	} else {
		t.Metatiles = []tile.Metatile{}
	}

	attrsPath := p.assetPath(metatiles, t.MetatileAttrsLabel, dir, "metatile_attributes.bin")
	if b, ok := p.readFile(attrsPath); ok {
		tile.ApplyAttributes(t.Metatiles, b)
	}

	for _, file := range p.palettePaths(graphics, t, dir) {
		// Palettes are never compressed
		if b, ok := p.readFile(strings.TrimSuffix(file, ".lz")); ok {
			t.Palettes = append(t.Palettes, palette.Decode(b))
		} else {
			t.Palettes = append(t.Palettes, palette.Greyscale())
		}
	}

	logger.WithFields(logrus.Fields{
		"tiles":     len(t.Tiles),
		"metatiles": len(t.Metatiles),
		"palettes":  len(t.Palettes),
	}).Debug("Loaded tileset")
}

func (p *Project) loadTiles(logger logrus.FieldLogger, file string) []*image.Paletted {
	b, ok := p.readFile(file)
	if !ok {
		return nil
	}
	m, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		logger.WithFields(logrus.Fields{
			"path":  file,
			"error": err,
		}).Warn("Could not decode tiles")
		return nil
	}
	return tile.Slice(m)
}
