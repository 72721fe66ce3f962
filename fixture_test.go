package tilemap

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

const groupsText = `
gMapGroup0::
	.4byte Town
	.4byte Route101

gMapGroup1::
	.4byte Cave

	.align 2
gMapGroups::
	.4byte gMapGroup0
	.4byte gMapGroup1
`

const townHeaderText = `Town::
	.4byte Town_MapAttributes
	.4byte Town_MapEvents
	.4byte Town_MapScripts
	.4byte Town_MapConnections
	.2byte MUS_TOWN
	.2byte 1
	.byte 2
	.byte 0
	.byte 2
	.byte 1
	.2byte 0
	.byte 1
	.byte 0
`

const route101HeaderText = `Route101::
	.4byte Route101_MapAttributes
	.4byte Route101_MapEvents
	.4byte Route101_MapScripts
	.4byte 0x0
	.2byte MUS_ROUTE101
`

const assetsText = `
Town_MapBorder::
	.incbin "data/maps/Town/border.bin"

Town_MapBlockdata::
	.incbin "data/layouts/town.bin"

	.align 2
Town_MapAttributes::
	.4byte 2
	.4byte 2
	.4byte Town_MapBorder
	.4byte Town_MapBlockdata
	.4byte gTileset_General
	.4byte gTileset_Petalburg

Route101_MapAttributes::
	.4byte 1
	.4byte 1
	.4byte Route101_MapBorder
	.4byte Route101_MapBlockdata
	.4byte gTileset_General
	.4byte gTileset_Petalburg
`

const townConnectionsText = `
Town_MapConnectionsList::
	connection down, 0, Route101
	connection up, -4, Cave

Town_MapConnections::
	.4byte 2
	.4byte Town_MapConnectionsList
`

const townEventsText = `
Town_EventObjects::
	object_event 1, MAP_OBJ_GFX_BOY_1, 0, 12, 0, 7, 0, 3, 8, 0x21, 0, 0, 0, 0, 0, Town_EventScript_Boy, FLAG_HIDE_BOY, 0, 0

Town_MapWarps::
	warp_def 5, 6, 0, 1, Route101

Town_MapCoordEvents::

Town_MapBGEvents::
	bg_event 1, 2, 0, 0, 0, Town_EventScript_Sign
	bg_event 3, 4, 0, 7, 0, ITEM_POTION, 1, 1

Town_MapEvents::
	map_events Town_EventObjects, Town_MapWarps, Town_MapCoordEvents, Town_MapBGEvents
`

const tilesetHeadersText = `
gTileset_General::
	.byte TRUE @ is compressed
	.byte FALSE @ is secondary
	.2byte 0 @ padding
	.4byte gTilesetTiles_General
	.4byte gTilesetPalettes_General
	.4byte gMetatiles_General
	.4byte gMetatileAttributes_General
	.4byte NULL

gTileset_Petalburg::
	.byte FALSE
	.byte TRUE
	.2byte 0
	.4byte gTilesetTiles_Petalburg
	.4byte gTilesetPalettes_Petalburg
	.4byte gMetatiles_Petalburg
	.4byte gMetatileAttributes_Petalburg
	.4byte NULL
`

const tilesetGraphicsText = `
gTilesetTiles_General::
	.incbin "data/tilesets/primary/general/tiles.4bpp.lz"

	.align 2
gTilesetPalettes_General::
	.incbin "data/tilesets/primary/general/palettes/00.gbapal"
	.incbin "data/tilesets/primary/general/palettes/01.gbapal"
`

const tilesetMetatilesText = `
gMetatiles_General::
	.incbin "data/tilesets/primary/general/metatiles.bin"

gMetatileAttributes_General::
	.incbin "data/tilesets/primary/general/metatile_attributes.bin"
`

const songsText = `
	.equiv MUS_STOP, 0
	.equiv MUS_TOWN, 0x15A
	.equiv MUS_ROUTE101, 0x15B
`

const objectConstantsText = `
	.set MAP_OBJ_GFX_BRENDAN, 0
	.set MAP_OBJ_GFX_BOY_1, 1
	.set SOMETHING_ELSE, 7
`

const pointersText = `const struct MapObjectGraphicsInfo *const gMapObjectGraphicsInfoPointers[] = {
	&gMapObjectGraphicsInfo_Brendan,
	&gMapObjectGraphicsInfo_Boy1,
};
`

const infoText = `const struct MapObjectGraphicsInfo gMapObjectGraphicsInfo_Boy1 = {0xFFFF, 1, 2, 256, 16, 32, 10, SHADOW_SIZE_M, FALSE, FALSE, TRACKS_FOOT, gFieldEffectObjectPaletteInfo0, gFieldEffectObjectPaletteInfo1, gMapObjectRotScalAnimTable_0, gMapObjectPicTable_Boy1, gDummySpriteAffineAnimTable};
`

const picTablesText = `const struct SpriteFrameImage gMapObjectPicTable_Boy1[] = {
	obj_frame_tiles(gMapObjectPic_Boy1_0),
};
`

const objectGraphicsText = `const u32 gMapObjectPic_Boy1_0[] = INCBIN_U32("graphics/map_objects/pics/people/boy_1/0.4bpp");
`

func tileSheet(t *testing.T) []byte {
	palette := color.Palette{color.Black, color.White}
	m := image.NewPaletted(image.Rect(0, 0, 16, 8), palette)
	m.SetColorIndex(8, 0, 1)

	b := new(bytes.Buffer)
	require.NoError(t, png.Encode(b, m))
	return b.Bytes()
}

func paletteBytes() []byte {
	b := make([]byte, 32)
	b[0], b[1] = 0x1f, 0x00
	return b
}

func fixtureFiles(t *testing.T) map[string][]byte {
	metatiles := make([]byte, 32)
	metatiles[0], metatiles[1] = 0x05, 0x3c
	metatiles[16] = 0x01

	return map[string][]byte{
		"data/maps/_groups.inc":              []byte(groupsText),
		"data/maps/_assets.inc":              []byte(assetsText),
		"data/maps/Town/header.inc":          []byte(townHeaderText),
		"data/maps/Town/connections.inc":     []byte(townConnectionsText),
		"data/maps/Town/border.bin":          {0x01, 0x00, 0x02, 0x00},
		"data/layouts/town.bin":              {0x01, 0x00, 0x02, 0x00, 0x03, 0x00, 0x04, 0x00, 0xff},
		"data/maps/events/Town.inc":          []byte(townEventsText),
		"data/maps/Route101/header.inc":      []byte(route101HeaderText),
		"data/maps/Route101/map.bin":         {0x09, 0x00},
		"data/tilesets/headers.inc":          []byte(tilesetHeadersText),
		"data/tilesets/graphics.inc":         []byte(tilesetGraphicsText),
		"data/tilesets/metatiles.inc":        []byte(tilesetMetatilesText),
		"constants/songs.inc":                []byte(songsText),
		"constants/map_object_constants.inc": []byte(objectConstantsText),

		"data/tilesets/primary/general/tiles.png":               tileSheet(t),
		"data/tilesets/primary/general/metatiles.bin":           metatiles,
		"data/tilesets/primary/general/metatile_attributes.bin": {0x34, 0x12},
		"data/tilesets/primary/general/palettes/00.gbapal":      paletteBytes(),
		"data/tilesets/secondary/petalburg/metatiles.bin":       append(make([]byte, 16), 0xff),

		"include/data/field_map_obj/map_object_graphics_info_pointers.h": []byte(pointersText),
		"include/data/field_map_obj/map_object_graphics_info.h":          []byte(infoText),
		"include/data/field_map_obj/map_object_pic_tables.h":             []byte(picTablesText),
		"src/field/field_map_obj.c":                                      []byte(objectGraphicsText),
	}
}

func writeFiles(t *testing.T, root string, files map[string][]byte) {
	for name, b := range files {
		file := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(file), 0o755))
		require.NoError(t, ioutil.WriteFile(file, b, 0o644))
	}
}

// newFixture writes a small project to a temporary directory and opens it.
func newFixture(t *testing.T) (*Project, *test.Hook) {
	root := filepath.Join(t.TempDir(), "pokeruby")
	writeFiles(t, root, fixtureFiles(t))

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	p, err := New(root, DefaultLayout(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { p.Close() })

	return p, hook
}

func readFixture(t *testing.T, p *Project, name string) []byte {
	b, err := ioutil.ReadFile(p.path(name))
	require.NoError(t, err)
	return b
}
