package tilemap

// Layout describes where each source file lives, relative to the project
// root. Entries containing %s are formatted with the map name.
type Layout struct {
	MapHeader      string `mapstructure:"map_header"`
	MapConnections string `mapstructure:"map_connections"`
	MapEvents      string `mapstructure:"map_events"`
	MapBlockdata   string `mapstructure:"map_blockdata"`
	MapBorder      string `mapstructure:"map_border"`
	MapAssets      string `mapstructure:"map_assets"`
	MapGroups      string `mapstructure:"map_groups"`

	TilesetHeaders   string `mapstructure:"tileset_headers"`
	TilesetGraphics  string `mapstructure:"tileset_graphics"`
	TilesetMetatiles string `mapstructure:"tileset_metatiles"`
	TilesetDir       string `mapstructure:"tileset_dir"`
	TilesetPrefix    string `mapstructure:"tileset_prefix"`

	Songs           string `mapstructure:"songs"`
	ObjectConstants string `mapstructure:"object_constants"`

	ObjectGraphicsPointers string `mapstructure:"object_graphics_pointers"`
	ObjectGraphicsInfo     string `mapstructure:"object_graphics_info"`
	ObjectPicTables        string `mapstructure:"object_pic_tables"`
	ObjectGraphics         string `mapstructure:"object_graphics"`
}

// DefaultLayout returns the layout used by the pokeruby family of projects.
func DefaultLayout() Layout {
	return Layout{
		MapHeader:      "data/maps/%s/header.inc",
		MapConnections: "data/maps/%s/connections.inc",
		MapEvents:      "data/maps/events/%s.inc",
		MapBlockdata:   "data/maps/%s/map.bin",
		MapBorder:      "data/maps/%s/border.bin",
		MapAssets:      "data/maps/_assets.inc",
		MapGroups:      "data/maps/_groups.inc",

		TilesetHeaders:   "data/tilesets/headers.inc",
		TilesetGraphics:  "data/tilesets/graphics.inc",
		TilesetMetatiles: "data/tilesets/metatiles.inc",
		TilesetDir:       "data/tilesets",
		TilesetPrefix:    "gTileset_",

		Songs:           "constants/songs.inc",
		ObjectConstants: "constants/map_object_constants.inc",

		ObjectGraphicsPointers: "include/data/field_map_obj/map_object_graphics_info_pointers.h",
		ObjectGraphicsInfo:     "include/data/field_map_obj/map_object_graphics_info.h",
		ObjectPicTables:        "include/data/field_map_obj/map_object_pic_tables.h",
		ObjectGraphics:         "src/field/field_map_obj.c",
	}
}
