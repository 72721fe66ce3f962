/*
Package tile implements the tile word, metatile and tile sheet formats used by
GBA tilesets.

A tile word is a packed 16-bit value: bits 0-9 select one of 1024 8 by 8 tiles,
bit 10 flips it horizontally, bit 11 flips it vertically and bits 12-15 pick
one of 16 palettes. A metatile is eight tile words, four for each of two
layers, stored as a 16 byte little-endian record. Metatile attributes live in
a parallel file of one 16-bit word per metatile.
*/
package tile

const (
	tileWidth        = 8
	tileHeight       = tileWidth
	colorsPerPalette = 16

	indexMask   = 0x3ff
	xFlipBit    = 10
	yFlipBit    = 11
	paletteBit  = 12
	paletteMask = 0xf

	// TilesPerLayer is the number of tiles making up one metatile layer
	TilesPerLayer = 4
	// Layers is the number of layers in a metatile
	Layers = 2
	// TilesPerMetatile is the number of tile words in one metatile
	TilesPerMetatile = TilesPerLayer * Layers

	metatileBytes = TilesPerMetatile << 1
	attrBytes     = 2
)

// Tile is a decoded tile word.
type Tile struct {
	Index   uint16
	XFlip   bool
	YFlip   bool
	Palette uint8
}

// Decode unpacks a tile word.
func Decode(word uint16) Tile {
	return Tile{
		Index:   word & indexMask,
		XFlip:   word>>xFlipBit&1 == 1,
		YFlip:   word>>yFlipBit&1 == 1,
		Palette: uint8(word >> paletteBit & paletteMask),
	}
}

// Word packs the tile back into a tile word.
func (t Tile) Word() uint16 {
	w := t.Index&indexMask | uint16(t.Palette&paletteMask)<<paletteBit
	if t.XFlip {
		w |= 1 << xFlipBit
	}
	if t.YFlip {
		w |= 1 << yFlipBit
	}
	return w
}
