package tile

import "encoding/binary"

// Metatile is a composite of eight tiles across two layers plus a behaviour
// attribute word.
type Metatile struct {
	Tiles [TilesPerMetatile]Tile
	Attr  uint16
}

// Layer returns the four tiles making up layer n.
func (m *Metatile) Layer(n int) []Tile {
	return m.Tiles[n*TilesPerLayer : (n+1)*TilesPerLayer]
}

// DecodeMetatiles decodes every complete 16 byte record in b. Any partial
// record at the end is ignored.
func DecodeMetatiles(b []byte) []Metatile {
	n := len(b) / metatileBytes
	metatiles := make([]Metatile, n)
	for i := range metatiles {
		record := b[i*metatileBytes:]
		for j := range metatiles[i].Tiles {
			metatiles[i].Tiles[j] = Decode(binary.LittleEndian.Uint16(record[j<<1:]))
		}
	}
	return metatiles
}

// EncodeMetatiles packs metatiles back into 16 byte records.
func EncodeMetatiles(metatiles []Metatile) []byte {
	b := make([]byte, len(metatiles)*metatileBytes)
	for i, m := range metatiles {
		for j, t := range m.Tiles {
			binary.LittleEndian.PutUint16(b[i*metatileBytes+j<<1:], t.Word())
		}
	}
	return b
}

// ApplyAttributes merges the attribute words in b into metatiles by index,
// returning the number applied. Attributes beyond the last metatile are
// ignored.
func ApplyAttributes(metatiles []Metatile, b []byte) int {
	n := len(b) / attrBytes
	if n > len(metatiles) {
		n = len(metatiles)
	}
	for i := 0; i < n; i++ {
		metatiles[i].Attr = binary.LittleEndian.Uint16(b[i*attrBytes:])
	}
	return n
}

// EncodeAttributes packs the attribute word of every metatile.
func EncodeAttributes(metatiles []Metatile) []byte {
	b := make([]byte, len(metatiles)*attrBytes)
	for i, m := range metatiles {
		binary.LittleEndian.PutUint16(b[i*attrBytes:], m.Attr)
	}
	return b
}
