/*
Package palette implements the GBA palette format.

A palette file holds 16 colors, each a little-endian 16-bit word packed as
0BBBBBGGGGGRRRRR. Channels are scaled up to 8 bits by multiplying by 8.

Colors are accumulated in reverse: the first word in the file lands in the
last slot of the decoded palette and the last word in slot 0. Existing assets
depend on this ordering so it is kept as is.
*/
package palette

import (
	"image/color"
)

const (
	// Colors is the number of colors in a palette
	Colors = 16
	// Size is the size in bytes of an encoded palette
	Size = Colors << 1

	channelMask  = 0x1f
	channelScale = 8
)

func decodeColor(word uint16) color.RGBA {
	return color.RGBA{
		uint8(word&channelMask) * channelScale,
		uint8(word>>5&channelMask) * channelScale,
		uint8(word>>10&channelMask) * channelScale,
		0xff,
	}
}

func encodeColor(c color.Color) uint16 {
	r, g, b, _ := c.RGBA()
	return uint16(r>>11&channelMask) | uint16(g>>11&channelMask)<<5 | uint16(b>>11&channelMask)<<10
}

// Decode reads a palette from b. Missing bytes at the end of a short file
// read as zero.
func Decode(b []byte) color.Palette {
	var tmp [Size]byte
	copy(tmp[:], b)

	p := make(color.Palette, Colors)
	for i := 0; i < Colors; i++ {
		word := uint16(tmp[i<<1]) | uint16(tmp[i<<1+1])<<8
		p[Colors-1-i] = decodeColor(word)
	}
	return p
}

// Encode is the inverse of Decode. Only the first 16 colors of p are used and
// any missing colors are written as black.
func Encode(p color.Palette) []byte {
	b := make([]byte, Size)
	for i := 0; i < Colors && i < len(p); i++ {
		word := encodeColor(p[i])
		j := Colors - 1 - i
		b[j<<1] = byte(word)
		b[j<<1+1] = byte(word >> 8)
	}
	return b
}

// Greyscale returns a 16 step ramp from black upwards, used in place of a
// palette that couldn't be read.
func Greyscale() color.Palette {
	p := make(color.Palette, Colors)
	for i := range p {
		v := uint8(i * 16)
		p[i] = color.RGBA{v, v, v, 0xff}
	}
	return p
}
