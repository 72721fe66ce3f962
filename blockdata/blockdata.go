/*
Package blockdata implements the raw map layer format: a flat run of 16-bit
little-endian words, one per cell, with no header. The same format is used
for map borders.
*/
package blockdata

import (
	"encoding/binary"
	"io"
	"io/ioutil"
)

// Blockdata is an ordered sequence of cell words.
type Blockdata []uint16

// Decode converts b into words. A trailing odd byte is dropped.
func Decode(b []byte) Blockdata {
	d := make(Blockdata, 0, len(b)>>1)
	for i := 0; i+1 < len(b); i += 2 {
		d = append(d, binary.LittleEndian.Uint16(b[i:]))
	}
	return d
}

// Read decodes everything from r.
func Read(r io.Reader) (Blockdata, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(b), nil
}

// Encode converts the words back into little-endian byte pairs.
func (d Blockdata) Encode() []byte {
	b := make([]byte, len(d)<<1)
	for i, w := range d {
		binary.LittleEndian.PutUint16(b[i<<1:], w)
	}
	return b
}

// WriteTo writes the encoded words to w.
func (d Blockdata) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.Encode())
	return int64(n), err
}
