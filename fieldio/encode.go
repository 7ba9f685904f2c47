package fieldio

import (
	"bytes"
	"encoding/binary"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/klauspost/compress/zstd"
)

// magic identifies a fieldio-encoded buffer: ASCII "FMMF".
const magic uint32 = 0x464D4D46

// formatVersion is bumped whenever the wire layout changes incompatibly.
const formatVersion uint16 = 1

// Encode serializes f into the fieldio wire format: a fixed header
// (magic, version, signed flag, size, dx), a roaring bitmap of which
// cells are finite, and the flat value buffer, zstd-compressed.
func Encode(f Field) ([]byte, error) {
	if len(f.Values) != f.Size.Product() {
		return nil, ErrSizeMismatch
	}

	var header bytes.Buffer
	binary.Write(&header, binary.LittleEndian, magic)
	binary.Write(&header, binary.LittleEndian, formatVersion)
	binary.Write(&header, binary.LittleEndian, boolByte(f.Signed))
	binary.Write(&header, binary.LittleEndian, uint16(len(f.Size)))
	for _, s := range f.Size {
		binary.Write(&header, binary.LittleEndian, int64(s))
	}
	for _, d := range f.Dx {
		binary.Write(&header, binary.LittleEndian, d)
	}

	bm := roaring.New()
	bm.AddMany(finiteBits(f.Values))
	bitmapBytes, err := bm.ToBytes()
	if err != nil {
		return nil, err
	}
	binary.Write(&header, binary.LittleEndian, uint32(len(bitmapBytes)))
	header.Write(bitmapBytes)

	var raw bytes.Buffer
	raw.Grow(len(f.Values) * 8)
	for _, v := range f.Values {
		binary.Write(&raw, binary.LittleEndian, v)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	compressed := enc.EncodeAll(raw.Bytes(), nil)
	enc.Close()

	var out bytes.Buffer
	out.Write(header.Bytes())
	binary.Write(&out, binary.LittleEndian, uint32(len(compressed)))
	out.Write(compressed)
	return out.Bytes(), nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
