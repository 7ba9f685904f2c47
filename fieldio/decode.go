package fieldio

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/ccurtis0/fast-marching-method/grid"
	"github.com/klauspost/compress/zstd"
)

// header is the parsed fixed-size prefix shared by Decode and FiniteCells.
type header struct {
	signed bool
	size   grid.Size
	dx     []float64
}

func readHeader(r *bytes.Reader) (header, error) {
	var gotMagic uint32
	if err := binary.Read(r, binary.LittleEndian, &gotMagic); err != nil {
		return header{}, ErrTruncated
	}
	if gotMagic != magic {
		return header{}, ErrBadMagic
	}

	var version uint16
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return header{}, ErrTruncated
	}
	if version != formatVersion {
		return header{}, ErrUnsupportedVersion
	}

	var signedByte byte
	if err := binary.Read(r, binary.LittleEndian, &signedByte); err != nil {
		return header{}, ErrTruncated
	}

	var ndim uint16
	if err := binary.Read(r, binary.LittleEndian, &ndim); err != nil {
		return header{}, ErrTruncated
	}
	size := make(grid.Size, ndim)
	for i := range size {
		var s int64
		if err := binary.Read(r, binary.LittleEndian, &s); err != nil {
			return header{}, ErrTruncated
		}
		size[i] = int(s)
	}
	dx := make([]float64, ndim)
	for i := range dx {
		if err := binary.Read(r, binary.LittleEndian, &dx[i]); err != nil {
			return header{}, ErrTruncated
		}
	}
	return header{signed: signedByte != 0, size: size, dx: dx}, nil
}

func readBitmapBytes(r *bytes.Reader) ([]byte, error) {
	var bitmapLen uint32
	if err := binary.Read(r, binary.LittleEndian, &bitmapLen); err != nil {
		return nil, ErrTruncated
	}
	bitmapBytes := make([]byte, bitmapLen)
	if _, err := io.ReadFull(r, bitmapBytes); err != nil {
		return nil, ErrTruncated
	}
	return bitmapBytes, nil
}

// Decode parses the fieldio wire format produced by Encode.
func Decode(data []byte) (Field, error) {
	r := bytes.NewReader(data)

	hdr, err := readHeader(r)
	if err != nil {
		return Field{}, err
	}
	if _, err := readBitmapBytes(r); err != nil {
		return Field{}, err
	}

	var compressedLen uint32
	if err := binary.Read(r, binary.LittleEndian, &compressedLen); err != nil {
		return Field{}, ErrTruncated
	}
	compressed := make([]byte, compressedLen)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return Field{}, ErrTruncated
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return Field{}, err
	}
	defer dec.Close()
	raw, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return Field{}, err
	}

	n := hdr.size.Product()
	if len(raw) != n*8 {
		return Field{}, ErrSizeMismatch
	}
	values := make([]float64, n)
	rawReader := bytes.NewReader(raw)
	for i := range values {
		if err := binary.Read(rawReader, binary.LittleEndian, &values[i]); err != nil {
			return Field{}, ErrTruncated
		}
	}

	return Field{Size: hdr.size, Dx: hdr.dx, Values: values, Signed: hdr.signed}, nil
}

// FiniteCells parses only the header and the roaring bitmap of an encoded
// field, without decompressing its value buffer. It lets a caller check
// which cells were reached by the solve (e.g. for a coverage preview) at a
// fraction of the cost of a full Decode.
func FiniteCells(data []byte) (*roaring.Bitmap, error) {
	r := bytes.NewReader(data)
	if _, err := readHeader(r); err != nil {
		return nil, err
	}
	bitmapBytes, err := readBitmapBytes(r)
	if err != nil {
		return nil, err
	}
	bm := roaring.New()
	if _, err := bm.FromBuffer(bitmapBytes); err != nil {
		return nil, err
	}
	return bm, nil
}
