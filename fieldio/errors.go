package fieldio

import "errors"

var (
	// ErrTruncated indicates the input ended before a complete header or
	// payload could be read.
	ErrTruncated = errors.New("fieldio: truncated input")

	// ErrBadMagic indicates the input does not start with the fieldio
	// magic number; it is not a field encoded by this package.
	ErrBadMagic = errors.New("fieldio: bad magic number")

	// ErrUnsupportedVersion indicates the input's format version is newer
	// than this package understands.
	ErrUnsupportedVersion = errors.New("fieldio: unsupported format version")

	// ErrSizeMismatch indicates values' length does not equal Prod(size)
	// when encoding, or the decoded buffer length does not match the
	// decoded header when decoding.
	ErrSizeMismatch = errors.New("fieldio: values length does not match size")
)
