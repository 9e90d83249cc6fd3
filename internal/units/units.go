// Package units provides width-agnostic code-unit packing helpers shared
// by internal/doc (the document model) and internal/parse (the
// scanner): reading/writing a single code unit of a given width from/to
// a raw []byte buffer in native byte order, and counting units in a
// buffer. Keeping this in one place means the parser can write directly
// into arena- or input-backed buffers using the exact same packing the
// document model reads back.
package units

import "github.com/mcvoid/pooljson/internal/tables"

// Size returns the number of bytes per code unit for width.
func Size(width tables.Encoding) int {
	return tables.EncodingCodeUnitSize[width]
}

// Read reads the i-th code unit (0-based) out of buf.
func Read(buf []byte, width tables.Encoding, i int) uint32 {
	size := Size(width)
	off := i * size
	switch size {
	case 1:
		return uint32(buf[off])
	case 2:
		return uint32(buf[off]) | uint32(buf[off+1])<<8
	default: // 4
		return uint32(buf[off]) | uint32(buf[off+1])<<8 | uint32(buf[off+2])<<16 | uint32(buf[off+3])<<24
	}
}

// Write writes v as the i-th code unit into buf in native byte order.
func Write(buf []byte, width tables.Encoding, i int, v uint32) {
	size := Size(width)
	off := i * size
	switch size {
	case 1:
		buf[off] = byte(v)
	case 2:
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
	default: // 4
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v >> 16)
		buf[off+3] = byte(v >> 24)
	}
}

// Count returns how many code units buf holds at width.
func Count(buf []byte, width tables.Encoding) int {
	size := Size(width)
	if size == 0 {
		return 0
	}
	return len(buf) / size
}
