package parse

import (
	"encoding/binary"

	"github.com/mcvoid/pooljson/internal/doc"
	"github.com/mcvoid/pooljson/internal/tables"
)

// DetectEncoding infers the input's code-unit width and byte order from
// the raw bytes alone, per spec §4.E "Encoding detection". "Native" byte
// order is fixed as little-endian for the purpose of this algorithm -
// Go exposes no portable notion of host order without reaching for
// unsafe, and the detection rules only need a single, deterministic
// convention to decide "swap or not" (see DESIGN.md).
func DetectEncoding(buf []byte, byteCount int) (enc tables.Encoding, swap bool, err error) {
	if byteCount < 2 {
		return tables.UTF8Encoding, false, nil
	}
	if byteCount%4 != 0 && byteCount%4 != 2 {
		// Rule 1: can't be 16- or 32-bit aligned.
		return tables.UTF8Encoding, false, nil
	}
	if buf[0] != 0 && buf[1] != 0 {
		// Rule 2.
		return tables.UTF8Encoding, false, nil
	}

	u16_0 := binary.LittleEndian.Uint16(buf[0:2])
	var u16_1 uint16
	if byteCount >= 4 {
		u16_1 = binary.LittleEndian.Uint16(buf[2:4])
	}
	if u16_0 != 0 && u16_1 != 0 {
		// Rule 3.
		return tables.UTF16Encoding, u16_0 >= 256, nil
	}

	if byteCount < 4 {
		return tables.UTF8Encoding, false, nil
	}
	u32_0 := binary.LittleEndian.Uint32(buf[0:4])
	if u32_0 == 0 {
		// Rule 4.
		return tables.UnknownEncoding, false, doc.ErrInvalidEncoding
	}
	// Rule 5.
	return tables.UTF32Encoding, u32_0 >= 256, nil
}
