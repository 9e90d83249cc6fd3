package doc

import (
	"bytes"

	"github.com/mcvoid/pooljson/internal/tables"
	"github.com/mcvoid/pooljson/internal/transcode"
	"github.com/mcvoid/pooljson/internal/units"
)

func unitSize(width tables.Encoding) int                        { return units.Size(width) }
func readUnit(buf []byte, width tables.Encoding, i int) uint32  { return units.Read(buf, width, i) }
func writeUnit(buf []byte, width tables.Encoding, i int, v uint32) { units.Write(buf, width, i, v) }
func unitCount(buf []byte, width tables.Encoding) int           { return units.Count(buf, width) }

// textEqual reports whether two code-unit ranges of the same document
// width hold identical code-unit sequences. Raw byte equality is
// sufficient (and cheaper than unit-by-unit comparison) because both
// ranges share width and native byte order: equal bytes imply an
// identical unit sequence regardless of endianness. object_set (§4.D)
// specifies case-sensitive code-unit comparison, never Unicode
// normalization, which this matches exactly.
func textEqual(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// matchesString reports whether buf (code units at width) holds exactly
// the same sequence of code points as the Go string s, without
// allocating an encoded copy of s first.
func matchesString(buf []byte, width tables.Encoding, s string) bool {
	pos := 0
	for _, want := range s {
		r, n, err := transcode.Decode(width, false, buf, pos)
		if err != nil || r != want {
			return false
		}
		pos += n
	}
	return pos == len(buf)
}
