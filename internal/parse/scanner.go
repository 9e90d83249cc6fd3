package parse

import (
	"io"

	"github.com/mcvoid/pooljson/internal/tables"
	"github.com/mcvoid/pooljson/internal/transcode"
)

// scanner walks the raw input buffer one code point at a time,
// decoding according to the detected (or supplied) input encoding and
// byte order. Structural JSON tokens, whitespace, and comment markers
// are all ASCII, so a single rune-oriented cursor suffices regardless of
// input width.
type scanner struct {
	buf  []byte
	pos  int
	end  int
	enc  tables.Encoding
	swap bool
}

func newScanner(buf []byte, end int, enc tables.Encoding, swap bool) *scanner {
	return &scanner{buf: buf, pos: 0, end: end, enc: enc, swap: swap}
}

// atEnd reports whether the cursor has reached the logical end of input.
func (s *scanner) atEnd() bool {
	return s.pos >= s.end
}

// peek decodes the code point at the current position without
// consuming it. io.EOF signals atEnd.
func (s *scanner) peek() (r rune, n int, err error) {
	if s.atEnd() {
		return 0, 0, io.EOF
	}
	return transcode.Decode(s.enc, s.swap, s.buf, s.pos)
}

// peekIsZero reports whether the scanner is at a code-unit-zero (the
// NUL terminator convention used to signal logical end-of-input
// alongside, or instead of, the byte-count bound - spec §4.E).
func (s *scanner) peekIsZero() bool {
	r, _, err := s.peek()
	return err == nil && r == 0
}

// atLogicalEnd reports whether parsing has reached a point past which
// only whitespace/comments and a code-unit-zero may appear (spec §4.E:
// "After the root is consumed, only whitespace/comments and
// code-unit-zero may follow").
func (s *scanner) atLogicalEnd() bool {
	return s.atEnd() || s.peekIsZero()
}

// advance moves the cursor forward by n bytes (as returned by peek/Decode).
func (s *scanner) advance(n int) { s.pos += n }

// next decodes and consumes one code point.
func (s *scanner) next() (rune, error) {
	r, n, err := s.peek()
	if err != nil {
		return 0, err
	}
	s.advance(n)
	return r, nil
}
