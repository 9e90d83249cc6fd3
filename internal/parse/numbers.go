package parse

import (
	"github.com/mcvoid/pooljson/internal/doc"
	"github.com/mcvoid/pooljson/internal/tables"
	"github.com/mcvoid/pooljson/internal/transcode"
	"github.com/mcvoid/pooljson/internal/units"
)

// isASCIIDigit reports whether r is '0'..'9'.
func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

// scanNumberSpan scans a number's raw text span per the grammar of spec
// §4.E: optional '-', then '0' or [1-9][0-9]* (leading zeros rejected by
// construction - a leading '0' simply never consumes a following
// digit), optional '.'[0-9]+, optional [eE][+-]?[0-9]+. No evaluation
// happens here; evaluation is deferred to Value.AsNumber.
func (p *parser) scanNumberSpan() (start, end int, perr *doc.ParseError) {
	s := p.s
	start = s.pos

	if r, _, _ := s.peek(); r == '-' {
		s.next()
		r2, _, err := s.peek()
		if err != nil || !isASCIIDigit(r2) {
			return 0, 0, p.errAt(doc.ErrExpectedDigit, s.pos, "expected digit after '-'")
		}
	}

	r, _, err := s.peek()
	if err != nil || !isASCIIDigit(r) {
		return 0, 0, p.errAt(doc.ErrExpectedDigit, s.pos, "expected digit")
	}
	if r == '0' {
		s.next() // a leading zero never admits another digit in the integer part
	} else {
		for {
			r, _, err := s.peek()
			if err != nil || !isASCIIDigit(r) {
				break
			}
			s.next()
		}
	}

	if r, _, _ := s.peek(); r == '.' {
		s.next()
		r2, _, err := s.peek()
		if err != nil || !isASCIIDigit(r2) {
			return 0, 0, p.errAt(doc.ErrExpectedDigit, s.pos, "expected digit after '.'")
		}
		for {
			r, _, err := s.peek()
			if err != nil || !isASCIIDigit(r) {
				break
			}
			s.next()
		}
	}

	if r, _, _ := s.peek(); r == 'e' || r == 'E' {
		s.next()
		if r2, _, _ := s.peek(); r2 == '+' || r2 == '-' {
			s.next()
		}
		r3, _, err := s.peek()
		if err != nil || !isASCIIDigit(r3) {
			return 0, 0, p.errAt(doc.ErrExpectedDigit, s.pos, "expected digit in exponent")
		}
		for {
			r, _, err := s.peek()
			if err != nil || !isASCIIDigit(r) {
				break
			}
			s.next()
		}
	}

	return start, s.pos, nil
}

// parseNumber scans a number and wraps it as a doc.Value. Numbers carry
// no escapes, so the only reason to translate is a code-unit width
// mismatch between input and document (spec §4.E storage-decision table).
// A number's text ends exactly where the next, not yet consumed token
// begins, so an in-place terminator would overwrite it: the text is left
// in the input only under NoStringTerminators, and is otherwise copied
// into the arena and NUL-terminated there.
func (p *parser) parseNumber() (*doc.Value, *doc.ParseError) {
	start, end, perr := p.scanNumberSpan()
	if perr != nil {
		return nil, perr
	}

	inEnc := p.s.enc
	outEnc := p.outEnc

	if inEnc == outEnc && p.flags.has(NoStringTerminators) {
		return p.doc.NewRawNumber(p.s.buf[start:end:end]), nil
	}

	if inEnc == outEnc {
		n := unitCountBetween(p.s.buf, start, end, inEnc)
		unitSz := units.Size(outEnc)
		outBuf, allocErr := p.doc.Arena().Alloc(n*unitSz + unitSz)
		if allocErr != nil {
			return nil, p.errAt(doc.ErrOutOfMemory, start, "arena exhausted scanning number")
		}
		copy(outBuf, p.s.buf[start:end])
		units.Write(outBuf, outEnc, n, 0)
		return p.doc.NewRawNumber(outBuf[:n*unitSz : n*unitSz]), nil
	}

	n := unitCountBetween(p.s.buf, start, end, inEnc)
	unitSz := units.Size(outEnc)
	outBuf, allocErr := p.doc.Arena().Alloc(n*unitSz + unitSz)
	if allocErr != nil {
		return nil, p.errAt(doc.ErrOutOfMemory, start, "arena exhausted scanning number")
	}
	cursor, pos := 0, start
	for pos < end {
		r, consumed, decErr := transcode.Decode(inEnc, p.s.swap, p.s.buf, pos)
		if decErr != nil {
			return nil, p.errAt(doc.ErrInvalidEncoding, pos, "invalid encoding in number")
		}
		cursor += transcode.Encode(outEnc, r, outBuf[cursor:])
		pos += consumed
	}
	units.Write(outBuf, outEnc, n, 0)
	return p.doc.NewRawNumber(outBuf[:cursor:cursor]), nil
}

func unitCountBetween(buf []byte, start, end int, enc tables.Encoding) int {
	size := units.Size(enc)
	if size == 0 {
		return 0
	}
	return (end - start) / size
}
