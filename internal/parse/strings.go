package parse

import (
	"github.com/mcvoid/pooljson/internal/doc"
	"github.com/mcvoid/pooljson/internal/tables"
	"github.com/mcvoid/pooljson/internal/transcode"
	"github.com/mcvoid/pooljson/internal/units"
)

// parseStringValue scans a string value and wraps it as a doc.Value.
func (p *parser) parseStringValue() (*doc.Value, *doc.ParseError) {
	text, perr := p.scanString()
	if perr != nil {
		return nil, perr
	}
	return p.doc.NewRawString(text), nil
}

// scanHex4 reads exactly four hex digits (as decoded code points in the
// input encoding) and combines them into a 16-bit value.
func (p *parser) scanHex4() (uint16, *doc.ParseError) {
	var v uint16
	for i := 0; i < 4; i++ {
		pos := p.s.pos
		r, err := p.s.next()
		if err != nil {
			return 0, p.errAt(doc.ErrInvalidHex, pos, "truncated \\u escape")
		}
		if r > 255 {
			return 0, p.errAt(doc.ErrInvalidHex, pos, "invalid hex digit")
		}
		hv, ok := tables.HexValue(byte(r))
		if !ok {
			return 0, p.errAt(doc.ErrInvalidHex, pos, "invalid hex digit %q", r)
		}
		v = v<<4 | uint16(hv)
	}
	return v, nil
}

// walkString scans the body of a string literal, from just after the
// opening quote (which the caller must already have consumed) through
// the closing quote (which walkString consumes). If emit is non-nil, it
// is called with each decoded, escape-resolved code point in order - the
// second ("write") pass uses this; the first ("measure") pass passes nil
// and only validates + measures.
//
// Escapes recognized: \" \\ \/ \b \f \n \r \t \uXXXX, with surrogate
// pairing for \uXXXX in the high-surrogate range (spec §4.E "Strings").
func (p *parser) walkString(emit func(r rune)) (contentStart, contentEnd int, hadEscapes bool, outputUnits int, perr *doc.ParseError) {
	s := p.s
	s.next() // consume opening quote
	contentStart = s.pos

	for {
		r, _, err := s.peek()
		if err != nil || r == 0 {
			return 0, 0, false, 0, p.errAt(doc.ErrUnterminatedString, s.pos, "unterminated string")
		}
		if r == '"' {
			contentEnd = s.pos
			s.next()
			return contentStart, contentEnd, hadEscapes, outputUnits, nil
		}
		if r != '\\' {
			if emit != nil {
				emit(r)
			}
			outputUnits += transcode.Measure(p.outEnc, r) / units.Size(p.outEnc)
			s.next()
			continue
		}

		hadEscapes = true
		escStart := s.pos
		s.next() // consume backslash
		er, eerr := s.next()
		if eerr != nil {
			return 0, 0, false, 0, p.errAt(doc.ErrUnterminatedString, s.pos, "unterminated string")
		}

		var out rune
		switch er {
		case '"':
			out = '"'
		case '\\':
			out = '\\'
		case '/':
			out = '/'
		case 'b':
			out = 0x08
		case 'f':
			out = 0x0C
		case 'n':
			out = 0x0A
		case 'r':
			out = 0x0D
		case 't':
			out = 0x09
		case 'u':
			v1, perr := p.scanHex4()
			if perr != nil {
				return 0, 0, false, 0, perr
			}
			switch {
			case v1 >= 0xD800 && v1 <= 0xDBFF:
				r2, err2 := s.next()
				if err2 != nil || r2 != '\\' {
					return 0, 0, false, 0, p.errAt(doc.ErrInvalidSurrogate, escStart, "lone high surrogate")
				}
				r3, err3 := s.next()
				if err3 != nil || r3 != 'u' {
					return 0, 0, false, 0, p.errAt(doc.ErrInvalidSurrogate, escStart, "lone high surrogate")
				}
				v2, perr2 := p.scanHex4()
				if perr2 != nil {
					return 0, 0, false, 0, perr2
				}
				if v2 < 0xDC00 || v2 > 0xDFFF {
					return 0, 0, false, 0, p.errAt(doc.ErrInvalidSurrogate, escStart, "invalid low surrogate")
				}
				out = ((rune(v1)-0xD800)<<10 | (rune(v2) - 0xDC00)) + 0x10000
			case v1 >= 0xDC00 && v1 <= 0xDFFF:
				return 0, 0, false, 0, p.errAt(doc.ErrInvalidSurrogate, escStart, "lone low surrogate")
			default:
				out = rune(v1)
			}
		default:
			return 0, 0, false, 0, p.errAt(doc.ErrInvalidEscape, escStart, "invalid escape \\%c", er)
		}
		if emit != nil {
			emit(out)
		}
		outputUnits += transcode.Measure(p.outEnc, out) / units.Size(p.outEnc)
	}
}

// scanString scans one string literal starting at the current '"' and
// returns its rendered text, choosing between the in-place and copy
// paths per the storage-decision table of spec §4.E.
func (p *parser) scanString() ([]byte, *doc.ParseError) {
	start := p.s.pos
	contentStart, contentEnd, hadEscapes, outputUnits, perr := p.walkString(nil)
	if perr != nil {
		return nil, perr
	}

	inEnc := p.s.enc
	outEnc := p.outEnc
	translateRequired := hadEscapes || inEnc != outEnc
	forceArena := p.flags.has(ForceStringTerminators)

	if !translateRequired && !forceArena {
		text := p.s.buf[contentStart:contentEnd:contentEnd]
		if !p.flags.has(NoStringTerminators) {
			p.writeNulTerminator(contentEnd, outEnc)
		}
		return text, nil
	}

	if !translateRequired && forceArena {
		unitSz := units.Size(outEnc)
		outBuf, allocErr := p.doc.Arena().Alloc(outputUnits*unitSz + unitSz)
		if allocErr != nil {
			return nil, p.errAt(doc.ErrOutOfMemory, start, "arena exhausted scanning string")
		}
		copy(outBuf, p.s.buf[contentStart:contentEnd])
		units.Write(outBuf, outEnc, outputUnits, 0)
		return outBuf[:outputUnits*unitSz : outputUnits*unitSz], nil
	}

	if !forceArena && !p.flags.has(NoInlineTranslation) && inEnc == outEnc {
		cursor := contentStart
		p.s.pos = start
		_, _, _, _, rewalkErr := p.walkString(func(r rune) {
			cursor += transcode.Encode(outEnc, r, p.s.buf[cursor:])
		})
		if rewalkErr != nil {
			return nil, rewalkErr
		}
		text := p.s.buf[contentStart:cursor:cursor]
		if !p.flags.has(NoStringTerminators) {
			p.writeNulTerminator(cursor, outEnc)
		}
		return text, nil
	}

	unitSz := units.Size(outEnc)
	outBuf, allocErr := p.doc.Arena().Alloc(outputUnits*unitSz + unitSz)
	if allocErr != nil {
		return nil, p.errAt(doc.ErrOutOfMemory, start, "arena exhausted scanning string")
	}
	cursor := 0
	p.s.pos = start
	_, _, _, _, rewalkErr := p.walkString(func(r rune) {
		cursor += transcode.Encode(outEnc, r, outBuf[cursor:])
	})
	if rewalkErr != nil {
		return nil, rewalkErr
	}
	units.Write(outBuf, outEnc, outputUnits, 0)
	return outBuf[:cursor:cursor], nil
}

// writeNulTerminator zero-fills one code unit of width enc starting at
// byte offset off in the input buffer, if room remains - the destructive
// in-place termination of spec §4.E ("write a code-unit-zero into the
// input one past text.end"). Out-of-range writes are silently skipped:
// at true end-of-buffer there is nothing to overwrite and none is owed.
func (p *parser) writeNulTerminator(off int, enc tables.Encoding) {
	size := units.Size(enc)
	if off+size > len(p.s.buf) {
		return
	}
	for i := 0; i < size; i++ {
		p.s.buf[off+i] = 0
	}
}
