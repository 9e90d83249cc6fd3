package parse

import (
	"fmt"

	"github.com/mcvoid/pooljson/internal/doc"
	"github.com/mcvoid/pooljson/internal/tables"
)

const maxDepth = 1024

type parser struct {
	s      *scanner
	doc    *doc.Document
	flags  Flags
	outEnc tables.Encoding
	depth  int
}

// Parse parses buf into d's root, per spec §4.E. byteCount may be -1 to
// mean "NUL-terminated / unbounded"; per spec this requires enc to be
// explicitly supplied (not tables.UnknownEncoding). When byteCount is
// -1 the scanner's bound is simply len(buf): Go slices always carry a
// concrete length, so rather than synthesizing a sentinel end-of-address-
// space pointer (meaningful only in a pointer-and-length-free C API) the
// implementation trusts the slice bound, matching spec §9's allowance
// that implementations "may refuse unbounded input instead of
// simulating it" by reducing the simulation to the length already in
// hand. See DESIGN.md.
func Parse(d *doc.Document, buf []byte, byteCount int, enc tables.Encoding, flags Flags) error {
	if err := flags.Validate(); err != nil {
		perr := doc.NewParseError(doc.ErrInvalidEncoding, 0, err.Error())
		d.ErrorHandler()(perr)
		return perr
	}

	if byteCount < 0 {
		if enc == tables.UnknownEncoding {
			perr := doc.NewParseError(doc.ErrInvalidEncoding, 0, "unbounded input requires an explicit encoding")
			d.ErrorHandler()(perr)
			return perr
		}
		byteCount = len(buf)
	}
	if byteCount > len(buf) {
		byteCount = len(buf)
	}

	swap := false
	var err error
	if enc == tables.UnknownEncoding {
		enc, swap, err = DetectEncoding(buf, byteCount)
		if err != nil {
			perr := doc.NewParseError(doc.ErrInvalidEncoding, 0, "could not determine input encoding")
			d.ErrorHandler()(perr)
			return perr
		}
	}

	d.ResetRoot()

	p := &parser{
		s:      newScanner(buf, byteCount, enc, swap),
		doc:    d,
		flags:  flags,
		outEnc: d.Width(),
	}

	root, perr := p.parseDocument()
	if perr != nil {
		d.ErrorHandler()(perr)
		return perr
	}
	d.SetRoot(root)
	return nil
}

func (p *parser) errAt(kind error, offset int, format string, args ...any) *doc.ParseError {
	return doc.NewParseError(kind, offset, fmt.Sprintf(format, args...))
}

// parseDocument parses the single root value and checks for trailing
// content (spec §4.E grammar: "The root must be {...} or [...]. After
// the root is consumed, only whitespace/comments and code-unit-zero may
// follow").
func (p *parser) parseDocument() (*doc.Value, *doc.ParseError) {
	p.skipWhitespaceAndComments()
	r, _, err := p.s.peek()
	if err != nil {
		return nil, p.errAt(doc.ErrUnexpectedStart, p.s.pos, "empty input")
	}
	if r != '{' && r != '[' {
		return nil, p.errAt(doc.ErrUnexpectedStart, p.s.pos, "root value must be an object or array")
	}

	v, perr := p.parseValue()
	if perr != nil {
		return nil, perr
	}

	p.skipWhitespaceAndComments()
	if !p.s.atLogicalEnd() {
		return nil, p.errAt(doc.ErrUnexpectedTrailing, p.s.pos, "unexpected content after root value")
	}
	return v, nil
}

// parseValue parses exactly one JSON value at the current position.
func (p *parser) parseValue() (*doc.Value, *doc.ParseError) {
	r, _, err := p.s.peek()
	if err != nil {
		return nil, p.errAt(doc.ErrUnexpectedToken, p.s.pos, "expected a value")
	}

	switch {
	case r == '{':
		return p.parseObject()
	case r == '[':
		return p.parseArray()
	case r == '"':
		return p.parseStringValue()
	case r == '-' || (r >= '0' && r <= '9'):
		return p.parseNumber()
	case r == '.':
		return nil, p.errAt(doc.ErrExpectedDigit, p.s.pos, "numbers must have a leading digit before '.'")
	case r == 't':
		return p.parseLiteral("true", p.doc.NewRawBool(true))
	case r == 'f':
		return p.parseLiteral("false", p.doc.NewRawBool(false))
	case r == 'n':
		return p.parseLiteral("null", p.doc.NewRawNull())
	default:
		return nil, p.errAt(doc.ErrUnexpectedToken, p.s.pos, "unexpected character %q", r)
	}
}

// parseLiteral matches an exact ASCII keyword ("true", "false", "null")
// starting at the current position.
func (p *parser) parseLiteral(word string, v *doc.Value) (*doc.Value, *doc.ParseError) {
	start := p.s.pos
	for i := 0; i < len(word); i++ {
		r, err := p.s.next()
		if err != nil || r != rune(word[i]) {
			return nil, p.errAt(doc.ErrUnexpectedToken, start, "invalid literal, expected %q", word)
		}
	}
	return v, nil
}

func (p *parser) enterContainer() *doc.ParseError {
	p.depth++
	if p.depth > maxDepth {
		p.depth--
		return p.errAt(doc.ErrUnexpectedToken, p.s.pos, "maximum nesting depth exceeded")
	}
	return nil
}

func (p *parser) leaveContainer() { p.depth-- }

// parseObject parses "{ members }" starting at '{'.
func (p *parser) parseObject() (*doc.Value, *doc.ParseError) {
	if perr := p.enterContainer(); perr != nil {
		return nil, perr
	}
	defer p.leaveContainer()

	p.s.next() // consume '{'
	obj := p.doc.NewObject()

	p.skipWhitespaceAndComments()
	r, _, err := p.s.peek()
	if err == nil && r == '}' {
		p.s.next()
		return obj, nil
	}

	for {
		p.skipWhitespaceAndComments()
		r, _, err := p.s.peek()
		if err != nil || r != '"' {
			return nil, p.errAt(doc.ErrExpectedName, p.s.pos, "expected a member name")
		}
		name, perr := p.scanString()
		if perr != nil {
			return nil, perr
		}

		p.skipWhitespaceAndComments()
		r, _, err = p.s.peek()
		if err != nil || r != ':' {
			return nil, p.errAt(doc.ErrExpectedColon, p.s.pos, "expected ':'")
		}
		p.s.next()

		p.skipWhitespaceAndComments()
		val, perr := p.parseValue()
		if perr != nil {
			return nil, perr
		}
		obj.AppendChild(val, name)

		p.skipWhitespaceAndComments()
		r, _, err = p.s.peek()
		if err != nil {
			return nil, p.errAt(doc.ErrExpectedSeparator, p.s.pos, "expected ',' or '}'")
		}
		switch r {
		case ',':
			p.s.next()
			if p.flags.has(TrailingCommas) {
				p.skipWhitespaceAndComments()
				r2, _, err2 := p.s.peek()
				if err2 == nil && r2 == '}' {
					p.s.next()
					return obj, nil
				}
			}
			continue
		case '}':
			p.s.next()
			return obj, nil
		default:
			return nil, p.errAt(doc.ErrExpectedSeparator, p.s.pos, "expected ',' or '}'")
		}
	}
}

// parseArray parses "[ elements ]" starting at '['.
func (p *parser) parseArray() (*doc.Value, *doc.ParseError) {
	if perr := p.enterContainer(); perr != nil {
		return nil, perr
	}
	defer p.leaveContainer()

	p.s.next() // consume '['
	arr := p.doc.NewArray()

	p.skipWhitespaceAndComments()
	r, _, err := p.s.peek()
	if err == nil && r == ']' {
		p.s.next()
		return arr, nil
	}

	for {
		p.skipWhitespaceAndComments()
		val, perr := p.parseValue()
		if perr != nil {
			return nil, perr
		}
		arr.AppendChild(val, nil)

		p.skipWhitespaceAndComments()
		r, _, err := p.s.peek()
		if err != nil {
			return nil, p.errAt(doc.ErrExpectedSeparator, p.s.pos, "expected ',' or ']'")
		}
		switch r {
		case ',':
			p.s.next()
			if p.flags.has(TrailingCommas) {
				p.skipWhitespaceAndComments()
				r2, _, err2 := p.s.peek()
				if err2 == nil && r2 == ']' {
					p.s.next()
					return arr, nil
				}
			}
			continue
		case ']':
			p.s.next()
			return arr, nil
		default:
			return nil, p.errAt(doc.ErrExpectedSeparator, p.s.pos, "expected ',' or ']'")
		}
	}
}
