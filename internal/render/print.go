// Package render implements the JSON printer of spec §4.F: walking a
// document's tree and emitting RFC 7159 text (indentation, whitespace,
// and string-escaping rules), transcoding every code point from the
// document's storage width to whatever output encoding the caller asks
// for - printing is not tied to the document's own width.
package render

import (
	"io"
	"unicode/utf16"

	"github.com/mcvoid/pooljson/internal/doc"
	"github.com/mcvoid/pooljson/internal/tables"
	"github.com/mcvoid/pooljson/internal/transcode"
	"github.com/mcvoid/pooljson/internal/units"
)

// Flags controls the printer's layout (spec §4.F).
type Flags uint32

const (
	// NoWhitespace requests the fully compact form: no spaces, no
	// newlines, no indentation.
	NoWhitespace Flags = 1 << iota
	// UseSpaces indents with spaces instead of tabs.
	UseSpaces
	Indent1
	Indent2
	Indent4
	Indent8
)

func (f Flags) has(bit Flags) bool { return f&bit != 0 }

func indentWidth(f Flags) int {
	switch {
	case f.has(Indent1):
		return 1
	case f.has(Indent2):
		return 2
	case f.has(Indent8):
		return 8
	default:
		return 4
	}
}

// Print walks root (an object, array, or any scalar value) and writes
// RFC 7159 JSON to w, encoded as outEnc (optionally byte-swapped),
// regardless of root's owning document's own width.
func Print(w io.Writer, root *doc.Value, outEnc tables.Encoding, swap bool, flags Flags) error {
	p := &printer{
		w:        w,
		docWidth: root.Document().Width(),
		outEnc:   outEnc,
		swap:     swap,
		flags:    flags,
	}
	return p.printValue(root, 0)
}

type printer struct {
	w        io.Writer
	docWidth tables.Encoding
	outEnc   tables.Encoding
	swap     bool
	flags    Flags
}

func (p *printer) writeRune(r rune) error {
	var scratch [8]byte
	n := transcode.Encode(p.outEnc, r, scratch[:])
	if p.swap {
		swapUnits(scratch[:n], p.outEnc)
	}
	_, err := p.w.Write(scratch[:n])
	return err
}

func swapUnits(b []byte, enc tables.Encoding) {
	size := units.Size(enc)
	if size <= 1 {
		return
	}
	for i := 0; i < len(b); i += size {
		for l, r := i, i+size-1; l < r; l, r = l+1, r-1 {
			b[l], b[r] = b[r], b[l]
		}
	}
}

func (p *printer) writeASCII(s string) error {
	for i := 0; i < len(s); i++ {
		if err := p.writeRune(rune(s[i])); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) writeIndent(depth int) error {
	width := indentWidth(p.flags)
	if p.flags.has(UseSpaces) {
		for i := 0; i < depth*width; i++ {
			if err := p.writeRune(' '); err != nil {
				return err
			}
		}
		return nil
	}
	for i := 0; i < depth; i++ {
		if err := p.writeRune('\t'); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) printValue(v *doc.Value, depth int) error {
	switch v.Kind() {
	case doc.KindNull, doc.KindBool, doc.KindNumber:
		return p.copyVerbatim(v.Text())
	case doc.KindString:
		return p.printString(v.Text())
	case doc.KindArray:
		return p.printArray(v, depth)
	case doc.KindObject:
		return p.printObject(v, depth)
	default:
		return nil
	}
}

// copyVerbatim re-encodes an already-canonical scalar text (a literal or
// a rendered number) from the document's width to the output encoding,
// without any escaping - spec §4.F: "Scalar values whose text is already
// in canonical form are copied verbatim."
func (p *printer) copyVerbatim(text []byte) error {
	pos := 0
	for pos < len(text) {
		r, n, err := transcode.Decode(p.docWidth, false, text, pos)
		if err != nil {
			return err
		}
		pos += n
		if err := p.writeRune(r); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) printArray(v *doc.Value, depth int) error {
	if err := p.writeASCII("["); err != nil {
		return err
	}
	first := true
	for c := v.FirstChild(); c != nil; c = c.Next() {
		if !first {
			sep := ", "
			if p.flags.has(NoWhitespace) {
				sep = ","
			}
			if err := p.writeASCII(sep); err != nil {
				return err
			}
		}
		first = false
		if err := p.printValue(c, depth); err != nil {
			return err
		}
	}
	return p.writeASCII("]")
}

func (p *printer) printObject(v *doc.Value, depth int) error {
	if v.IsEmpty() {
		return p.writeASCII("{}")
	}
	compact := p.flags.has(NoWhitespace)
	if err := p.writeASCII("{"); err != nil {
		return err
	}
	if !compact {
		if err := p.writeASCII("\n"); err != nil {
			return err
		}
	}
	childDepth := depth + 1
	count := 0
	for c := v.FirstChild(); c != nil; c = c.Next() {
		if count > 0 {
			sep := ",\n"
			if compact {
				sep = ","
			}
			if err := p.writeASCII(sep); err != nil {
				return err
			}
		}
		count++
		if !compact {
			if err := p.writeIndent(childDepth); err != nil {
				return err
			}
		}
		if err := p.printString(c.Name()); err != nil {
			return err
		}
		colon := ": "
		if compact {
			colon = ":"
		}
		if err := p.writeASCII(colon); err != nil {
			return err
		}
		if err := p.printValue(c, childDepth); err != nil {
			return err
		}
	}
	if !compact {
		if err := p.writeASCII("\n"); err != nil {
			return err
		}
		if err := p.writeIndent(depth); err != nil {
			return err
		}
	}
	return p.writeASCII("}")
}

func (p *printer) printString(text []byte) error {
	if err := p.writeASCII("\""); err != nil {
		return err
	}
	pos := 0
	for pos < len(text) {
		r, n, err := transcode.Decode(p.docWidth, false, text, pos)
		if err != nil {
			return err
		}
		pos += n
		if err := p.emitEscaped(r); err != nil {
			return err
		}
	}
	return p.writeASCII("\"")
}

func (p *printer) emitEscaped(r rune) error {
	switch r {
	case '\\':
		return p.writeASCII(`\\`)
	case '"':
		return p.writeASCII(`\"`)
	case 0x08:
		return p.writeASCII(`\b`)
	case 0x0C:
		return p.writeASCII(`\f`)
	case 0x0A:
		return p.writeASCII(`\n`)
	case 0x0D:
		return p.writeASCII(`\r`)
	case 0x09:
		return p.writeASCII(`\t`)
	}
	if r < 0x20 || r > 0x7F {
		return p.writeUnicodeEscape(r)
	}
	return p.writeRune(r)
}

func (p *printer) writeUnicodeEscape(r rune) error {
	if r >= 0x10000 {
		r1, r2 := utf16.EncodeRune(r)
		if err := p.writeHexEscape(uint16(r1)); err != nil {
			return err
		}
		return p.writeHexEscape(uint16(r2))
	}
	return p.writeHexEscape(uint16(r))
}

func (p *printer) writeHexEscape(u uint16) error {
	var buf [6]byte
	buf[0], buf[1] = '\\', 'u'
	buf[2] = tables.HexChar[(u>>12)&0xF]
	buf[3] = tables.HexChar[(u>>8)&0xF]
	buf[4] = tables.HexChar[(u>>4)&0xF]
	buf[5] = tables.HexChar[u&0xF]
	for _, b := range buf {
		if err := p.writeRune(rune(b)); err != nil {
			return err
		}
	}
	return nil
}
