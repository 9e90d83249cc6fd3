package doc

import "github.com/mcvoid/pooljson/internal/transcode"

// allocText copies a Go string into the arena, encoded as code units of
// the document's width, returning the arena-owned byte range. s is
// decoded rune-by-rune and each code point is re-encoded at the
// document's width (UTF-8 bytes, UTF-16 units with surrogate pairs for
// astral code points, or UTF-32 units).
func (d *Document) allocText(s string) []byte {
	n := 0
	for _, r := range s {
		n += transcode.Measure(d.width, r)
	}
	buf, err := d.arena.Alloc(n)
	if err != nil {
		panic(err) // OutOfMemory: factories have no error return (spec §4.D); see DESIGN.md
	}
	i := 0
	for _, r := range s {
		i += transcode.Encode(d.width, r, buf[i:])
	}
	return buf
}

// allocRunes copies already-decoded code points into the arena, encoded
// at the document's width.
func (d *Document) allocRunes(rs []rune) []byte {
	n := 0
	for _, r := range rs {
		n += transcode.Measure(d.width, r)
	}
	buf, err := d.arena.Alloc(n)
	if err != nil {
		panic(err)
	}
	i := 0
	for _, r := range rs {
		i += transcode.Encode(d.width, r, buf[i:])
	}
	return buf
}

// NewNull returns a new detached Null value.
func (d *Document) NewNull() *Value {
	return &Value{doc: d, kind: KindNull, text: d.nullLit}
}

// NewBool returns a new detached Bool value.
func (d *Document) NewBool(b bool) *Value {
	if b {
		return &Value{doc: d, kind: KindBool, boolVal: true, text: d.trueLit}
	}
	return &Value{doc: d, kind: KindBool, boolVal: false, text: d.falseLit}
}

// NewNumber renders d per the canonical rules of §4.E ("allocate_number")
// and returns a new detached value. If d is non-finite, the returned
// value's kind is silently switched to String with text "Inf", "-Inf",
// or "NaN" - a deliberate design choice so the print path always
// produces legal JSON (spec §4.D).
func (d *Document) NewNumber(f float64) *Value {
	if text, ok := NonFiniteText(f); ok {
		return &Value{doc: d, kind: KindString, text: d.allocText(text)}
	}
	return &Value{doc: d, kind: KindNumber, text: d.allocText(RenderNumber(f))}
}

// NewString returns a new detached String value holding a copy of s in
// the arena.
func (d *Document) NewString(s string) *Value {
	return &Value{doc: d, kind: KindString, text: d.allocText(s)}
}

// NewArray returns a new detached, empty Array value.
func (d *Document) NewArray() *Value {
	return &Value{doc: d, kind: KindArray}
}

// NewObject returns a new detached, empty Object value.
func (d *Document) NewObject() *Value {
	return &Value{doc: d, kind: KindObject}
}

// NewRawString wraps an already-encoded code-unit range (pointing into
// either the input buffer or the arena - the parser decides which per
// §4.E's storage-decision table) as a detached String value, with no
// further allocation.
func (d *Document) NewRawString(text []byte) *Value {
	return &Value{doc: d, kind: KindString, text: text}
}

// NewRawNumber wraps an already-scanned numeric text range as a detached
// Number value. Evaluation to a double happens lazily (AsNumber).
func (d *Document) NewRawNumber(text []byte) *Value {
	return &Value{doc: d, kind: KindNumber, text: text}
}

// NewRawBool returns a detached Bool value pointing at the document's
// shared true/false literal text, the way the parser accepts the
// literals "true"/"false" without allocating.
func (d *Document) NewRawBool(b bool) *Value {
	return d.NewBool(b)
}

// NewRawNull returns a detached Null value pointing at the document's
// shared "null" literal text.
func (d *Document) NewRawNull() *Value {
	return d.NewNull()
}
