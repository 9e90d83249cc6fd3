// Package pooljson is a pooled, in-place JSON document model: a single
// Document owns an arena allocator and a tree of Values, and Parse fills
// it in one pass with as few allocations as the input's own encoding and
// escaping allow. Pretty-printing writes back out to any of UTF-8,
// UTF-16, or UTF-32, independent of the document's own width.
//
// The API is a thin re-export over internal/doc (the tree model),
// internal/parse (the scanner/parser), and internal/render (the
// printer) - split the way _examples/mcvoid-json keeps its public
// surface in json.go/parser.go while doing the real work underneath.
package pooljson

import (
	"io"

	"github.com/mcvoid/pooljson/internal/doc"
	"github.com/mcvoid/pooljson/internal/parse"
	"github.com/mcvoid/pooljson/internal/render"
	"github.com/mcvoid/pooljson/internal/tables"
)

// Encoding identifies a code-unit width (and, for Parse's input side,
// the byte order the bytes were found in).
type Encoding = tables.Encoding

const (
	UnknownEncoding = tables.UnknownEncoding
	UTF8            = tables.UTF8Encoding
	UTF16           = tables.UTF16Encoding
	UTF32           = tables.UTF32Encoding
)

// Kind tags the variant a Value currently holds.
type Kind = doc.Kind

const (
	KindNull   = doc.KindNull
	KindBool   = doc.KindBool
	KindNumber = doc.KindNumber
	KindString = doc.KindString
	KindArray  = doc.KindArray
	KindObject = doc.KindObject
)

// Value is a single JSON node. See internal/doc.Value for the full
// accessor and mutator set; Document.Root returns one.
type Value = doc.Value

// Document owns an arena and a tree of Values.
type Document = doc.Document

// Option configures a Document at construction time.
type Option = doc.Option

// WithErrorHandler installs a handler invoked synchronously on parse
// failure, before Parse returns the error.
func WithErrorHandler(h ErrorHandler) Option { return doc.WithErrorHandler(h) }

// WithArenaSizes overrides the arena's dynamic block size and alignment.
func WithArenaSizes(dynamicSize, align int) Option { return doc.WithArenaSizes(dynamicSize, align) }

// ErrorHandler is invoked synchronously with a failing parse's error,
// before Parse itself returns that same error.
type ErrorHandler = doc.ErrorHandler

// ParseError is returned by Parse on failure.
type ParseError = doc.ParseError

// Error sentinels, wrapped by every ParseError's Kind field.
var (
	ErrUnexpectedStart    = doc.ErrUnexpectedStart
	ErrUnexpectedTrailing = doc.ErrUnexpectedTrailing
	ErrUnexpectedToken    = doc.ErrUnexpectedToken
	ErrExpectedName       = doc.ErrExpectedName
	ErrExpectedColon      = doc.ErrExpectedColon
	ErrExpectedSeparator  = doc.ErrExpectedSeparator
	ErrUnterminatedString = doc.ErrUnterminatedString
	ErrInvalidEscape      = doc.ErrInvalidEscape
	ErrInvalidHex         = doc.ErrInvalidHex
	ErrInvalidSurrogate   = doc.ErrInvalidSurrogate
	ErrExpectedDigit      = doc.ErrExpectedDigit
	ErrInvalidEncoding    = doc.ErrInvalidEncoding
	ErrOutOfMemory        = doc.ErrOutOfMemory
)

// Flags is the parser's bitmask of grammar extensions and storage
// policy knobs.
type Flags = parse.Flags

const (
	NoStringTerminators    = parse.NoStringTerminators
	ForceStringTerminators = parse.ForceStringTerminators
	NoInlineTranslation    = parse.NoInlineTranslation
	TrailingCommas         = parse.TrailingCommas
	Comments               = parse.Comments
	NonDestructive         = parse.NonDestructive
	NonDestructiveNUL      = parse.NonDestructiveNUL
)

// NewDocument constructs an empty Document over the given code-unit
// width. The root starts as an empty object.
func NewDocument(width Encoding, opts ...Option) *Document {
	return doc.New(width, opts...)
}

// Parse parses buf into d's root. byteCount may be -1 to mean "use the
// whole of buf" (the idiomatic substitute for an unbounded/NUL-terminated
// input - see DESIGN.md). enc may be UnknownEncoding to request
// autodetection from buf's leading bytes (spec §4.E); autodetection
// requires byteCount >= 0, so byteCount -1 is accepted only together
// with an explicit enc.
func Parse(d *Document, buf []byte, byteCount int, enc Encoding, flags Flags) error {
	return parse.Parse(d, buf, byteCount, enc, flags)
}

// PrintFlags controls the printer's layout.
type PrintFlags = render.Flags

const (
	NoWhitespace = render.NoWhitespace
	UseSpaces    = render.UseSpaces
	Indent1      = render.Indent1
	Indent2      = render.Indent2
	Indent4      = render.Indent4
	Indent8      = render.Indent8
)

// Print walks root (typically d.Root(), but any Value may be printed on
// its own) and writes RFC 7159 JSON to w, encoded as outEnc and
// optionally byte-swapped, independent of root's own document's width.
func Print(w io.Writer, root *Value, outEnc Encoding, swap bool, flags PrintFlags) error {
	return render.Print(w, root, outEnc, swap, flags)
}

// Equal reports whether a and b are deeply structurally equal: same
// kind, same scalar value (compared by rendered text, not by identity or
// arena location), and, for containers, the same children with the same
// names. Array elements are compared pairwise in order; object members
// are matched by name, so member order does not matter. Detached/sentinel values compare equal to
// themselves only by this same structural rule - the null sentinel is
// simply a Null with empty text, which equals any other empty Null.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case doc.KindArray:
		return equalContainer(a, b)
	case doc.KindObject:
		return equalObject(a, b)
	case doc.KindBool:
		return a.AsBoolean() == b.AsBoolean()
	default:
		return equalBytes(a.Text(), b.Text())
	}
}

func equalContainer(a, b *Value) bool {
	if a.ChildCount() != b.ChildCount() {
		return false
	}
	ca, cb := a.FirstChild(), b.FirstChild()
	for ca != nil {
		if !Equal(ca, cb) {
			return false
		}
		ca, cb = ca.Next(), cb.Next()
	}
	return true
}

func equalObject(a, b *Value) bool {
	if a.ChildCount() != b.ChildCount() {
		return false
	}
	for ca := a.FirstChild(); ca != nil; ca = ca.Next() {
		cb := b.At(string(ca.Name()))
		if b.Document().IsSentinel(cb) || !equalBytes(ca.Name(), cb.Name()) || !Equal(ca, cb) {
			return false
		}
	}
	return true
}

func equalBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
