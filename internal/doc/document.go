// Package doc implements the pooled JSON document model of spec §3-4.D:
// a tagged Value variant (null/bool/number/string/array/object) with
// doubly-linked sibling lists, backed by an arena allocator, plus the
// container lookup and mutation primitives.
//
// Width is handled by an internal enum (tables.Encoding) rather than a
// Go type parameter: every Value belonging to a Document shares the
// Document's width, and all code-unit buffers are plain []byte holding
// native-byte-order units of that width. This is the "internal enum
// dispatching to width-specific fast paths" alternative the spec allows
// in place of monomorphized generics (see DESIGN.md).
package doc

import (
	"github.com/mcvoid/pooljson/internal/arena"
	"github.com/mcvoid/pooljson/internal/tables"
)

// Document owns an Arena, a Width, and a root Value (always Array or
// Object). It is not safe for concurrent mutation (spec §5).
type Document struct {
	width      tables.Encoding
	arena      *arena.Arena
	root       *Value
	errHandler ErrorHandler

	// staticBuf is the arena's embedded static tier, living inside the
	// Document the way spec §4.C specifies ("the allocator embeds STATIC
	// bytes inside the document object").
	staticBuf [arena.DefaultStaticSize]byte

	nullLit  []byte
	trueLit  []byte
	falseLit []byte

	sentinel *Value

	dynamicSize, align int
}

// Option configures a Document at construction time.
type Option func(*Document)

// WithErrorHandler installs a handler invoked synchronously on parse
// failure, before Parse returns the error (spec §6: the "error handler"
// callable).
func WithErrorHandler(h ErrorHandler) Option {
	return func(d *Document) { d.errHandler = h }
}

// WithArenaSizes overrides the arena's dynamic block size and alignment.
// The static tier is always the Document-embedded buffer.
func WithArenaSizes(dynamicSize, align int) Option {
	return func(d *Document) { d.dynamicSize, d.align = dynamicSize, align }
}

// New constructs an empty Document over the given code-unit width
// (tables.UTF8Encoding, UTF16Encoding, or UTF32Encoding). The root
// starts as an empty object, matching §4.E ("the document's root is
// reset to an empty object before parsing begins").
func New(width tables.Encoding, opts ...Option) *Document {
	d := &Document{width: width, errHandler: DefaultErrorHandler}
	for _, opt := range opts {
		opt(d)
	}
	d.arena = arena.New(d.staticBuf[:], d.dynamicSize, d.align)
	d.initLiterals()
	d.sentinel = &Value{doc: d, kind: KindNull}
	d.resetRoot()
	return d
}

func (d *Document) initLiterals() {
	d.nullLit = d.encodeLiteral("null")
	d.trueLit = d.encodeLiteral("true")
	d.falseLit = d.encodeLiteral("false")
}

// encodeLiteral transcodes an ASCII literal into the document's width,
// allocated once per Document (on the heap, not in the arena) and shared
// by every null/true/false Value
// (spec §3: "text points to a process-wide constant for that code-unit
// width" - scoped per-Document here since width is a Document property,
// not a process-wide Go type; see DESIGN.md).
func (d *Document) encodeLiteral(s string) []byte {
	size := unitSize(d.width)
	buf := make([]byte, len(s)*size)
	for i := 0; i < len(s); i++ {
		writeUnit(buf, d.width, i, uint32(s[i]))
	}
	return buf
}

func (d *Document) resetRoot() {
	d.root = &Value{
		doc:  d,
		kind: KindObject,
	}
}

// Width reports the document's code-unit width.
func (d *Document) Width() tables.Encoding { return d.width }

// Arena exposes the underlying allocator for the parser package.
func (d *Document) Arena() *arena.Arena { return d.arena }

// ErrorHandler returns the installed handler.
func (d *Document) ErrorHandler() ErrorHandler { return d.errHandler }

// Root returns the document's root container (always Array or Object).
func (d *Document) Root() *Value { return d.root }

// ResetRoot discards the current root and installs a fresh empty object,
// called by the parser before each parse (spec §4.E).
func (d *Document) ResetRoot() { d.resetRoot() }

// SetRoot replaces the root container outright, used by the parser once
// it has fully parsed the top-level object or array.
func (d *Document) SetRoot(v *Value) { d.root = v }

// Null returns the shared immutable null sentinel: kind null, empty
// name, no owner, no siblings. It must never be mutated or inserted into
// any container (spec §3 invariant 6); mutators reject it by pointer
// identity.
func (d *Document) Null() *Value { return d.sentinel }

// IsSentinel reports whether v is this document's null sentinel.
func (d *Document) IsSentinel(v *Value) bool { return v == d.sentinel }
