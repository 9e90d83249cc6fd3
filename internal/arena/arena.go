// Package arena implements the two-tier bump allocator a document uses
// to carve out storage for decoded strings, numbers, and value nodes: a
// fixed static buffer embedded in the document, backed by a linked list
// of heap-allocated dynamic blocks once the static tier is exhausted.
//
// Grounded on _examples/axiomhq-fsst's habit of managing growable byte
// buffers and block bookkeeping by hand over plain slices
// (axiomhq-fsst/table.go, counters.go) rather than reaching for a pool
// package — the retrieval pack has no bump-allocator dependency to wire
// in, so this follows that precedent. See DESIGN.md.
package arena

import "errors"

// ErrOutOfMemory is returned when a dynamic block cannot be obtained.
var ErrOutOfMemory = errors.New("arena: out of memory")

const (
	// DefaultStaticSize is the default size, in bytes, of the buffer
	// embedded directly in the Arena (and, transitively, the Document
	// that owns it).
	DefaultStaticSize = 32 * 1024
	// DefaultDynamicSize is the default size, in bytes, of each heap
	// block requested once the static tier is exhausted.
	DefaultDynamicSize = 32 * 1024
	// DefaultAlign is the default allocation alignment: pointer width.
	DefaultAlign = 8
)

// block is one heap-allocated dynamic arena block. Blocks form a
// singly-linked list, newest first, purely for teardown on Clear; there
// is no intra-block free list, matching the "no per-value free" lifecycle
// of the document model.
type block struct {
	data []byte
	used int
	prev *block
}

// Arena is a two-tier bump allocator: a static byte buffer (optionally
// embedded in the owning Document to avoid one heap allocation for small
// documents) followed by a chain of dynamic blocks requested as needed.
type Arena struct {
	static     []byte
	staticUsed int

	dynamicSize int
	align       int

	cur   *block // block currently being bumped, nil if none yet
	head  *block // most recently allocated block, for block counting/Clear
	count int     // number of dynamic blocks currently live
}

// New constructs an Arena with the given static buffer (may be nil or
// len==0), dynamic block size, and alignment. dynamicSize and align fall
// back to their Default* constants when zero. align must be a power of
// two; New panics otherwise, mirroring the contract violation being a
// programmer error rather than a runtime condition.
func New(static []byte, dynamicSize, align int) *Arena {
	if dynamicSize <= 0 {
		dynamicSize = DefaultDynamicSize
	}
	if align <= 0 {
		align = DefaultAlign
	}
	if align&(align-1) != 0 {
		panic("arena: align must be a power of two")
	}
	return &Arena{
		static:      static,
		dynamicSize: dynamicSize,
		align:       align,
	}
}

func alignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// Alloc returns n uninitialized, alignment-rounded bytes, or
// ErrOutOfMemory if a dynamic block could not be obtained. There is no
// corresponding Free: storage lives until Clear or the Arena is dropped.
func (a *Arena) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.New("arena: negative size")
	}
	if n == 0 {
		return a.static[:0:0], nil
	}

	if a.static != nil {
		start := alignUp(a.staticUsed, a.align)
		if start+n <= len(a.static) {
			a.staticUsed = alignUp(start+n, a.align)
			return a.static[start : start+n : start+n], nil
		}
	}

	if a.cur != nil {
		start := alignUp(a.cur.used, a.align)
		if start+n <= len(a.cur.data) {
			a.cur.used = alignUp(start+n, a.align)
			return a.cur.data[start : start+n : start+n], nil
		}
	}

	blockSize := a.dynamicSize
	if n+a.align > blockSize {
		blockSize = n + a.align
	}
	b := &block{data: make([]byte, blockSize), prev: a.head}
	a.head = b
	a.cur = b
	a.count++

	start := alignUp(0, a.align)
	if start+n > len(b.data) {
		return nil, ErrOutOfMemory
	}
	b.used = alignUp(start+n, a.align)
	return b.data[start : start+n : start+n], nil
}

// Clear releases every dynamic block; the static tier is reset for
// reuse. After Clear, BlockCount returns 0.
func (a *Arena) Clear() {
	a.cur = nil
	a.head = nil
	a.count = 0
	a.staticUsed = 0
}

// BlockCount reports the number of live dynamic blocks, used by the
// alloc/free-pairing testable property (spec §8).
func (a *Arena) BlockCount() int {
	return a.count
}

// StaticCapacity reports the size of the embedded static tier.
func (a *Arena) StaticCapacity() int {
	return len(a.static)
}
