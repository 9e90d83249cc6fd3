// Package parse implements the encoding-agnostic JSON scanner/parser of
// spec §4.E: encoding detection, recursive-descent grammar, and the
// dual-path (in-place vs copy) decision for strings and numbers.
package parse

import "errors"

// Flags is the parser's compile-time-style bitmask (spec §4.E "Parse
// flags"). Treated as a plain runtime value here; Go has no equivalent
// of the source's template/constexpr flag encoding, and the spec §9
// design notes say this is an acceptable substitution as long as
// correctness does not depend on flags being compile-time constants.
type Flags uint32

const (
	// NoStringTerminators: do not inject a code-unit-zero after strings
	// or numbers left in place. Consumers use the text's end instead.
	NoStringTerminators Flags = 1 << iota
	// ForceStringTerminators: always copy strings/numbers into the
	// arena and NUL-terminate, never touching the input.
	ForceStringTerminators
	// NoInlineTranslation: always copy into the arena whenever any
	// escape/transcode is needed, rather than writing back into input.
	NoInlineTranslation
	// TrailingCommas permits a comma immediately before ']' or '}'.
	TrailingCommas
	// Comments enables '//', '#', and '/* */' treated as whitespace.
	Comments
)

// NonDestructive = NoStringTerminators | NoInlineTranslation: the input
// buffer is guaranteed untouched after parse.
const NonDestructive = NoStringTerminators | NoInlineTranslation

// NonDestructiveNUL = ForceStringTerminators: input untouched, and every
// scalar's text is NUL-terminated in the arena.
const NonDestructiveNUL = ForceStringTerminators

// ErrFlagConflict is returned by Validate for mutually exclusive flags.
var ErrFlagConflict = errors.New("parse: mutually exclusive flags")

// Validate rejects the one documented mutually-exclusive combination.
func (f Flags) Validate() error {
	if f&NoStringTerminators != 0 && f&ForceStringTerminators != 0 {
		return ErrFlagConflict
	}
	return nil
}

func (f Flags) has(bit Flags) bool { return f&bit != 0 }
