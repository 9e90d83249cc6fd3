// Package tables holds the immutable classification and conversion tables
// the scanner consults on every code unit: whitespace/digit predicates,
// digit-to-double conversion (to dodge an int->float64 conversion in the
// number hot loop), hex nibble rendering, and UTF-8 leading-byte lengths.
package tables

// IsWhitespace reports whether b is JSON whitespace (tab, newline, CR, space).
var IsWhitespace [256]bool

// IsDigit reports whether b is an ASCII decimal digit.
var IsDigit [256]bool

// DigitValue maps an ASCII digit byte ('0'..'9') to its double value.
// Indexed directly by byte so callers can skip the IsDigit check when
// they already know the byte is in range.
var DigitValue [256]float64

// HexChar renders a nibble (0-15) as its lowercase hex digit.
var HexChar = [16]byte{
	'0', '1', '2', '3', '4', '5', '6', '7',
	'8', '9', 'a', 'b', 'c', 'd', 'e', 'f',
}

// UTF8Length maps a UTF-8 leading byte, indexed via byte>>2, to the total
// byte length of the sequence it starts. 0 means an invalid leading byte
// (a continuation byte or an overlong 5/6-byte lead).
var UTF8Length [64]int

func init() {
	for _, b := range []byte{'\t', '\n', '\r', ' '} {
		IsWhitespace[b] = true
	}
	for b := byte('0'); b <= '9'; b++ {
		IsDigit[b] = true
		DigitValue[b] = float64(b - '0')
	}
	for i := range UTF8Length {
		lead := byte(i << 2)
		switch {
		case lead&0x80 == 0x00: // 0xxxxxxx
			UTF8Length[i] = 1
		case lead&0xC0 == 0x80: // 10xxxxxx continuation
			UTF8Length[i] = 0
		case lead&0xE0 == 0xC0: // 110xxxxx
			UTF8Length[i] = 2
		case lead&0xF0 == 0xE0: // 1110xxxx
			UTF8Length[i] = 3
		case lead&0xF8 == 0xF0: // 11110xxx
			UTF8Length[i] = 4
		default: // 11111xxx
			UTF8Length[i] = 0
		}
	}
}

// HexValue returns the numeric value of an ASCII hex digit and whether b
// was a valid hex digit at all.
func HexValue(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	default:
		return 0, false
	}
}

// Encoding identifies an input's code-unit width and, for multi-byte
// widths, its byte order relative to the running platform.
type Encoding int

const (
	UnknownEncoding Encoding = iota
	UTF8Encoding
	UTF16Encoding
	UTF32Encoding
)

// EncodingCodeUnitSize maps an Encoding to the size in bytes of one code
// unit: 1 for UTF-8, 2 for UTF-16, 4 for UTF-32. Unknown maps to 0.
var EncodingCodeUnitSize = [4]int{0: 0, UTF8Encoding: 1, UTF16Encoding: 2, UTF32Encoding: 4}
