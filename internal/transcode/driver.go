package transcode

import "github.com/mcvoid/pooljson/internal/tables"

// Decode reads one code point from in[pos:] according to enc (and, for
// multi-byte encodings, swap), returning the rune and bytes consumed.
func Decode(enc tables.Encoding, swap bool, in []byte, pos int) (r rune, n int, err error) {
	switch enc {
	case tables.UTF8Encoding:
		return DecodeUTF8(in, pos)
	case tables.UTF16Encoding:
		return DecodeUTF16(in, pos, swap)
	case tables.UTF32Encoding:
		return DecodeUTF32(in, pos, swap)
	default:
		return 0, 0, ErrInvalidEncoding
	}
}

// Encode writes r into out according to enc, in native byte order,
// returning bytes written.
func Encode(enc tables.Encoding, r rune, out []byte) int {
	switch enc {
	case tables.UTF8Encoding:
		return EncodeUTF8(r, out)
	case tables.UTF16Encoding:
		return EncodeUTF16(r, out)
	case tables.UTF32Encoding:
		return EncodeUTF32(r, out)
	default:
		return 0
	}
}

// Measure returns the number of bytes Encode would write for r under enc.
func Measure(enc tables.Encoding, r rune) int {
	switch enc {
	case tables.UTF8Encoding:
		return MeasureUTF8(r)
	case tables.UTF16Encoding:
		return MeasureUTF16(r)
	case tables.UTF32Encoding:
		return MeasureUTF32(r)
	default:
		return 0
	}
}

// ConvertOne decodes one code point from in[inPos:] under (inEnc, swap)
// and encodes it into out[outPos:] under outEnc, returning bytes
// consumed from in and bytes written to out.
func ConvertOne(inEnc tables.Encoding, swap bool, in []byte, inPos int, outEnc tables.Encoding, out []byte, outPos int) (consumed, written int, err error) {
	r, n, err := Decode(inEnc, swap, in, inPos)
	if err != nil {
		return 0, 0, err
	}
	w := Encode(outEnc, r, out[outPos:])
	return n, w, nil
}

// MeasureOne decodes one code point from in[inPos:] under (inEnc, swap)
// and returns the bytes it consumed, plus the bytes Encode would write
// for it under outEnc, without writing any output.
func MeasureOne(inEnc tables.Encoding, swap bool, in []byte, inPos int, outEnc tables.Encoding) (consumed, wouldWrite int, err error) {
	r, n, err := Decode(inEnc, swap, in, inPos)
	if err != nil {
		return 0, 0, err
	}
	return n, Measure(outEnc, r), nil
}

// SameWidthNoSwap reports whether inEnc and outEnc share a code-unit
// width and no byte-swap is required, the condition under which the
// parser may fast-path a raw copy (or in-place rewrite) instead of a
// full decode/encode round trip.
func SameWidthNoSwap(inEnc, outEnc tables.Encoding, swap bool) bool {
	return inEnc == outEnc && !swap
}

// CopyUnit performs a raw (possibly byte-swapped) copy of one code unit
// of width tables.EncodingCodeUnitSize(enc) from in[inPos:] to
// out[outPos:], used by the UTF-8->UTF-8 and UTF-16->UTF-16 fast paths
// of §4.B. UTF-32->UTF-32 is a single 4-byte copy, also handled here.
func CopyUnit(enc tables.Encoding, swap bool, in []byte, inPos int, out []byte, outPos int) {
	size := tables.EncodingCodeUnitSize[enc]
	switch size {
	case 1:
		out[outPos] = in[inPos]
	case 2:
		if swap {
			out[outPos], out[outPos+1] = in[inPos+1], in[inPos]
		} else {
			out[outPos], out[outPos+1] = in[inPos], in[inPos+1]
		}
	case 4:
		if swap {
			out[outPos], out[outPos+1], out[outPos+2], out[outPos+3] =
				in[inPos+3], in[inPos+2], in[inPos+1], in[inPos]
		} else {
			copy(out[outPos:outPos+4], in[inPos:inPos+4])
		}
	}
}
