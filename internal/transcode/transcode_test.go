package transcode

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcvoid/pooljson/internal/tables"
)

func TestRoundTripASCII(t *testing.T) {
	for _, enc := range []tables.Encoding{tables.UTF8Encoding, tables.UTF16Encoding, tables.UTF32Encoding} {
		t.Run(fmt.Sprintf("enc=%v", enc), func(t *testing.T) {
			var buf [8]byte
			n := Encode(enc, 'A', buf[:])
			r, consumed, err := Decode(enc, false, buf[:], 0)
			require.NoError(t, err)
			require.Equal(t, rune('A'), r)
			require.Equal(t, n, consumed)
		})
	}
}

// TestTranscodeMatrix exercises every (encoding, swap, code point) triple
// the parser/printer can hit: decode(encode(r)) must round-trip exactly,
// for every width crossed with both byte orders. A plain t.Errorf chain
// over this many combinations would bury the one failing cell; testify's
// require stops at the first one with the actual/expected values already
// formatted.
func TestTranscodeMatrix(t *testing.T) {
	runes := []rune{0x00, 'A', 0x7F, 0x80, 0x7FF, 0x800, 0xFFFF - 1, 0x10000, 0x10FFFF}
	encs := []tables.Encoding{tables.UTF8Encoding, tables.UTF16Encoding, tables.UTF32Encoding}
	for _, enc := range encs {
		for _, swap := range []bool{false, true} {
			for _, r := range runes {
				name := fmt.Sprintf("enc=%v/swap=%v/r=%#x", enc, swap, r)
				t.Run(name, func(t *testing.T) {
					if enc == tables.UTF8Encoding && swap {
						t.Skip("UTF-8 has no byte order")
					}
					var native [8]byte
					n := Encode(enc, r, native[:])
					encoded := native[:n]
					if swap {
						CopyUnit(enc, true, encoded, 0, encoded, 0)
						if tables.EncodingCodeUnitSize[enc] == 2 && n == 4 {
							CopyUnit(enc, true, encoded[2:], 0, encoded[2:], 0)
						}
					}
					got, consumed, err := Decode(enc, swap, encoded, 0)
					require.NoError(t, err)
					require.Equal(t, r, got)
					require.Equal(t, n, consumed)
				})
			}
		}
	}
}

func TestRoundTripAstral(t *testing.T) {
	// U+1D11E MUSICAL SYMBOL G CLEF - requires a UTF-16 surrogate pair
	// and is outside the BMP for every width.
	const r = rune(0x1D11E)
	for _, enc := range []tables.Encoding{tables.UTF8Encoding, tables.UTF16Encoding, tables.UTF32Encoding} {
		t.Run(fmt.Sprintf("enc=%v", enc), func(t *testing.T) {
			var buf [8]byte
			n := Encode(enc, r, buf[:])
			got, consumed, err := Decode(enc, false, buf[:], 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != r || consumed != n {
				t.Errorf("got (%U, %v), want (%U, %v)", got, consumed, r, n)
			}
		})
	}
}

func TestDecodeUTF16SurrogatePair(t *testing.T) {
	buf := []byte{0x34, 0xD8, 0x1E, 0xDD} // little-endian 0xD834 0xDD1E
	r, n, err := DecodeUTF16(buf, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != 0x1D11E || n != 4 {
		t.Errorf("got (%U, %v), want (%U, 4)", r, n, rune(0x1D11E))
	}
}

func TestDecodeUTF16LoneSurrogate(t *testing.T) {
	buf := []byte{0x00, 0xD8} // lone high surrogate, nothing follows
	if _, _, err := DecodeUTF16(buf, 0, false); err == nil {
		t.Error("expected error for truncated surrogate pair")
	}
}

func TestDecodeUTF8RejectsSurrogateRange(t *testing.T) {
	// 0xED 0xA0 0x80 is the WTF-8 encoding of U+D800, which is not a
	// valid UTF-8 code point.
	buf := []byte{0xED, 0xA0, 0x80}
	if _, _, err := DecodeUTF8(buf, 0); err == nil {
		t.Error("expected error decoding a surrogate-range code point")
	}
}

func TestByteSwap(t *testing.T) {
	native := []byte{0x34, 0x12} // 0x1234 little-endian
	swapped := []byte{0x12, 0x34}
	rNative, _, err := DecodeUTF16(native, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	rSwapped, _, err := DecodeUTF16(swapped, 0, true)
	if err != nil {
		t.Fatal(err)
	}
	if rNative != rSwapped {
		t.Errorf("native decode %U != swapped decode %U", rNative, rSwapped)
	}
}

func TestMeasureMatchesEncode(t *testing.T) {
	for _, test := range []struct {
		enc tables.Encoding
		r   rune
	}{
		{tables.UTF8Encoding, 'z'},
		{tables.UTF8Encoding, 0x1D11E},
		{tables.UTF16Encoding, 'z'},
		{tables.UTF16Encoding, 0x1D11E},
		{tables.UTF32Encoding, 'z'},
	} {
		t.Run(fmt.Sprintf("enc=%v,r=%U", test.enc, test.r), func(t *testing.T) {
			var buf [8]byte
			n := Encode(test.enc, test.r, buf[:])
			if m := Measure(test.enc, test.r); m != n {
				t.Errorf("Measure = %v, Encode wrote %v", m, n)
			}
		})
	}
}

func TestCopyUnit(t *testing.T) {
	in := []byte{0x01, 0x02, 0x03, 0x04}
	out := make([]byte, 4)
	CopyUnit(tables.UTF32Encoding, true, in, 0, out, 0)
	want := []byte{0x04, 0x03, 0x02, 0x01}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out = %v, want %v", out, want)
			break
		}
	}
}
