package tables

import (
	"fmt"
	"testing"
)

func TestIsWhitespace(t *testing.T) {
	for _, test := range []struct {
		input    byte
		expected bool
	}{
		{' ', true},
		{'\t', true},
		{'\n', true},
		{'\r', true},
		{'a', false},
		{'0', false},
	} {
		t.Run(fmt.Sprintf("%q", test.input), func(t *testing.T) {
			if actual := IsWhitespace[test.input]; actual != test.expected {
				t.Errorf("expected %v got %v", test.expected, actual)
			}
		})
	}
}

func TestDigitValue(t *testing.T) {
	for b := byte('0'); b <= '9'; b++ {
		if !IsDigit[b] {
			t.Errorf("%q should be a digit", b)
		}
		if DigitValue[b] != float64(b-'0') {
			t.Errorf("DigitValue[%q] = %v, want %v", b, DigitValue[b], b-'0')
		}
	}
}

func TestHexValue(t *testing.T) {
	for _, test := range []struct {
		input      byte
		expected   int
		expectedOk bool
	}{
		{'0', 0, true},
		{'9', 9, true},
		{'a', 10, true},
		{'f', 15, true},
		{'A', 10, true},
		{'F', 15, true},
		{'g', 0, false},
		{' ', 0, false},
	} {
		t.Run(fmt.Sprintf("%q", test.input), func(t *testing.T) {
			v, ok := HexValue(test.input)
			if ok != test.expectedOk || (ok && v != test.expected) {
				t.Errorf("HexValue(%q) = (%v, %v), want (%v, %v)", test.input, v, ok, test.expected, test.expectedOk)
			}
		})
	}
}

func TestUTF8Length(t *testing.T) {
	for _, test := range []struct {
		lead     byte
		expected int
	}{
		{0x00, 1},
		{0x7F, 1},
		{0x80, 0}, // continuation byte, invalid lead
		{0xC2, 2},
		{0xE0, 3},
		{0xF0, 4},
		{0xF8, 0}, // 11111xxx, invalid
	} {
		t.Run(fmt.Sprintf("%#x", test.lead), func(t *testing.T) {
			if actual := UTF8Length[test.lead>>2]; actual != test.expected {
				t.Errorf("UTF8Length[%#x>>2] = %v, want %v", test.lead, actual, test.expected)
			}
		})
	}
}

func TestEncodingCodeUnitSize(t *testing.T) {
	for _, test := range []struct {
		enc      Encoding
		expected int
	}{
		{UnknownEncoding, 0},
		{UTF8Encoding, 1},
		{UTF16Encoding, 2},
		{UTF32Encoding, 4},
	} {
		if actual := EncodingCodeUnitSize[test.enc]; actual != test.expected {
			t.Errorf("EncodingCodeUnitSize[%v] = %v, want %v", test.enc, actual, test.expected)
		}
	}
}
