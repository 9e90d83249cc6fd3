package doc

import (
	"strconv"
	"strings"
)

// NonFiniteText returns the canonical text for a non-finite double and
// true, or ("", false) if d is finite. Per spec §4.D, a non-finite
// number is never rendered as a JSON number; allocate_number instead
// switches the value's kind to String with this text.
func NonFiniteText(d float64) (string, bool) {
	switch {
	case d != d: // NaN
		return "NaN", true
	case d > maxFloat || d < -maxFloat:
		if d > 0 {
			return "Inf", true
		}
		return "-Inf", true
	default:
		return "", false
	}
}

const maxFloat = 1.7976931348623157e+308 // math.MaxFloat64, spelled out to avoid importing math just for this

// RenderNumber renders a finite double per the canonical rules of §4.E:
//   - |d| < 1e-12                  -> "0"
//   - 1e-9 <= |d| <= 1e12          -> fixed decimal, up to 12 fractional
//     digits, trailing zeros and a trailing '.' stripped
//   - otherwise                    -> exponential, up to 12 significant
//     digits, trailing mantissa zeros stripped
//
// Callers must route non-finite d through NonFiniteText first.
func RenderNumber(d float64) string {
	abs := d
	if abs < 0 {
		abs = -abs
	}
	if abs < 1e-12 {
		return "0"
	}
	if abs >= 1e-9 && abs <= 1e12 {
		s := strconv.FormatFloat(d, 'f', 12, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(s, "0")
			s = strings.TrimRight(s, ".")
		}
		if s == "" || s == "-" {
			return "0"
		}
		return s
	}
	s := strconv.FormatFloat(d, 'e', 11, 64)
	return normalizeExponential(s)
}

func normalizeExponential(s string) string {
	idx := strings.IndexByte(s, 'e')
	if idx < 0 {
		return s
	}
	mantissa, exp := s[:idx], s[idx:]
	if strings.Contains(mantissa, ".") {
		mantissa = strings.TrimRight(mantissa, "0")
		mantissa = strings.TrimRight(mantissa, ".")
	}
	return mantissa + exp
}

// parseNumberText evaluates a scanned JSON number's raw text as a
// double. Evaluation is lazy (spec §4.E: "Evaluation happens lazily via
// as_number") - the parser only records the text span at scan time.
func parseNumberText(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
