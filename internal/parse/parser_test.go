package parse

import (
	"fmt"
	"testing"

	"github.com/mcvoid/pooljson/internal/doc"
	"github.com/mcvoid/pooljson/internal/tables"
)

func parseUTF8(t *testing.T, input string, flags Flags) (*doc.Value, error) {
	t.Helper()
	d := doc.New(tables.UTF8Encoding)
	buf := []byte(input)
	err := Parse(d, buf, -1, tables.UTF8Encoding, flags)
	return d.Root(), err
}

func TestParseBasicDocument(t *testing.T) {
	root, err := parseUTF8(t, `{"a":1,"b":[true,false,null],"c":{"d":-0.5e2}}`, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.At("a").AsNumber() != 1 {
		t.Errorf("a = %v, want 1", root.At("a").AsNumber())
	}
	b := root.At("b")
	if b.ChildCount() != 3 || !b.AtIndex(0).AsBoolean() || b.AtIndex(1).AsBoolean() || b.AtIndex(2).Kind() != doc.KindNull {
		t.Errorf("b = %+v, wrong shape", b)
	}
	if root.At("c").At("d").AsNumber() != -50 {
		t.Errorf("c.d = %v, want -50", root.At("c").At("d").AsNumber())
	}
}

func TestParseRejectsTrailingCommaByDefault(t *testing.T) {
	if _, err := parseUTF8(t, `[1,]`, 0); err == nil {
		t.Error("expected an error for a trailing comma without the TrailingCommas flag")
	}
}

func TestParseAcceptsTrailingCommaWithFlag(t *testing.T) {
	root, err := parseUTF8(t, `[1,]`, TrailingCommas)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.ChildCount() != 1 {
		t.Errorf("ChildCount = %v, want 1", root.ChildCount())
	}
}

func TestParseRejectsCommentByDefault(t *testing.T) {
	if _, err := parseUTF8(t, "[1, /* two */ 2]", 0); err == nil {
		t.Error("expected an error for a comment without the Comments flag")
	}
}

func TestParseAcceptsCommentWithFlag(t *testing.T) {
	root, err := parseUTF8(t, "[1, /* two */ 2]", Comments)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.ChildCount() != 2 || root.AtIndex(1).AsNumber() != 2 {
		t.Errorf("root = %+v, want [1, 2]", root)
	}
}

func TestParseRejectsLeadingZero(t *testing.T) {
	_, err := parseUTF8(t, `[0123]`, 0)
	if err == nil {
		t.Fatal("expected an error for a leading zero followed by more digits")
	}
	perr, ok := err.(*doc.ParseError)
	if !ok {
		t.Fatalf("error type = %T, want *doc.ParseError", err)
	}
	if perr.Offset != 2 {
		t.Errorf("offset = %v, want 2", perr.Offset)
	}
	if perr.Kind != doc.ErrExpectedSeparator {
		t.Errorf("kind = %v, want ErrExpectedSeparator", perr.Kind)
	}
}

func TestParseLoneHighSurrogateOffset(t *testing.T) {
	_, err := parseUTF8(t, `[ "\ud800" ]`, 0)
	if err == nil {
		t.Fatal("expected an error for a lone high surrogate")
	}
	perr := err.(*doc.ParseError)
	if perr.Kind != doc.ErrInvalidSurrogate {
		t.Errorf("kind = %v, want ErrInvalidSurrogate", perr.Kind)
	}
	if perr.Offset != 3 {
		t.Errorf("offset = %v, want 3 (start of the escape)", perr.Offset)
	}
}

func TestParseAstralCharDirectUTF8(t *testing.T) {
	root, err := parseUTF8(t, `["𝄞"]`, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := root.AtIndex(0).AsString()
	want := string(rune(0x1D11E))
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseSurrogatePairEscape(t *testing.T) {
	root, err := parseUTF8(t, "[\"\\ud834\\udd1e\"]", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := root.AtIndex(0).AsString()
	want := string(rune(0x1D11E))
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseEscapedUnicodeSpace(t *testing.T) {
	root, err := parseUTF8(t, `{"k": "a\`+`u0020b"}`, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := root.At("k").AsString(); got != "a b" {
		t.Errorf("got %q, want %q", got, "a b")
	}
}

func TestParseRejectsTrailingContent(t *testing.T) {
	_, err := parseUTF8(t, `{} {}`, 0)
	if err == nil {
		t.Fatal("expected an error for trailing content after the root value")
	}
	perr := err.(*doc.ParseError)
	if perr.Kind != doc.ErrUnexpectedTrailing || perr.Offset != 3 {
		t.Errorf("got %v at %v, want ErrUnexpectedTrailing at 3", perr.Kind, perr.Offset)
	}
}

func TestParseLeadingDotRejected(t *testing.T) {
	if _, err := parseUTF8(t, `[.5]`, 0); err == nil {
		t.Error("expected an error for a number with no leading digit")
	}
}

func TestParseRejectsNonObjectArrayRoot(t *testing.T) {
	for _, input := range []string{`"just a string"`, `42`, `true`, `null`} {
		t.Run(fmt.Sprintf("root=%s", input), func(t *testing.T) {
			if _, err := parseUTF8(t, input, 0); err == nil {
				t.Errorf("expected an error for a scalar root %q", input)
			}
		})
	}
}

func TestParseNestedDepthLimit(t *testing.T) {
	input := make([]byte, 0, 2*(maxDepth+2))
	for i := 0; i < maxDepth+2; i++ {
		input = append(input, '[')
	}
	for i := 0; i < maxDepth+2; i++ {
		input = append(input, ']')
	}
	if _, err := parseUTF8(t, string(input), 0); err == nil {
		t.Error("expected an error past the maximum nesting depth")
	}
}

func TestParseForceStringTerminatorsKeepsInputIntact(t *testing.T) {
	// NonDestructiveNUL (= ForceStringTerminators) must copy every
	// scalar's text into the arena and NUL-terminate there, even when
	// the value has no escapes and matches the document's width - the
	// input buffer must come out byte-for-byte unchanged.
	input := []byte(`{"a":"hello","b":123}`)
	original := append([]byte(nil), input...)
	d := doc.New(tables.UTF8Encoding)
	if err := Parse(d, input, -1, tables.UTF8Encoding, ForceStringTerminators); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(input) != string(original) {
		t.Errorf("input mutated under ForceStringTerminators: got %q, want %q", input, original)
	}
	if got := d.Root().At("a").AsString(); got != "hello" {
		t.Errorf(`At("a") = %q, want "hello"`, got)
	}
	if got := d.Root().At("b").AsNumber(); got != 123 {
		t.Errorf(`At("b") = %v, want 123`, got)
	}
}

func TestParseAutodetectEncoding(t *testing.T) {
	d := doc.New(tables.UTF16Encoding)
	// "{}" as little-endian UTF-16, no BOM: each ASCII structural
	// character's high byte is zero, which is exactly what the
	// zero-byte-pattern detection algorithm keys off of (spec §4.E).
	buf := []byte{'{', 0, '}', 0}
	if err := Parse(d, buf, len(buf), tables.UnknownEncoding, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Root().Kind() != doc.KindObject {
		t.Errorf("root kind = %v, want object", d.Root().Kind())
	}
}
