package pooljson

import (
	"bytes"
	"testing"
)

func mustParse(t *testing.T, input string) *Document {
	t.Helper()
	d := NewDocument(UTF8)
	if err := Parse(d, []byte(input), len(input), UnknownEncoding, TrailingCommas|Comments); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return d
}

func TestParseAndPrintRoundTrip(t *testing.T) {
	d := mustParse(t, `{"a": 1, "b": [1, 2, 3]}`)
	var buf bytes.Buffer
	if err := Print(&buf, d.Root(), UTF8, false, NoWhitespace); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"a":1,"b":[1,2,3]}`
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestEqual(t *testing.T) {
	d1 := mustParse(t, `{"a":1,"b":[1,2]}`)
	d2 := mustParse(t, `{"a":1,"b":[1,2]}`)
	d3 := mustParse(t, `{"a":1,"b":[1,3]}`)
	if !Equal(d1.Root(), d2.Root()) {
		t.Error("identical documents should compare equal")
	}
	if Equal(d1.Root(), d3.Root()) {
		t.Error("documents differing in a nested array should not compare equal")
	}
}

func TestEqualIgnoresMemberOrderSensitivity(t *testing.T) {
	// object equality is not sensitive to member order: each member of
	// one side is looked up by name on the other side with At, so
	// reordered members with the same content compare equal.
	d1 := mustParse(t, `{"a":1,"b":2}`)
	d2 := mustParse(t, `{"b":2,"a":1}`)
	if !Equal(d1.Root(), d2.Root()) {
		t.Error("objects with the same members in a different order should compare equal")
	}
}

func TestPath(t *testing.T) {
	d := mustParse(t, `{"a":{"b":[10,20,{"c":30}]}}`)
	v := Path(d.Root(), "a.b[2].c")
	if v.AsNumber() != 30 {
		t.Errorf("Path result = %v, want 30", v.AsNumber())
	}
}

func TestPathMissingReturnsSentinel(t *testing.T) {
	d := mustParse(t, `{"a":1}`)
	v := Path(d.Root(), "a.b.c")
	if !d.IsSentinel(v) {
		t.Error("Path through a missing segment should return the null sentinel")
	}
}

func TestParseErrorCarriesOffset(t *testing.T) {
	d := NewDocument(UTF8)
	input := []byte(`[0123]`)
	err := Parse(d, input, len(input), UnknownEncoding, 0)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if perr.Offset != 2 {
		t.Errorf("Offset = %v, want 2", perr.Offset)
	}
}
