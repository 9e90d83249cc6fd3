package doc

import (
	"fmt"
	"math"
	"testing"

	"github.com/mcvoid/pooljson/internal/tables"
)

func TestNewStringAsString(t *testing.T) {
	d := New(tables.UTF16Encoding)
	v := d.NewString("hello")
	if v.AsString() != "hello" {
		t.Errorf("AsString() = %q, want %q", v.AsString(), "hello")
	}
}

func TestNewStringNonASCIIWideDocuments(t *testing.T) {
	// "é" is 2 UTF-8 bytes but a single code point; a 16- or 32-bit
	// document must store it as one code unit, not two.
	for _, width := range []tables.Encoding{tables.UTF16Encoding, tables.UTF32Encoding} {
		t.Run(fmt.Sprintf("width=%v", width), func(t *testing.T) {
			d := New(width)
			v := d.NewString("café")
			if got := v.AsString(); got != "café" {
				t.Errorf("AsString() = %q, want %q", got, "café")
			}
		})
	}
}

func TestNewBool(t *testing.T) {
	d := New(tables.UTF8Encoding)
	if !d.NewBool(true).AsBoolean() {
		t.Error("NewBool(true).AsBoolean() should be true")
	}
	if d.NewBool(false).AsBoolean() {
		t.Error("NewBool(false).AsBoolean() should be false")
	}
}

func TestNewNumberNonFiniteBecomesString(t *testing.T) {
	d := New(tables.UTF8Encoding)
	v := d.NewNumber(math.NaN())
	if v.Kind() != KindString {
		t.Errorf("Kind() = %v, want string (NaN switches kind)", v.Kind())
	}
	if v.AsString() != "NaN" {
		t.Errorf("AsString() = %q, want NaN", v.AsString())
	}
}

func TestNewNumberFiniteLazyEval(t *testing.T) {
	d := New(tables.UTF8Encoding)
	v := d.NewNumber(3.5)
	if v.Kind() != KindNumber {
		t.Fatalf("Kind() = %v, want number", v.Kind())
	}
	if v.AsNumber() != 3.5 {
		t.Errorf("AsNumber() = %v, want 3.5", v.AsNumber())
	}
}

func TestIsEmptyAndChildCount(t *testing.T) {
	d := New(tables.UTF8Encoding)
	obj := d.NewObject()
	if !obj.IsEmpty() {
		t.Error("fresh object should be empty")
	}
	obj.ObjectSet("a", d.NewNull())
	if obj.IsEmpty() || obj.ChildCount() != 1 {
		t.Errorf("after one insert: IsEmpty=%v ChildCount=%v", obj.IsEmpty(), obj.ChildCount())
	}
}
