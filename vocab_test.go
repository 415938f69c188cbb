package nspell

import (
	"strings"
	"testing"
)

func TestVocab(t *testing.T) {
	v := NewVocab()

	if b := v.Bound(); b != 0 {
		t.Errorf("expected v.Bound() = 0; got %d", b)
	}

	x := v.Intern("x")
	v1, v2 := v.Copy(), v.Copy()
	v1.Intern("a")
	v2.Intern("b")

	for _, i := range []struct {
		S string
		I WordId
	}{
		{"x", x}, {"y", UnknownWordId},
	} {
		if a := v.Lookup(i.S); a != i.I {
			t.Errorf("expected v.Lookup(%q) = %d; got %d", i.S, i.I, a)
		}
	}
	if s := v.WordOf(x); s != "x" {
		t.Errorf("expected v.WordOf(%d) = %q; got %q", x, "x", s)
	}

	if b := v1.Lookup("b"); b != UnknownWordId {
		t.Errorf("expected v1.Lookup(%q) = %d; got %d", "b", UnknownWordId, b)
	}
	if a := v2.Lookup("a"); a != UnknownWordId {
		t.Errorf("expected v2.Lookup(%q) = %d; got %d", "a", UnknownWordId, a)
	}
	if a := v.Lookup("a"); a != UnknownWordId {
		t.Errorf("expected v.Lookup(%q) = %d; got %d", "a", UnknownWordId, a)
	}

	v.Intern("y")
	if y := v1.Lookup("y"); y != UnknownWordId {
		t.Errorf("expected v1.Lookup(%q) = %d; got %d", "y", UnknownWordId, y)
	}
	if y := v2.Lookup("y"); y != UnknownWordId {
		t.Errorf("expected v2.Lookup(%q) = %d; got %d", "y", UnknownWordId, y)
	}

	y := v.Lookup("y")
	if yy := v.Intern("y"); yy != y {
		t.Errorf("expected v.Intern(%q) = %d; got %d", "y", y, yy)
	}

	if b := v.Bound(); b != 2 {
		t.Errorf("expected v.Bound() = 2; got %d", b)
	}

	if !v.Contains("x") || v.Contains("nope") {
		t.Errorf("Contains disagrees with vocabulary membership")
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic interning an empty word")
			}
		}()
		v.Intern("")
	}()

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic interning an over-long word")
			}
		}()
		v.Intern(strings.Repeat("a", maxWordLen+1))
	}()
}

func TestVocabRoundTrip(t *testing.T) {
	v := NewVocab()
	v.Intern("the")
	v.Intern("cat")
	v.Intern("sat")

	data, err := v.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	v2 := NewVocab()
	if err := v2.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if v2.Bound() != v.Bound() {
		t.Fatalf("expected Bound() = %d; got %d", v.Bound(), v2.Bound())
	}
	for _, w := range []string{"the", "cat", "sat"} {
		if v2.Lookup(w) != v.Lookup(w) {
			t.Errorf("round trip lost id of %q", w)
		}
		if v2.WordOf(v2.Lookup(w)) != w {
			t.Errorf("round trip lost reverse mapping of %q", w)
		}
	}
}
