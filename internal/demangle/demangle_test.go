package demangle

import "testing"

func TestDemanglePlainNamePassesThrough(t *testing.T) {
	d := New()
	if got := d.Demangle("collatz"); got != "collatz" {
		t.Errorf("got %q, want %q", got, "collatz")
	}
}

func TestDemangleItaniumSimple(t *testing.T) {
	d := New()
	// _Z9factoriali -> "factorial" then remaining trailing type code "i" is
	// not a length-prefixed segment and is dropped.
	got := d.Demangle("_Z9factoriali")
	if got != "factorial" {
		t.Errorf("got %q, want %q", got, "factorial")
	}
}

func TestDemangleNestedName(t *testing.T) {
	d := New()
	got := d.Demangle("_ZN3std6vectorE")
	if got != "std::vector" {
		t.Errorf("got %q, want %q", got, "std::vector")
	}
}

func TestDemangleDottedSegmentsJoinedIndependently(t *testing.T) {
	d := New()
	got := d.Demangle("_Z9factoriali.clone")
	if got != "factorial.clone" {
		t.Errorf("got %q, want %q", got, "factorial.clone")
	}
}
