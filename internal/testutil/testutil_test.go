package testutil

import "testing"

func TestDedent(t *testing.T) {
	got := Dedent(`
		a {
		    b;
		}
	`)
	want := "a {\n    b;\n}\n"
	if got != want {
		t.Errorf("Dedent = %q, want %q", got, want)
	}
}

func TestExpectContainsInOrder(t *testing.T) {
	ExpectContainsInOrder(t, "load route assert store", "load", "route", "store")
	ExpectNotContains(t, "load route", "store")
	ExpectNoDiff(t, "a\nb\n", "a\nb\n")
}
