// Package testutil holds assertions shared by the generator's tests.
package testutil

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// ExpectNoDiff reports a unified diff between want and got.
func ExpectNoDiff(t *testing.T, want, got string) {
	t.Helper()
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  5,
	})
	if diff != "" {
		t.Error(diff)
	}
}

// ExpectContainsInOrder checks that every fragment occurs in got, each after
// the previous one.
func ExpectContainsInOrder(t *testing.T, got string, fragments ...string) {
	t.Helper()
	rest := got
	for _, f := range fragments {
		i := strings.Index(rest, f)
		if i < 0 {
			t.Errorf("missing %q (in order) in:\n%s", f, got)
			return
		}
		rest = rest[i+len(f):]
	}
}

// ExpectNotContains checks that fragment does not occur in got.
func ExpectNotContains(t *testing.T, got, fragment string) {
	t.Helper()
	if strings.Contains(got, fragment) {
		t.Errorf("unexpected %q in:\n%s", fragment, got)
	}
}

// Dedent strips the common leading tabs of a raw string literal and the
// leading newline, so golden text can be indented with the test code.
func Dedent(s string) string {
	s = strings.TrimPrefix(s, "\n")
	lines := strings.Split(s, "\n")
	prefix := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, "\t"))
		if prefix < 0 || n < prefix {
			prefix = n
		}
	}
	if prefix <= 0 {
		return s
	}
	for i, l := range lines {
		if len(l) >= prefix {
			lines[i] = l[prefix:]
		} else {
			lines[i] = strings.TrimLeft(l, "\t")
		}
	}
	return strings.Join(lines, "\n")
}
