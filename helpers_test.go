package decimal

import (
	"context"
	"testing"
)

// bg returns a background context, a shorthand used throughout this
// package's table-driven tests.
func bg() context.Context { return context.Background() }

func mustParse(t *testing.T, s string, base int) *Number {
	t.Helper()
	n, err := Parse(bg(), s, base, false)
	if err != nil {
		t.Fatalf("Parse(%q, %d): %v", s, base, err)
	}
	return n
}
