// Package testkit holds assertions shared by package tests
package testkit

import (
	"strings"
	"testing"
)

// MustPanic fails the test unless fn panics
func MustPanic(t testing.TB, fn func()) {
	t.Helper()
	if !panics(fn) {
		t.Fatal("expected a panic")
	}
}

// MustNotPanic fails the test if fn panics
func MustNotPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain fails the test unless out contains every want, printing the tail of out
func MustContain(t testing.TB, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if strings.Contains(out, w) {
			continue
		}
		const keep = 2048
		if len(out) > keep {
			out = "..." + out[len(out)-keep:]
		}
		t.Fatalf("missing %q in output:\n%s", w, out)
	}
}

func panics(fn func()) (did bool) {
	defer func() { did = recover() != nil }()
	fn()
	return false
}
