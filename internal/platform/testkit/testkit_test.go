package testkit

import (
	"strings"
	"testing"
)

func TestPanics(t *testing.T) {
	t.Parallel()

	if !panics(func() { panic("alignment 0 outside [1, 60]") }) {
		t.Fatal("panic not detected")
	}
	if panics(func() {}) {
		t.Fatal("quiet func reported as panicking")
	}
}

func TestAssertions(t *testing.T) {
	t.Parallel()

	MustPanic(t, func() { panic("boom") })
	MustNotPanic(t, func() {})
	MustContain(t, strings.Repeat("x", 4096)+"slot search", "slot search")
}
