package availability

import "testing"

func TestParseWeekday(t *testing.T) {
	t.Parallel()

	ok := map[string]Weekday{
		"mon":      Monday,
		"TUE":      Tuesday,
		" Wed ":    Wednesday,
		"thursday": Thursday,
		"FRIDAY":   Friday,
		"Saturday": Saturday,
		"sun":      Sunday,
	}
	for in, want := range ok {
		got, err := ParseWeekday(in)
		if err != nil || got != want {
			t.Fatalf("ParseWeekday(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	for _, in := range []string{"", "mo", "funday", "1"} {
		if _, err := ParseWeekday(in); err == nil {
			t.Fatalf("ParseWeekday(%q) expected error", in)
		}
	}
}

func TestWeekdayOf_UsesOwnLocation(t *testing.T) {
	t.Parallel()

	// 02:00Z on Monday is still Sunday evening in New York
	ny := mustLoad(t, "America/New_York")
	at := ts(t, "2025-12-01T02:00:00Z")
	if got := WeekdayOf(at); got != Monday {
		t.Fatalf("utc weekday = %s", got)
	}
	if got := WeekdayOf(at.In(ny)); got != Sunday {
		t.Fatalf("new york weekday = %s", got)
	}
	if !Sunday.Valid() || Weekday("xyz").Valid() {
		t.Fatalf("Valid mismatch")
	}
}
