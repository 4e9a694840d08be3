package time

import (
	"testing"
	"time"

	perr "slotfinder/internal/platform/errors"
)

func TestLoadLocation(t *testing.T) {
	t.Parallel()

	loc, err := LoadLocation("America/New_York", "UTC")
	if err != nil || loc.String() != "America/New_York" {
		t.Fatalf("LoadLocation = %v, %v", loc, err)
	}

	loc, err = LoadLocation("  ", "Europe/Stockholm")
	if err != nil || loc.String() != "Europe/Stockholm" {
		t.Fatalf("blank should fall back to default, got %v, %v", loc, err)
	}

	loc, err = LoadLocation("", "")
	if err != nil || loc != time.UTC {
		t.Fatalf("blank with no default should be UTC, got %v, %v", loc, err)
	}

	_, err = LoadLocation("Mars/Olympus_Mons", "UTC")
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("unknown zone code = %v, want InvalidArgument", perr.CodeOf(err))
	}
}

func TestIsValidZone(t *testing.T) {
	t.Parallel()

	if !IsValidZone("Asia/Kolkata") || IsValidZone("") || IsValidZone("Not/AZone") {
		t.Fatalf("IsValidZone mismatch")
	}
}

func TestDayStartIn(t *testing.T) {
	t.Parallel()

	ny, _ := time.LoadLocation("America/New_York")
	dayStart := DayStartIn(ny)

	// 03:00Z Dec 1 is still Nov 30 in New York
	got := dayStart(time.Date(2025, 12, 1, 3, 0, 0, 0, time.UTC))
	want := time.Date(2025, 11, 30, 0, 0, 0, 0, ny)
	if !got.Equal(want) || got.Location() != ny {
		t.Fatalf("dayStart = %v, want %v", got, want)
	}

	// spring forward day still starts at 00:00 EST
	got = dayStart(time.Date(2025, 3, 9, 20, 0, 0, 0, ny))
	if !got.Equal(time.Date(2025, 3, 9, 5, 0, 0, 0, time.UTC)) {
		t.Fatalf("spring forward midnight = %v", got.UTC())
	}
}

func TestDaysSpanned(t *testing.T) {
	t.Parallel()

	ny, _ := time.LoadLocation("America/New_York")
	cases := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"same day", time.Date(2025, 12, 1, 9, 0, 0, 0, ny), time.Date(2025, 12, 1, 17, 0, 0, 0, ny), 1},
		{"midnight to midnight", time.Date(2025, 12, 1, 0, 0, 0, 0, ny), time.Date(2025, 12, 2, 0, 0, 0, 0, ny), 1},
		{"week", time.Date(2025, 12, 1, 0, 0, 0, 0, ny), time.Date(2025, 12, 8, 0, 0, 0, 0, ny), 7},
		{"across fall back", time.Date(2025, 11, 1, 12, 0, 0, 0, ny), time.Date(2025, 11, 3, 12, 0, 0, 0, ny), 3},
		{"empty", time.Date(2025, 12, 1, 0, 0, 0, 0, ny), time.Date(2025, 12, 1, 0, 0, 0, 0, ny), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DaysSpanned(c.start, c.end, ny); got != c.want {
				t.Fatalf("DaysSpanned = %d, want %d", got, c.want)
			}
		})
	}
}

func TestDayStartIn_SkippedMidnight(t *testing.T) {
	t.Parallel()

	scl, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Fatal(err)
	}
	dayStart := DayStartIn(scl)

	// 2024-09-08 has no 00:00 in Santiago; the day opens at 01:00 -03
	got := dayStart(time.Date(2024, 9, 8, 12, 0, 0, 0, scl))
	if !got.Equal(time.Date(2024, 9, 8, 4, 0, 0, 0, time.UTC)) {
		t.Fatalf("dayStart = %v, want 2024-09-08T04:00:00Z", got.UTC())
	}
	if y, m, d := got.Date(); y != 2024 || m != time.September || d != 8 || got.Weekday() != time.Sunday {
		t.Fatalf("dayStart local date = %v", got)
	}
	if got.Location() != scl {
		t.Fatalf("dayStart location = %v", got.Location())
	}

	// the previous day is untouched
	sat := dayStart(time.Date(2024, 9, 7, 18, 0, 0, 0, scl))
	if !sat.Equal(time.Date(2024, 9, 7, 4, 0, 0, 0, time.UTC)) {
		t.Fatalf("saturday start = %v", sat.UTC())
	}

	if n := DaysSpanned(time.Date(2024, 9, 7, 12, 0, 0, 0, scl), time.Date(2024, 9, 9, 12, 0, 0, 0, scl), scl); n != 3 {
		t.Fatalf("DaysSpanned across skipped midnight = %d, want 3", n)
	}
}
