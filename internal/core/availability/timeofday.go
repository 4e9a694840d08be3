package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is an offset from local midnight, at second precision
type TimeOfDay time.Duration

// ParseTimeOfDay parses HH:MM:SS with 00 <= HH <= 23
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("availability: time of day %q is not HH:MM:SS", s)
	}
	limits := [3]int{23, 59, 59}
	var v [3]int
	for i, p := range parts {
		if len(p) != 2 {
			return 0, fmt.Errorf("availability: time of day %q is not HH:MM:SS", s)
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > limits[i] {
			return 0, fmt.Errorf("availability: time of day %q out of range", s)
		}
		v[i] = n
	}
	d := time.Duration(v[0])*time.Hour + time.Duration(v[1])*time.Minute + time.Duration(v[2])*time.Second
	return TimeOfDay(d), nil
}

// MustTimeOfDay is ParseTimeOfDay for literals, it panics on bad input
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Offset returns the duration past midnight
func (t TimeOfDay) Offset() time.Duration { return time.Duration(t) }

// String renders HH:MM:SS
func (t TimeOfDay) String() string {
	d := time.Duration(t)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
