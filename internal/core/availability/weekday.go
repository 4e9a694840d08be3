package availability

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Weekday is a lower case three letter day name, mon through sun
type Weekday string

// Day names accepted in weekly rules
const (
	Monday    Weekday = "mon"
	Tuesday   Weekday = "tue"
	Wednesday Weekday = "wed"
	Thursday  Weekday = "thu"
	Friday    Weekday = "fri"
	Saturday  Weekday = "sat"
	Sunday    Weekday = "sun"
)

// indexed by time.Weekday (Sunday == 0)
var byStdWeekday = [...]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var longNames = map[string]Weekday{
	"monday":    Monday,
	"tuesday":   Tuesday,
	"wednesday": Wednesday,
	"thursday":  Thursday,
	"friday":    Friday,
	"saturday":  Saturday,
	"sunday":    Sunday,
}

// WeekdayOf returns the day name of t in t's own location
func WeekdayOf(t time.Time) Weekday { return byStdWeekday[t.Weekday()] }

// Valid reports whether d is one of the seven canonical names
func (d Weekday) Valid() bool {
	for _, w := range byStdWeekday {
		if d == w {
			return true
		}
	}
	return false
}

// ParseWeekday accepts short or long day names in any case
func ParseWeekday(s string) (Weekday, error) {
	folded := cases.Fold().String(strings.TrimSpace(s))
	if d := Weekday(folded); d.Valid() {
		return d, nil
	}
	if d, ok := longNames[folded]; ok {
		return d, nil
	}
	return "", fmt.Errorf("availability: unknown day of week %q", s)
}
