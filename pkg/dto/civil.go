package dto

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for year, month and day without normalization;
// use IsValid to check the result.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// IsValid reports whether d names an existing day.
func (d Date) IsValid() bool {
	return DateOf(d.In(time.UTC)) == d
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// DaysSince returns the number of whole days from other to d.
func (d Date) DaysSince(other Date) int {
	return int(d.In(time.UTC).Sub(other.In(time.UTC)) / (24 * time.Hour))
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// UnmarshalJSON reports malformed input as a *json.UnmarshalTypeError so the
// decoder records which field it came from.
func (d *Date) UnmarshalJSON(data []byte) error {
	return unmarshalJSONString(data, d, reflect.TypeFor[Date]())
}

// TimeOfDay is a wall-clock time measured from midnight.
// Valid values lie in [0, 24h).
type TimeOfDay time.Duration

// NewTimeOfDay returns hour:minute:second. Out-of-range parts are not normalized.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second)
}

var timeOfDayLayouts = []string{"15:04:05.999999999", "15:04:05", "15:04"}

// ParseTimeOfDay accepts HH:MM, HH:MM:SS and HH:MM:SS with a fractional second.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range timeOfDayLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return TimeOfDay(t.Sub(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()))), nil
	}
	return 0, fmt.Errorf("invalid time of day %q: expected HH:MM[:SS[.fraction]]", s)
}

func (t TimeOfDay) IsValid() bool {
	return t >= 0 && time.Duration(t) < 24*time.Hour
}

func (t TimeOfDay) Hour() int   { return int(time.Duration(t) / time.Hour) }
func (t TimeOfDay) Minute() int { return int(time.Duration(t) % time.Hour / time.Minute) }
func (t TimeOfDay) Second() int { return int(time.Duration(t) % time.Minute / time.Second) }

// On combines t with day in UTC.
func (t TimeOfDay) On(day Date) time.Time {
	return day.In(time.UTC).Add(time.Duration(t))
}

func (t TimeOfDay) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
	if frac := time.Duration(t) % time.Second; frac > 0 {
		s += strings.TrimRight(fmt.Sprintf(".%09d", int64(frac)), "0")
	}
	return s
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	return unmarshalJSONString(data, t, reflect.TypeFor[TimeOfDay]())
}

// unmarshalJSONString decodes a JSON string through v's text form. Null
// leaves v unchanged.
func unmarshalJSONString(data []byte, v encoding.TextUnmarshaler, t reflect.Type) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &json.UnmarshalTypeError{Value: "non-string", Type: t}
	}
	if err := v.UnmarshalText([]byte(s)); err != nil {
		return &json.UnmarshalTypeError{Value: "string " + strconv.Quote(s), Type: t}
	}
	return nil
}
