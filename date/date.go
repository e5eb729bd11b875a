// Package date provides a civil date type with day-level granularity and the
// parsing helpers for the formats used by the bank operations export.
package date

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateFormat is the ISO-8601 format used to represent dates as strings.
const DateFormat = "2006-01-02"

// dayFormat is the day format used by the bank export ("31.01.2023").
const dayFormat = "02.01.2006"

// OperationTimeFormat is the full operation timestamp format of the bank
// export ("31.01.2023 15:00:41").
const OperationTimeFormat = "02.01.2006 15:04:05"

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// StartOfMonth returns the first day of the month of d.
func (d Date) StartOfMonth() Date { return New(d.y, d.m, 1) }

// String formats the date in its standard ISO format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Parse parses an ISO-8601 date ("2023-01-31").
func Parse(str string) (Date, error) {
	on, err := time.Parse(DateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, err)
	}
	return New(on.Date()), nil
}

// ParseDay parses a day in the bank export format ("31.01.2023"). Anything
// after the first space is ignored, so a full operation timestamp is accepted
// too.
func ParseDay(str string) (Date, error) {
	day, _, _ := strings.Cut(str, " ")
	on, err := time.Parse(dayFormat, day)
	if err != nil {
		return Date{}, fmt.Errorf("invalid day %q want format %q: %w", str, dayFormat, err)
	}
	return New(on.Date()), nil
}

// ParseOperationTime parses a full operation timestamp from the bank export
// and returns its day.
func ParseOperationTime(str string) (Date, error) {
	on, err := time.Parse(OperationTimeFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid operation time %q want format %q: %w", str, OperationTimeFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshal a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

// MarshalJSON implements the json specific way to marshal a date to a json string.
func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the inclusive range [from, to].
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Contains reports whether d falls within the range, bounds included.
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// TrailingDays returns the inclusive range covering the given number of days
// up to and including 'to'. TrailingDays(to, 90) spans 91 calendar days.
func TrailingDays(to Date, days int) Range { return Range{From: to.Add(-days), To: to} }

// MonthToDate returns the inclusive range from the first day of to's month up
// to and including 'to'.
func MonthToDate(to Date) Range { return Range{From: to.StartOfMonth(), To: to} }
