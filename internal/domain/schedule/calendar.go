package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

var (
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTime = errors.New("invalid time, expected HH:MM (24h)")
)

var (
	dateKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern    = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
)

const dateKeyLayout = "2006-01-02"

// ParseDateKey validates a YYYY-MM-DD date key and returns the calendar
// date it names, anchored at UTC midnight. Dates that match the pattern
// but do not exist (2026-02-30) are rejected.
func ParseDateKey(dateKey string) (time.Time, error) {
	if !dateKeyPattern.MatchString(dateKey) {
		return time.Time{}, ErrInvalidDate
	}
	d, err := time.Parse(dateKeyLayout, dateKey)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// ParseTime converts a 24-hour HH:MM string to a minute of day in [0, 1440).
func ParseTime(s string) (int, error) {
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, ErrInvalidTime
	}
	hour := int(m[1][0]-'0')*10 + int(m[1][1]-'0')
	minute := int(m[2][0]-'0')*10 + int(m[2][1]-'0')
	return hour*60 + minute, nil
}

// FormatTime is the exact inverse of ParseTime for any minute in [0, 1440).
func FormatTime(minuteOfDay int) string {
	return fmt.Sprintf("%02d:%02d", minuteOfDay/60, minuteOfDay%60)
}

// LocalStartOfDay returns local midnight of the named date in loc. On days
// where midnight does not exist (a DST jump over 00:00) the first valid
// instant of the day is returned.
func LocalStartOfDay(dateKey string, loc *time.Location) (time.Time, error) {
	d, err := ParseDateKey(dateKey)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc), nil
}

// LocalDayUTCRange returns the UTC instants bounding one local calendar day
// in loc. Across DST transitions the span is 23 or 25 hours, never a flat
// 24.
func LocalDayUTCRange(dateKey string, loc *time.Location) (time.Time, time.Time, error) {
	d, err := ParseDateKey(dateKey)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	end := time.Date(d.Year(), d.Month(), d.Day()+1, 0, 0, 0, 0, loc)
	return start.UTC(), end.UTC(), nil
}

// WeekdayOf returns the local weekday of the date in loc, numbered
// 1=Monday through 7=Sunday.
func WeekdayOf(dateKey string, loc *time.Location) (int, error) {
	start, err := LocalStartOfDay(dateKey, loc)
	if err != nil {
		return 0, err
	}
	wd := int(start.Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd, nil
}

// LocalTimeOnDate combines a date key with a minute of day into an absolute
// instant in loc.
func LocalTimeOnDate(dateKey string, minuteOfDay int, loc *time.Location) (time.Time, error) {
	d, err := ParseDateKey(dateKey)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), minuteOfDay/60, minuteOfDay%60, 0, 0, loc), nil
}

// UTCSpanToLocalMinutes projects a UTC instant span onto the named local
// day as a minute interval clipped to [0, 1440]. The start is floored and
// the end is ceiled so partial minutes still block the slots they touch.
// ok is false when the span does not intersect the local day.
func UTCSpanToLocalMinutes(startUTC, endUTC time.Time, dateKey string, loc *time.Location) (MinuteInterval, bool, error) {
	dayStart, err := LocalStartOfDay(dateKey, loc)
	if err != nil {
		return MinuteInterval{}, false, err
	}

	startMin := floorMinutes(startUTC.Sub(dayStart))
	endMin := ceilMinutes(endUTC.Sub(dayStart))

	iv, ok := clampToDay(MinuteInterval{StartMin: startMin, EndMin: endMin})
	return iv, ok, nil
}

func floorMinutes(d time.Duration) int {
	m := d / time.Minute
	if d%time.Minute < 0 {
		m--
	}
	return int(m)
}

func ceilMinutes(d time.Duration) int {
	m := d / time.Minute
	if d%time.Minute > 0 {
		m++
	}
	return int(m)
}
