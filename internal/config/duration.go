package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// ErrInvalidDuration is returned when a duration string cannot be parsed.
var ErrInvalidDuration = errors.New("invalid duration")

// Calendar units follow the usual human-readable conventions:
// a month is 30.44 days and a year is 365.25 days.
const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 2_630_016 * time.Second
	year  = 31_557_600 * time.Second
)

// units maps every accepted unit spelling to its length.
var units = map[string]time.Duration{
	"nanos": time.Nanosecond, "nsec": time.Nanosecond, "ns": time.Nanosecond,
	"micros": time.Microsecond, "usec": time.Microsecond, "us": time.Microsecond, "µs": time.Microsecond,
	"millis": time.Millisecond, "msec": time.Millisecond, "ms": time.Millisecond,
	"seconds": time.Second, "second": time.Second, "secs": time.Second, "sec": time.Second, "s": time.Second,
	"minutes": time.Minute, "minute": time.Minute, "mins": time.Minute, "min": time.Minute, "m": time.Minute,
	"hours": time.Hour, "hour": time.Hour, "hrs": time.Hour, "hr": time.Hour, "h": time.Hour,
	"days": day, "day": day, "d": day,
	"weeks": week, "week": week, "w": week,
	"months": month, "month": month, "M": month,
	"years": year, "year": year, "y": year,
}

// Duration is a time.Duration that can be parsed from human-readable strings
// such as "30min", "2sec", "1h 30min" or "1min30sec". Go duration syntax
// ("1.5h", "1m30s") is accepted as well.
type Duration time.Duration

// ParseDuration parses a human-readable duration string.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidDuration)
	}
	if s == "0" {
		return 0, nil
	}

	d, err := parseHuman(s)
	if err == nil {
		return d, nil
	}

	// Fall back to Go syntax for fractional values like "1.5h"
	if goDur, goErr := time.ParseDuration(s); goErr == nil && goDur >= 0 {
		return goDur, nil
	}

	return 0, fmt.Errorf("%w %q: %v", ErrInvalidDuration, s, err)
}

// parseHuman parses a sequence of <integer><unit> components separated by
// optional whitespace.
func parseHuman(s string) (time.Duration, error) {
	var total time.Duration
	i := 0
	for i < len(s) {
		for i < len(s) && s[i] == ' ' {
			i++
		}
		if i == len(s) {
			break
		}

		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if start == i {
			return 0, fmt.Errorf("expected number at offset %d", start)
		}
		var n uint64
		for _, c := range s[start:i] {
			if n > (math.MaxInt64-9)/10 {
				return 0, errors.New("number is too large")
			}
			n = n*10 + uint64(c-'0')
		}

		for i < len(s) && s[i] == ' ' {
			i++
		}
		start = i
		for i < len(s) && !(s[i] >= '0' && s[i] <= '9') && s[i] != ' ' {
			i++
		}
		if start == i {
			return 0, fmt.Errorf("time unit needed after %d", n)
		}
		unit, ok := units[s[start:i]]
		if !ok {
			return 0, fmt.Errorf("unknown time unit %q", s[start:i])
		}

		if n > uint64(math.MaxInt64/int64(unit)) {
			return 0, errors.New("duration is too large")
		}
		part := time.Duration(n) * unit
		if total > math.MaxInt64-part {
			return 0, errors.New("duration is too large")
		}
		total += part
	}
	return total, nil
}

// FormatDuration renders d with the same units ParseDuration accepts,
// e.g. "1h 30min", "2s" or "250ms".
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "0s"
	}

	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}

	var parts []string
	for _, u := range []struct {
		name string
		size time.Duration
	}{
		{"h", time.Hour},
		{"min", time.Minute},
		{"s", time.Second},
		{"ms", time.Millisecond},
		{"us", time.Microsecond},
		{"ns", time.Nanosecond},
	} {
		if n := d / u.size; n > 0 {
			parts = append(parts, fmt.Sprintf("%d%s", n, u.name))
			d -= n * u.size
		}
	}
	return sign + strings.Join(parts, " ")
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	dur, err := ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML output.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// String implements pflag.Value.
func (d Duration) String() string {
	return FormatDuration(time.Duration(d))
}

// Set implements pflag.Value.
func (d *Duration) Set(s string) error {
	return d.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (d *Duration) Type() string {
	return "duration"
}

var _ pflag.Value = (*Duration)(nil)
