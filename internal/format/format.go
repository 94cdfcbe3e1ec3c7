package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Missing is printed where a value is absent.
const Missing = "MISSING"

// ContentsStr returns s, or Missing when s is empty.
func ContentsStr(s string) string {
	if s == "" {
		return Missing
	}
	return s
}

// SizeStr renders a byte count as a compact 1024-based string: 100 stays
// "100", 102400 becomes "100K". One decimal is kept while the value is
// small and fractional.
func SizeStr(size int64) string {
	v := float64(size)
	for _, unit := range []string{"", "K", "M", "G", "T"} {
		if v < 100 && v != float64(int64(v)) {
			return fmt.Sprintf("%.1f%s", v, unit)
		}
		if v < 1024 {
			return fmt.Sprintf("%d%s", int64(v), unit)
		}
		v /= 1024
	}
	return fmt.Sprintf("%d", size)
}

// ParseSize parses "<number>[k|m|g]" into bytes.
func ParseSize(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}
	last := s[len(s)-1]
	if last >= '0' && last <= '9' {
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid size %q", s)
		}
		return int64(n), nil
	}

	n, err := strconv.ParseFloat(s[:len(s)-1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	switch strings.ToLower(string(last)) {
	case "k":
		return int64(n * 1024), nil
	case "m":
		return int64(n * 1024 * 1024), nil
	case "g":
		return int64(n * 1024 * 1024 * 1024), nil
	}
	return 0, fmt.Errorf("invalid unit in %q", s)
}

// DurationStr renders seconds compactly using the two most significant
// units: 100 becomes "1m40s", 10000 becomes "2h46m".
func DurationStr(seconds float64) string {
	s := seconds
	m := int64(s / 60)
	if m == 0 {
		return fmt.Sprintf("%.1fs", s)
	}
	s -= float64(m) * 60

	h := m / 60
	if h == 0 {
		return fmt.Sprintf("%dm%ds", m, int64(s))
	}
	m -= h * 60

	d := h / 24
	if d == 0 {
		return fmt.Sprintf("%dh%dm", h, m)
	}
	h -= d * 24

	y := d / 365
	if y == 0 {
		return fmt.Sprintf("%dd%dh", d, h)
	}
	d -= y * 365

	return fmt.Sprintf("%dy%dd", y, d)
}

// ParseDuration parses "<number>[s|m|h|d|y]" into seconds.
func ParseDuration(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	last := s[len(s)-1]
	if last >= '0' && last <= '9' {
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		return n, nil
	}

	n, err := strconv.ParseFloat(s[:len(s)-1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	switch strings.ToLower(string(last)) {
	case "s":
		return n, nil
	case "m":
		return n * 60, nil
	case "h":
		return n * 60 * 60, nil
	case "d":
		return n * 60 * 60 * 24, nil
	case "y":
		return n * 60 * 60 * 24 * 365, nil
	}
	return 0, fmt.Errorf("invalid unit in %q", s)
}

// DateStr renders a unix timestamp as "2006-01-02 15:04:05" local time.
func DateStr(ts int64) string {
	return time.Unix(ts, 0).Format("2006-01-02 15:04:05")
}

// Ago renders how long ago t was, e.g. "1m40s ago".
func Ago(t, now time.Time) string {
	if t.IsZero() {
		return Missing
	}
	return DurationStr(now.Sub(t).Seconds()) + " ago"
}

// SanitizeForPath replaces characters that are problematic in file names
// with -. Used when bundle specs become temp file names.
func SanitizeForPath(name string) string {
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"\"", "-",
		"<", "-",
		">", "-",
		"|", "-",
	)
	return replacer.Replace(name)
}
