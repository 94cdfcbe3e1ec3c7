package spec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	uuidRegex       = regexp.MustCompile(`^0x[0-9a-f]{32}$`)
	uuidPrefixRegex = regexp.MustCompile(`^0x[0-9a-f]{1,31}$`)

	nameRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_.-]*$`)

	// Ranges like foo^1-3 expand to foo^1 foo^2 foo^3.
	historyRangeRegex = regexp.MustCompile(`^(.*\^)([0-9]+)-([0-9]+)$`)
)

// IsUUID reports whether s is a full bundle uuid.
func IsUUID(s string) bool {
	return uuidRegex.MatchString(s)
}

// IsUUIDPrefix reports whether s is a (strict) prefix of a bundle uuid.
func IsUUIDPrefix(s string) bool {
	return uuidPrefixRegex.MatchString(s)
}

// CheckUUID returns an error unless s is a full bundle uuid.
func CheckUUID(s string) error {
	if !IsUUID(s) {
		return fmt.Errorf("uuids must match %s, was %s", uuidRegex.String(), s)
	}
	return nil
}

// CheckName returns an error unless s is a valid bundle name.
func CheckName(s string) error {
	if !nameRegex.MatchString(s) {
		return fmt.Errorf("names must match %s, was %s", nameRegex.String(), s)
	}
	return nil
}

// Validate checks the shape of a bundle spec before it is handed to cl.
// A client prefix (alias::spec), a history suffix (^2) and a worksheet
// qualifier (ws/bundle) are stripped first; what remains must be a uuid,
// a uuid prefix, or a valid name. A bare history reference (^2) is
// relative to the current worksheet and always valid.
func Validate(s string) error {
	if HasExplicitClient(s) {
		_, s, _ = strings.Cut(s, "::")
	}
	if i := strings.IndexByte(s, '^'); i >= 0 {
		s = s[:i]
	}
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		s = s[i+1:]
	}

	if s == "" {
		return nil
	}
	if strings.HasPrefix(s, "0x") {
		if IsUUID(s) || IsUUIDPrefix(s) {
			return nil
		}
		return CheckUUID(s)
	}
	return CheckName(s)
}

// ExpandHistoryRanges expands range specs in place order:
// ["foo", "a^1-3", "bar"] becomes ["foo", "a^1", "a^2", "a^3", "bar"].
// A reversed range (a^3-1) counts down.
func ExpandHistoryRanges(specs []string) []string {
	expanded := make([]string, 0, len(specs))
	for _, s := range specs {
		m := historyRangeRegex.FindStringSubmatch(s)
		if m == nil {
			expanded = append(expanded, s)
			continue
		}
		prefix := m[1]
		a, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		if a <= b {
			for i := a; i <= b; i++ {
				expanded = append(expanded, prefix+strconv.Itoa(i))
			}
		} else {
			for i := a; i >= b; i-- {
				expanded = append(expanded, prefix+strconv.Itoa(i))
			}
		}
	}
	return expanded
}

// HasExplicitClient reports whether the spec names its client (alias::spec).
func HasExplicitClient(s string) bool {
	return strings.Contains(s, "::")
}

// ExpandAlias rewrites an alias::spec prefix to address::spec using the
// given alias map. Specs without a client prefix, or with an unknown
// prefix, pass through untouched.
func ExpandAlias(s string, aliases map[string]string) string {
	prefix, rest, ok := strings.Cut(s, "::")
	if !ok {
		return s
	}
	if addr, known := aliases[prefix]; known {
		return addr + "::" + rest
	}
	return s
}

// ShortenName truncates long names, keeping both ends:
// a 40-char name becomes head..tail within n characters.
func ShortenName(name string, n int) string {
	if len(name) <= n {
		return name
	}
	return name[:n/2-1] + ".." + name[len(name)-n/2+1:]
}
