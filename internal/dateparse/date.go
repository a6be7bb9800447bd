package dateparse

import (
	"strings"
	"time"

	"github.com/danieljhkim/zap/internal/filetime"
)

// localLayout is the -d form without a zone offset, interpreted as local
// wall-clock time. time.Parse additionally accepts fractional seconds
// after the seconds field even though the layout does not spell them out.
const localLayout = "2006-01-02T15:04:05"

// ParseDate parses a -d style date string. With an explicit offset the
// string is an absolute RFC 3339 instant; without one it is local
// wall-clock time in loc, which must resolve to exactly one instant.
// A single space is accepted in place of the 'T' separator.
func ParseDate(s string, loc *time.Location) (filetime.Instant, error) {
	if loc == nil {
		loc = time.Local
	}

	// `touch -d` allows a space where RFC 3339 requires 'T'.
	normalized := s
	if strings.Contains(s, " ") && !strings.Contains(s, "T") {
		normalized = strings.Replace(s, " ", "T", 1)
	}

	if hasExplicitOffset(normalized) {
		t, err := time.Parse(time.RFC3339, normalized)
		if err != nil {
			return filetime.Instant{}, classifyTimeError(s, err)
		}
		return filetime.FromTime(t), nil
	}

	t, err := time.ParseInLocation(localLayout, normalized, loc)
	if err != nil {
		return filetime.Instant{}, classifyTimeError(s, err)
	}

	// time.Date normalizes wall clocks that fall in a calendar-transition
	// gap; the round trip detects that the input named no real instant.
	if t.Format(localLayout) != normalized[:len(localLayout)] {
		return filetime.Instant{}, ambiguousErr(s, "local time does not exist in %s", loc)
	}
	if isAmbiguousLocal(t, loc) {
		return filetime.Instant{}, ambiguousErr(s, "local time is ambiguous in %s", loc)
	}
	return filetime.FromTime(t), nil
}

// hasExplicitOffset reports whether the time-of-day portion of an RFC
// 3339-like string carries a zone suffix (Z or ±hh:mm).
func hasExplicitOffset(s string) bool {
	idx := strings.IndexByte(s, 'T')
	if idx < 0 {
		return false
	}
	rest := s[idx+1:]
	return strings.ContainsAny(rest, "Zz+-")
}

// isAmbiguousLocal reports whether t's wall clock maps to more than one
// instant in loc, i.e. it falls in the repeated hour of a transition.
// It probes the zone offsets around t; any differing offset that yields
// a second instant with the same wall clock marks the time ambiguous.
func isAmbiguousLocal(t time.Time, loc *time.Location) bool {
	_, off := t.Zone()
	probes := []time.Duration{
		-time.Hour, time.Hour,
		-30 * time.Minute, 30 * time.Minute,
	}
	for _, d := range probes {
		_, altOff := t.Add(d).Zone()
		if altOff == off {
			continue
		}
		cand := t.Add(time.Duration(off-altOff) * time.Second)
		if cand.Equal(t) {
			continue
		}
		if sameWallClock(cand.In(loc), t.In(loc)) {
			return true
		}
	}
	return false
}

func sameWallClock(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day() &&
		a.Hour() == b.Hour() && a.Minute() == b.Minute() && a.Second() == b.Second() &&
		a.Nanosecond() == b.Nanosecond()
}

// classifyTimeError maps a time.Parse failure to a ParseError, keeping
// out-of-range components distinct from shape errors.
func classifyTimeError(input string, err error) *ParseError {
	if strings.Contains(err.Error(), "out of range") {
		return rangeErr(input, "component out of range: %v", err)
	}
	return syntaxErr(input, "malformed date: %v", err)
}
