package dateparse

import (
	"strconv"
	"strings"
	"time"

	"github.com/danieljhkim/zap/internal/filetime"
)

// ParseStamp parses a -t style POSIX stamp: [[CC]YY]MMDDhhmm[.SS].
//
// Digit-length dispatch on the part before the dot: 8 digits default the
// year to now's local year, 10 digits carry a two-digit year (69-99 maps
// to 19YY, 00-68 to 20YY), 12 digits carry the full year. An optional
// .SS suffix must be exactly two digits, 0-60; 60 tolerates a leap second
// and rolls into the next minute. The stamp is local wall-clock time in
// loc, subject to the same ambiguity rules as ParseDate.
func ParseStamp(s string, now time.Time, loc *time.Location) (filetime.Instant, error) {
	if loc == nil {
		loc = time.Local
	}

	main := s
	sec := 0
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		main = s[:dot]
		suffix := s[dot+1:]
		if len(suffix) != 2 || !allDigits(suffix) {
			return filetime.Instant{}, syntaxErr(s, "seconds suffix must be exactly two digits")
		}
		sec, _ = strconv.Atoi(suffix)
		if sec > 60 {
			return filetime.Instant{}, rangeErr(s, "seconds %02d out of range (0-60)", sec)
		}
	}

	if !allDigits(main) {
		return filetime.Instant{}, syntaxErr(s, "stamp must contain only digits")
	}

	var year int
	switch len(main) {
	case 8:
		year = now.In(loc).Year()
	case 10:
		yy, _ := strconv.Atoi(main[:2])
		year = pivotYear(yy)
		main = main[2:]
	case 12:
		year, _ = strconv.Atoi(main[:4])
		main = main[4:]
	default:
		return filetime.Instant{}, syntaxErr(s, "expected [[CC]YY]MMDDhhmm, got %d digits", len(main))
	}

	month, _ := strconv.Atoi(main[0:2])
	day, _ := strconv.Atoi(main[2:4])
	hour, _ := strconv.Atoi(main[4:6])
	minute, _ := strconv.Atoi(main[6:8])

	if month < 1 || month > 12 {
		return filetime.Instant{}, rangeErr(s, "month %02d out of range (01-12)", month)
	}
	if max := daysIn(year, time.Month(month)); day < 1 || day > max {
		return filetime.Instant{}, rangeErr(s, "day %02d out of range for %d-%02d (01-%02d)", day, year, month, max)
	}
	if hour > 23 {
		return filetime.Instant{}, rangeErr(s, "hour %02d out of range (00-23)", hour)
	}
	if minute > 59 {
		return filetime.Instant{}, rangeErr(s, "minute %02d out of range (00-59)", minute)
	}

	// Resolve the minute in local time, then add the seconds. Calendar
	// transitions happen on minute boundaries, and resolving before adding
	// lets .60 roll cleanly into the next minute.
	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute {
		return filetime.Instant{}, ambiguousErr(s, "local time does not exist in %s", loc)
	}
	if isAmbiguousLocal(t, loc) {
		return filetime.Instant{}, ambiguousErr(s, "local time is ambiguous in %s", loc)
	}

	instant, err := filetime.FromTime(t).AddSeconds(int64(sec))
	if err != nil {
		return filetime.Instant{}, overflowErr(s, "stamp out of representable range")
	}
	return instant, nil
}

// pivotYear expands a two-digit year per the POSIX touch rule.
func pivotYear(yy int) int {
	if yy >= 69 {
		return 1900 + yy
	}
	return 2000 + yy
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
