// Package filetime defines the time model used throughout zap: an Instant
// (an absolute point in time with nanosecond precision), an Adjustment (a
// signed whole-second delta), and a FileTimeSpec (the pair of optional
// access/modification instants a time-setting operation should apply).
//
// The package is pure: it performs no I/O and never consults the system
// clock. Callers supply wall-clock time and file metadata explicitly.
package filetime

import (
	"errors"
	"time"
)

var (
	// ErrAdjustOverflow indicates an adjustment pushed an instant past the
	// maximum representable time.
	ErrAdjustOverflow = errors.New("time adjustment overflow")

	// ErrAdjustUnderflow indicates an adjustment pushed an instant below the
	// minimum representable time.
	ErrAdjustUnderflow = errors.New("time adjustment underflow")
)

// Instant is an absolute point in time: whole seconds since the Unix epoch
// plus a nanosecond fraction in [0, 1e9). It is timezone-independent and
// comparable at full precision. The zero value is the Unix epoch.
type Instant struct {
	sec  int64
	nsec int32
}

// FromTime converts a time.Time to an Instant.
func FromTime(t time.Time) Instant {
	return Instant{sec: t.Unix(), nsec: int32(t.Nanosecond())}
}

// FromUnix builds an Instant from epoch seconds and a nanosecond fraction.
// The fraction is normalized into [0, 1e9).
func FromUnix(sec int64, nsec int64) Instant {
	sec += nsec / 1e9
	nsec %= 1e9
	if nsec < 0 {
		nsec += 1e9
		sec--
	}
	return Instant{sec: sec, nsec: int32(nsec)}
}

// Unix returns the whole seconds since the Unix epoch.
func (i Instant) Unix() int64 { return i.sec }

// Nanosecond returns the sub-second fraction in nanoseconds.
func (i Instant) Nanosecond() int { return int(i.nsec) }

// Time converts the instant to a time.Time in UTC.
func (i Instant) Time() time.Time {
	return time.Unix(i.sec, int64(i.nsec)).UTC()
}

// Equal reports whether two instants denote the same point in time.
func (i Instant) Equal(other Instant) bool {
	return i.sec == other.sec && i.nsec == other.nsec
}

// Before reports whether i is strictly earlier than other.
func (i Instant) Before(other Instant) bool {
	if i.sec != other.sec {
		return i.sec < other.sec
	}
	return i.nsec < other.nsec
}

// After reports whether i is strictly later than other.
func (i Instant) After(other Instant) bool {
	return other.Before(i)
}

// AddSeconds returns the instant shifted by the given number of seconds.
// The shift is checked: exceeding the int64 second range fails with
// ErrAdjustOverflow or ErrAdjustUnderflow instead of wrapping.
func (i Instant) AddSeconds(seconds int64) (Instant, error) {
	sum := i.sec + seconds
	if seconds > 0 && sum < i.sec {
		return Instant{}, ErrAdjustOverflow
	}
	if seconds < 0 && sum > i.sec {
		return Instant{}, ErrAdjustUnderflow
	}
	return Instant{sec: sum, nsec: i.nsec}, nil
}

// String formats the instant as RFC 3339 with nanoseconds, in UTC.
func (i Instant) String() string {
	return i.Time().Format(time.RFC3339Nano)
}
