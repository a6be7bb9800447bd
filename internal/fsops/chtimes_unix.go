//go:build !windows

package fsops

import (
	"time"

	"golang.org/x/sys/unix"
)

// timeToTimespec converts a time to a utimensat timespec, mapping the
// zero value to UTIME_OMIT so that attribute is left unchanged.
func timeToTimespec(t time.Time) unix.Timespec {
	if t.IsZero() {
		return unix.Timespec{Sec: 0, Nsec: unix.UTIME_OMIT}
	}
	return unix.NsecToTimespec(t.UnixNano())
}

// lchtimes sets times on a symlink itself rather than its target.
func lchtimes(path string, atime, mtime time.Time) error {
	ts := [2]unix.Timespec{
		timeToTimespec(atime),
		timeToTimespec(mtime),
	}
	return unix.UtimesNanoAt(unix.AT_FDCWD, path, ts[:], unix.AT_SYMLINK_NOFOLLOW)
}
