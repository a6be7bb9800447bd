//go:build darwin

package fsops

import (
	"os"
	"syscall"
	"time"
)

// accessTime extracts the access time from file info on Darwin.
func accessTime(fi os.FileInfo) time.Time {
	stat, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return fi.ModTime()
	}
	return time.Unix(stat.Atimespec.Sec, stat.Atimespec.Nsec)
}
