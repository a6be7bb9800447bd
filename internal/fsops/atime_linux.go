//go:build linux

package fsops

import (
	"os"
	"syscall"
	"time"
)

// accessTime extracts the access time from file info on Linux.
func accessTime(fi os.FileInfo) time.Time {
	stat, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return fi.ModTime()
	}
	return time.Unix(stat.Atim.Sec, stat.Atim.Nsec)
}
