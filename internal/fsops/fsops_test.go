package fsops

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRealFS_Exists(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	path := filepath.Join(dir, "present.txt")
	if err := fs.Create(path); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := fs.Exists(path)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !got {
		t.Error("expected existing file to be reported present")
	}

	got, err = fs.Exists(filepath.Join(dir, "absent.txt"))
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if got {
		t.Error("expected missing file to be reported absent")
	}
}

func TestRealFS_CreateTruncates(t *testing.T) {
	fs := NewRealFS()
	path := filepath.Join(t.TempDir(), "file.txt")

	if err := fs.WriteFile(path, []byte("content"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := fs.Create(path); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("Create should truncate, got %d bytes", len(data))
	}
}

func TestRealFS_ChtimesBoth(t *testing.T) {
	fs := NewRealFS()
	path := filepath.Join(t.TempDir(), "file.txt")
	if err := fs.Create(path); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	atime := time.Date(2020, 5, 1, 10, 0, 0, 0, time.UTC)
	mtime := time.Date(2019, 4, 2, 8, 30, 0, 0, time.UTC)
	if err := fs.Chtimes(path, atime, mtime, false); err != nil {
		t.Fatalf("Chtimes failed: %v", err)
	}

	fi, err := fs.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	gotAtime, gotMtime := fs.FileTimes(fi)
	if !gotAtime.Equal(atime) {
		t.Errorf("atime = %v, want %v", gotAtime, atime)
	}
	if !gotMtime.Equal(mtime) {
		t.Errorf("mtime = %v, want %v", gotMtime, mtime)
	}
}

func TestRealFS_ChtimesZeroLeavesUnchanged(t *testing.T) {
	fs := NewRealFS()
	path := filepath.Join(t.TempDir(), "file.txt")
	if err := fs.Create(path); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	atime := time.Date(2020, 5, 1, 10, 0, 0, 0, time.UTC)
	mtime := time.Date(2019, 4, 2, 8, 30, 0, 0, time.UTC)
	if err := fs.Chtimes(path, atime, mtime, false); err != nil {
		t.Fatalf("Chtimes failed: %v", err)
	}

	// Update only the access time; the modification time must survive.
	newAtime := time.Date(2021, 6, 3, 12, 0, 0, 0, time.UTC)
	if err := fs.Chtimes(path, newAtime, time.Time{}, false); err != nil {
		t.Fatalf("Chtimes failed: %v", err)
	}

	fi, err := fs.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	gotAtime, gotMtime := fs.FileTimes(fi)
	if !gotAtime.Equal(newAtime) {
		t.Errorf("atime = %v, want %v", gotAtime, newAtime)
	}
	if !gotMtime.Equal(mtime) {
		t.Errorf("mtime = %v, want it unchanged at %v", gotMtime, mtime)
	}
}

func TestRealFS_ChtimesSymlinkOnly(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	target := filepath.Join(dir, "target.txt")
	if err := fs.Create(target); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("Symlink failed: %v", err)
	}

	targetBefore, err := fs.Stat(target)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	_, targetMtimeBefore := fs.FileTimes(targetBefore)

	when := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := fs.Chtimes(link, when, when, true); err != nil {
		t.Fatalf("Chtimes(symlink) failed: %v", err)
	}

	linkInfo, err := fs.Lstat(link)
	if err != nil {
		t.Fatalf("Lstat failed: %v", err)
	}
	_, linkMtime := fs.FileTimes(linkInfo)
	if !linkMtime.Equal(when) {
		t.Errorf("symlink mtime = %v, want %v", linkMtime, when)
	}

	targetAfter, err := fs.Stat(target)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	_, targetMtimeAfter := fs.FileTimes(targetAfter)
	if !targetMtimeAfter.Equal(targetMtimeBefore) {
		t.Errorf("target mtime changed from %v to %v", targetMtimeBefore, targetMtimeAfter)
	}
}

func TestParentDir(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "notes/today.md", want: "notes"},
		{path: "today.md", want: ""},
		{path: "/tmp/x/y.txt", want: "/tmp/x"},
		{path: "/top.txt", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := ParentDir(tt.path); got != tt.want {
				t.Errorf("ParentDir(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
