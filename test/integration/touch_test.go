package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danieljhkim/zap/internal/clock"
	"github.com/danieljhkim/zap/internal/config"
	"github.com/danieljhkim/zap/internal/engine"
	"github.com/danieljhkim/zap/internal/fsops"
	"github.com/danieljhkim/zap/internal/template"
)

// yesConfirmer answers every prompt affirmatively, like the -y flag.
type yesConfirmer struct{}

func (yesConfirmer) Confirm(string) (bool, error) { return true, nil }

// setupEngine builds an engine the way the CLI does, rooted in a temp
// config directory resolved through ZAP_CONFIG_DIR.
func setupEngine(t *testing.T, now time.Time) (*engine.Engine, *config.Paths) {
	t.Helper()

	root := t.TempDir()
	t.Setenv("ZAP_CONFIG_DIR", root)

	paths, err := config.DefaultPaths()
	if err != nil {
		t.Fatalf("DefaultPaths() error = %v", err)
	}
	if err := os.MkdirAll(paths.Templates, 0o755); err != nil {
		t.Fatalf("MkdirAll(%s) error = %v", paths.Templates, err)
	}

	cfg, err := config.Load(paths.Config)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cfg.ApplyTo(paths)

	renderer := template.NewEngine(paths.Templates)
	eng := engine.New(fsops.NewRealFS(), clock.NewFakeClock(now), yesConfirmer{}, renderer, time.UTC, "")
	return eng, paths
}

func TestTouch_TemplateCreateFullCycle(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	eng, paths := setupEngine(t, now)

	tmpl := []byte("# {{.title}}\n\nwritten by {{.author}}\n")
	if err := os.WriteFile(paths.TemplatePath("note"), tmpl, 0o644); err != nil {
		t.Fatalf("writing template: %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "journal", "today.md")

	result, err := eng.Run(&engine.TouchRequest{
		Paths:         []string{path},
		Template:      "note",
		Context:       "title=Standup,author=dan",
		CreateParents: true,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Failed() {
		t.Fatalf("run failed: %+v", result.Files)
	}
	if result.Files[0].Status != engine.StatusCreated {
		t.Fatalf("status = %v, want created", result.Files[0].Status)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading created file: %v", err)
	}
	want := "# Standup\n\nwritten by dan\n"
	if string(content) != want {
		t.Errorf("content = %q, want %q", content, want)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.ModTime().Equal(now) {
		t.Errorf("mtime = %v, want %v", info.ModTime(), now)
	}
}

func TestTouch_ReferenceThenAdjust(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	eng, _ := setupEngine(t, now)

	dir := t.TempDir()
	ref := filepath.Join(dir, "ref.txt")
	target := filepath.Join(dir, "target.txt")

	refTime := time.Date(2020, 3, 4, 5, 6, 7, 0, time.UTC)
	if err := os.WriteFile(ref, nil, 0o644); err != nil {
		t.Fatalf("writing reference: %v", err)
	}
	if err := os.Chtimes(ref, refTime, refTime); err != nil {
		t.Fatalf("setting reference times: %v", err)
	}

	// First pass copies the reference times onto a fresh file.
	result, err := eng.Run(&engine.TouchRequest{
		Paths:     []string{target},
		Reference: ref,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Failed() {
		t.Fatalf("run failed: %+v", result.Files)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.ModTime().Equal(refTime) {
		t.Fatalf("mtime = %v, want %v", info.ModTime(), refTime)
	}

	// Second pass shifts the existing times forward an hour.
	result, err = eng.Run(&engine.TouchRequest{
		Paths:  []string{target},
		Adjust: "010000",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Failed() {
		t.Fatalf("adjust run failed: %+v", result.Files)
	}
	if result.Files[0].Status != engine.StatusTouched {
		t.Fatalf("status = %v, want touched", result.Files[0].Status)
	}

	info, err = os.Stat(target)
	if err != nil {
		t.Fatalf("stat after adjust: %v", err)
	}
	if want := refTime.Add(time.Hour); !info.ModTime().Equal(want) {
		t.Errorf("mtime = %v, want %v", info.ModTime(), want)
	}
}

func TestTouch_NoCreateLeavesNothingBehind(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	eng, _ := setupEngine(t, now)

	path := filepath.Join(t.TempDir(), "ghost.txt")

	result, err := eng.Run(&engine.TouchRequest{
		Paths:    []string{path},
		NoCreate: true,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Failed() {
		t.Fatalf("run failed: %+v", result.Files)
	}
	if result.Files[0].Status != engine.StatusSkipped {
		t.Fatalf("status = %v, want skipped", result.Files[0].Status)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to not exist, stat err = %v", path, err)
	}
}
