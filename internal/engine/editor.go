package engine

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// OpenInEditor launches the configured editor (or $EDITOR) with the given
// files and blocks until it exits. The editor string is whitespace-split,
// so values like "code --wait" work.
func (e *Engine) OpenInEditor(paths []string) error {
	editor := e.editor
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return ErrEditorNotSet
	}

	args := append(parts[1:], paths...)
	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q failed: %w", parts[0], err)
	}
	return nil
}
