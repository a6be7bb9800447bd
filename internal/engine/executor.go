package engine

import (
	"fmt"
	"os"
	"time"

	"github.com/danieljhkim/zap/internal/filetime"
	"github.com/danieljhkim/zap/internal/fsops"
	"github.com/danieljhkim/zap/internal/planner"
)

// execute walks one Action in order: the file operation, then the time
// operations. The first hard failure aborts the rest of the action.
func (e *Engine) execute(action planner.Action) FileOutcome {
	if action.IsSkip() {
		return FileOutcome{Path: action.Path, Status: StatusSkipped, Detail: action.SkipReason}
	}

	switch action.File {
	case planner.FileOpCreateEmpty:
		outcome, ok := e.prepareParent(action)
		if !ok {
			return outcome
		}
		if err := e.fs.Create(action.Path); err != nil {
			return failed(action.Path, err)
		}
	case planner.FileOpCreateTemplate:
		outcome, ok := e.prepareParent(action)
		if !ok {
			return outcome
		}
		if err := e.writeTemplate(action); err != nil {
			return failed(action.Path, err)
		}
	case planner.FileOpOverwriteTemplate:
		prompt := fmt.Sprintf("File %q already exists. Overwrite it?", action.Path)
		confirmed, err := e.confirm.Confirm(prompt)
		if err != nil {
			return failed(action.Path, fmt.Errorf("confirmation failed: %w", err))
		}
		if !confirmed {
			return FileOutcome{Path: action.Path, Status: StatusDeclined, Detail: "overwrite declined"}
		}
		if err := e.writeTemplate(action); err != nil {
			return failed(action.Path, err)
		}
	}

	for _, op := range action.Times {
		var err error
		switch op.Kind {
		case planner.TimeOpSet:
			err = e.setTimes(action.Path, op.Times, action.SymlinkOnly)
		case planner.TimeOpAdjust:
			err = e.adjustTimes(action.Path, op, action.SymlinkOnly)
		}
		if err != nil {
			return failed(action.Path, err)
		}
	}

	status := StatusTouched
	if action.File.Creates() {
		status = StatusCreated
	}
	return FileOutcome{Path: action.Path, Status: status}
}

// prepareParent makes sure the target's parent directory exists,
// prompting unless auto-creation was requested. The second return value
// is false when the caller should stop with the given outcome.
func (e *Engine) prepareParent(action planner.Action) (FileOutcome, bool) {
	parent := fsops.ParentDir(action.Path)
	if parent == "" {
		return FileOutcome{}, true
	}
	exists, err := e.fs.Exists(parent)
	if err != nil {
		return failed(action.Path, fmt.Errorf("failed to check directory %s: %w", parent, err)), false
	}
	if exists {
		return FileOutcome{}, true
	}

	if !action.CreateParents {
		prompt := fmt.Sprintf("Directory %q does not exist. Create it?", parent)
		confirmed, err := e.confirm.Confirm(prompt)
		if err != nil {
			return failed(action.Path, fmt.Errorf("confirmation failed: %w", err)), false
		}
		if !confirmed {
			return FileOutcome{Path: action.Path, Status: StatusDeclined, Detail: "directory creation declined"}, false
		}
	}
	if err := e.fs.MkdirAll(parent, 0755); err != nil {
		return failed(action.Path, fmt.Errorf("failed to create directory %s: %w", parent, err)), false
	}
	return FileOutcome{}, true
}

// writeTemplate renders the action's template and writes it to the
// target path.
func (e *Engine) writeTemplate(action planner.Action) error {
	rendered, err := e.renderer.Render(action.Template, action.Context)
	if err != nil {
		return err
	}
	if err := e.fs.WriteFile(action.Path, rendered, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", action.Path, err)
	}
	return nil
}

// setTimes applies the present fields of a spec. Both present means one
// combined chtimes call; an empty spec is a no-op.
func (e *Engine) setTimes(path string, spec filetime.FileTimeSpec, symlinkOnly bool) error {
	if spec.IsEmpty() {
		return nil
	}
	var atime, mtime time.Time
	if spec.Access != nil {
		atime = spec.Access.Time()
	}
	if spec.Modification != nil {
		mtime = spec.Modification.Time()
	}
	if err := e.fs.Chtimes(path, atime, mtime, symlinkOnly); err != nil {
		return fmt.Errorf("failed to set times on %s: %w", path, err)
	}
	return nil
}

// adjustTimes shifts the file's current on-disk times. The metadata is
// re-read here, immediately before the shift, rather than reusing the
// planning snapshot.
func (e *Engine) adjustTimes(path string, op planner.TimeOp, symlinkOnly bool) error {
	var fi os.FileInfo
	var err error
	if symlinkOnly {
		fi, err = e.fs.Lstat(path)
	} else {
		fi, err = e.fs.Stat(path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	atime, mtime := e.fs.FileTimes(fi)
	spec := filetime.FromMetadata(atime, mtime).WithSelection(op.UpdateAccess, op.UpdateModification)
	adjusted, err := spec.AdjustedBy(op.Delta)
	if err != nil {
		return fmt.Errorf("failed to adjust times on %s: %w", path, err)
	}
	return e.setTimes(path, adjusted, symlinkOnly)
}

func failed(path string, err error) FileOutcome {
	return FileOutcome{Path: path, Status: StatusFailed, Err: err}
}

func isNotExist(err error) bool {
	return os.IsNotExist(err)
}
