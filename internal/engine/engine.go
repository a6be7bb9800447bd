// Package engine orchestrates zap runs: it resolves the requested time
// source once, plans each target path against a single metadata snapshot,
// and executes the resulting actions in order.
//
// Files are processed sequentially; a failure aborts the remaining steps
// for that file only, and the run continues with the next one. The engine
// talks to the world through small injected interfaces (filesystem,
// clock, confirmation prompt, template renderer) so runs are fully
// testable.
package engine

import (
	"fmt"
	"time"

	"github.com/danieljhkim/zap/internal/clock"
	"github.com/danieljhkim/zap/internal/dateparse"
	"github.com/danieljhkim/zap/internal/filetime"
	"github.com/danieljhkim/zap/internal/fsops"
	"github.com/danieljhkim/zap/internal/planner"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	// Confirm presents the prompt and returns the user's answer.
	Confirm(prompt string) (bool, error)
}

// Renderer renders a named template with a raw context string.
type Renderer interface {
	Render(name, contextStr string) ([]byte, error)
}

// Engine coordinates a zap run. It is the main API surface called by
// the CLI.
type Engine struct {
	fs       fsops.FS
	clock    clock.Clock
	confirm  Confirmer
	renderer Renderer
	loc      *time.Location
	editor   string
}

// New creates an Engine. loc is the location used to interpret local
// wall-clock time strings (nil means time.Local); editor overrides
// $EDITOR for --open (empty means use the environment).
func New(fs fsops.FS, clk clock.Clock, confirmer Confirmer, renderer Renderer, loc *time.Location, editor string) *Engine {
	if loc == nil {
		loc = time.Local
	}
	return &Engine{
		fs:       fs,
		clock:    clk,
		confirm:  confirmer,
		renderer: renderer,
		loc:      loc,
		editor:   editor,
	}
}

// TouchRequest describes one zap invocation.
type TouchRequest struct {
	// Paths are the target files, processed in order.
	Paths []string

	// Date, Stamp, and Reference are the mutually exclusive absolute
	// time sources; when several are set, Date wins over Stamp wins
	// over Reference. All empty means "now".
	Date      string
	Stamp     string
	Reference string

	// Adjust is the -A relative shift string; empty means none.
	Adjust string

	// Template and Context select and parameterize a file template.
	Template string
	Context  string

	// NoCreate suppresses creation of absent files.
	NoCreate bool

	// CreateParents creates missing parent directories without prompting.
	CreateParents bool

	// AccessOnly and ModificationOnly restrict which attributes time
	// operations touch. Neither set means both are updated.
	AccessOnly       bool
	ModificationOnly bool

	// SymlinkOnly applies time operations to a symlink itself.
	SymlinkOnly bool
}

// selection resolves the -a/-m flags into per-attribute booleans.
func (r *TouchRequest) selection() (access, modification bool) {
	if !r.AccessOnly && !r.ModificationOnly {
		return true, true
	}
	return r.AccessOnly, r.ModificationOnly
}

// Status is the terminal state of one target path.
type Status int

const (
	// StatusTouched means the file's times were updated.
	StatusTouched Status = iota

	// StatusCreated means the file was created (empty or from a template).
	StatusCreated

	// StatusSkipped means the path was left entirely alone (no-create).
	StatusSkipped

	// StatusDeclined means the user answered no to a prompt; not a failure.
	StatusDeclined

	// StatusFailed means an error aborted the remaining steps for the path.
	StatusFailed
)

// String returns a short label for the status.
func (s Status) String() string {
	switch s {
	case StatusTouched:
		return "touched"
	case StatusCreated:
		return "created"
	case StatusSkipped:
		return "skipped"
	case StatusDeclined:
		return "declined"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FileOutcome is the result for one target path.
type FileOutcome struct {
	// Path is the target file.
	Path string

	// Status is the terminal state.
	Status Status

	// Detail is a human-readable note (skip reason, decline prompt).
	Detail string

	// Err is set when Status is StatusFailed.
	Err error
}

// Result is the outcome of a whole run.
type Result struct {
	// Files holds one outcome per target path, in processing order.
	Files []FileOutcome
}

// Failed reports whether any file hit an outright error. Skips and
// declines do not count.
func (r *Result) Failed() bool {
	for _, f := range r.Files {
		if f.Status == StatusFailed {
			return true
		}
	}
	return false
}

// Run executes the request. It returns an error only for invocation-level
// problems (bad flag values, missing reference file); per-file errors are
// reported in the Result and leave the remaining files unaffected.
func (e *Engine) Run(req *TouchRequest) (*Result, error) {
	if len(req.Paths) == 0 {
		return nil, ErrNoPaths
	}

	explicit, err := e.resolveTimeSource(req)
	if err != nil {
		return nil, err
	}

	var adjust *filetime.Adjustment
	if req.Adjust != "" {
		delta, err := dateparse.ParseAdjust(req.Adjust)
		if err != nil {
			return nil, err
		}
		adjust = &delta
	}

	access, modification := req.selection()

	result := &Result{}
	for _, path := range req.Paths {
		result.Files = append(result.Files, e.touchOne(path, req, explicit, adjust, access, modification))
	}
	return result, nil
}

// touchOne plans and executes a single path, taking the existence
// snapshot exactly once.
func (e *Engine) touchOne(path string, req *TouchRequest, explicit *filetime.FileTimeSpec, adjust *filetime.Adjustment, access, modification bool) FileOutcome {
	exists, err := e.pathExists(path, req.SymlinkOnly)
	if err != nil {
		return FileOutcome{Path: path, Status: StatusFailed, Err: fmt.Errorf("failed to stat %s: %w", path, err)}
	}

	action := planner.Build(planner.Request{
		Path:               path,
		Exists:             exists,
		NoCreate:           req.NoCreate,
		Adjust:             adjust,
		Template:           req.Template,
		Context:            req.Context,
		UpdateAccess:       access,
		UpdateModification: modification,
		SymlinkOnly:        req.SymlinkOnly,
		CreateParents:      req.CreateParents,
	}, explicit, filetime.FromTime(e.clock.Now()))

	return e.execute(action)
}

// pathExists snapshots existence, honoring symlink mode: a dangling
// symlink exists for -s purposes even though its target does not.
func (e *Engine) pathExists(path string, symlinkOnly bool) (bool, error) {
	if symlinkOnly {
		if _, err := e.fs.Lstat(path); err != nil {
			if isNotExist(err) {
				return false, nil
			}
			return false, err
		}
		return true, nil
	}
	return e.fs.Exists(path)
}

// resolveTimeSource parses the single requested absolute time source
// into a spec, or nil when none was requested.
func (e *Engine) resolveTimeSource(req *TouchRequest) (*filetime.FileTimeSpec, error) {
	switch {
	case req.Date != "":
		instant, err := dateparse.ParseDate(req.Date, e.loc)
		if err != nil {
			return nil, err
		}
		spec := filetime.From(instant)
		return &spec, nil
	case req.Stamp != "":
		instant, err := dateparse.ParseStamp(req.Stamp, e.clock.Now(), e.loc)
		if err != nil {
			return nil, err
		}
		spec := filetime.From(instant)
		return &spec, nil
	case req.Reference != "":
		fi, err := e.fs.Stat(req.Reference)
		if err != nil {
			if isNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrReferenceNotFound, req.Reference)
			}
			return nil, fmt.Errorf("failed to stat reference %s: %w", req.Reference, err)
		}
		atime, mtime := e.fs.FileTimes(fi)
		spec := filetime.FromMetadata(atime, mtime)
		return &spec, nil
	default:
		return nil, nil
	}
}
