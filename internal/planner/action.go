package planner

import "github.com/danieljhkim/zap/internal/filetime"

// FileOp is the single content operation of an Action.
type FileOp int

const (
	// FileOpNone leaves the existing file's content untouched.
	FileOpNone FileOp = iota

	// FileOpSkip touches nothing at all; the Action carries no time operations.
	FileOpSkip

	// FileOpCreateEmpty creates a new empty file.
	FileOpCreateEmpty

	// FileOpCreateTemplate creates a new file from a rendered template.
	FileOpCreateTemplate

	// FileOpOverwriteTemplate overwrites an existing file from a rendered
	// template, subject to user confirmation.
	FileOpOverwriteTemplate
)

// String returns a short label for the operation.
func (op FileOp) String() string {
	switch op {
	case FileOpNone:
		return "none"
	case FileOpSkip:
		return "skip"
	case FileOpCreateEmpty:
		return "create"
	case FileOpCreateTemplate:
		return "create-template"
	case FileOpOverwriteTemplate:
		return "overwrite-template"
	default:
		return "unknown"
	}
}

// Creates reports whether the operation writes file content.
func (op FileOp) Creates() bool {
	switch op {
	case FileOpCreateEmpty, FileOpCreateTemplate, FileOpOverwriteTemplate:
		return true
	default:
		return false
	}
}

// TimeOpKind distinguishes the two time operations.
type TimeOpKind int

const (
	// TimeOpSet sets the present fields of a resolved spec.
	TimeOpSet TimeOpKind = iota

	// TimeOpAdjust shifts the file's current on-disk times by a delta.
	// The executor re-reads metadata immediately before applying it.
	TimeOpAdjust
)

// TimeOp is one scheduled timestamp operation.
type TimeOp struct {
	// Kind selects which fields below are meaningful.
	Kind TimeOpKind

	// Times is the spec to set, with the access/modification selection
	// already applied. Valid for TimeOpSet.
	Times filetime.FileTimeSpec

	// Delta is the signed second shift. Valid for TimeOpAdjust.
	Delta filetime.Adjustment

	// UpdateAccess and UpdateModification select which attributes the
	// adjustment touches. Valid for TimeOpAdjust.
	UpdateAccess       bool
	UpdateModification bool
}

// Action is the complete, side-effect-free plan for one target path.
// It is built once, executed once, and holds no resources.
type Action struct {
	// Path is the target file.
	Path string

	// File is the content operation.
	File FileOp

	// SkipReason explains a FileOpSkip.
	SkipReason string

	// Template and Context parameterize the template operations.
	Template string
	Context  string

	// Times is the ordered list of time operations.
	Times []TimeOp

	// SymlinkOnly directs time operations at a symlink itself rather
	// than its target.
	SymlinkOnly bool

	// CreateParents creates missing parent directories without prompting.
	CreateParents bool
}

// IsSkip reports whether the action touches nothing.
func (a *Action) IsSkip() bool {
	return a.File == FileOpSkip
}
