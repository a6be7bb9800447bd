package planner

import "github.com/danieljhkim/zap/internal/filetime"

// Request is the flag configuration and existence snapshot for one path.
// Exists is captured once at planning time and never re-queried, except
// for the adjustment step, which the executor computes against a fresh
// metadata read.
type Request struct {
	// Path is the target file.
	Path string

	// Exists is the planning-time existence snapshot.
	Exists bool

	// NoCreate suppresses creation of absent files.
	NoCreate bool

	// Adjust, when non-nil, schedules a relative shift of the on-disk times.
	Adjust *filetime.Adjustment

	// Template names a template to render into the file; empty means none.
	Template string

	// Context is the raw key=value,key=value template context string.
	Context string

	// UpdateAccess and UpdateModification select which attributes time
	// operations touch. Callers resolve the "neither flag means both"
	// default before planning.
	UpdateAccess       bool
	UpdateModification bool

	// SymlinkOnly directs time operations at a symlink itself.
	SymlinkOnly bool

	// CreateParents creates missing parent directories without prompting.
	CreateParents bool
}

// Build produces the Action for one path.
//
// explicit is the resolved time source, or nil when none was requested;
// nil defaults to now. When an adjustment is the only time intent on an
// untouched existing file, no set step is scheduled and the adjustment
// alone runs; an explicit source alongside an adjustment is set first,
// then adjusted.
func Build(req Request, explicit *filetime.FileTimeSpec, now filetime.Instant) Action {
	action := Action{
		Path:          req.Path,
		Template:      req.Template,
		Context:       req.Context,
		SymlinkOnly:   req.SymlinkOnly,
		CreateParents: req.CreateParents,
	}

	switch {
	case !req.Exists && req.NoCreate:
		action.File = FileOpSkip
		action.SkipReason = "does not exist and creation suppressed"
		action.Template = ""
		action.Context = ""
		// Once skipped, nothing else about this path is touched.
		return action
	case !req.Exists && req.Template != "":
		action.File = FileOpCreateTemplate
	case !req.Exists:
		action.File = FileOpCreateEmpty
	case req.Template != "":
		action.File = FileOpOverwriteTemplate
	default:
		action.File = FileOpNone
	}
	if action.File == FileOpNone || action.File == FileOpCreateEmpty {
		action.Template = ""
		action.Context = ""
	}

	spec := filetime.From(now)
	if explicit != nil {
		spec = *explicit
	}
	spec = spec.WithSelection(req.UpdateAccess, req.UpdateModification)

	// A freshly written file gets deterministic timestamps; an untouched
	// file gets them too, unless an adjustment alone expresses the whole
	// time intent.
	scheduleSet := action.File.Creates() ||
		req.Adjust == nil ||
		explicit != nil
	if scheduleSet {
		action.Times = append(action.Times, TimeOp{Kind: TimeOpSet, Times: spec})
	}

	if req.Adjust != nil {
		action.Times = append(action.Times, TimeOp{
			Kind:               TimeOpAdjust,
			Delta:              *req.Adjust,
			UpdateAccess:       req.UpdateAccess,
			UpdateModification: req.UpdateModification,
		})
	}

	return action
}
