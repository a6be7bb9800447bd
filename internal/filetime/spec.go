package filetime

import "time"

// FileTimeSpec describes what a time-setting operation should change.
// A nil field means "leave that attribute alone". A spec is produced from
// exactly one source: an explicit instant (both fields equal), a reference
// file's metadata (fields may differ), or adjustment of an existing spec.
type FileTimeSpec struct {
	// Access is the access time to set, or nil to leave it unchanged.
	Access *Instant

	// Modification is the modification time to set, or nil to leave it unchanged.
	Modification *Instant
}

// From builds a spec that sets both attributes to the same instant.
func From(i Instant) FileTimeSpec {
	a, m := i, i
	return FileTimeSpec{Access: &a, Modification: &m}
}

// FromMetadata builds a spec from a file's existing access and modification
// times, as read from a metadata snapshot.
func FromMetadata(atime, mtime time.Time) FileTimeSpec {
	a, m := FromTime(atime), FromTime(mtime)
	return FileTimeSpec{Access: &a, Modification: &m}
}

// WithSelection clears whichever fields the caller does not want touched.
// Clearing is idempotent: applying the same selection twice yields the
// same spec.
func (s FileTimeSpec) WithSelection(access, modification bool) FileTimeSpec {
	out := s
	if !access {
		out.Access = nil
	}
	if !modification {
		out.Modification = nil
	}
	return out
}

// AdjustedBy shifts every present field by the delta. Absent fields remain
// absent. The first overflow aborts the whole adjustment.
func (s FileTimeSpec) AdjustedBy(delta Adjustment) (FileTimeSpec, error) {
	var out FileTimeSpec
	if s.Access != nil {
		shifted, err := delta.Apply(*s.Access)
		if err != nil {
			return FileTimeSpec{}, err
		}
		out.Access = &shifted
	}
	if s.Modification != nil {
		shifted, err := delta.Apply(*s.Modification)
		if err != nil {
			return FileTimeSpec{}, err
		}
		out.Modification = &shifted
	}
	return out, nil
}

// IsEmpty reports whether the spec would change nothing.
func (s FileTimeSpec) IsEmpty() bool {
	return s.Access == nil && s.Modification == nil
}

// Equal reports whether two specs set the same fields to the same instants.
func (s FileTimeSpec) Equal(other FileTimeSpec) bool {
	if (s.Access == nil) != (other.Access == nil) {
		return false
	}
	if (s.Modification == nil) != (other.Modification == nil) {
		return false
	}
	if s.Access != nil && !s.Access.Equal(*other.Access) {
		return false
	}
	if s.Modification != nil && !s.Modification.Equal(*other.Modification) {
		return false
	}
	return true
}
