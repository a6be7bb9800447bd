package filetime

// Adjustment is a signed whole-second delta applied to instants.
// The supported adjustment syntax has second-level resolution only,
// so no sub-second component exists.
type Adjustment int64

// Seconds returns the delta as a signed second count.
func (a Adjustment) Seconds() int64 { return int64(a) }

// Apply shifts an instant by the adjustment, failing on overflow.
func (a Adjustment) Apply(i Instant) (Instant, error) {
	return i.AddSeconds(int64(a))
}
