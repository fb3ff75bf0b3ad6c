//go:build !darwin && !linux && !windows

package fonts

// DefaultCandidates returns the system fonts tried for badge labels.
// There are no well-known locations on this platform, so the built-in
// font is used.
func DefaultCandidates() []Candidate {
	return nil
}
