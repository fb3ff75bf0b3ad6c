package fonts

// DefaultCandidates returns the system fonts tried for badge labels,
// best match first.
func DefaultCandidates() []Candidate {
	return []Candidate{
		{Path: "/System/Library/Fonts/Supplemental/Arial Bold.ttf"},
		{Path: "/System/Library/Fonts/Helvetica.ttc"},
	}
}
