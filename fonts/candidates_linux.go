package fonts

// DefaultCandidates returns the system fonts tried for badge labels,
// best match first.
func DefaultCandidates() []Candidate {
	return []Candidate{
		{Path: "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"},
		{Path: "/usr/share/fonts/TTF/DejaVuSans-Bold.ttf"},
		{Path: "/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf"},
	}
}
