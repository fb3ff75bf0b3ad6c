package fonts

// DefaultCandidates returns the system fonts tried for badge labels,
// best match first.
func DefaultCandidates() []Candidate {
	return []Candidate{
		{Path: `C:\Windows\Fonts\arialbd.ttf`},
		{Path: `C:\Windows\Fonts\arial.ttf`},
	}
}
