package domain

// TimelinePrediction estimates when a student graduates and how risky
// the path there is.
type TimelinePrediction struct {
	ExpectedGraduationTerm *Term // nil when the plan is empty and nothing remains
	TermsRemaining         int
	CreditsRemaining       int
	OnTrack                bool // expected graduation at or before the target (true with no target)
	ProjectedGPA           float64
	Risk                   RiskLevel
	Warnings               []string
	Recommendations        []string
}
