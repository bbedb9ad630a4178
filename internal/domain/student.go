package domain

// CourseTaken is one completed course on a student's record.
type CourseTaken struct {
	CourseID string
	Grade    Grade
	Term     Term
}

// CourseInProgress is a course the student is currently enrolled in.
type CourseInProgress struct {
	CourseID string
	Term     Term
}

// Constraints are the student's scheduling preferences. A zero
// MaxCreditsPerTerm defers to the pace's default cap.
type Constraints struct {
	MaxCreditsPerTerm    int
	TargetGraduationTerm *Term
	AllowSummer          bool
	Pace                 Pace
}

// CreditCap returns the effective per-term credit cap.
func (c Constraints) CreditCap() int {
	if c.MaxCreditsPerTerm > 0 {
		return c.MaxCreditsPerTerm
	}
	return c.Pace.DefaultCreditCap()
}

// StudentRecord is the engine's view of one student. It is constructed
// per planning request from upstream profile data and never mutated by
// the engine: every output is a new value derived from it.
type StudentRecord struct {
	ID            string
	Program       string
	Track         string
	Completed     []CourseTaken
	InProgress    []CourseInProgress
	CumulativeGPA float64
	MajorGPA      float64
	Constraints   Constraints
}

// CompletedGrades returns completed course ids mapped to their grades.
// Repeated courses keep the best grade.
func (s *StudentRecord) CompletedGrades() map[string]Grade {
	out := make(map[string]Grade, len(s.Completed))
	for _, ct := range s.Completed {
		if prev, ok := out[ct.CourseID]; !ok || ct.Grade.Points() > prev.Points() {
			out[ct.CourseID] = ct.Grade
		}
	}
	return out
}

// InProgressSet returns the set of in-progress course ids.
func (s *StudentRecord) InProgressSet() map[string]bool {
	out := make(map[string]bool, len(s.InProgress))
	for _, cp := range s.InProgress {
		out[cp.CourseID] = true
	}
	return out
}

// LastTerm returns the latest term appearing across completed and
// in-progress courses, and false when the record lists none.
func (s *StudentRecord) LastTerm() (Term, bool) {
	var last Term
	found := false
	for _, ct := range s.Completed {
		if !found || ct.Term.After(last) {
			last = ct.Term
			found = true
		}
	}
	for _, cp := range s.InProgress {
		if !found || cp.Term.After(last) {
			last = cp.Term
			found = true
		}
	}
	return last, found
}

// CompletedCredits sums credits of completed and in-progress courses,
// looking each up via the supplied resolver (unknown ids count zero).
func (s *StudentRecord) CompletedCredits(credits func(courseID string) int) int {
	total := 0
	seen := make(map[string]bool)
	for _, ct := range s.Completed {
		if ct.Grade == GradeF || seen[ct.CourseID] {
			continue
		}
		seen[ct.CourseID] = true
		total += credits(ct.CourseID)
	}
	for _, cp := range s.InProgress {
		if seen[cp.CourseID] {
			continue
		}
		seen[cp.CourseID] = true
		total += credits(cp.CourseID)
	}
	return total
}
