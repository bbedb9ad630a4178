package domain

import "time"

// PlannedCourse is one course placed into a plan term.
type PlannedCourse struct {
	CourseID   string
	Credits    int
	Difficulty int
	Score      float64
}

// PlanTerm is one future term of a plan.
type PlanTerm struct {
	Term            Term
	Courses         []PlannedCourse
	TotalCredits    int
	TotalDifficulty int
}

// BranchChoice records which branch of a one_of prerequisite or
// requirement the scheduler committed to, so plans stay explainable.
type BranchChoice struct {
	GroupKey string   // requirement group the choice was made for, if any
	CourseID string   // course whose prerequisite forced the choice, if any
	Chosen   []string // course ids of the selected branch
}

// Plan is a term-by-term assignment of remaining needed courses.
// Immutable once returned.
type Plan struct {
	ID            string
	StudentID     string
	GeneratedAt   time.Time
	StartTerm     Term
	Terms         []PlanTerm
	Incomplete    bool     // horizon reached before every needed course was placed
	Unplaced      []string // needed courses left out when Incomplete
	BranchChoices []BranchChoice
}

// TotalCredits sums credits across all plan terms.
func (p *Plan) TotalCredits() int {
	total := 0
	for _, t := range p.Terms {
		total += t.TotalCredits
	}
	return total
}

// Contains reports whether the plan schedules the given course.
func (p *Plan) Contains(courseID string) bool {
	for _, t := range p.Terms {
		for _, c := range t.Courses {
			if c.CourseID == courseID {
				return true
			}
		}
	}
	return false
}

// TermOf returns the term a course is scheduled in, and false if absent.
func (p *Plan) TermOf(courseID string) (Term, bool) {
	for _, t := range p.Terms {
		for _, c := range t.Courses {
			if c.CourseID == courseID {
				return t.Term, true
			}
		}
	}
	return Term{}, false
}
