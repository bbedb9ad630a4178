package planner

import (
	"github.com/rao305/boilerai-sub000/internal/catalog"
	"github.com/rao305/boilerai-sub000/internal/domain"
)

// EligibilityResult reports whether a course can be taken now, and if
// not, which courses of the deepest unmet prerequisite branch are missing.
type EligibilityResult struct {
	CourseID       string
	Status         domain.EligibilityStatus
	MissingCourses []string
}

// Eligible is a convenience for Status == eligible.
func (r EligibilityResult) Eligible() bool {
	return r.Status == domain.EligibilityEligible
}

// PrereqSatisfier returns the leaf predicate used everywhere prerequisites
// are evaluated: a leaf is satisfied only by a completed course whose grade
// meets the referenced course's minimum-grade policy. In-progress courses
// never satisfy a prerequisite (only a corequisite, which the scheduler
// checks separately).
func PrereqSatisfier(snap *catalog.Snapshot, completed map[string]domain.Grade) func(string) bool {
	return func(courseID string) bool {
		grade, ok := completed[courseID]
		if !ok {
			return false
		}
		var minimum domain.Grade
		if c, found := snap.Course(courseID); found {
			minimum = c.MinimumGrade
		}
		return grade.Meets(minimum)
	}
}

// CheckEligibility evaluates a course's prerequisite expression against the
// student's completed set. A course already passed reports
// already_satisfied and one currently enrolled reports in_progress; both
// are distinct from eligible so callers never recommend a repeat.
func CheckEligibility(
	snap *catalog.Snapshot,
	course *domain.Course,
	completed map[string]domain.Grade,
	inProgress map[string]bool,
) EligibilityResult {
	result := EligibilityResult{CourseID: course.ID}
	satisfied := PrereqSatisfier(snap, completed)

	if satisfied(course.ID) {
		result.Status = domain.EligibilityAlreadySatisfied
		return result
	}
	if inProgress[course.ID] {
		result.Status = domain.EligibilityInProgress
		return result
	}

	if course.Prerequisites.Eval(satisfied) {
		result.Status = domain.EligibilityEligible
		return result
	}

	result.Status = domain.EligibilityNotEligible
	if gap := course.Prerequisites.DeepestUnmet(satisfied); gap != nil {
		result.MissingCourses = gap.Leaves()
	}
	return result
}
