package domain

import "time"

// GroupAudit is the satisfaction state of one requirement group.
type GroupAudit struct {
	GroupKey         string
	Category         RequirementCategory
	Status           RequirementStatus
	CompletedCount   int
	RequiredCount    int
	CompletedCourses []string
	// RemainingOptions lists the courses of the deepest unmet
	// subexpression, so callers can surface a precise gap.
	RemainingOptions []string
	// ExcludedByPolicy lists courses the student has completed that an
	// earlier exclusive group already counted. They cannot close this
	// group's gap, so they are not remaining options.
	ExcludedByPolicy []string
}

// AuditReport is the full requirement audit for one student.
type AuditReport struct {
	ID          string
	StudentID   string
	Program     string
	Track       string
	GeneratedAt time.Time
	Groups      []GroupAudit
}

// Satisfied reports whether every group in the report is satisfied.
func (r *AuditReport) Satisfied() bool {
	for _, g := range r.Groups {
		if g.Status != RequirementSatisfied {
			return false
		}
	}
	return true
}

// UnmetLeaves returns the union of remaining options across unsatisfied
// groups, deduplicated, in report order.
func (r *AuditReport) UnmetLeaves() []string {
	seen := make(map[string]bool)
	var out []string
	for _, g := range r.Groups {
		if g.Status == RequirementSatisfied {
			continue
		}
		for _, id := range g.RemainingOptions {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}
