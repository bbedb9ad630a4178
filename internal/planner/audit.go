package planner

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rao305/boilerai-sub000/internal/catalog"
	"github.com/rao305/boilerai-sub000/internal/domain"
)

// EvaluateGroup audits one requirement group against a leaf predicate.
// completedCount counts satisfied members (direct children of the group
// expression), requiredCount comes from the group's minimum count or its
// boolean shape, and RemainingOptions carries the unmet gap: every unmet
// leaf of an all_of group, the deepest unmet subexpression otherwise.
func EvaluateGroup(group domain.RequirementGroup, satisfied func(courseID string) bool) domain.GroupAudit {
	audit := domain.GroupAudit{
		GroupKey:      group.Key,
		Category:      group.Category,
		RequiredCount: group.RequiredCount(),
	}

	members := group.Members()
	for _, m := range members {
		if m.Eval(satisfied) {
			audit.CompletedCount++
		}
	}

	for _, id := range group.Expression.Leaves() {
		if satisfied(id) {
			audit.CompletedCourses = append(audit.CompletedCourses, id)
		}
	}
	sort.Strings(audit.CompletedCourses)

	switch {
	case audit.CompletedCount >= audit.RequiredCount:
		audit.Status = domain.RequirementSatisfied
	case audit.CompletedCount > 0:
		audit.Status = domain.RequirementPartiallySatisfied
	default:
		audit.Status = domain.RequirementUnmet
	}

	if audit.Status != domain.RequirementSatisfied {
		audit.RemainingOptions = remainingOptions(group, members, satisfied)
	}
	return audit
}

// remainingOptions picks the most actionable set of courses that would
// move the group toward satisfied.
func remainingOptions(group domain.RequirementGroup, members []*domain.Expression, satisfied func(string) bool) []string {
	if group.MinimumCount > 0 {
		// Choose-N: every unsatisfied member is still an option.
		seen := make(map[string]bool)
		var out []string
		for _, m := range members {
			if m.Eval(satisfied) {
				continue
			}
			for _, id := range m.Leaves() {
				if !satisfied(id) && !seen[id] {
					seen[id] = true
					out = append(out, id)
				}
			}
		}
		sort.Strings(out)
		return out
	}
	expr := group.Expression
	if expr.Kind == domain.ExprAllOf {
		// A conjunction owes the student every unmet leaf, not just the
		// first; deepest-unmet resolution still applies inside each
		// failing child so one_of branches stay precise.
		seen := make(map[string]bool)
		var out []string
		for _, c := range expr.Children {
			gap := c.DeepestUnmet(satisfied)
			if gap == nil {
				continue
			}
			for _, id := range gap.Leaves() {
				if !satisfied(id) && !seen[id] {
					seen[id] = true
					out = append(out, id)
				}
			}
		}
		sort.Strings(out)
		return out
	}
	if gap := expr.DeepestUnmet(satisfied); gap != nil {
		var out []string
		for _, id := range gap.Leaves() {
			if !satisfied(id) {
				out = append(out, id)
			}
		}
		return out
	}
	return nil
}

// AuditRequirements audits every requirement group of the student's
// program and track, in declaration order. Double-counting is allowed
// unless program policy forbids it for a pair of groups; when forbidden,
// the earlier group consumes the course and the later group no longer
// sees it.
func AuditRequirements(
	snap *catalog.Snapshot,
	program *domain.Program,
	student *domain.StudentRecord,
) *domain.AuditReport {
	completed := student.CompletedGrades()
	satisfied := PrereqSatisfier(snap, completed)
	groups := program.GroupsForTrack(student.Track)

	report := &domain.AuditReport{
		ID:          uuid.New().String(),
		StudentID:   student.ID,
		Program:     program.ID,
		Track:       student.Track,
		GeneratedAt: time.Now().UTC(),
	}

	// consumedBy maps course id -> keys of groups that already counted it.
	consumedBy := make(map[string][]string)

	for _, g := range groups {
		group := g
		pred := func(courseID string) bool {
			if !satisfied(courseID) {
				return false
			}
			for _, earlier := range consumedBy[courseID] {
				if program.Exclusive(earlier, group.Key) {
					return false
				}
			}
			return true
		}

		audit := EvaluateGroup(group, pred)

		// A completed course that an earlier exclusive group consumed is
		// not an open option here; report it as excluded so the gap shows
		// only courses the student can still take.
		if len(audit.RemainingOptions) > 0 {
			var remaining, excluded []string
			for _, id := range audit.RemainingOptions {
				if satisfied(id) {
					excluded = append(excluded, id)
				} else {
					remaining = append(remaining, id)
				}
			}
			audit.RemainingOptions = remaining
			audit.ExcludedByPolicy = excluded
		}
		report.Groups = append(report.Groups, audit)

		// The group consumes the leaves of its first requiredCount
		// satisfied members, in declaration order.
		consumed := 0
		for _, m := range group.Members() {
			if consumed >= audit.RequiredCount {
				break
			}
			if !m.Eval(pred) {
				continue
			}
			consumed++
			for _, id := range m.Leaves() {
				if pred(id) {
					consumedBy[id] = append(consumedBy[id], group.Key)
				}
			}
		}
	}

	return report
}
