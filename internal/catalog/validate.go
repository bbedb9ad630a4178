package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rao305/boilerai-sub000/internal/domain"
)

// IntegrityError reports every catalog violation found during a build.
// A catalog that fails validation is never served.
type IntegrityError struct {
	Violations []string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("catalog integrity: %d violation(s): %s",
		len(e.Violations), strings.Join(e.Violations, "; "))
}

// validate checks the full catalog for integrity violations and collects
// all of them rather than stopping at the first.
func validate(courses []*domain.Course, programs []*domain.Program) error {
	var violations []string

	ids := make(map[string]bool, len(courses))
	for _, c := range courses {
		if err := c.ValidateID(); err != nil {
			violations = append(violations, err.Error())
			continue
		}
		if ids[c.ID] {
			violations = append(violations, fmt.Sprintf("duplicate course id %s", c.ID))
			continue
		}
		ids[c.ID] = true
		if c.Credits <= 0 {
			violations = append(violations, fmt.Sprintf("course %s: credits must be positive", c.ID))
		}
		if len(c.OfferedSeasons) == 0 {
			violations = append(violations, fmt.Sprintf("course %s: no offered terms", c.ID))
		}
	}

	for _, c := range courses {
		for _, leaf := range c.Prerequisites.Leaves() {
			if !ids[leaf] {
				violations = append(violations, fmt.Sprintf("course %s: prerequisite references unknown course %s", c.ID, leaf))
			}
		}
		for _, co := range c.Corequisites {
			if !ids[co] {
				violations = append(violations, fmt.Sprintf("course %s: corequisite references unknown course %s", c.ID, co))
			}
		}
	}

	for _, p := range programs {
		violations = append(violations, validateGroups(p.ID, p.Groups, ids)...)
		for _, t := range p.Tracks {
			violations = append(violations, validateGroups(p.ID+"/"+t.ID, t.Groups, ids)...)
		}
	}

	violations = append(violations, findPrereqCycles(courses)...)

	if len(violations) > 0 {
		return &IntegrityError{Violations: violations}
	}
	return nil
}

func validateGroups(owner string, groups []domain.RequirementGroup, ids map[string]bool) []string {
	var violations []string
	seen := make(map[string]bool, len(groups))
	for _, g := range groups {
		if g.Key == "" {
			violations = append(violations, fmt.Sprintf("program %s: requirement group with empty key", owner))
			continue
		}
		if seen[g.Key] {
			violations = append(violations, fmt.Sprintf("program %s: duplicate requirement group %s", owner, g.Key))
		}
		seen[g.Key] = true
		leaves := g.Expression.Leaves()
		for _, leaf := range leaves {
			if !ids[leaf] {
				violations = append(violations, fmt.Sprintf("program %s group %s: references unknown course %s", owner, g.Key, leaf))
			}
		}
		if g.MinimumCount > len(leaves) {
			violations = append(violations, fmt.Sprintf("program %s group %s: minimum count %d exceeds %d option(s)", owner, g.Key, g.MinimumCount, len(leaves)))
		}
	}
	return violations
}

// findPrereqCycles detects cycles in the prerequisite graph, taking the
// conservative edge course -> every leaf of its expression. A one_of leaf
// need not actually be taken, but a cycle through any branch is a data
// error worth rejecting at load time.
func findPrereqCycles(courses []*domain.Course) []string {
	prereqs := make(map[string][]string, len(courses))
	for _, c := range courses {
		prereqs[c.ID] = c.Prerequisites.Leaves()
	}

	const (
		unvisited = 0
		inStack   = 1
		done      = 2
	)
	state := make(map[string]int, len(prereqs))
	var cycles []string

	var visit func(id string, path []string)
	visit = func(id string, path []string) {
		switch state[id] {
		case done:
			return
		case inStack:
			cycles = append(cycles, fmt.Sprintf("prerequisite cycle: %s", strings.Join(append(path, id), " -> ")))
			return
		}
		state[id] = inStack
		for _, dep := range prereqs[id] {
			visit(dep, append(path, id))
		}
		state[id] = done
	}

	ids := make([]string, 0, len(prereqs))
	for id := range prereqs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		visit(id, nil)
	}
	return cycles
}
