package planner

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rao305/boilerai-sub000/internal/catalog"
	"github.com/rao305/boilerai-sub000/internal/domain"
)

// DefaultHorizon bounds the term walk: a plan that cannot place every
// needed course within this many terms comes back with Incomplete set
// instead of running forever.
const DefaultHorizon = 12

// ErrDependencyCycle means the needed courses' prerequisites form a cycle.
// Catalog validation rejects cyclic data at load time, so hitting this
// during scheduling is a catalog integrity fault, never a student error.
var ErrDependencyCycle = errors.New("dependency cycle among needed courses")

// ScheduleRequest carries everything BuildPlan needs. Weights default to
// DefaultWeights, Horizon to DefaultHorizon, StartTerm to the term after
// the student's last recorded term (or the term containing Now).
type ScheduleRequest struct {
	Student   *domain.StudentRecord
	Snapshot  *catalog.Snapshot
	Program   *domain.Program
	Weights   *Weights
	Horizon   int
	StartTerm domain.Term
	Now       time.Time
}

// BuildPlan assigns every still-needed course to a future term, honoring
// prerequisite order, per-term credit caps, term-offering windows and
// corequisite co-scheduling. Deterministic for identical inputs.
func BuildPlan(req ScheduleRequest) (*domain.Plan, error) {
	student := req.Student
	snap := req.Snapshot

	weights := DefaultWeights()
	if req.Weights != nil {
		weights = *req.Weights
	}
	horizon := req.Horizon
	if horizon <= 0 {
		horizon = DefaultHorizon
	}
	now := req.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	completed := student.CompletedGrades()
	inProgress := student.InProgressSet()
	sel := &selector{
		snap:       snap,
		satisfied:  PrereqSatisfier(snap, completed),
		inProgress: inProgress,
		costMemo:   make(map[string]float64),
		visiting:   make(map[string]bool),
	}

	need, err := collectNeeded(sel, req.Program, student.Track)
	if err != nil {
		return nil, err
	}

	order, err := topoOrder(need)
	if err != nil {
		return nil, err
	}
	metrics := chainMetrics(need, order)

	scored := make(map[string]ScoredCourse, len(need.courses))
	for id := range need.courses {
		course, _ := snap.Course(id)
		scored[id] = ScoreCourse(ScoringInput{
			CourseID:       id,
			Credits:        course.Credits,
			Difficulty:     course.Difficulty,
			OnCriticalPath: metrics.onCriticalPath[id],
			BlockedCount:   metrics.blockedCount[id],
			Category:       need.category[id],
			SuccessRate:    course.SuccessRate,
			Weights:        weights,
		})
	}

	allowSummer := student.Constraints.AllowSummer
	start := req.StartTerm
	if start.IsZero() {
		if last, ok := student.LastTerm(); ok {
			start = last.Next(allowSummer)
		} else {
			start = domain.TermForDate(now.Year(), int(now.Month()))
		}
	}
	if start.Season == domain.SeasonSummer && !allowSummer {
		start = start.Next(false)
	}

	plan := &domain.Plan{
		ID:            uuid.New().String(),
		StudentID:     student.ID,
		GeneratedAt:   now,
		StartTerm:     start,
		BranchChoices: need.branchChoices,
	}

	walkTerms(plan, sel, need, scored, start, horizon, student.Constraints.CreditCap(), allowSummer)
	return plan, nil
}

// --- needed-set selection -------------------------------------------------

// needSet is the closure of courses the plan must place: unmet requirement
// leaves plus their (branch-resolved) prerequisites and corequisites.
type needSet struct {
	snap          *catalog.Snapshot
	courses       map[string]bool
	chosenPrereqs map[string][]string // course -> needed prereqs of the chosen branch
	category      map[string]domain.RequirementCategory
	branchChoices []domain.BranchChoice
}

// selector resolves one_of branches by aggregate remaining cost: the total
// credits of everything the branch would still force the student to take.
// excluded marks completed courses a group may not count (double-counting
// policy); they are neither satisfied nor worth selecting.
type selector struct {
	snap       *catalog.Snapshot
	satisfied  func(string) bool
	inProgress map[string]bool
	excluded   map[string]bool
	costMemo   map[string]float64
	visiting   map[string]bool
}

// withExclusions derives a selector whose satisfaction predicate ignores
// the excluded courses. Memos are per-predicate, so they start fresh.
func (s *selector) withExclusions(excluded map[string]bool) *selector {
	base := s.satisfied
	return &selector{
		snap:       s.snap,
		satisfied:  func(id string) bool { return base(id) && !excluded[id] },
		inProgress: s.inProgress,
		excluded:   excluded,
		costMemo:   make(map[string]float64),
		visiting:   make(map[string]bool),
	}
}

// done reports whether a course needs no scheduling.
func (s *selector) done(id string) bool {
	return s.satisfied(id) || s.inProgress[id]
}

// courseCost is the credit cost of taking id, including its transitive
// unmet prerequisites along the cheapest branches.
func (s *selector) courseCost(id string) float64 {
	if s.excluded[id] {
		// Already taken but not countable here, and a passed course is
		// never retaken: steer one_of resolution to another branch.
		return 1e9
	}
	if s.done(id) {
		return 0
	}
	if v, ok := s.costMemo[id]; ok {
		return v
	}
	if s.visiting[id] {
		// Cycle guard. Validation rejects cyclic catalogs, but cost
		// estimation must still terminate if one slips through.
		return 1e9
	}
	s.visiting[id] = true
	cost := 3.0 // unknown course: assume a typical credit load
	if c, ok := s.snap.Course(id); ok {
		cost = float64(c.Credits) + s.exprCost(c.Prerequisites)
	}
	delete(s.visiting, id)
	s.costMemo[id] = cost
	return cost
}

func (s *selector) exprCost(e *domain.Expression) float64 {
	if e.IsEmpty() || e.Eval(s.satisfied) {
		return 0
	}
	switch e.Kind {
	case domain.ExprLeaf:
		return s.courseCost(e.CourseID)
	case domain.ExprAllOf:
		total := 0.0
		for _, c := range e.Children {
			total += s.exprCost(c)
		}
		return total
	case domain.ExprOneOf:
		best := -1.0
		for _, c := range e.Children {
			cost := s.exprCost(c)
			if best < 0 || cost < best {
				best = cost
			}
		}
		if best < 0 {
			return 0
		}
		return best
	}
	return 0
}

// selectExpr returns the course ids still needed to satisfy e, resolving
// one_of nodes to the branch with the lowest aggregate cost (course id as
// the final tie-break). record, when non-nil, receives the resolved
// selection of any one_of node where a real choice existed.
func (s *selector) selectExpr(e *domain.Expression, record func(chosen []string)) []string {
	if e.IsEmpty() || e.Eval(s.satisfied) {
		return nil
	}
	switch e.Kind {
	case domain.ExprLeaf:
		if s.done(e.CourseID) {
			return nil
		}
		return []string{e.CourseID}
	case domain.ExprAllOf:
		seen := make(map[string]bool)
		var out []string
		for _, c := range e.Children {
			for _, id := range s.selectExpr(c, record) {
				if !seen[id] {
					seen[id] = true
					out = append(out, id)
				}
			}
		}
		return out
	case domain.ExprOneOf:
		var best []string
		bestCost := -1.0
		for _, c := range e.Children {
			cost := s.exprCost(c)
			sel := s.selectExpr(c, nil)
			if bestCost < 0 || cost < bestCost ||
				(cost == bestCost && strings.Join(sel, ",") < strings.Join(best, ",")) {
				bestCost = cost
				best = sel
			}
		}
		if record != nil && len(e.Children) > 1 && len(best) > 0 {
			record(best)
		}
		return best
	}
	return nil
}

// collectNeeded walks every requirement group of the program and track,
// gathers unmet leaves (resolving one_of branches and choose-N options by
// lowest cost), and closes over prerequisites and corequisites.
func collectNeeded(sel *selector, program *domain.Program, trackID string) (*needSet, error) {
	need := &needSet{
		snap:          sel.snap,
		courses:       make(map[string]bool),
		chosenPrereqs: make(map[string][]string),
		category:      make(map[string]domain.RequirementCategory),
	}

	var add func(id string, cat domain.RequirementCategory) error
	add = func(id string, cat domain.RequirementCategory) error {
		if sel.done(id) {
			return nil
		}
		if prev, ok := need.category[id]; !ok || cat.Weight() > prev.Weight() {
			need.category[id] = cat
		}
		if need.courses[id] {
			return nil
		}
		course, ok := sel.snap.Course(id)
		if !ok {
			return fmt.Errorf("needed course %s not in catalog", id)
		}
		need.courses[id] = true

		chosen := sel.selectExpr(course.Prerequisites, func(branch []string) {
			need.branchChoices = append(need.branchChoices, domain.BranchChoice{
				CourseID: id,
				Chosen:   append([]string{}, branch...),
			})
		})
		need.chosenPrereqs[id] = chosen
		for _, p := range chosen {
			if err := add(p, cat); err != nil {
				return err
			}
		}
		for _, co := range course.Corequisites {
			if err := add(co, cat); err != nil {
				return err
			}
		}
		return nil
	}

	// consumedBy tracks which groups already counted a completed course,
	// mirroring the audit's double-counting policy.
	consumedBy := make(map[string][]string)
	restricted := !program.AllowDoubleCounting || len(program.ExclusiveGroupPairs) > 0

	for _, g := range program.GroupsForTrack(trackID) {
		group := g
		gsel := sel
		if restricted {
			excluded := make(map[string]bool)
			for id, owners := range consumedBy {
				for _, earlier := range owners {
					if program.Exclusive(earlier, group.Key) {
						excluded[id] = true
					}
				}
			}
			if len(excluded) > 0 {
				gsel = sel.withExclusions(excluded)
			}
		}

		if group.MinimumCount > 0 {
			if err := selectChooseN(gsel, need, group, add); err != nil {
				return nil, err
			}
		} else {
			chosen := gsel.selectExpr(group.Expression, func(branch []string) {
				need.branchChoices = append(need.branchChoices, domain.BranchChoice{
					GroupKey: group.Key,
					Chosen:   append([]string{}, branch...),
				})
			})
			for _, id := range chosen {
				if err := add(id, group.Category); err != nil {
					return nil, err
				}
			}
		}

		if restricted {
			markConsumed(gsel, group, consumedBy)
		}
	}

	sort.Slice(need.branchChoices, func(i, j int) bool {
		a, b := need.branchChoices[i], need.branchChoices[j]
		if a.GroupKey != b.GroupKey {
			return a.GroupKey < b.GroupKey
		}
		return a.CourseID < b.CourseID
	})
	return need, nil
}

// selectChooseN fills a "choose N of list" group with its cheapest still
// open options. Members covered by in-progress courses count toward N
// without being scheduled.
func selectChooseN(
	sel *selector,
	need *needSet,
	group domain.RequirementGroup,
	add func(id string, cat domain.RequirementCategory) error,
) error {
	required := group.RequiredCount()
	type option struct {
		cost      float64
		selection []string
	}
	var options []option

	for _, m := range group.Members() {
		if m.Eval(sel.satisfied) {
			required--
			continue
		}
		selection := sel.selectExpr(m, nil)
		if len(selection) == 0 {
			// In-progress coverage: counts toward N, nothing to place.
			required--
			continue
		}
		options = append(options, option{cost: sel.exprCost(m), selection: selection})
	}
	if required <= 0 {
		return nil
	}

	sort.Slice(options, func(i, j int) bool {
		if options[i].cost != options[j].cost {
			return options[i].cost < options[j].cost
		}
		return strings.Join(options[i].selection, ",") < strings.Join(options[j].selection, ",")
	})

	hadChoice := len(options) > required
	var chosen []string
	for i := 0; i < required && i < len(options); i++ {
		for _, id := range options[i].selection {
			chosen = append(chosen, id)
			if err := add(id, group.Category); err != nil {
				return err
			}
		}
	}
	if hadChoice && len(chosen) > 0 {
		sort.Strings(chosen)
		need.branchChoices = append(need.branchChoices, domain.BranchChoice{
			GroupKey: group.Key,
			Chosen:   chosen,
		})
	}
	return nil
}

// markConsumed records the completed courses a group counted, using the
// same first-required-members rule as the audit.
func markConsumed(sel *selector, group domain.RequirementGroup, consumedBy map[string][]string) {
	counted := 0
	required := group.RequiredCount()
	for _, m := range group.Members() {
		if counted >= required {
			break
		}
		if !m.Eval(sel.satisfied) {
			continue
		}
		counted++
		for _, id := range m.Leaves() {
			if sel.satisfied(id) {
				consumedBy[id] = append(consumedBy[id], group.Key)
			}
		}
	}
}

// --- dependency ordering --------------------------------------------------

// topoOrder runs Kahn's algorithm over the needed courses and their chosen
// prerequisite edges. A cycle aborts the plan with ErrDependencyCycle.
func topoOrder(need *needSet) ([]string, error) {
	indeg := make(map[string]int, len(need.courses))
	dependents := make(map[string][]string)
	for id := range need.courses {
		indeg[id] = 0
	}
	for id := range need.courses {
		for _, p := range need.chosenPrereqs[id] {
			if !need.courses[p] {
				continue
			}
			indeg[id]++
			dependents[p] = append(dependents[p], id)
		}
	}

	var queue []string
	for id, d := range indeg {
		if d == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	var order []string
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)

		next := append([]string{}, dependents[id]...)
		sort.Strings(next)
		for _, d := range next {
			indeg[d]--
			if indeg[d] == 0 {
				queue = append(queue, d)
			}
		}
		sort.Strings(queue)
	}

	if len(order) != len(need.courses) {
		return nil, ErrDependencyCycle
	}
	return order, nil
}

type metrics struct {
	blockedCount   map[string]int
	onCriticalPath map[string]bool
}

// chainMetrics computes, per needed course, how many other needed courses
// it transitively blocks and whether it sits on the longest remaining
// prerequisite chain.
func chainMetrics(need *needSet, order []string) metrics {
	dependents := make(map[string][]string)
	for id := range need.courses {
		for _, p := range need.chosenPrereqs[id] {
			if need.courses[p] {
				dependents[p] = append(dependents[p], id)
			}
		}
	}

	blockedSets := make(map[string]map[string]bool, len(order))
	depth := make(map[string]int, len(order))
	maxDepth := 0

	// Walk in reverse topological order so dependents are resolved first.
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		blocked := make(map[string]bool)
		d := 1
		for _, dep := range dependents[id] {
			blocked[dep] = true
			for b := range blockedSets[dep] {
				blocked[b] = true
			}
			if depth[dep]+1 > d {
				d = depth[dep] + 1
			}
		}
		blockedSets[id] = blocked
		depth[id] = d
		if d > maxDepth {
			maxDepth = d
		}
	}

	m := metrics{
		blockedCount:   make(map[string]int, len(order)),
		onCriticalPath: make(map[string]bool, len(order)),
	}
	for id := range need.courses {
		m.blockedCount[id] = len(blockedSets[id])
		m.onCriticalPath[id] = maxDepth > 1 && depth[id] == maxDepth
	}
	return m
}

// --- term walk ------------------------------------------------------------

// walkTerms fills plan terms greedily: each term takes the highest-priority
// courses that are offered that season, have every needed prerequisite
// scheduled strictly earlier, and fit (together with any co-scheduled
// corequisites) under the credit cap.
func walkTerms(
	plan *domain.Plan,
	sel *selector,
	need *needSet,
	scored map[string]ScoredCourse,
	start domain.Term,
	horizon int,
	creditCap int,
	allowSummer bool,
) {
	remaining := make(map[string]bool, len(need.courses))
	for id := range need.courses {
		remaining[id] = true
	}
	scheduled := make(map[string]domain.Term, len(need.courses))

	term := start
	for step := 0; step < horizon && len(remaining) > 0; step++ {
		prereqsMet := func(id string) bool {
			for _, p := range need.chosenPrereqs[id] {
				if !need.courses[p] {
					continue
				}
				placedIn, ok := scheduled[p]
				if !ok || !placedIn.Before(term) {
					return false
				}
			}
			return true
		}
		placeable := func(id string) bool {
			course, ok := sel.snap.Course(id)
			return ok && remaining[id] && course.OfferedIn(term.Season) && prereqsMet(id)
		}

		var candidates []ScoredCourse
		for _, id := range sortedKeys(remaining) {
			if placeable(id) {
				candidates = append(candidates, scored[id])
			}
		}
		CanonicalSort(candidates)

		var planTerm domain.PlanTerm
		planTerm.Term = term

		for _, cand := range candidates {
			id := cand.Input.CourseID
			if !remaining[id] {
				continue
			}
			unit, ok := coreqUnit(sel, need, remaining, placeable, id)
			if !ok {
				continue
			}
			unitCredits := 0
			for _, u := range unit {
				unitCredits += sel.snap.Credits(u)
			}
			if planTerm.TotalCredits+unitCredits > creditCap {
				continue
			}
			for _, u := range unit {
				course, _ := sel.snap.Course(u)
				planTerm.Courses = append(planTerm.Courses, domain.PlannedCourse{
					CourseID:   u,
					Credits:    course.Credits,
					Difficulty: course.Difficulty,
					Score:      scored[u].Score,
				})
				planTerm.TotalCredits += course.Credits
				planTerm.TotalDifficulty += course.Difficulty
				scheduled[u] = term
				delete(remaining, u)
			}
		}

		if len(planTerm.Courses) > 0 {
			plan.Terms = append(plan.Terms, planTerm)
		}
		term = term.Next(allowSummer)
	}

	if len(remaining) > 0 {
		plan.Incomplete = true
		plan.Unplaced = sortedKeys(remaining)
	}
}

// coreqUnit expands a course into the set that must be co-scheduled with
// it this term: the course plus every still-unplaced corequisite,
// transitively. The unit is only placeable when every member is.
func coreqUnit(
	sel *selector,
	need *needSet,
	remaining map[string]bool,
	placeable func(string) bool,
	id string,
) ([]string, bool) {
	unit := []string{id}
	seen := map[string]bool{id: true}
	for i := 0; i < len(unit); i++ {
		course, ok := sel.snap.Course(unit[i])
		if !ok {
			return nil, false
		}
		for _, co := range course.Corequisites {
			if seen[co] || sel.done(co) || !remaining[co] {
				continue
			}
			seen[co] = true
			unit = append(unit, co)
		}
	}
	for _, u := range unit {
		if !placeable(u) {
			return nil, false
		}
	}
	sort.Strings(unit)
	return unit, true
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
