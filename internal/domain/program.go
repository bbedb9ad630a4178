package domain

// RequirementGroup is a named bucket of degree or track requirements.
// MinimumCount > 0 turns a one_of expression into "choose N of list";
// zero means plain boolean semantics.
type RequirementGroup struct {
	Key          string
	Category     RequirementCategory
	Expression   *Expression
	MinimumCount int
	CreditTarget int
}

// RequiredCount is the number of satisfied members the group needs. A
// member is a direct child of the group's expression (or the expression
// itself when it is a single leaf).
func (g *RequirementGroup) RequiredCount() int {
	if g.MinimumCount > 0 {
		return g.MinimumCount
	}
	e := g.Expression
	if e.IsEmpty() {
		return 0
	}
	switch e.Kind {
	case ExprLeaf, ExprOneOf:
		return 1
	default:
		return len(e.Children)
	}
}

// Members returns the group's direct member expressions.
func (g *RequirementGroup) Members() []*Expression {
	e := g.Expression
	if e.IsEmpty() {
		return nil
	}
	if e.Kind == ExprLeaf {
		return []*Expression{e}
	}
	return e.Children
}

// Track is a sub-specialization within a program contributing its own
// requirement groups.
type Track struct {
	ID     string
	Name   string
	Groups []RequirementGroup
}

// GroupPair names two requirement groups between which double-counting is
// forbidden.
type GroupPair struct {
	First  string
	Second string
}

// Program is a major. TotalCredits is the credit count required to
// graduate. AllowDoubleCounting governs whether one course may satisfy
// multiple requirement groups; ExclusiveGroupPairs forbids it for specific
// pairs even when the program-wide flag allows it.
type Program struct {
	ID                  string
	Name                string
	TotalCredits        int
	AllowDoubleCounting bool
	ExclusiveGroupPairs []GroupPair
	Groups              []RequirementGroup
	Tracks              []Track
}

// TrackByID returns the named track, or nil.
func (p *Program) TrackByID(id string) *Track {
	for i := range p.Tracks {
		if p.Tracks[i].ID == id {
			return &p.Tracks[i]
		}
	}
	return nil
}

// GroupsForTrack returns the program's requirement groups plus those of the
// selected track (if any), in declaration order. Declaration order matters
// when double-counting is restricted: earlier groups consume courses first.
func (p *Program) GroupsForTrack(trackID string) []RequirementGroup {
	groups := make([]RequirementGroup, 0, len(p.Groups))
	groups = append(groups, p.Groups...)
	if trackID != "" {
		if t := p.TrackByID(trackID); t != nil {
			groups = append(groups, t.Groups...)
		}
	}
	return groups
}

// Exclusive reports whether double-counting between the two groups is
// forbidden by program policy.
func (p *Program) Exclusive(groupA, groupB string) bool {
	if !p.AllowDoubleCounting {
		return true
	}
	for _, pair := range p.ExclusiveGroupPairs {
		if (pair.First == groupA && pair.Second == groupB) ||
			(pair.First == groupB && pair.Second == groupA) {
			return true
		}
	}
	return false
}
