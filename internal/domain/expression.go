package domain

import "sort"

type ExprKind string

const (
	ExprLeaf  ExprKind = "leaf"
	ExprAllOf ExprKind = "all_of"
	ExprOneOf ExprKind = "one_of"
)

// Expression is a recursive boolean requirement over courses. A leaf
// references a single course; all_of and one_of combine children. The same
// structure expresses both course prerequisites and degree requirement
// buckets, so the evaluator is parameterized over the leaf predicate
// instead of baking in any one notion of "satisfied".
type Expression struct {
	Kind     ExprKind
	CourseID string        // leaf only
	Children []*Expression // all_of / one_of only
}

func Leaf(courseID string) *Expression {
	return &Expression{Kind: ExprLeaf, CourseID: courseID}
}

func AllOf(children ...*Expression) *Expression {
	return &Expression{Kind: ExprAllOf, Children: children}
}

func OneOf(children ...*Expression) *Expression {
	return &Expression{Kind: ExprOneOf, Children: children}
}

// IsEmpty reports whether the expression imposes no requirement.
func (e *Expression) IsEmpty() bool {
	if e == nil {
		return true
	}
	if e.Kind == ExprLeaf {
		return e.CourseID == ""
	}
	for _, c := range e.Children {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// Eval evaluates the expression against a leaf predicate. An empty
// expression is trivially satisfied.
func (e *Expression) Eval(satisfied func(courseID string) bool) bool {
	if e.IsEmpty() {
		return true
	}
	switch e.Kind {
	case ExprLeaf:
		return satisfied(e.CourseID)
	case ExprAllOf:
		for _, c := range e.Children {
			if !c.Eval(satisfied) {
				return false
			}
		}
		return true
	case ExprOneOf:
		for _, c := range e.Children {
			if c.Eval(satisfied) {
				return true
			}
		}
		return false
	}
	return false
}

// Leaves returns every course id referenced anywhere in the expression,
// deduplicated and sorted.
func (e *Expression) Leaves() []string {
	seen := make(map[string]bool)
	var walk func(*Expression)
	walk = func(x *Expression) {
		if x == nil {
			return
		}
		if x.Kind == ExprLeaf {
			if x.CourseID != "" {
				seen[x.CourseID] = true
			}
			return
		}
		for _, c := range x.Children {
			walk(c)
		}
	}
	walk(e)
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// DeepestUnmet returns the most specific unsatisfied subexpression, so
// callers can surface a precise gap ("need one of CS47100, CS47300")
// instead of a generic "requirements not met". Returns nil when the
// expression is satisfied.
func (e *Expression) DeepestUnmet(satisfied func(courseID string) bool) *Expression {
	if e.Eval(satisfied) {
		return nil
	}
	switch e.Kind {
	case ExprLeaf:
		return e
	case ExprAllOf:
		// Descend into the first failing child; one precise gap beats
		// an exhaustive list.
		for _, c := range e.Children {
			if sub := c.DeepestUnmet(satisfied); sub != nil {
				return sub
			}
		}
	case ExprOneOf:
		// Every branch failed. If some branch is partially met (a
		// composite with at least one satisfied leaf), its gap is the
		// most actionable; otherwise the whole choice is the gap.
		for _, c := range e.Children {
			if c.Kind == ExprLeaf {
				continue
			}
			if anyLeafSatisfied(c, satisfied) {
				if sub := c.DeepestUnmet(satisfied); sub != nil {
					return sub
				}
			}
		}
		return e
	}
	return e
}

func anyLeafSatisfied(e *Expression, satisfied func(courseID string) bool) bool {
	for _, id := range e.Leaves() {
		if satisfied(id) {
			return true
		}
	}
	return false
}
