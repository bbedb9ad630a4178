package planner

import (
	"testing"

	"github.com/rao305/boilerai-sub000/internal/catalog"
	"github.com/rao305/boilerai-sub000/internal/domain"
	"github.com/stretchr/testify/require"
)

type courseOption func(*domain.Course)

func offered(seasons ...domain.Season) courseOption {
	return func(c *domain.Course) { c.OfferedSeasons = seasons }
}

func withCoreqs(ids ...string) courseOption {
	return func(c *domain.Course) { c.Corequisites = ids }
}

func withDifficulty(d int) courseOption {
	return func(c *domain.Course) { c.Difficulty = d }
}

func withMinGrade(g domain.Grade) courseOption {
	return func(c *domain.Course) { c.MinimumGrade = g }
}

func withSuccessRate(r float64) courseOption {
	return func(c *domain.Course) { c.SuccessRate = &r }
}

func testCourse(id string, credits int, prereqs *domain.Expression, opts ...courseOption) *domain.Course {
	c := &domain.Course{
		ID:      id,
		Title:   id,
		Credits: credits,
		OfferedSeasons: []domain.Season{
			domain.SeasonFall, domain.SeasonSpring,
		},
		Prerequisites: prereqs,
		Difficulty:    5,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func testSnapshot(t *testing.T, programs []*domain.Program, courses ...*domain.Course) *catalog.Snapshot {
	t.Helper()
	snap, err := catalog.Build(courses, programs)
	require.NoError(t, err)
	return snap
}

// introCatalog is the CS18000 / CS18200 / CS25100 chain used across
// scheduler and eligibility tests.
func introCatalog(t *testing.T, programs ...*domain.Program) *catalog.Snapshot {
	t.Helper()
	return testSnapshot(t, programs,
		testCourse("CS18000", 4, nil),
		testCourse("CS17600", 3, nil),
		testCourse("CS18200", 3, domain.OneOf(domain.Leaf("CS17600"), domain.Leaf("CS18000"))),
		testCourse("CS25100", 3, domain.AllOf(domain.Leaf("CS18200"))),
	)
}

func introProgram() *domain.Program {
	return &domain.Program{
		ID:                  "cs",
		Name:                "Computer Science",
		TotalCredits:        120,
		AllowDoubleCounting: true,
		Groups: []domain.RequirementGroup{
			{
				Key:      "cs_core",
				Category: domain.CategoryCore,
				Expression: domain.AllOf(
					domain.Leaf("CS18000"),
					domain.Leaf("CS18200"),
					domain.Leaf("CS25100"),
				),
			},
		},
	}
}

func fall(year int) domain.Term   { return domain.Term{Year: year, Season: domain.SeasonFall} }
func spring(year int) domain.Term { return domain.Term{Year: year, Season: domain.SeasonSpring} }
