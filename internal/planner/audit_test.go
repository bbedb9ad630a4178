package planner

import (
	"testing"

	"github.com/rao305/boilerai-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradeSet(ids ...string) func(string) bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return func(id string) bool { return set[id] }
}

func TestEvaluateGroup_OneOfUnmet(t *testing.T) {
	group := domain.RequirementGroup{
		Key:        "ai_or_ir",
		Category:   domain.CategoryTrack,
		Expression: domain.OneOf(domain.Leaf("CS47100"), domain.Leaf("CS47300")),
	}

	audit := EvaluateGroup(group, gradeSet())
	assert.Equal(t, domain.RequirementUnmet, audit.Status)
	assert.Equal(t, 0, audit.CompletedCount)
	assert.Equal(t, 1, audit.RequiredCount)
	assert.Equal(t, []string{"CS47100", "CS47300"}, audit.RemainingOptions)
}

func TestEvaluateGroup_OneOfSatisfied(t *testing.T) {
	group := domain.RequirementGroup{
		Key:        "ai_or_ir",
		Category:   domain.CategoryTrack,
		Expression: domain.OneOf(domain.Leaf("CS47100"), domain.Leaf("CS47300")),
	}

	audit := EvaluateGroup(group, gradeSet("CS47300"))
	assert.Equal(t, domain.RequirementSatisfied, audit.Status)
	assert.Equal(t, 1, audit.CompletedCount)
	assert.Equal(t, []string{"CS47300"}, audit.CompletedCourses)
	assert.Empty(t, audit.RemainingOptions)
}

func TestEvaluateGroup_AllOfPartial(t *testing.T) {
	group := domain.RequirementGroup{
		Key:      "cs_core",
		Category: domain.CategoryCore,
		Expression: domain.AllOf(
			domain.Leaf("CS18000"),
			domain.Leaf("CS18200"),
			domain.Leaf("CS25100"),
		),
	}

	audit := EvaluateGroup(group, gradeSet("CS18000"))
	assert.Equal(t, domain.RequirementPartiallySatisfied, audit.Status)
	assert.Equal(t, 1, audit.CompletedCount)
	assert.Equal(t, 3, audit.RequiredCount)
	assert.Equal(t, []string{"CS18200", "CS25100"}, audit.RemainingOptions,
		"a conjunction lists every unmet leaf")
}

func TestEvaluateGroup_AllOfWithOneOfChildListsAllGaps(t *testing.T) {
	group := domain.RequirementGroup{
		Key:      "cs_core",
		Category: domain.CategoryCore,
		Expression: domain.AllOf(
			domain.Leaf("CS18000"),
			domain.OneOf(domain.Leaf("CS47100"), domain.Leaf("CS47300")),
			domain.Leaf("CS25100"),
		),
	}

	audit := EvaluateGroup(group, gradeSet("CS18000"))
	assert.Equal(t, domain.RequirementPartiallySatisfied, audit.Status)
	assert.Equal(t, []string{"CS25100", "CS47100", "CS47300"}, audit.RemainingOptions,
		"every failing child contributes its gap, one_of branches stay whole")
}

func TestEvaluateGroup_ChooseN(t *testing.T) {
	group := domain.RequirementGroup{
		Key:          "electives",
		Category:     domain.CategoryElective,
		MinimumCount: 2,
		Expression: domain.OneOf(
			domain.Leaf("CS47100"),
			domain.Leaf("CS47300"),
			domain.Leaf("CS48900"),
		),
	}

	audit := EvaluateGroup(group, gradeSet("CS47100"))
	assert.Equal(t, domain.RequirementPartiallySatisfied, audit.Status)
	assert.Equal(t, 1, audit.CompletedCount)
	assert.Equal(t, 2, audit.RequiredCount)
	assert.Equal(t, []string{"CS47300", "CS48900"}, audit.RemainingOptions)

	audit = EvaluateGroup(group, gradeSet("CS47100", "CS48900"))
	assert.Equal(t, domain.RequirementSatisfied, audit.Status)
}

func TestEvaluateGroup_NestedDeepGap(t *testing.T) {
	group := domain.RequirementGroup{
		Key:      "math",
		Category: domain.CategoryCore,
		Expression: domain.AllOf(
			domain.Leaf("MA16100"),
			domain.OneOf(
				domain.AllOf(domain.Leaf("MA26100"), domain.Leaf("MA26600")),
				domain.Leaf("MA27101"),
			),
		),
	}

	audit := EvaluateGroup(group, gradeSet("MA16100", "MA26100"))
	assert.Equal(t, domain.RequirementPartiallySatisfied, audit.Status)
	assert.Equal(t, []string{"MA26600"}, audit.RemainingOptions,
		"the half-done branch's remainder is the actionable gap")
}

func TestEvaluateGroup_Idempotent(t *testing.T) {
	group := domain.RequirementGroup{
		Key:          "electives",
		Category:     domain.CategoryElective,
		MinimumCount: 2,
		Expression: domain.OneOf(
			domain.Leaf("CS47100"),
			domain.Leaf("CS47300"),
			domain.Leaf("CS48900"),
		),
	}
	pred := gradeSet("CS47100")

	first := EvaluateGroup(group, pred)
	second := EvaluateGroup(group, pred)
	assert.Equal(t, first, second)
}

func auditStudent(track string, completed ...domain.CourseTaken) *domain.StudentRecord {
	return &domain.StudentRecord{
		ID:        "stu-1",
		Program:   "cs",
		Track:     track,
		Completed: completed,
	}
}

func TestAuditRequirements_TrackGroupsIncluded(t *testing.T) {
	prog := &domain.Program{
		ID:                  "cs",
		TotalCredits:        120,
		AllowDoubleCounting: true,
		Groups: []domain.RequirementGroup{
			{Key: "cs_core", Category: domain.CategoryCore,
				Expression: domain.AllOf(domain.Leaf("CS18000"))},
		},
		Tracks: []domain.Track{
			{ID: "mi", Name: "Machine Intelligence", Groups: []domain.RequirementGroup{
				{Key: "ai_or_ir", Category: domain.CategoryTrack,
					Expression: domain.OneOf(domain.Leaf("CS47100"), domain.Leaf("CS47300"))},
			}},
		},
	}
	snap := testSnapshot(t, []*domain.Program{prog},
		testCourse("CS18000", 4, nil),
		testCourse("CS47100", 3, nil),
		testCourse("CS47300", 3, nil),
	)

	report := AuditRequirements(snap, prog,
		auditStudent("mi", domain.CourseTaken{CourseID: "CS18000", Grade: domain.GradeA}))

	require.Len(t, report.Groups, 2)
	assert.Equal(t, "cs_core", report.Groups[0].GroupKey)
	assert.Equal(t, domain.RequirementSatisfied, report.Groups[0].Status)
	assert.Equal(t, "ai_or_ir", report.Groups[1].GroupKey)
	assert.Equal(t, domain.RequirementUnmet, report.Groups[1].Status)
	assert.False(t, report.Satisfied())
	assert.Equal(t, []string{"CS47100", "CS47300"}, report.UnmetLeaves())
}

func TestAuditRequirements_DoubleCountingAllowedByDefault(t *testing.T) {
	prog := &domain.Program{
		ID:                  "cs",
		AllowDoubleCounting: true,
		Groups: []domain.RequirementGroup{
			{Key: "systems", Category: domain.CategoryCore,
				Expression: domain.OneOf(domain.Leaf("CS35200"), domain.Leaf("CS35400"))},
			{Key: "electives", Category: domain.CategoryElective,
				Expression: domain.OneOf(domain.Leaf("CS35200"), domain.Leaf("CS44800"))},
		},
	}
	snap := testSnapshot(t, []*domain.Program{prog},
		testCourse("CS35200", 3, nil),
		testCourse("CS35400", 3, nil),
		testCourse("CS44800", 3, nil),
	)

	report := AuditRequirements(snap, prog,
		auditStudent("", domain.CourseTaken{CourseID: "CS35200", Grade: domain.GradeB}))

	assert.Equal(t, domain.RequirementSatisfied, report.Groups[0].Status)
	assert.Equal(t, domain.RequirementSatisfied, report.Groups[1].Status,
		"one course may satisfy both groups when policy allows")
}

func TestAuditRequirements_ExclusivePairBlocksDoubleCounting(t *testing.T) {
	prog := &domain.Program{
		ID:                  "cs",
		AllowDoubleCounting: true,
		ExclusiveGroupPairs: []domain.GroupPair{{First: "systems", Second: "electives"}},
		Groups: []domain.RequirementGroup{
			{Key: "systems", Category: domain.CategoryCore,
				Expression: domain.OneOf(domain.Leaf("CS35200"), domain.Leaf("CS35400"))},
			{Key: "electives", Category: domain.CategoryElective,
				Expression: domain.OneOf(domain.Leaf("CS35200"), domain.Leaf("CS44800"))},
		},
	}
	snap := testSnapshot(t, []*domain.Program{prog},
		testCourse("CS35200", 3, nil),
		testCourse("CS35400", 3, nil),
		testCourse("CS44800", 3, nil),
	)

	report := AuditRequirements(snap, prog,
		auditStudent("", domain.CourseTaken{CourseID: "CS35200", Grade: domain.GradeB}))

	assert.Equal(t, domain.RequirementSatisfied, report.Groups[0].Status,
		"the earlier group consumes the course")
	assert.Equal(t, domain.RequirementUnmet, report.Groups[1].Status,
		"the later exclusive group no longer sees it")
	assert.Equal(t, []string{"CS44800"}, report.Groups[1].RemainingOptions,
		"a consumed course cannot be retaken toward the later group")
	assert.Equal(t, []string{"CS35200"}, report.Groups[1].ExcludedByPolicy)
}

func TestAuditRequirements_GroupUnsatisfiableByPolicy(t *testing.T) {
	prog := &domain.Program{
		ID:                  "cs",
		AllowDoubleCounting: true,
		ExclusiveGroupPairs: []domain.GroupPair{{First: "systems", Second: "electives"}},
		Groups: []domain.RequirementGroup{
			{Key: "systems", Category: domain.CategoryCore,
				Expression: domain.OneOf(domain.Leaf("CS35200"), domain.Leaf("CS35400"))},
			{Key: "electives", Category: domain.CategoryElective,
				Expression: domain.AllOf(domain.Leaf("CS35200"))},
		},
	}
	snap := testSnapshot(t, []*domain.Program{prog},
		testCourse("CS35200", 3, nil),
		testCourse("CS35400", 3, nil),
	)

	report := AuditRequirements(snap, prog,
		auditStudent("", domain.CourseTaken{CourseID: "CS35200", Grade: domain.GradeB}))

	later := report.Groups[1]
	assert.Equal(t, domain.RequirementUnmet, later.Status)
	assert.Empty(t, later.RemainingOptions,
		"the group's only course was already consumed, nothing is left to take")
	assert.Equal(t, []string{"CS35200"}, later.ExcludedByPolicy)
	assert.Empty(t, report.UnmetLeaves(),
		"a policy-blocked course is not suggested as a next step")
}
