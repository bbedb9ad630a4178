package planner

import (
	"strings"
	"testing"

	"github.com/rao305/boilerai-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timelineFixture(t *testing.T) (TimelineInput, *domain.Plan) {
	t.Helper()
	prog := introProgram()
	snap := introCatalog(t, prog)
	student := &domain.StudentRecord{
		ID: "stu-1", Program: "cs",
		Completed: []domain.CourseTaken{
			{CourseID: "CS18000", Grade: domain.GradeB, Term: fall(2025)},
		},
		CumulativeGPA: 3.0,
		Constraints:   domain.Constraints{MaxCreditsPerTerm: 16},
	}
	plan, err := BuildPlan(ScheduleRequest{Student: student, Snapshot: snap, Program: prog})
	require.NoError(t, err)
	return TimelineInput{Plan: plan, Student: student, Snapshot: snap, Program: prog}, plan
}

func TestPredict_Basics(t *testing.T) {
	input, plan := timelineFixture(t)
	pred := Predict(input)

	assert.Equal(t, len(plan.Terms), pred.TermsRemaining)
	require.NotNil(t, pred.ExpectedGraduationTerm)
	assert.Equal(t, plan.Terms[len(plan.Terms)-1].Term, *pred.ExpectedGraduationTerm)
	assert.Equal(t, 116, pred.CreditsRemaining, "120 total minus 4 completed")
	assert.True(t, pred.OnTrack, "no target set means on track")
	assert.Equal(t, domain.RiskOnTrack, pred.Risk)
	assert.Empty(t, pred.Warnings)
}

func TestPredict_TargetEarlierThanExpected(t *testing.T) {
	input, plan := timelineFixture(t)
	// Target one term before the computed graduation.
	last := plan.Terms[len(plan.Terms)-1].Term
	target := plan.Terms[0].Term
	require.True(t, target.Before(last))
	input.Student.Constraints.TargetGraduationTerm = &target

	pred := Predict(input)
	assert.False(t, pred.OnTrack)
	assert.NotEmpty(t, pred.Warnings, "an off-track prediction must warn")
	assert.NotEqual(t, domain.RiskOnTrack, pred.Risk)
}

func TestPredict_IncompletePlanIsCritical(t *testing.T) {
	input, plan := timelineFixture(t)
	plan.Incomplete = true
	plan.Unplaced = []string{"CS25100"}

	pred := Predict(input)
	assert.True(t, pred.OnTrack, "on-track compares expected against the target term only")
	assert.Equal(t, domain.RiskCritical, pred.Risk)
	assert.NotEmpty(t, pred.Warnings)
	assert.NotEmpty(t, pred.Recommendations)
}

func TestPredict_HeavyTermWarns(t *testing.T) {
	input, plan := timelineFixture(t)
	require.NotEmpty(t, plan.Terms)
	plan.Terms[0].TotalDifficulty = 30

	pred := Predict(input)
	found := false
	for _, w := range pred.Warnings {
		if strings.Contains(w, "difficulty load") {
			found = true
		}
	}
	assert.True(t, found, "heavy term must produce a load warning, got %v", pred.Warnings)
	assert.NotEmpty(t, pred.Recommendations)
}

func TestPredict_SummerRecommendationWhenBehind(t *testing.T) {
	input, plan := timelineFixture(t)
	target := plan.Terms[0].Term
	input.Student.Constraints.TargetGraduationTerm = &target
	input.Student.Constraints.AllowSummer = false

	pred := Predict(input)
	found := false
	for _, r := range pred.Recommendations {
		if strings.Contains(r, "summer") {
			found = true
		}
	}
	assert.True(t, found, "behind schedule without summers should suggest enabling them")
}

func TestPredict_ProjectedGPABlends(t *testing.T) {
	input, _ := timelineFixture(t)
	pred := Predict(input)
	// One 4-credit B (3.0) plus 116 remaining credits at the neutral 3.0
	// expectation stays at 3.0.
	assert.InDelta(t, 3.0, pred.ProjectedGPA, 1e-9)
}
