package formatter

import (
	"testing"
	"time"

	"github.com/rao305/boilerai-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testPlan() *domain.Plan {
	return &domain.Plan{
		ID:          "0f3a9c21-8f11-4f2e-9a64-0c1d2e3f4a5b",
		StudentID:   "alice",
		GeneratedAt: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		StartTerm:   domain.Term{Year: 2026, Season: domain.SeasonSpring},
		Terms: []domain.PlanTerm{
			{
				Term: domain.Term{Year: 2026, Season: domain.SeasonSpring},
				Courses: []domain.PlannedCourse{
					{CourseID: "CS18200", Credits: 3, Difficulty: 6, Score: 12.5},
					{CourseID: "MA26100", Credits: 4, Difficulty: 7, Score: 10.0},
				},
				TotalCredits:    7,
				TotalDifficulty: 13,
			},
			{
				Term: domain.Term{Year: 2026, Season: domain.SeasonFall},
				Courses: []domain.PlannedCourse{
					{CourseID: "CS25100", Credits: 3, Difficulty: 8, Score: 9.1},
				},
				TotalCredits:    3,
				TotalDifficulty: 8,
			},
		},
	}
}

func TestFormatPlan_ShowsTermsAndCourses(t *testing.T) {
	out := FormatPlan(testPlan())

	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "SPRING 2026")
	assert.Contains(t, out, "FALL 2026")
	assert.Contains(t, out, "CS18200")
	assert.Contains(t, out, "MA26100")
	assert.Contains(t, out, "CS25100")
	assert.Contains(t, out, "10 credits")
	assert.NotContains(t, out, "WARNING")
}

func TestFormatPlan_IncompleteWarnsAboutUnplaced(t *testing.T) {
	plan := testPlan()
	plan.Incomplete = true
	plan.Unplaced = []string{"CS35200", "CS38100"}

	out := FormatPlan(plan)

	assert.Contains(t, out, "WARNING")
	assert.Contains(t, out, "2 course(s) unplaced")
	assert.Contains(t, out, "CS35200")
}

func TestFormatPlan_ShowsBranchChoices(t *testing.T) {
	plan := testPlan()
	plan.BranchChoices = []domain.BranchChoice{
		{CourseID: "CS18200", Chosen: []string{"CS17600"}},
		{GroupKey: "core", Chosen: []string{"CS18000", "CS18200"}},
	}

	out := FormatPlan(plan)

	assert.Contains(t, out, "CHOICES")
	assert.Contains(t, out, "for CS18200")
	assert.Contains(t, out, "for core")
	assert.Contains(t, out, "CS17600")
}
