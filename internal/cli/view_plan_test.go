package cli

import (
	"testing"

	"github.com/rao305/boilerai-sub000/internal/domain"
	"github.com/rao305/boilerai-sub000/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewTestPlan() *domain.Plan {
	return &domain.Plan{
		ID:        "plan-1",
		StudentID: "alice",
		StartTerm: domain.Term{Year: 2026, Season: domain.SeasonSpring},
		Terms: []domain.PlanTerm{
			{
				Term: domain.Term{Year: 2026, Season: domain.SeasonSpring},
				Courses: []domain.PlannedCourse{
					{CourseID: "CS18200", Credits: 3, Difficulty: 6, Score: 12.5},
				},
				TotalCredits:    3,
				TotalDifficulty: 6,
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

func TestPlanView_ShowsSelectedTermCourses(t *testing.T) {
	d := teatest.New(t, newPlanViewModel(viewTestPlan()), teatest.WithSize(100, 40))
	d.DrainInit()

	view := d.View()
	assert.Contains(t, view, "alice")
	assert.Contains(t, view, "Spring 2026")
	assert.Contains(t, view, "Fall 2026")
	// First term is selected, so its courses are expanded.
	assert.Contains(t, view, "CS18200")
	assert.NotContains(t, view, "CS25100")
}

func TestPlanView_ArrowKeysMoveSelection(t *testing.T) {
	d := teatest.New(t, newPlanViewModel(viewTestPlan()), teatest.WithSize(100, 40))
	d.DrainInit()

	d.PressDown()
	view := d.View()
	assert.Contains(t, view, "CS25100")
	assert.NotContains(t, view, "CS18200")

	// Down at the last term stays put.
	d.PressDown()
	assert.Contains(t, d.View(), "CS25100")

	d.PressUp()
	assert.Contains(t, d.View(), "CS18200")
}

func TestPlanView_QuitKeys(t *testing.T) {
	d := teatest.New(t, newPlanViewModel(viewTestPlan()))
	d.DrainInit()

	d.PressKey('q')
	require.True(t, d.Quitting)
}

func TestPlanView_ShowsUnplacedWarning(t *testing.T) {
	plan := viewTestPlan()
	plan.Incomplete = true
	plan.Unplaced = []string{"CS38100"}

	d := teatest.New(t, newPlanViewModel(plan))
	d.DrainInit()

	assert.Contains(t, d.View(), "1 course(s) unplaced: CS38100")
}
