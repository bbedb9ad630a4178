package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rao305/boilerai-sub000/internal/domain"
	"github.com/rao305/boilerai-sub000/internal/testutil"
)

func seedStudent(t *testing.T, repo *SQLiteStudentRepo, id string) {
	t.Helper()
	require.NoError(t, repo.Upsert(context.Background(), testutil.NewTestStudent(id, "cs")))
}

func testPlan(studentID string, generatedAt time.Time) *domain.Plan {
	return &domain.Plan{
		ID:          uuid.New().String(),
		StudentID:   studentID,
		GeneratedAt: generatedAt,
		StartTerm:   domain.Term{Year: 2026, Season: domain.SeasonFall},
		Terms: []domain.PlanTerm{
			{
				Term: domain.Term{Year: 2026, Season: domain.SeasonFall},
				Courses: []domain.PlannedCourse{
					{CourseID: "CS18000", Credits: 4, Difficulty: 7, Score: 31.5},
					{CourseID: "MA16100", Credits: 5, Difficulty: 6, Score: 28.0},
				},
				TotalCredits:    9,
				TotalDifficulty: 13,
			},
		},
		BranchChoices: []domain.BranchChoice{
			{CourseID: "CS18200", Chosen: []string{"CS18000"}},
		},
	}
}

func TestPlanRepo_SaveAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	students := NewSQLiteStudentRepo(db)
	repo := NewSQLitePlanRepo(db)
	ctx := context.Background()

	seedStudent(t, students, "stu-1")
	plan := testPlan("stu-1", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Save(ctx, plan))

	got, err := repo.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.StudentID, got.StudentID)
	assert.Equal(t, plan.StartTerm, got.StartTerm)
	require.Len(t, got.Terms, 1)
	assert.Equal(t, 9, got.Terms[0].TotalCredits)
	require.Len(t, got.Terms[0].Courses, 2)
	assert.Equal(t, "CS18000", got.Terms[0].Courses[0].CourseID)
	assert.Equal(t, 31.5, got.Terms[0].Courses[0].Score)
	require.Len(t, got.BranchChoices, 1)
	assert.Equal(t, []string{"CS18000"}, got.BranchChoices[0].Chosen)
	assert.False(t, got.Incomplete)
}

func TestPlanRepo_IncompleteRoundtrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	students := NewSQLiteStudentRepo(db)
	repo := NewSQLitePlanRepo(db)
	ctx := context.Background()

	seedStudent(t, students, "stu-1")
	plan := testPlan("stu-1", time.Now().UTC())
	plan.Incomplete = true
	plan.Unplaced = []string{"CS40800", "CS50400"}
	require.NoError(t, repo.Save(ctx, plan))

	got, err := repo.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.True(t, got.Incomplete)
	assert.Equal(t, []string{"CS40800", "CS50400"}, got.Unplaced)
}

func TestPlanRepo_LatestForStudent(t *testing.T) {
	db := testutil.NewTestDB(t)
	students := NewSQLiteStudentRepo(db)
	repo := NewSQLitePlanRepo(db)
	ctx := context.Background()

	seedStudent(t, students, "stu-1")
	older := testPlan("stu-1", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := testPlan("stu-1", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Save(ctx, older))
	require.NoError(t, repo.Save(ctx, newer))

	got, err := repo.LatestForStudent(ctx, "stu-1")
	require.NoError(t, err)
	assert.Equal(t, newer.ID, got.ID)

	all, err := repo.ListByStudent(ctx, "stu-1")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, newer.ID, all[0].ID)
}

func TestPlanRepo_CascadeOnStudentDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	students := NewSQLiteStudentRepo(db)
	repo := NewSQLitePlanRepo(db)
	ctx := context.Background()

	seedStudent(t, students, "stu-1")
	plan := testPlan("stu-1", time.Now().UTC())
	require.NoError(t, repo.Save(ctx, plan))
	require.NoError(t, students.Delete(ctx, "stu-1"))

	_, err := repo.GetByID(ctx, plan.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlanRepo_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanRepo(db)

	_, err := repo.LatestForStudent(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
