package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rao305/boilerai-sub000/internal/domain"
	"github.com/rao305/boilerai-sub000/internal/testutil"
)

func TestProgramRepo_Roundtrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgramRepo(db)
	ctx := context.Background()

	program := testutil.NewTestProgram("cs",
		testutil.WithGroups(
			testutil.CoreGroup("core", "CS18000", "CS18200"),
			domain.RequirementGroup{
				Key:      "breadth",
				Category: domain.CategoryElective,
				Expression: domain.AllOf(
					domain.Leaf("STAT35000"), domain.Leaf("PHIL15000"),
					domain.Leaf("COM21700"), domain.Leaf("ECON25100"),
				),
				MinimumCount: 3,
			},
		),
		testutil.WithTracks(domain.Track{
			ID: "ml", Name: "Machine Intelligence",
			Groups: []domain.RequirementGroup{{
				Key:      "track_ml",
				Category: domain.CategoryTrack,
				Expression: domain.OneOf(
					domain.Leaf("CS37300"), domain.Leaf("CS47100"),
				),
			}},
		}),
		testutil.WithExclusivePair("breadth", "track_ml"),
		testutil.WithoutDoubleCounting(),
	)
	require.NoError(t, repo.ReplaceAll(ctx, []*domain.Program{program}))

	got, err := repo.GetByID(ctx, "cs")
	require.NoError(t, err)

	assert.Equal(t, 120, got.TotalCredits)
	assert.False(t, got.AllowDoubleCounting)
	assert.True(t, got.Exclusive("breadth", "track_ml"))
	assert.True(t, got.Exclusive("track_ml", "breadth"))

	require.Len(t, got.Groups, 2)
	assert.Equal(t, "core", got.Groups[0].Key)
	assert.Equal(t, []string{"CS18000", "CS18200"}, got.Groups[0].Expression.Leaves())
	assert.Equal(t, 3, got.Groups[1].MinimumCount)
	assert.Equal(t, 3, got.Groups[1].RequiredCount())

	track := got.TrackByID("ml")
	require.NotNil(t, track)
	assert.Equal(t, "Machine Intelligence", track.Name)
	require.Len(t, track.Groups, 1)
	assert.Equal(t, domain.ExprOneOf, track.Groups[0].Expression.Kind)
}

func TestProgramRepo_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgramRepo(db)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProgramRepo_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgramRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []*domain.Program{
		testutil.NewTestProgram("ds", testutil.WithGroups(testutil.CoreGroup("core", "STAT35000"))),
		testutil.NewTestProgram("cs", testutil.WithGroups(testutil.CoreGroup("core", "CS18000"))),
	}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "cs", list[0].ID)
	assert.Equal(t, "ds", list[1].ID)
}
