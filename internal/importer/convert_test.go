package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rao305/boilerai-sub000/internal/domain"
)

func TestResolver_Normalization(t *testing.T) {
	r := NewResolver(nil)
	assert.Equal(t, "CS18000", r.Resolve("cs 180 00"))
	assert.Equal(t, "CS18000", r.Resolve("CS-18000"))
	assert.Equal(t, "CS18000", r.Resolve("cs_18000"))
}

func TestResolver_AliasTable(t *testing.T) {
	r := NewResolver(map[string]string{"CS 240": "CS24000"})
	assert.Equal(t, "CS24000", r.Resolve("cs-240"))
	// Unlisted spellings pass through normalization untouched.
	assert.Equal(t, "CS241", r.Resolve("CS 241"))
}

func TestConvertCatalog(t *testing.T) {
	five := 5
	rate := 0.72
	schema := &CatalogImport{
		Aliases: map[string]string{"CS 180": "CS18000"},
		Courses: []CourseImport{
			{ID: "cs 180", Title: "Problem Solving", Credits: 4,
				OfferedTerms: []string{"fall", "spring"}, SuccessRate: &rate},
			{ID: "CS18200", Credits: 3, OfferedTerms: []string{"fall"},
				Prerequisites: &ExpressionImport{OneOf: []*ExpressionImport{
					{Course: "CS 180"}, {Course: "CS17600"},
				}},
				Corequisites: []string{"ma-16200"},
				MinimumGrade: "C", Difficulty: &five},
			{ID: "MA16200", Credits: 5, OfferedTerms: []string{"fall", "spring", "summer"}},
		},
		Programs: []ProgramImport{
			{ID: "cs", Name: "Computer Science", TotalCredits: 120,
				ExclusivePairs: []PairImport{{First: "core", Second: "track_ml"}},
				Groups: []GroupImport{
					{Key: "core", Category: "core",
						Requirement: &ExpressionImport{AllOf: []*ExpressionImport{
							{Course: "cs 180"}, {Course: "CS18200"},
						}}},
				},
				Tracks: []TrackImport{
					{ID: "ml", Groups: []GroupImport{
						{Key: "track_ml", Category: "track",
							Requirement: &ExpressionImport{Course: "CS18200"}},
					}},
				}},
		},
	}

	courses, programs, err := ConvertCatalog(schema)
	require.NoError(t, err)
	require.Len(t, courses, 3)
	require.Len(t, programs, 1)

	intro := courses[0]
	assert.Equal(t, "CS18000", intro.ID)
	assert.Equal(t, "Problem Solving", intro.Title)
	assert.Equal(t, 5, intro.Difficulty) // default when omitted
	require.NotNil(t, intro.SuccessRate)
	assert.InDelta(t, 0.72, *intro.SuccessRate, 1e-9)

	disc := courses[1]
	assert.Equal(t, []string{"MA16200"}, disc.Corequisites)
	assert.Equal(t, domain.GradeC, disc.MinimumGrade)
	require.NotNil(t, disc.Prerequisites)
	assert.Equal(t, domain.ExprOneOf, disc.Prerequisites.Kind)
	assert.Equal(t, []string{"CS17600", "CS18000"}, disc.Prerequisites.Leaves())

	p := programs[0]
	assert.True(t, p.AllowDoubleCounting)
	assert.True(t, p.Exclusive("core", "track_ml"))
	require.Len(t, p.Groups, 1)
	assert.Equal(t, []string{"CS18000", "CS18200"}, p.Groups[0].Expression.Leaves())
	require.Len(t, p.Tracks, 1)
	assert.Equal(t, "ml", p.Tracks[0].Name) // falls back to id
}

func TestConvertCatalog_DoubleCountingFlag(t *testing.T) {
	no := false
	schema := &CatalogImport{
		Courses: []CourseImport{
			{ID: "CS18000", Credits: 4, OfferedTerms: []string{"fall"}},
		},
		Programs: []ProgramImport{
			{ID: "cs", TotalCredits: 120, AllowDoubleCounting: &no,
				Groups: []GroupImport{
					{Key: "core", Category: "core",
						Requirement: &ExpressionImport{Course: "CS18000"}},
				}},
		},
	}
	_, programs, err := ConvertCatalog(schema)
	require.NoError(t, err)
	assert.False(t, programs[0].AllowDoubleCounting)
}

func TestConvertStudent(t *testing.T) {
	cap := 15
	target := "spring-2028"
	summer := true
	schema := &StudentImport{
		ID:      "stu-1",
		Program: "cs",
		Track:   "ml",
		Completed: []CompletedImport{
			{Course: "cs 180", Grade: "B+", Term: "fall-2025"},
		},
		InProgress: []InProgressImport{
			{Course: "CS18200", Term: "spring-2026"},
		},
		CumulativeGPA: 3.4,
		MajorGPA:      3.6,
		Constraints: &ConstraintsImport{
			MaxCreditsPerTerm:    &cap,
			TargetGraduationTerm: &target,
			AllowSummer:          &summer,
			Pace:                 "accelerated",
		},
	}

	student, err := ConvertStudent(schema, map[string]string{"CS 180": "CS18000"})
	require.NoError(t, err)

	assert.Equal(t, "stu-1", student.ID)
	require.Len(t, student.Completed, 1)
	assert.Equal(t, "CS18000", student.Completed[0].CourseID)
	assert.Equal(t, domain.GradeBPlus, student.Completed[0].Grade)
	assert.Equal(t, domain.Term{Year: 2025, Season: domain.SeasonFall}, student.Completed[0].Term)
	require.Len(t, student.InProgress, 1)
	assert.Equal(t, domain.Term{Year: 2026, Season: domain.SeasonSpring}, student.InProgress[0].Term)

	assert.Equal(t, 15, student.Constraints.MaxCreditsPerTerm)
	assert.True(t, student.Constraints.AllowSummer)
	assert.Equal(t, domain.PaceAccelerated, student.Constraints.Pace)
	require.NotNil(t, student.Constraints.TargetGraduationTerm)
	assert.Equal(t, domain.Term{Year: 2028, Season: domain.SeasonSpring}, *student.Constraints.TargetGraduationTerm)
}

func TestConvertStudent_Defaults(t *testing.T) {
	student, err := ConvertStudent(&StudentImport{ID: "stu-2", Program: "cs"}, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.PaceNormal, student.Constraints.Pace)
	assert.False(t, student.Constraints.AllowSummer)
	assert.Zero(t, student.Constraints.MaxCreditsPerTerm)
}

func TestConvertStudent_BadGrade(t *testing.T) {
	_, err := ConvertStudent(&StudentImport{
		ID: "stu-3", Program: "cs",
		Completed: []CompletedImport{{Course: "CS18000", Grade: "Z", Term: "fall-2025"}},
	}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "completed[0]")
}
