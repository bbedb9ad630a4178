package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompletedGrades_KeepsBestOnRetake(t *testing.T) {
	s := StudentRecord{
		Completed: []CourseTaken{
			{CourseID: "CS18000", Grade: GradeF, Term: Term{Year: 2025, Season: SeasonFall}},
			{CourseID: "CS18000", Grade: GradeB, Term: Term{Year: 2026, Season: SeasonSpring}},
		},
	}
	grades := s.CompletedGrades()
	assert.Equal(t, GradeB, grades["CS18000"])
}

func TestLastTerm(t *testing.T) {
	s := StudentRecord{
		Completed: []CourseTaken{
			{CourseID: "CS18000", Grade: GradeB, Term: Term{Year: 2025, Season: SeasonFall}},
		},
		InProgress: []CourseInProgress{
			{CourseID: "CS18200", Term: Term{Year: 2026, Season: SeasonSpring}},
		},
	}
	last, ok := s.LastTerm()
	assert.True(t, ok)
	assert.Equal(t, Term{Year: 2026, Season: SeasonSpring}, last)

	empty := StudentRecord{}
	_, ok = empty.LastTerm()
	assert.False(t, ok)
}

func TestConstraintsCreditCap(t *testing.T) {
	assert.Equal(t, 16, Constraints{MaxCreditsPerTerm: 16}.CreditCap())
	assert.Equal(t, 15, Constraints{Pace: PaceNormal}.CreditCap())
	assert.Equal(t, 18, Constraints{Pace: PaceAccelerated}.CreditCap())
	assert.Equal(t, 12, Constraints{Pace: PaceRelaxed}.CreditCap())
}

func TestCompletedCredits_SkipsFailuresAndDuplicates(t *testing.T) {
	s := StudentRecord{
		Completed: []CourseTaken{
			{CourseID: "CS18000", Grade: GradeB},
			{CourseID: "CS18200", Grade: GradeF},
			{CourseID: "CS18000", Grade: GradeA},
		},
		InProgress: []CourseInProgress{
			{CourseID: "CS24000"},
			{CourseID: "CS18000"},
		},
	}
	credits := map[string]int{"CS18000": 4, "CS18200": 3, "CS24000": 3}
	got := s.CompletedCredits(func(id string) int { return credits[id] })
	assert.Equal(t, 7, got)
}
