package testutil

import (
	"github.com/rao305/boilerai-sub000/internal/domain"
)

// Course options
type CourseOption func(*domain.Course)

func WithSeasons(seasons ...domain.Season) CourseOption {
	return func(c *domain.Course) {
		c.OfferedSeasons = seasons
	}
}

func WithPrereq(e *domain.Expression) CourseOption {
	return func(c *domain.Course) {
		c.Prerequisites = e
	}
}

func WithCoreqs(ids ...string) CourseOption {
	return func(c *domain.Course) {
		c.Corequisites = ids
	}
}

func WithMinGrade(g domain.Grade) CourseOption {
	return func(c *domain.Course) {
		c.MinimumGrade = g
	}
}

func WithDifficulty(d int) CourseOption {
	return func(c *domain.Course) {
		c.Difficulty = d
	}
}

func WithSuccessRate(r float64) CourseOption {
	return func(c *domain.Course) {
		c.SuccessRate = &r
	}
}

// NewTestCourse builds a course offered fall and spring with difficulty 5.
func NewTestCourse(id string, credits int, opts ...CourseOption) *domain.Course {
	c := &domain.Course{
		ID:             id,
		Title:          id,
		Credits:        credits,
		OfferedSeasons: []domain.Season{domain.SeasonFall, domain.SeasonSpring},
		Difficulty:     5,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Program options
type ProgramOption func(*domain.Program)

func WithTotalCredits(n int) ProgramOption {
	return func(p *domain.Program) {
		p.TotalCredits = n
	}
}

func WithGroups(groups ...domain.RequirementGroup) ProgramOption {
	return func(p *domain.Program) {
		p.Groups = groups
	}
}

func WithTracks(tracks ...domain.Track) ProgramOption {
	return func(p *domain.Program) {
		p.Tracks = tracks
	}
}

func WithExclusivePair(first, second string) ProgramOption {
	return func(p *domain.Program) {
		p.ExclusiveGroupPairs = append(p.ExclusiveGroupPairs, domain.GroupPair{First: first, Second: second})
	}
}

func WithoutDoubleCounting() ProgramOption {
	return func(p *domain.Program) {
		p.AllowDoubleCounting = false
	}
}

// NewTestProgram builds a 120-credit program that permits double-counting.
func NewTestProgram(id string, opts ...ProgramOption) *domain.Program {
	p := &domain.Program{
		ID:                  id,
		Name:                id,
		TotalCredits:        120,
		AllowDoubleCounting: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CoreGroup builds an all_of core group over the given course ids.
func CoreGroup(key string, courseIDs ...string) domain.RequirementGroup {
	leaves := make([]*domain.Expression, 0, len(courseIDs))
	for _, id := range courseIDs {
		leaves = append(leaves, domain.Leaf(id))
	}
	return domain.RequirementGroup{
		Key:        key,
		Category:   domain.CategoryCore,
		Expression: domain.AllOf(leaves...),
	}
}

// Student options
type StudentOption func(*domain.StudentRecord)

func WithCompleted(courseID string, grade domain.Grade, term domain.Term) StudentOption {
	return func(s *domain.StudentRecord) {
		s.Completed = append(s.Completed, domain.CourseTaken{
			CourseID: courseID, Grade: grade, Term: term,
		})
	}
}

func WithInProgress(courseID string, term domain.Term) StudentOption {
	return func(s *domain.StudentRecord) {
		s.InProgress = append(s.InProgress, domain.CourseInProgress{CourseID: courseID, Term: term})
	}
}

func WithTrack(trackID string) StudentOption {
	return func(s *domain.StudentRecord) {
		s.Track = trackID
	}
}

func WithConstraints(c domain.Constraints) StudentOption {
	return func(s *domain.StudentRecord) {
		s.Constraints = c
	}
}

func WithGPA(cumulative, major float64) StudentOption {
	return func(s *domain.StudentRecord) {
		s.CumulativeGPA = cumulative
		s.MajorGPA = major
	}
}

// NewTestStudent builds a student at normal pace with no completed work.
func NewTestStudent(id, program string, opts ...StudentOption) *domain.StudentRecord {
	s := &domain.StudentRecord{
		ID:      id,
		Program: program,
		Constraints: domain.Constraints{
			Pace: domain.PaceNormal,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
