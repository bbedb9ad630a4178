package catalog

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rao305/boilerai-sub000/internal/domain"
)

// Snapshot is an immutable, validated view of the course catalog and its
// degree programs. Requests read a snapshot without locking; reloads build
// a fresh snapshot and swap it in via Store.
type Snapshot struct {
	Version  string
	LoadedAt time.Time

	courses    map[string]*domain.Course
	programs   map[string]*domain.Program
	dependents map[string][]string // course id -> courses whose prereqs reference it
}

// Build validates the inputs and assembles a snapshot. Any integrity
// violation (duplicate id, dangling reference, prerequisite cycle) fails
// the build; see validate.go.
func Build(courses []*domain.Course, programs []*domain.Program) (*Snapshot, error) {
	if err := validate(courses, programs); err != nil {
		return nil, err
	}

	s := &Snapshot{
		Version:    uuid.New().String(),
		LoadedAt:   time.Now().UTC(),
		courses:    make(map[string]*domain.Course, len(courses)),
		programs:   make(map[string]*domain.Program, len(programs)),
		dependents: make(map[string][]string),
	}
	for _, c := range courses {
		s.courses[c.ID] = c
	}
	for _, p := range programs {
		s.programs[p.ID] = p
	}

	// Reverse-dependency index: for each course, the courses whose
	// prerequisite expressions reference it. Drives the scorer's
	// blocking-factor signal.
	for _, c := range courses {
		for _, leaf := range c.Prerequisites.Leaves() {
			s.dependents[leaf] = append(s.dependents[leaf], c.ID)
		}
	}
	for id := range s.dependents {
		sort.Strings(s.dependents[id])
	}

	return s, nil
}

// Course looks up a course by canonical id.
func (s *Snapshot) Course(id string) (*domain.Course, bool) {
	c, ok := s.courses[id]
	return c, ok
}

// Program looks up a program by id.
func (s *Snapshot) Program(id string) (*domain.Program, bool) {
	p, ok := s.programs[id]
	return p, ok
}

// Courses returns all courses sorted by id.
func (s *Snapshot) Courses() []*domain.Course {
	out := make([]*domain.Course, 0, len(s.courses))
	for _, c := range s.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Programs returns all programs sorted by id.
func (s *Snapshot) Programs() []*domain.Program {
	out := make([]*domain.Program, 0, len(s.programs))
	for _, p := range s.programs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Credits returns a course's credit count, zero for unknown ids.
func (s *Snapshot) Credits(id string) int {
	if c, ok := s.courses[id]; ok {
		return c.Credits
	}
	return 0
}

// Dependents returns the courses whose prerequisites directly reference id.
func (s *Snapshot) Dependents(id string) []string {
	return s.dependents[id]
}
