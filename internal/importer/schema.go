package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ExpressionImport is the JSON form of a requirement expression. Exactly
// one of the three fields may be set.
type ExpressionImport struct {
	Course string              `json:"course,omitempty"`
	AllOf  []*ExpressionImport `json:"all_of,omitempty"`
	OneOf  []*ExpressionImport `json:"one_of,omitempty"`
}

// CourseImport defines one course in a catalog import file.
type CourseImport struct {
	ID            string            `json:"id" validate:"required"`
	Title         string            `json:"title"`
	Credits       int               `json:"credits" validate:"required,gt=0"`
	OfferedTerms  []string          `json:"offered_terms" validate:"required,min=1,dive,oneof=fall spring summer"`
	Prerequisites *ExpressionImport `json:"prerequisites,omitempty"`
	Corequisites  []string          `json:"corequisites,omitempty"`
	MinimumGrade  string            `json:"minimum_grade,omitempty"`
	Difficulty    *int              `json:"difficulty,omitempty" validate:"omitempty,min=1,max=10"`
	SuccessRate   *float64          `json:"success_rate,omitempty" validate:"omitempty,min=0,max=1"`
}

// GroupImport defines one requirement group.
type GroupImport struct {
	Key          string            `json:"key" validate:"required"`
	Category     string            `json:"category" validate:"required,oneof=core track elective general"`
	Requirement  *ExpressionImport `json:"requirement" validate:"required"`
	MinimumCount *int              `json:"minimum_count,omitempty" validate:"omitempty,gt=0"`
	CreditTarget *int              `json:"credit_target,omitempty" validate:"omitempty,gt=0"`
}

// TrackImport defines a sub-specialization within a program.
type TrackImport struct {
	ID     string        `json:"id" validate:"required"`
	Name   string        `json:"name"`
	Groups []GroupImport `json:"groups" validate:"required,min=1,dive"`
}

// PairImport names two groups between which double-counting is forbidden.
type PairImport struct {
	First  string `json:"first" validate:"required"`
	Second string `json:"second" validate:"required"`
}

// ProgramImport defines a degree program. AllowDoubleCounting defaults to
// true when omitted.
type ProgramImport struct {
	ID                  string        `json:"id" validate:"required"`
	Name                string        `json:"name"`
	TotalCredits        int           `json:"total_credits" validate:"required,gt=0"`
	AllowDoubleCounting *bool         `json:"allow_double_counting,omitempty"`
	ExclusivePairs      []PairImport  `json:"exclusive_pairs,omitempty" validate:"dive"`
	Groups              []GroupImport `json:"groups" validate:"required,min=1,dive"`
	Tracks              []TrackImport `json:"tracks,omitempty" validate:"dive"`
}

// CatalogImport is the top-level JSON structure for a catalog import.
// Aliases map raw course spellings from source data onto canonical ids;
// everything downstream of the importer sees canonical ids only.
type CatalogImport struct {
	Aliases  map[string]string `json:"aliases,omitempty"`
	Courses  []CourseImport    `json:"courses" validate:"required,min=1,dive"`
	Programs []ProgramImport   `json:"programs,omitempty" validate:"dive"`
}

// CompletedImport is one completed course on a student import.
type CompletedImport struct {
	Course string `json:"course" validate:"required"`
	Grade  string `json:"grade" validate:"required"`
	Term   string `json:"term" validate:"required"`
}

// InProgressImport is one currently enrolled course.
type InProgressImport struct {
	Course string `json:"course" validate:"required"`
	Term   string `json:"term" validate:"required"`
}

// ConstraintsImport carries the student's scheduling preferences.
type ConstraintsImport struct {
	MaxCreditsPerTerm    *int    `json:"max_credits_per_term,omitempty" validate:"omitempty,gt=0"`
	TargetGraduationTerm *string `json:"target_graduation_term,omitempty"`
	AllowSummer          *bool   `json:"allow_summer,omitempty"`
	Pace                 string  `json:"pace,omitempty" validate:"omitempty,oneof=accelerated normal relaxed"`
}

// StudentImport is the top-level JSON structure for a student record.
type StudentImport struct {
	ID            string             `json:"id" validate:"required"`
	Program       string             `json:"program" validate:"required"`
	Track         string             `json:"track,omitempty"`
	Completed     []CompletedImport  `json:"completed,omitempty" validate:"dive"`
	InProgress    []InProgressImport `json:"in_progress,omitempty" validate:"dive"`
	CumulativeGPA float64            `json:"cumulative_gpa" validate:"min=0,max=4"`
	MajorGPA      float64            `json:"major_gpa" validate:"min=0,max=4"`
	Constraints   *ConstraintsImport `json:"constraints,omitempty"`
}

// LoadCatalogImport reads and parses a catalog import JSON file.
func LoadCatalogImport(path string) (*CatalogImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema CatalogImport
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	return &schema, nil
}

// LoadStudentImport reads and parses a student record JSON file.
func LoadStudentImport(path string) (*StudentImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema StudentImport
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing student file: %w", err)
	}
	return &schema, nil
}
