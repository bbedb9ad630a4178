package importer

import (
	"fmt"

	"github.com/rao305/boilerai-sub000/internal/domain"
)

// Resolver canonicalizes raw course spellings using normalization plus the
// import file's explicit alias table. It never guesses equivalences
// between distinct numbering schemes: those must be listed as aliases.
type Resolver struct {
	aliases map[string]string // canonicalized raw -> canonical id
}

func NewResolver(aliases map[string]string) *Resolver {
	r := &Resolver{aliases: make(map[string]string, len(aliases))}
	for raw, canonical := range aliases {
		r.aliases[domain.CanonicalCourseID(raw)] = domain.CanonicalCourseID(canonical)
	}
	return r
}

// Resolve maps a raw course reference onto its canonical id.
func (r *Resolver) Resolve(raw string) string {
	id := domain.CanonicalCourseID(raw)
	if canonical, ok := r.aliases[id]; ok {
		return canonical
	}
	return id
}

// ConvertCatalog turns a validated catalog import into domain values with
// every course reference resolved to its canonical id.
func ConvertCatalog(schema *CatalogImport) ([]*domain.Course, []*domain.Program, error) {
	resolver := NewResolver(schema.Aliases)

	courses := make([]*domain.Course, 0, len(schema.Courses))
	for i, ci := range schema.Courses {
		course, err := convertCourse(resolver, ci)
		if err != nil {
			return nil, nil, fmt.Errorf("courses[%d]: %w", i, err)
		}
		courses = append(courses, course)
	}

	programs := make([]*domain.Program, 0, len(schema.Programs))
	for i, pi := range schema.Programs {
		program, err := convertProgram(resolver, pi)
		if err != nil {
			return nil, nil, fmt.Errorf("programs[%d]: %w", i, err)
		}
		programs = append(programs, program)
	}

	return courses, programs, nil
}

func convertCourse(resolver *Resolver, ci CourseImport) (*domain.Course, error) {
	seasons := make([]domain.Season, 0, len(ci.OfferedTerms))
	for _, s := range ci.OfferedTerms {
		seasons = append(seasons, domain.Season(s))
	}

	var prereqs *domain.Expression
	if ci.Prerequisites != nil {
		prereqs = convertExpression(resolver, ci.Prerequisites)
	}

	var minGrade domain.Grade
	if ci.MinimumGrade != "" {
		g, err := domain.ParseGrade(ci.MinimumGrade)
		if err != nil {
			return nil, err
		}
		minGrade = g
	}

	coreqs := make([]string, 0, len(ci.Corequisites))
	for _, co := range ci.Corequisites {
		coreqs = append(coreqs, resolver.Resolve(co))
	}

	title := ci.Title
	if title == "" {
		title = resolver.Resolve(ci.ID)
	}

	return &domain.Course{
		ID:             resolver.Resolve(ci.ID),
		Title:          title,
		Credits:        ci.Credits,
		OfferedSeasons: seasons,
		Prerequisites:  prereqs,
		Corequisites:   coreqs,
		MinimumGrade:   minGrade,
		Difficulty:     domain.IntFromPtrWithDefault(5, ci.Difficulty),
		SuccessRate:    ci.SuccessRate,
	}, nil
}

func convertExpression(resolver *Resolver, e *ExpressionImport) *domain.Expression {
	switch {
	case e.Course != "":
		return domain.Leaf(resolver.Resolve(e.Course))
	case e.OneOf != nil:
		children := make([]*domain.Expression, 0, len(e.OneOf))
		for _, c := range e.OneOf {
			children = append(children, convertExpression(resolver, c))
		}
		return domain.OneOf(children...)
	default:
		children := make([]*domain.Expression, 0, len(e.AllOf))
		for _, c := range e.AllOf {
			children = append(children, convertExpression(resolver, c))
		}
		return domain.AllOf(children...)
	}
}

func convertProgram(resolver *Resolver, pi ProgramImport) (*domain.Program, error) {
	program := &domain.Program{
		ID:                  pi.ID,
		Name:                pi.Name,
		TotalCredits:        pi.TotalCredits,
		AllowDoubleCounting: domain.BoolFromPtrWithDefault(true, pi.AllowDoubleCounting),
	}
	for _, pair := range pi.ExclusivePairs {
		program.ExclusiveGroupPairs = append(program.ExclusiveGroupPairs, domain.GroupPair{
			First: pair.First, Second: pair.Second,
		})
	}
	program.Groups = convertGroups(resolver, pi.Groups)
	for _, ti := range pi.Tracks {
		name := ti.Name
		if name == "" {
			name = ti.ID
		}
		program.Tracks = append(program.Tracks, domain.Track{
			ID:     ti.ID,
			Name:   name,
			Groups: convertGroups(resolver, ti.Groups),
		})
	}
	return program, nil
}

func convertGroups(resolver *Resolver, groups []GroupImport) []domain.RequirementGroup {
	out := make([]domain.RequirementGroup, 0, len(groups))
	for _, gi := range groups {
		out = append(out, domain.RequirementGroup{
			Key:          gi.Key,
			Category:     domain.RequirementCategory(gi.Category),
			Expression:   convertExpression(resolver, gi.Requirement),
			MinimumCount: domain.IntFromPtrWithDefault(0, gi.MinimumCount),
			CreditTarget: domain.IntFromPtrWithDefault(0, gi.CreditTarget),
		})
	}
	return out
}

// ConvertStudent turns a validated student import into a domain record.
// aliases should be the serving catalog's alias table so transcript
// spellings resolve the same way catalog data did.
func ConvertStudent(schema *StudentImport, aliases map[string]string) (*domain.StudentRecord, error) {
	resolver := NewResolver(aliases)

	student := &domain.StudentRecord{
		ID:            schema.ID,
		Program:       schema.Program,
		Track:         schema.Track,
		CumulativeGPA: schema.CumulativeGPA,
		MajorGPA:      schema.MajorGPA,
	}

	for i, ci := range schema.Completed {
		grade, err := domain.ParseGrade(ci.Grade)
		if err != nil {
			return nil, fmt.Errorf("completed[%d]: %w", i, err)
		}
		term, err := domain.ParseTerm(ci.Term)
		if err != nil {
			return nil, fmt.Errorf("completed[%d]: %w", i, err)
		}
		student.Completed = append(student.Completed, domain.CourseTaken{
			CourseID: resolver.Resolve(ci.Course),
			Grade:    grade,
			Term:     term,
		})
	}

	for i, ci := range schema.InProgress {
		term, err := domain.ParseTerm(ci.Term)
		if err != nil {
			return nil, fmt.Errorf("in_progress[%d]: %w", i, err)
		}
		student.InProgress = append(student.InProgress, domain.CourseInProgress{
			CourseID: resolver.Resolve(ci.Course),
			Term:     term,
		})
	}

	if c := schema.Constraints; c != nil {
		student.Constraints = domain.Constraints{
			MaxCreditsPerTerm: domain.IntFromPtrWithDefault(0, c.MaxCreditsPerTerm),
			AllowSummer:       domain.BoolFromPtrWithDefault(false, c.AllowSummer),
			Pace:              domain.Pace(c.Pace),
		}
		if c.TargetGraduationTerm != nil {
			term, err := domain.ParseTerm(*c.TargetGraduationTerm)
			if err != nil {
				return nil, fmt.Errorf("constraints.target_graduation_term: %w", err)
			}
			student.Constraints.TargetGraduationTerm = &term
		}
	}
	if student.Constraints.Pace == "" {
		student.Constraints.Pace = domain.PaceNormal
	}

	return student, nil
}
