package importer

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rao305/boilerai-sub000/internal/domain"
)

var structValidator = validator.New()

// ValidateCatalogImport checks a catalog import for errors before
// conversion: struct-tag constraints first, then the cross-field rules
// tags cannot express. Returns every error found, not just the first.
// Referential integrity (dangling ids, cycles) is the catalog build's
// job; this layer validates shape.
func ValidateCatalogImport(schema *CatalogImport) []error {
	var errs []error
	errs = append(errs, tagErrors("catalog", structValidator.Struct(schema))...)

	for i, c := range schema.Courses {
		prefix := fmt.Sprintf("courses[%d]", i)
		if c.Prerequisites != nil {
			errs = append(errs, validateExpression(prefix+".prerequisites", c.Prerequisites)...)
		}
		if c.MinimumGrade != "" {
			if _, err := domain.ParseGrade(c.MinimumGrade); err != nil {
				errs = append(errs, fmt.Errorf("%s.minimum_grade: %v", prefix, err))
			}
		}
	}

	for i, p := range schema.Programs {
		prefix := fmt.Sprintf("programs[%d]", i)
		errs = append(errs, validateGroupExprs(prefix, p.Groups)...)
		for j, t := range p.Tracks {
			errs = append(errs, validateGroupExprs(fmt.Sprintf("%s.tracks[%d]", prefix, j), t.Groups)...)
		}
	}

	return errs
}

// ValidateStudentImport checks a student record import.
func ValidateStudentImport(schema *StudentImport) []error {
	var errs []error
	errs = append(errs, tagErrors("student", structValidator.Struct(schema))...)

	for i, c := range schema.Completed {
		prefix := fmt.Sprintf("completed[%d]", i)
		if c.Grade != "" {
			if _, err := domain.ParseGrade(c.Grade); err != nil {
				errs = append(errs, fmt.Errorf("%s.grade: %v", prefix, err))
			}
		}
		if c.Term != "" {
			if _, err := domain.ParseTerm(c.Term); err != nil {
				errs = append(errs, fmt.Errorf("%s.term: %v", prefix, err))
			}
		}
	}
	for i, c := range schema.InProgress {
		if c.Term != "" {
			if _, err := domain.ParseTerm(c.Term); err != nil {
				errs = append(errs, fmt.Errorf("in_progress[%d].term: %v", i, err))
			}
		}
	}
	if schema.Constraints != nil && schema.Constraints.TargetGraduationTerm != nil {
		if _, err := domain.ParseTerm(*schema.Constraints.TargetGraduationTerm); err != nil {
			errs = append(errs, fmt.Errorf("constraints.target_graduation_term: %v", err))
		}
	}

	return errs
}

// validateExpression checks that every node sets exactly one of course /
// all_of / one_of and that composite nodes are non-empty.
func validateExpression(prefix string, e *ExpressionImport) []error {
	var errs []error

	set := 0
	if e.Course != "" {
		set++
	}
	if e.AllOf != nil {
		set++
	}
	if e.OneOf != nil {
		set++
	}
	if set != 1 {
		errs = append(errs, fmt.Errorf("%s: exactly one of course/all_of/one_of must be set", prefix))
		return errs
	}

	children := e.AllOf
	kind := "all_of"
	if e.OneOf != nil {
		children = e.OneOf
		kind = "one_of"
	}
	if e.Course == "" {
		if len(children) == 0 {
			errs = append(errs, fmt.Errorf("%s.%s: must not be empty", prefix, kind))
		}
		for i, c := range children {
			errs = append(errs, validateExpression(fmt.Sprintf("%s.%s[%d]", prefix, kind, i), c)...)
		}
	}
	return errs
}

func validateGroupExprs(prefix string, groups []GroupImport) []error {
	var errs []error
	for i, g := range groups {
		if g.Requirement != nil {
			errs = append(errs, validateExpression(fmt.Sprintf("%s.groups[%d].requirement", prefix, i), g.Requirement)...)
		}
	}
	return errs
}

// tagErrors flattens validator.ValidationErrors into per-field errors.
func tagErrors(root string, err error) []error {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []error{err}
	}
	out := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fmt.Errorf("%s: field %s fails %q", root, fe.Namespace(), fe.Tag()))
	}
	return out
}
