package service

import (
	"fmt"

	"github.com/rao305/boilerai-sub000/internal/catalog"
	"github.com/rao305/boilerai-sub000/internal/contract"
	"github.com/rao305/boilerai-sub000/internal/domain"
)

// validateStudent cross-checks a student record against the serving
// snapshot. Unknown references are rejected with field-level specifics
// instead of being silently dropped.
func validateStudent(snap *catalog.Snapshot, student *domain.StudentRecord) []contract.FieldError {
	var fields []contract.FieldError

	if student == nil {
		return []contract.FieldError{{Field: "student", Message: "required"}}
	}
	if student.ID == "" {
		fields = append(fields, contract.FieldError{Field: "student.id", Message: "required"})
	}

	program, ok := snap.Program(student.Program)
	if !ok {
		fields = append(fields, contract.FieldError{
			Field:   "student.program",
			Message: fmt.Sprintf("unknown program %q", student.Program),
		})
	} else if student.Track != "" {
		if program.TrackByID(student.Track) == nil {
			fields = append(fields, contract.FieldError{
				Field:   "student.track",
				Message: fmt.Sprintf("program %q has no track %q", student.Program, student.Track),
			})
		}
	}

	for i, taken := range student.Completed {
		if _, ok := snap.Course(taken.CourseID); !ok {
			fields = append(fields, contract.FieldError{
				Field:   fmt.Sprintf("student.completed[%d]", i),
				Message: fmt.Sprintf("unknown course %q", taken.CourseID),
			})
		}
	}
	for i, ip := range student.InProgress {
		if _, ok := snap.Course(ip.CourseID); !ok {
			fields = append(fields, contract.FieldError{
				Field:   fmt.Sprintf("student.in_progress[%d]", i),
				Message: fmt.Sprintf("unknown course %q", ip.CourseID),
			})
		}
	}

	if student.Constraints.MaxCreditsPerTerm < 0 {
		fields = append(fields, contract.FieldError{
			Field:   "student.constraints.max_credits_per_term",
			Message: "must be positive",
		})
	}

	return fields
}
