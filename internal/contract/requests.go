package contract

import (
	"time"

	"github.com/rao305/boilerai-sub000/internal/domain"
)

// EligibilityRequest asks whether one course can be taken now.
type EligibilityRequest struct {
	CourseID string
	Student  *domain.StudentRecord
}

// AuditRequest asks for the requirement satisfaction state of every
// group in the student's program and track.
type AuditRequest struct {
	Student *domain.StudentRecord
}

// PlanRequest asks for a term-by-term schedule of the remaining courses.
// Horizon defaults to the scheduler's; StartTerm and Now are optional
// overrides (useful for reproducible output).
type PlanRequest struct {
	Student   *domain.StudentRecord
	Horizon   int
	StartTerm domain.Term
	Now       time.Time
}

func NewPlanRequest(student *domain.StudentRecord) PlanRequest {
	return PlanRequest{Student: student}
}

// TimelineRequest asks for a graduation estimate. The plan is built
// internally with the same parameters as PlanRequest.
type TimelineRequest struct {
	Student   *domain.StudentRecord
	Horizon   int
	StartTerm domain.Term
	Now       time.Time
}
