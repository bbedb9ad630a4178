package contract

import (
	"github.com/rao305/boilerai-sub000/internal/domain"
	"github.com/rao305/boilerai-sub000/internal/planner"
)

// EligibilityResponse reports a single course's eligibility.
type EligibilityResponse struct {
	Status         Status                   `json:"status"`
	CourseID       string                   `json:"course_id"`
	Eligibility    domain.EligibilityStatus `json:"eligibility"`
	MissingCourses []string                 `json:"missing_courses,omitempty"`
}

// AuditResponse carries the per-group satisfaction report.
type AuditResponse struct {
	Status Status              `json:"status"`
	Report *domain.AuditReport `json:"report"`
}

// PlanResponse carries the built plan. Status is incomplete when the
// term horizon ran out before every needed course was placed.
type PlanResponse struct {
	Status Status       `json:"status"`
	Plan   *domain.Plan `json:"plan"`
}

// TimelineResponse carries the graduation prediction together with the
// plan it was folded from.
type TimelineResponse struct {
	Status     Status                     `json:"status"`
	Plan       *domain.Plan               `json:"plan"`
	Prediction *domain.TimelinePrediction `json:"prediction"`
}

// Reason re-exports the planner's scoring reason for presentation layers.
type Reason = planner.Reason

type ReasonCode = planner.ReasonCode
