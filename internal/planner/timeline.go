package planner

import (
	"fmt"

	"github.com/rao305/boilerai-sub000/internal/catalog"
	"github.com/rao305/boilerai-sub000/internal/domain"
)

// Difficulty-load thresholds per pace: the sum of course difficulty
// ratings in a term above which the term is flagged as a heavy load.
func heavyLoadThreshold(pace domain.Pace) int {
	switch pace {
	case domain.PaceAccelerated:
		return 26
	case domain.PaceRelaxed:
		return 18
	default:
		return 22
	}
}

// TimelineInput carries everything Predict folds into a prediction.
type TimelineInput struct {
	Plan     *domain.Plan
	Student  *domain.StudentRecord
	Snapshot *catalog.Snapshot
	Program  *domain.Program
}

// Predict folds a plan into a graduation estimate, an on-track flag, a
// risk rating and derived (never templated-prose) warnings and
// recommendations.
func Predict(input TimelineInput) domain.TimelinePrediction {
	plan := input.Plan
	student := input.Student

	pred := domain.TimelinePrediction{
		TermsRemaining: len(plan.Terms),
	}
	if len(plan.Terms) > 0 {
		last := plan.Terms[len(plan.Terms)-1].Term
		pred.ExpectedGraduationTerm = &last
	}

	completedCredits := student.CompletedCredits(input.Snapshot.Credits)
	pred.CreditsRemaining = input.Program.TotalCredits - completedCredits
	if pred.CreditsRemaining < 0 {
		pred.CreditsRemaining = 0
	}

	target := student.Constraints.TargetGraduationTerm
	pred.OnTrack = true
	if target != nil && pred.ExpectedGraduationTerm != nil && pred.ExpectedGraduationTerm.After(*target) {
		pred.OnTrack = false
	}

	pred.ProjectedGPA = projectGPA(input, pred.CreditsRemaining)
	pred.Warnings = collectWarnings(input, pred)
	pred.Recommendations = deriveRecommendations(input, pred)
	pred.Risk = classifyRisk(input, pred)
	return pred
}

// projectGPA blends earned quality points with an expectation for the
// remaining credits. The expectation starts at a B average and shifts
// with the historical pass rates of the planned courses; with no signal
// it stays neutral. This is a pace estimate, not a grade prediction.
func projectGPA(input TimelineInput, creditsRemaining int) float64 {
	var qualityPoints, gradedCredits float64
	best := input.Student.CompletedGrades()
	for id, grade := range best {
		credits := float64(input.Snapshot.Credits(id))
		qualityPoints += grade.Points() * credits
		gradedCredits += credits
	}

	expected := 3.0
	var rateSum float64
	rateCount := 0
	for _, t := range input.Plan.Terms {
		for _, c := range t.Courses {
			if course, ok := input.Snapshot.Course(c.CourseID); ok && course.SuccessRate != nil {
				rateSum += *course.SuccessRate
				rateCount++
			}
		}
	}
	if rateCount > 0 {
		// Map the mean pass rate onto [2.0, 4.0] around the neutral B.
		expected = 2.0 + 2.0*clampFloat(rateSum/float64(rateCount), 0, 1)
	}

	remaining := float64(creditsRemaining)
	total := gradedCredits + remaining
	if total == 0 {
		return input.Student.CumulativeGPA
	}
	return (qualityPoints + expected*remaining) / total
}

func collectWarnings(input TimelineInput, pred domain.TimelinePrediction) []string {
	var warnings []string

	if input.Plan.Incomplete {
		warnings = append(warnings, fmt.Sprintf(
			"plan is incomplete: %d course(s) could not be placed within the term horizon", len(input.Plan.Unplaced)))
	}

	threshold := heavyLoadThreshold(input.Student.Constraints.Pace)
	for _, t := range input.Plan.Terms {
		if t.TotalDifficulty > threshold {
			warnings = append(warnings, fmt.Sprintf(
				"%s carries a high difficulty load (%d, threshold %d)", t.Term.Label(), t.TotalDifficulty, threshold))
		}
	}

	target := input.Student.Constraints.TargetGraduationTerm
	if !pred.OnTrack && target != nil && pred.ExpectedGraduationTerm != nil && pred.ExpectedGraduationTerm.After(*target) {
		warnings = append(warnings, fmt.Sprintf(
			"expected graduation %s is after the target %s",
			pred.ExpectedGraduationTerm.Label(), target.Label()))
	}

	return warnings
}

func deriveRecommendations(input TimelineInput, pred domain.TimelinePrediction) []string {
	var recs []string
	creditCap := input.Student.Constraints.CreditCap()

	// Several consecutive near-cap terms: suggest easing the load.
	streakStart := -1
	for i, t := range input.Plan.Terms {
		if t.TotalCredits >= creditCap-2 {
			if streakStart < 0 {
				streakStart = i
			}
			if i-streakStart+1 >= 3 {
				recs = append(recs, fmt.Sprintf(
					"reduce course load around %s: %d consecutive terms near the %d-credit cap",
					t.Term.Label(), i-streakStart+1, creditCap))
				break
			}
		} else {
			streakStart = -1
		}
	}

	if !pred.OnTrack && !input.Student.Constraints.AllowSummer {
		recs = append(recs, "enable summer terms to shorten the timeline")
	}
	if input.Plan.Incomplete {
		recs = append(recs, "extend the term horizon or raise the per-term credit cap to place the remaining courses")
	}

	threshold := heavyLoadThreshold(input.Student.Constraints.Pace)
	for _, t := range input.Plan.Terms {
		if t.TotalDifficulty > threshold {
			recs = append(recs, fmt.Sprintf("spread the difficult courses scheduled in %s across nearby terms", t.Term.Label()))
			break
		}
	}

	return recs
}

func classifyRisk(input TimelineInput, pred domain.TimelinePrediction) domain.RiskLevel {
	if input.Plan.Incomplete {
		return domain.RiskCritical
	}

	target := input.Student.Constraints.TargetGraduationTerm
	behind := 0
	if target != nil && pred.ExpectedGraduationTerm != nil && pred.ExpectedGraduationTerm.After(*target) {
		behind = domain.TermsBetween(*target, *pred.ExpectedGraduationTerm, input.Student.Constraints.AllowSummer)
	}

	heavyTerms := 0
	threshold := heavyLoadThreshold(input.Student.Constraints.Pace)
	for _, t := range input.Plan.Terms {
		if t.TotalDifficulty > threshold {
			heavyTerms++
		}
	}

	switch {
	case behind >= 2:
		return domain.RiskCritical
	case behind == 1 || heavyTerms >= 2:
		return domain.RiskAtRisk
	default:
		return domain.RiskOnTrack
	}
}
