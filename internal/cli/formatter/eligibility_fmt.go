package formatter

import (
	"strings"

	"github.com/rao305/boilerai-sub000/internal/contract"
	"github.com/rao305/boilerai-sub000/internal/domain"
)

// FormatEligibility renders a single-course eligibility verdict.
func FormatEligibility(resp *contract.EligibilityResponse) string {
	var b strings.Builder

	b.WriteString(Bold(resp.CourseID) + "  " + EligibilityPill(resp.Eligibility) + "\n")

	if resp.Eligibility == domain.EligibilityNotEligible && len(resp.MissingCourses) > 0 {
		b.WriteString("\nMissing: " + StyleYellow.Render(strings.Join(resp.MissingCourses, ", ")) + "\n")
	}

	return b.String()
}
