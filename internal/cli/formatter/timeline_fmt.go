package formatter

import (
	"fmt"
	"strings"

	"github.com/rao305/boilerai-sub000/internal/domain"
)

// FormatTimeline renders a graduation prediction.
func FormatTimeline(pred *domain.TimelinePrediction) string {
	var b strings.Builder

	b.WriteString(RiskIndicator(pred.Risk) + "\n\n")

	graduation := "--"
	if pred.ExpectedGraduationTerm != nil {
		graduation = pred.ExpectedGraduationTerm.Label()
	}
	b.WriteString("Expected graduation: " + Bold(graduation) + "\n")
	b.WriteString(fmt.Sprintf("Terms remaining:     %d\n", pred.TermsRemaining))
	b.WriteString(fmt.Sprintf("Credits remaining:   %d\n", pred.CreditsRemaining))
	b.WriteString(fmt.Sprintf("Projected GPA:       %.2f\n", pred.ProjectedGPA))

	if pred.OnTrack {
		b.WriteString("\n" + StyleGreen.Render("On track for the target graduation term.") + "\n")
	}

	if len(pred.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range pred.Warnings {
			b.WriteString(StyleYellow.Render("  WARNING: "+w) + "\n")
		}
	}

	if len(pred.Recommendations) > 0 {
		b.WriteString("\n" + Header("Recommendations") + "\n")
		for _, r := range pred.Recommendations {
			b.WriteString("  " + StyleBlue.Render("→") + " " + r + "\n")
		}
	}

	return RenderBox("Timeline", b.String())
}
