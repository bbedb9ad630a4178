package formatter

import (
	"fmt"
	"strings"

	"github.com/rao305/boilerai-sub000/internal/domain"
)

// FormatPlan renders a term-by-term schedule.
func FormatPlan(plan *domain.Plan) string {
	var b strings.Builder

	b.WriteString(Bold(plan.StudentID) + "  " + Dim("plan "+shortID(plan.ID)) + "\n")
	b.WriteString(Dim(fmt.Sprintf("starting %s · %d terms · %d credits",
		plan.StartTerm.Label(), len(plan.Terms), plan.TotalCredits())) + "\n")

	for _, term := range plan.Terms {
		b.WriteString("\n" + Header(term.Term.Label()) + "\n")
		for _, c := range term.Courses {
			b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
				Bold(c.CourseID),
				CreditsLabel(c.Credits),
				Dim(fmt.Sprintf("difficulty %d, score %.1f", c.Difficulty, c.Score)),
			))
		}
		b.WriteString(Dim(fmt.Sprintf("  %d credits, difficulty %d", term.TotalCredits, term.TotalDifficulty)) + "\n")
	}

	if len(plan.BranchChoices) > 0 {
		b.WriteString("\n" + Header("Choices") + "\n")
		for _, choice := range plan.BranchChoices {
			b.WriteString("  " + branchChoiceLine(choice) + "\n")
		}
	}

	if plan.Incomplete {
		b.WriteString("\n" + StyleYellow.Render(fmt.Sprintf(
			"WARNING: horizon reached with %d course(s) unplaced: %s",
			len(plan.Unplaced), strings.Join(plan.Unplaced, ", "))) + "\n")
	}

	return RenderBox("Plan", b.String())
}

func branchChoiceLine(c domain.BranchChoice) string {
	source := c.GroupKey
	if source == "" {
		source = c.CourseID
	}
	return Dim("for "+source+": ") + strings.Join(c.Chosen, ", ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
