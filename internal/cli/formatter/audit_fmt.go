package formatter

import (
	"fmt"
	"strings"

	"github.com/rao305/boilerai-sub000/internal/domain"
)

// FormatAudit renders the per-group requirement audit for one student.
func FormatAudit(report *domain.AuditReport) string {
	var b strings.Builder

	program := report.Program
	if report.Track != "" {
		program += " / " + report.Track
	}
	b.WriteString(Bold(report.StudentID) + "  " + Dim(program) + "\n\n")

	headers := []string{"GROUP", "CATEGORY", "STATUS", "PROGRESS", "REMAINING"}
	rows := make([][]string, 0, len(report.Groups))

	satisfied := 0
	for _, g := range report.Groups {
		if g.Status == domain.RequirementSatisfied {
			satisfied++
		}

		remaining := Dim("--")
		switch {
		case len(g.RemainingOptions) > 0:
			remaining = strings.Join(g.RemainingOptions, ", ")
			if len(g.ExcludedByPolicy) > 0 {
				remaining += "  " + Dim("(counted elsewhere: "+strings.Join(g.ExcludedByPolicy, ", ")+")")
			}
		case len(g.ExcludedByPolicy) > 0:
			remaining = Dim("blocked: " + strings.Join(g.ExcludedByPolicy, ", ") + " counted elsewhere")
		}

		rows = append(rows, []string{
			Bold(g.GroupKey),
			CategoryBadge(g.Category),
			RequirementPill(g.Status),
			fmt.Sprintf("%d/%d", g.CompletedCount, g.RequiredCount),
			remaining,
		})
	}

	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	if report.Satisfied() {
		b.WriteString(StyleGreen.Render("All requirement groups satisfied.") + "\n")
	} else {
		b.WriteString(fmt.Sprintf("%s of %s groups satisfied\n",
			Bold(fmt.Sprintf("%d", satisfied)),
			Bold(fmt.Sprintf("%d", len(report.Groups))),
		))
	}

	return RenderBox("Requirement Audit", b.String())
}
