package formatter

import (
	"fmt"
	"strings"

	"github.com/rao305/boilerai-sub000/internal/catalog"
	"github.com/rao305/boilerai-sub000/internal/domain"
	"github.com/rao305/boilerai-sub000/internal/service"
)

// FormatImportResult summarizes a completed catalog import.
func FormatImportResult(result *service.ImportCatalogResult) string {
	line := fmt.Sprintf("Imported %s courses, %s programs, %s aliases",
		Bold(fmt.Sprintf("%d", result.CourseCount)),
		Bold(fmt.Sprintf("%d", result.ProgramCount)),
		Bold(fmt.Sprintf("%d", result.AliasCount)),
	)
	return line + "\n" + Dim("snapshot "+result.Version) + "\n"
}

// FormatCatalogSummary renders a one-screen overview of the serving snapshot.
func FormatCatalogSummary(snap *catalog.Snapshot) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s courses, %s programs\n",
		Bold(fmt.Sprintf("%d", len(snap.Courses()))),
		Bold(fmt.Sprintf("%d", len(snap.Programs()))),
	))
	b.WriteString(Dim("snapshot "+snap.Version) + "\n")

	programs := snap.Programs()
	if len(programs) > 0 {
		b.WriteString("\n")
		headers := []string{"PROGRAM", "NAME", "CREDITS", "GROUPS", "TRACKS"}
		rows := make([][]string, 0, len(programs))
		for _, p := range programs {
			rows = append(rows, []string{
				Bold(p.ID),
				p.Name,
				CreditsLabel(p.TotalCredits),
				fmt.Sprintf("%d", len(p.Groups)),
				fmt.Sprintf("%d", len(p.Tracks)),
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	return RenderBox("Catalog", b.String())
}

// FormatCourse renders one course in full detail. dependents lists the
// courses unlocked by completing it.
func FormatCourse(c *domain.Course, dependents []string) string {
	var b strings.Builder

	b.WriteString(Bold(c.ID) + " " + c.Title + "\n")
	b.WriteString(Dim(CreditsLabel(c.Credits)+" · offered "+SeasonsLabel(c.OfferedSeasons)) + "\n\n")

	b.WriteString("Prerequisites:  " + ExpressionLabel(c.Prerequisites) + "\n")
	if len(c.Corequisites) > 0 {
		b.WriteString("Corequisites:   " + strings.Join(c.Corequisites, ", ") + "\n")
	}
	if c.MinimumGrade != "" {
		b.WriteString("Minimum grade:  " + string(c.MinimumGrade) + "\n")
	}
	b.WriteString(fmt.Sprintf("Difficulty:     %d/10\n", c.Difficulty))
	if c.SuccessRate != nil {
		b.WriteString(fmt.Sprintf("Success rate:   %.0f%%\n", *c.SuccessRate*100))
	}
	if len(dependents) > 0 {
		b.WriteString("Unlocks:        " + strings.Join(dependents, ", ") + "\n")
	}

	return RenderBox("Course", b.String())
}

// FormatCourseList renders the course table for catalog browsing.
func FormatCourseList(courses []*domain.Course) string {
	if len(courses) == 0 {
		return Dim("No courses in catalog.") + "\n"
	}

	headers := []string{"COURSE", "TITLE", "CREDITS", "OFFERED", "PREREQS"}
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{
			Bold(c.ID),
			c.Title,
			CreditsLabel(c.Credits),
			SeasonsLabel(c.OfferedSeasons),
			ExpressionLabel(c.Prerequisites),
		})
	}
	return RenderTable(headers, rows)
}

// FormatValidationFailure renders a list of import validation errors.
func FormatValidationFailure(errs []error) string {
	var b strings.Builder
	b.WriteString(StyleRed.Render(fmt.Sprintf("Validation failed with %d error(s):", len(errs))) + "\n")
	for _, err := range errs {
		b.WriteString("  " + StyleYellow.Render("•") + " " + err.Error() + "\n")
	}
	return b.String()
}
