package formatter

import (
	"fmt"
	"strings"

	"github.com/rao305/boilerai-sub000/internal/domain"
)

// FormatStudent renders one student record in full.
func FormatStudent(s *domain.StudentRecord) string {
	var b strings.Builder

	b.WriteString(Bold(s.ID) + "\n")
	program := s.Program
	if s.Track != "" {
		program += " / " + s.Track
	}
	b.WriteString(Dim(program) + "\n\n")

	b.WriteString(fmt.Sprintf("GPA:         %.2f cumulative, %.2f major\n", s.CumulativeGPA, s.MajorGPA))
	b.WriteString(fmt.Sprintf("Pace:        %s (%d cr/term cap)\n", s.Constraints.Pace, s.Constraints.CreditCap()))
	if s.Constraints.TargetGraduationTerm != nil {
		b.WriteString("Target term: " + s.Constraints.TargetGraduationTerm.Label() + "\n")
	}
	if s.Constraints.AllowSummer {
		b.WriteString("Summer terms allowed\n")
	}

	if len(s.Completed) > 0 {
		b.WriteString("\n" + Header("Completed") + "\n")
		headers := []string{"COURSE", "GRADE", "TERM"}
		rows := make([][]string, 0, len(s.Completed))
		for _, c := range s.Completed {
			rows = append(rows, []string{Bold(c.CourseID), string(c.Grade), c.Term.Label()})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	if len(s.InProgress) > 0 {
		b.WriteString("\n" + Header("In Progress") + "\n")
		for _, c := range s.InProgress {
			b.WriteString("  " + Bold(c.CourseID) + "  " + Dim(c.Term.Label()) + "\n")
		}
	}

	return RenderBox("Student", b.String())
}

// FormatStudentList renders the stored-student table.
func FormatStudentList(students []*domain.StudentRecord) string {
	if len(students) == 0 {
		return Dim("No students on record.") + "\n"
	}

	headers := []string{"STUDENT", "PROGRAM", "TRACK", "GPA", "COMPLETED"}
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		track := s.Track
		if track == "" {
			track = "--"
		}
		rows = append(rows, []string{
			Bold(s.ID),
			s.Program,
			track,
			fmt.Sprintf("%.2f", s.CumulativeGPA),
			fmt.Sprintf("%d courses", len(s.Completed)),
		})
	}
	return RenderTable(headers, rows)
}
