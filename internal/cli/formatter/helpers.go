package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rao305/boilerai-sub000/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}

	return boxStyle.Render(content)
}

// RequirementPill returns a colored indicator for a requirement group's state.
func RequirementPill(status domain.RequirementStatus) string {
	switch status {
	case domain.RequirementSatisfied:
		return StyleGreen.Render("✔ Satisfied")
	case domain.RequirementPartiallySatisfied:
		return StyleYellow.Render("◐ Partial")
	case domain.RequirementUnmet:
		return StyleRed.Render("○ Unmet")
	default:
		return StyleDim.Render(string(status))
	}
}

// EligibilityPill returns a colored indicator for a course eligibility state.
func EligibilityPill(status domain.EligibilityStatus) string {
	switch status {
	case domain.EligibilityEligible:
		return StyleGreen.Render("✔ Eligible")
	case domain.EligibilityAlreadySatisfied:
		return StyleDim.Render("✔ Already satisfied")
	case domain.EligibilityInProgress:
		return StyleBlue.Render("● In progress")
	case domain.EligibilityNotEligible:
		return StyleRed.Render("✖ Not eligible")
	default:
		return StyleDim.Render(string(status))
	}
}

// CategoryBadge returns a capitalized, purple-styled requirement category label.
func CategoryBadge(c domain.RequirementCategory) string {
	s := string(c)
	if s == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(strings.ToUpper(s[:1]) + s[1:])
}

// SeasonsLabel joins offered seasons into a compact display string.
func SeasonsLabel(seasons []domain.Season) string {
	if len(seasons) == 0 {
		return "--"
	}
	parts := make([]string, len(seasons))
	for i, s := range seasons {
		str := string(s)
		parts[i] = strings.ToUpper(str[:1]) + str[1:]
	}
	return strings.Join(parts, ", ")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// CreditsLabel renders a credit count as "N cr".
func CreditsLabel(credits int) string {
	return fmt.Sprintf("%d cr", credits)
}

// ExpressionLabel renders a requirement expression in a compact infix form,
// e.g. "(CS17600 or CS18000) and MA16100".
func ExpressionLabel(e *domain.Expression) string {
	s := expressionLabel(e, false)
	if s == "" {
		return "--"
	}
	return s
}

func expressionLabel(e *domain.Expression, nested bool) string {
	if e.IsEmpty() {
		return ""
	}
	if e.Kind == domain.ExprLeaf {
		return e.CourseID
	}

	sep := " and "
	if e.Kind == domain.ExprOneOf {
		sep = " or "
	}
	var parts []string
	for _, c := range e.Children {
		if p := expressionLabel(c, true); p != "" {
			parts = append(parts, p)
		}
	}
	joined := strings.Join(parts, sep)
	if nested && len(parts) > 1 {
		return "(" + joined + ")"
	}
	return joined
}
