package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rao305/boilerai-sub000/internal/cli/formatter"
	"github.com/rao305/boilerai-sub000/internal/contract"
	"github.com/rao305/boilerai-sub000/internal/domain"
)

// boilerHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func boilerHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateOptionalTerm(s string) error {
	if s == "" {
		return nil
	}
	_, err := domain.ParseTerm(s)
	return err
}

func validateOptionalPositiveInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("must be a positive integer")
	}
	return nil
}

// runPlanWizard collects plan parameters with a huh form, builds the
// plan, and opens the viewer.
func runPlanWizard(app *App) error {
	ctx := context.Background()

	students, err := app.Students.List(ctx)
	if err != nil {
		return err
	}
	if len(students) == 0 {
		return fmt.Errorf("no students on record; run 'boilerai student import' first")
	}

	options := make([]huh.Option[string], 0, len(students))
	for _, s := range students {
		label := fmt.Sprintf("%s — %s", s.ID, s.Program)
		options = append(options, huh.NewOption(label, s.ID))
	}

	var studentID, horizonStr, startStr string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Student").
				Options(options...).
				Value(&studentID),
			huh.NewInput().
				Title("Horizon in terms (blank for default)").
				Placeholder("12").
				Value(&horizonStr).
				Validate(validateOptionalPositiveInt),
			huh.NewInput().
				Title("Start term (blank for next term)").
				Placeholder("fall-2026").
				Value(&startStr).
				Validate(validateOptionalTerm),
		),
	).WithTheme(boilerHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	student, err := app.Students.Get(ctx, studentID)
	if err != nil {
		return err
	}

	req := contract.PlanRequest{Student: student}
	if horizonStr != "" {
		req.Horizon, _ = strconv.Atoi(horizonStr)
	}
	if startStr != "" {
		req.StartTerm, _ = domain.ParseTerm(startStr)
	}

	resp, err := app.Planner.BuildPlan(ctx, req)
	if err != nil {
		return err
	}

	return runPlanView(resp.Plan)
}
