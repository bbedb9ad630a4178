package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rao305/boilerai-sub000/internal/cli/formatter"
	"github.com/rao305/boilerai-sub000/internal/contract"
	"github.com/rao305/boilerai-sub000/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build and inspect term-by-term schedules",
	}

	cmd.AddCommand(
		newPlanBuildCmd(app),
		newPlanShowCmd(app),
		newPlanWizardCmd(app),
	)

	return cmd
}

func newPlanBuildCmd(app *App) *cobra.Command {
	var horizon int
	var start string
	var asJSON, view bool

	cmd := &cobra.Command{
		Use:   "build STUDENT",
		Short: "Build a schedule for the student's remaining requirements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			student, err := loadStudent(ctx, app, args[0])
			if err != nil {
				return err
			}

			startTerm, err := parseTermFlag(start)
			if err != nil {
				return err
			}

			resp, err := app.Planner.BuildPlan(ctx, contract.PlanRequest{
				Student:   student,
				Horizon:   horizon,
				StartTerm: startTerm,
			})
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(resp)
			}
			if view {
				return runPlanView(resp.Plan)
			}
			fmt.Println(formatter.FormatPlan(resp.Plan))
			return nil
		},
	}

	cmd.Flags().IntVar(&horizon, "horizon", 0, "Maximum number of terms to schedule (0 for default)")
	cmd.Flags().StringVar(&start, "start", "", "First term to schedule, e.g. fall-2026")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&view, "view", false, "Open the plan in an interactive viewer")

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show STUDENT",
		Short: "Show the most recently stored plan for a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			student, err := loadStudent(ctx, app, args[0])
			if err != nil {
				return err
			}

			plan, err := app.Plans.LatestForStudent(ctx, student.ID)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(plan)
			}
			fmt.Println(formatter.FormatPlan(plan))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func newPlanWizardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Build a plan interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("plan wizard requires an interactive terminal")
			}
			return runPlanWizard(app)
		},
	}
}

// runPlanView opens the scrollable plan viewer.
func runPlanView(plan *domain.Plan) error {
	_, err := tea.NewProgram(newPlanViewModel(plan), tea.WithAltScreen()).Run()
	return err
}
