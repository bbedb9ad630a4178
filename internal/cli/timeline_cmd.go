package cli

import (
	"context"
	"fmt"

	"github.com/rao305/boilerai-sub000/internal/cli/formatter"
	"github.com/rao305/boilerai-sub000/internal/contract"
	"github.com/spf13/cobra"
)

func newTimelineCmd(app *App) *cobra.Command {
	var horizon int
	var start string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "timeline STUDENT",
		Short: "Predict a student's graduation timeline",
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

			resp, err := app.Planner.PredictTimeline(ctx, contract.TimelineRequest{
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
			fmt.Println(formatter.FormatTimeline(resp.Prediction))
			return nil
		},
	}

	cmd.Flags().IntVar(&horizon, "horizon", 0, "Maximum number of terms to schedule (0 for default)")
	cmd.Flags().StringVar(&start, "start", "", "First term to schedule, e.g. fall-2026")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
