package cli

import (
	"context"
	"fmt"

	"github.com/rao305/boilerai-sub000/internal/cli/formatter"
	"github.com/rao305/boilerai-sub000/internal/contract"
	"github.com/rao305/boilerai-sub000/internal/domain"
	"github.com/spf13/cobra"
)

func newEligibilityCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "eligibility STUDENT COURSE",
		Short: "Check whether a student can take a course now",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			student, err := loadStudent(ctx, app, args[0])
			if err != nil {
				return err
			}

			resp, err := app.Planner.CheckEligibility(ctx, contract.EligibilityRequest{
				CourseID: domain.CanonicalCourseID(args[1]),
				Student:  student,
			})
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(resp)
			}
			fmt.Print(formatter.FormatEligibility(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
