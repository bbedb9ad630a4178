package cli

import (
	"context"
	"fmt"

	"github.com/rao305/boilerai-sub000/internal/cli/formatter"
	"github.com/rao305/boilerai-sub000/internal/contract"
	"github.com/spf13/cobra"
)

func newAuditCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "audit STUDENT",
		Short: "Audit a student's degree requirement groups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			student, err := loadStudent(ctx, app, args[0])
			if err != nil {
				return err
			}

			resp, err := app.Planner.AuditRequirements(ctx, contract.AuditRequest{Student: student})
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(resp)
			}
			fmt.Println(formatter.FormatAudit(resp.Report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
