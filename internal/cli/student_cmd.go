package cli

import (
	"context"
	"fmt"

	"github.com/rao305/boilerai-sub000/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStudentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "student",
		Short: "Manage student records",
	}

	cmd.AddCommand(
		newStudentImportCmd(app),
		newStudentShowCmd(app),
		newStudentListCmd(app),
		newStudentRemoveCmd(app),
	)

	return cmd
}

func newStudentImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a student record from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			student, err := app.Students.ImportStudent(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported student %s (%d completed, %d in progress)\n",
				student.ID, len(student.Completed), len(student.InProgress))
			return nil
		},
	}
}

func newStudentShowCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show STUDENT",
		Short: "Show one student record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			student, err := loadStudent(context.Background(), app, args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(student)
			}
			fmt.Println(formatter.FormatStudent(student))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func newStudentListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored students",
		RunE: func(cmd *cobra.Command, args []string) error {
			students, err := app.Students.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatStudentList(students))
			return nil
		},
	}
}

func newStudentRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove STUDENT",
		Short: "Remove a student and their stored plans",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			student, err := loadStudent(context.Background(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Students.Delete(context.Background(), student.ID); err != nil {
				return err
			}
			fmt.Printf("Removed student %s\n", student.ID)
			return nil
		},
	}
}
