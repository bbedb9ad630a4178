package cli

import (
	"context"
	"fmt"

	"github.com/rao305/boilerai-sub000/internal/cli/formatter"
	"github.com/rao305/boilerai-sub000/internal/domain"
	"github.com/rao305/boilerai-sub000/internal/importer"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the course catalog",
	}

	cmd.AddCommand(
		newCatalogImportCmd(app),
		newCatalogValidateCmd(app),
		newCatalogShowCmd(app),
		newCatalogCourseCmd(app),
	)

	return cmd
}

func newCatalogImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a catalog JSON file, replacing the stored catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Catalogs.ImportCatalog(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatImportResult(result))
			return nil
		},
	}
}

func newCatalogValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a catalog JSON file without importing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadCatalogImport(args[0])
			if err != nil {
				return err
			}
			if errs := importer.ValidateCatalogImport(schema); len(errs) > 0 {
				fmt.Print(formatter.FormatValidationFailure(errs))
				return fmt.Errorf("%d validation error(s)", len(errs))
			}
			courses, programs, err := importer.ConvertCatalog(schema)
			if err != nil {
				return err
			}
			fmt.Printf("OK: %d courses, %d programs\n", len(courses), len(programs))
			return nil
		},
	}
}

func newCatalogShowCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the serving catalog snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.Catalogs.Snapshot()
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(map[string]any{
					"version":  snap.Version,
					"courses":  len(snap.Courses()),
					"programs": len(snap.Programs()),
				})
			}
			fmt.Println(formatter.FormatCatalogSummary(snap))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func newCatalogCourseCmd(app *App) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "course [ID]",
		Short: "Show one course, or list all courses",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.Catalogs.Snapshot()
			if err != nil {
				return err
			}

			if len(args) == 0 || list {
				fmt.Print(formatter.FormatCourseList(snap.Courses()))
				return nil
			}

			course, ok := snap.Course(domain.CanonicalCourseID(args[0]))
			if !ok {
				return fmt.Errorf("course not found: %q", args[0])
			}
			fmt.Println(formatter.FormatCourse(course, snap.Dependents(course.ID)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List all courses")

	return cmd
}
