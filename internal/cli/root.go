package cli

import (
	"github.com/rao305/boilerai-sub000/internal/repository"
	"github.com/rao305/boilerai-sub000/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Catalogs service.CatalogService
	Students service.StudentService
	Planner  service.PlannerService
	Plans    repository.PlanRepo

	// IsInteractive reports whether stdin is a terminal. Interactive
	// wizards refuse to start when it returns false.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "boilerai" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "boilerai",
		Short: "Degree planner: requirement audits, eligibility, and term-by-term schedules",
	}

	root.AddCommand(
		newCatalogCmd(app),
		newStudentCmd(app),
		newEligibilityCmd(app),
		newAuditCmd(app),
		newPlanCmd(app),
		newTimelineCmd(app),
	)

	return root
}
