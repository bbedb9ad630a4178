package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rao305/boilerai-sub000/internal/catalog"
	"github.com/rao305/boilerai-sub000/internal/cli"
	"github.com/rao305/boilerai-sub000/internal/config"
	"github.com/rao305/boilerai-sub000/internal/db"
	"github.com/rao305/boilerai-sub000/internal/repository"
	"github.com/rao305/boilerai-sub000/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	cfg := config.Load()

	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	planRepo := repository.NewSQLitePlanRepo(database)
	studentRepo := repository.NewSQLiteStudentRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)
	store := catalog.NewStore()

	var observers []service.UseCaseObserver
	if os.Getenv("BOILERAI_LOG_USECASES") == "1" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	catalogSvc := service.NewCatalogService(database, uow, store, observers...)

	// Hydrate the serving snapshot from the stored catalog. A fresh
	// install has no catalog yet; commands that need one report it.
	if err := catalogSvc.Reload(context.Background()); err != nil && !errors.Is(err, catalog.ErrNoSnapshot) {
		fmt.Fprintf(os.Stderr, "Warning: catalog not loaded: %v\n", err)
	}

	app := &cli.App{
		Catalogs: catalogSvc,
		Students: service.NewStudentService(database, studentRepo, store, observers...),
		Planner:  service.NewPlannerService(store, planRepo, studentRepo, cfg.Weights, cfg.Horizon, observers...),
		Plans:    planRepo,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
