package service

import (
	"context"
	"fmt"

	"github.com/rao305/boilerai-sub000/internal/catalog"
	"github.com/rao305/boilerai-sub000/internal/db"
	"github.com/rao305/boilerai-sub000/internal/importer"
	"github.com/rao305/boilerai-sub000/internal/repository"
)

type catalogService struct {
	database db.DBTX
	uow      db.UnitOfWork
	store    *catalog.Store
	observer UseCaseObserver
}

// NewCatalogService wires the catalog import pipeline: JSON file ->
// validation -> conversion -> transactional persistence -> snapshot swap.
func NewCatalogService(database db.DBTX, uow db.UnitOfWork, store *catalog.Store, observers ...UseCaseObserver) CatalogService {
	return &catalogService{
		database: database,
		uow:      uow,
		store:    store,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *catalogService) ImportCatalog(ctx context.Context, filePath string) (*ImportCatalogResult, error) {
	schema, err := importer.LoadCatalogImport(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog file: %w", err)
	}
	return s.ImportCatalogFromSchema(ctx, schema)
}

func (s *catalogService) ImportCatalogFromSchema(ctx context.Context, schema *importer.CatalogImport) (*ImportCatalogResult, error) {
	var result *ImportCatalogResult
	err := observe(ctx, s.observer, "catalog_import", map[string]any{"courses": len(schema.Courses)}, func() error {
		r, err := s.importSchema(ctx, schema)
		result = r
		return err
	})
	return result, err
}

func (s *catalogService) importSchema(ctx context.Context, schema *importer.CatalogImport) (*ImportCatalogResult, error) {
	if errs := importer.ValidateCatalogImport(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	courses, programs, err := importer.ConvertCatalog(schema)
	if err != nil {
		return nil, fmt.Errorf("converting catalog: %w", err)
	}

	// Build (and thereby integrity-check) the snapshot before any write,
	// so a broken catalog never reaches the database.
	snap, err := catalog.Build(courses, programs)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteCourseRepo(tx).ReplaceAll(ctx, courses); err != nil {
			return err
		}
		if err := repository.NewSQLiteAliasRepo(tx).ReplaceAll(ctx, schema.Aliases); err != nil {
			return err
		}
		return repository.NewSQLiteProgramRepo(tx).ReplaceAll(ctx, programs)
	})
	if err != nil {
		return nil, fmt.Errorf("persisting catalog: %w", err)
	}

	if err := s.store.Reload(func() (*catalog.Snapshot, error) { return snap, nil }); err != nil {
		return nil, err
	}

	return &ImportCatalogResult{
		CourseCount:  len(courses),
		ProgramCount: len(programs),
		AliasCount:   len(schema.Aliases),
		Version:      snap.Version,
	}, nil
}

// Reload rebuilds the serving snapshot from the stored catalog. Called at
// startup; a validation failure keeps the previous snapshot (or none).
func (s *catalogService) Reload(ctx context.Context) error {
	return observe(ctx, s.observer, "catalog_reload", nil, func() error {
		return s.store.Reload(func() (*catalog.Snapshot, error) {
			courses, err := repository.NewSQLiteCourseRepo(s.database).List(ctx)
			if err != nil {
				return nil, err
			}
			if len(courses) == 0 {
				return nil, fmt.Errorf("no catalog stored: %w", catalog.ErrNoSnapshot)
			}
			programs, err := repository.NewSQLiteProgramRepo(s.database).List(ctx)
			if err != nil {
				return nil, err
			}
			return catalog.Build(courses, programs)
		})
	})
}

func (s *catalogService) Snapshot() (*catalog.Snapshot, error) {
	return s.store.Snapshot()
}

// aliasesOrEmpty loads the stored alias table, tolerating an empty one.
func aliasesOrEmpty(ctx context.Context, database db.DBTX) (map[string]string, error) {
	aliases, err := repository.NewSQLiteAliasRepo(database).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading alias table: %w", err)
	}
	return aliases, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
