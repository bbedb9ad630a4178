package service

import (
	"context"
	"fmt"

	"github.com/rao305/boilerai-sub000/internal/catalog"
	"github.com/rao305/boilerai-sub000/internal/contract"
	"github.com/rao305/boilerai-sub000/internal/db"
	"github.com/rao305/boilerai-sub000/internal/domain"
	"github.com/rao305/boilerai-sub000/internal/importer"
	"github.com/rao305/boilerai-sub000/internal/repository"
)

type studentService struct {
	database db.DBTX
	students repository.StudentRepo
	store    *catalog.Store
	observer UseCaseObserver
}

// NewStudentService wires student record import and persistence. Imports
// resolve transcript spellings through the stored alias table and are
// cross-checked against the serving snapshot before they land.
func NewStudentService(database db.DBTX, students repository.StudentRepo, store *catalog.Store, observers ...UseCaseObserver) StudentService {
	return &studentService{
		database: database,
		students: students,
		store:    store,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *studentService) ImportStudent(ctx context.Context, filePath string) (*domain.StudentRecord, error) {
	var student *domain.StudentRecord
	err := observe(ctx, s.observer, "student_import", map[string]any{"file": filePath}, func() error {
		schema, err := importer.LoadStudentImport(filePath)
		if err != nil {
			return fmt.Errorf("loading student file: %w", err)
		}
		if errs := importer.ValidateStudentImport(schema); len(errs) > 0 {
			return formatValidationErrors(errs)
		}

		snap, err := s.store.Snapshot()
		if err != nil {
			return contract.NewCatalogIntegrity(err.Error())
		}
		aliases, err := aliasesOrEmpty(ctx, s.database)
		if err != nil {
			return err
		}

		converted, err := importer.ConvertStudent(schema, aliases)
		if err != nil {
			return err
		}
		if fields := validateStudent(snap, converted); len(fields) > 0 {
			return contract.NewInvalidInput(fields...)
		}

		if err := s.students.Upsert(ctx, converted); err != nil {
			return err
		}
		student = converted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return student, nil
}

func (s *studentService) Get(ctx context.Context, id string) (*domain.StudentRecord, error) {
	return s.students.GetByID(ctx, id)
}

func (s *studentService) List(ctx context.Context) ([]*domain.StudentRecord, error) {
	return s.students.List(ctx)
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	return s.students.Delete(ctx, id)
}
