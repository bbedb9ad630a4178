package repository

import (
	"context"
	"errors"

	"github.com/rao305/boilerai-sub000/internal/domain"
)

// ErrNotFound is wrapped by repository lookups when no row matches.
var ErrNotFound = errors.New("not found")

// CourseRepo persists the course catalog. ReplaceAll swaps the full table
// contents; catalog imports are whole-catalog replacements, never merges.
type CourseRepo interface {
	ReplaceAll(ctx context.Context, courses []*domain.Course) error
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	List(ctx context.Context) ([]*domain.Course, error)
	Count(ctx context.Context) (int, error)
}

// AliasRepo persists the raw-spelling to canonical-id alias table that
// shipped with the serving catalog.
type AliasRepo interface {
	ReplaceAll(ctx context.Context, aliases map[string]string) error
	All(ctx context.Context) (map[string]string, error)
}

type ProgramRepo interface {
	ReplaceAll(ctx context.Context, programs []*domain.Program) error
	GetByID(ctx context.Context, id string) (*domain.Program, error)
	List(ctx context.Context) ([]*domain.Program, error)
}

type StudentRepo interface {
	Upsert(ctx context.Context, s *domain.StudentRecord) error
	GetByID(ctx context.Context, id string) (*domain.StudentRecord, error)
	List(ctx context.Context) ([]*domain.StudentRecord, error)
	Delete(ctx context.Context, id string) error
}

type PlanRepo interface {
	Save(ctx context.Context, p *domain.Plan) error
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	LatestForStudent(ctx context.Context, studentID string) (*domain.Plan, error)
	ListByStudent(ctx context.Context, studentID string) ([]*domain.Plan, error)
}
