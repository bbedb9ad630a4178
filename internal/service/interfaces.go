package service

import (
	"context"

	"github.com/rao305/boilerai-sub000/internal/catalog"
	"github.com/rao305/boilerai-sub000/internal/contract"
	"github.com/rao305/boilerai-sub000/internal/domain"
	"github.com/rao305/boilerai-sub000/internal/importer"
)

// ImportCatalogResult holds the outcome of a catalog import.
type ImportCatalogResult struct {
	CourseCount  int
	ProgramCount int
	AliasCount   int
	Version      string
}

// CatalogService owns the serving snapshot. Imports replace the stored
// catalog atomically and swap in a freshly validated snapshot; a failed
// import leaves both the database and the serving snapshot untouched.
type CatalogService interface {
	ImportCatalog(ctx context.Context, filePath string) (*ImportCatalogResult, error)
	ImportCatalogFromSchema(ctx context.Context, schema *importer.CatalogImport) (*ImportCatalogResult, error)
	Reload(ctx context.Context) error
	Snapshot() (*catalog.Snapshot, error)
}

type StudentService interface {
	ImportStudent(ctx context.Context, filePath string) (*domain.StudentRecord, error)
	Get(ctx context.Context, id string) (*domain.StudentRecord, error)
	List(ctx context.Context) ([]*domain.StudentRecord, error)
	Delete(ctx context.Context, id string) error
}

// PlannerService is the engine's request surface. Every operation reads
// one snapshot for its whole execution, validates the student against it,
// and returns a typed response; infeasible plans are responses with
// StatusIncomplete, not errors.
type PlannerService interface {
	CheckEligibility(ctx context.Context, req contract.EligibilityRequest) (*contract.EligibilityResponse, error)
	AuditRequirements(ctx context.Context, req contract.AuditRequest) (*contract.AuditResponse, error)
	BuildPlan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
	PredictTimeline(ctx context.Context, req contract.TimelineRequest) (*contract.TimelineResponse, error)
}
