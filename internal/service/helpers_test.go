package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rao305/boilerai-sub000/internal/catalog"
	"github.com/rao305/boilerai-sub000/internal/importer"
	"github.com/rao305/boilerai-sub000/internal/planner"
	"github.com/rao305/boilerai-sub000/internal/repository"
	"github.com/rao305/boilerai-sub000/internal/testutil"
)

// testEnv wires every service over one in-memory database, the way main does.
type testEnv struct {
	db          *sql.DB
	store       *catalog.Store
	catalogs    CatalogService
	students    StudentService
	planner     PlannerService
	planRepo    repository.PlanRepo
	studentRepo repository.StudentRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	store := catalog.NewStore()
	uow := testutil.NewTestUoW(database)
	studentRepo := repository.NewSQLiteStudentRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)

	return &testEnv{
		db:          database,
		store:       store,
		catalogs:    NewCatalogService(database, uow, store),
		students:    NewStudentService(database, studentRepo, store),
		planner:     NewPlannerService(store, planRepo, studentRepo, planner.DefaultWeights(), planner.DefaultHorizon),
		planRepo:    planRepo,
		studentRepo: studentRepo,
	}
}

// introCatalogImport is a small CS catalog: CS18000 and CS17600 feed
// CS18200 through a one_of, CS18200 feeds CS25100.
func introCatalogImport() *importer.CatalogImport {
	return &importer.CatalogImport{
		Aliases: map[string]string{"CS 180": "CS18000"},
		Courses: []importer.CourseImport{
			{ID: "CS18000", Title: "Problem Solving", Credits: 4, OfferedTerms: []string{"fall", "spring"}},
			{ID: "CS17600", Title: "Data Engineering", Credits: 3, OfferedTerms: []string{"fall", "spring"}},
			{ID: "CS18200", Title: "Discrete Math", Credits: 3, OfferedTerms: []string{"fall", "spring"},
				Prerequisites: &importer.ExpressionImport{OneOf: []*importer.ExpressionImport{
					{Course: "CS17600"}, {Course: "CS18000"},
				}}},
			{ID: "CS25100", Title: "Data Structures", Credits: 3, OfferedTerms: []string{"fall", "spring"},
				Prerequisites: &importer.ExpressionImport{AllOf: []*importer.ExpressionImport{
					{Course: "CS18200"},
				}}},
		},
		Programs: []importer.ProgramImport{
			{ID: "cs", Name: "Computer Science", TotalCredits: 120,
				Groups: []importer.GroupImport{
					{Key: "core", Category: "core",
						Requirement: &importer.ExpressionImport{AllOf: []*importer.ExpressionImport{
							{Course: "CS18000"}, {Course: "CS18200"}, {Course: "CS25100"},
						}}},
				}},
		},
	}
}

func (e *testEnv) importIntroCatalog(t *testing.T) {
	t.Helper()
	_, err := e.catalogs.ImportCatalogFromSchema(context.Background(), introCatalogImport())
	require.NoError(t, err)
}
