package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rao305/boilerai-sub000/internal/catalog"
	"github.com/rao305/boilerai-sub000/internal/contract"
	"github.com/rao305/boilerai-sub000/internal/domain"
	"github.com/rao305/boilerai-sub000/internal/planner"
	"github.com/rao305/boilerai-sub000/internal/repository"
)

// auditCacheSize bounds the audit memo. Keys include the snapshot version,
// so entries from a replaced catalog simply age out.
const auditCacheSize = 256

type plannerService struct {
	store    *catalog.Store
	plans    repository.PlanRepo
	students repository.StudentRepo
	weights  planner.Weights
	horizon  int
	audits   *lru.Cache[string, *domain.AuditReport]
	observer UseCaseObserver
}

// NewPlannerService builds the engine's request surface. plans and
// students may be nil; generated plans are persisted only when both are
// wired and the student is on record.
func NewPlannerService(
	store *catalog.Store,
	plans repository.PlanRepo,
	students repository.StudentRepo,
	weights planner.Weights,
	horizon int,
	observers ...UseCaseObserver,
) PlannerService {
	audits, err := lru.New[string, *domain.AuditReport](auditCacheSize)
	if err != nil {
		panic(err) // only fails on non-positive size
	}
	return &plannerService{
		store:    store,
		plans:    plans,
		students: students,
		weights:  weights,
		horizon:  horizon,
		audits:   audits,
		observer: useCaseObserverOrNoop(observers),
	}
}

// resolve loads the serving snapshot and validates the student against
// it. Every operation goes through here so a request sees exactly one
// snapshot for its whole execution.
func (s *plannerService) resolve(student *domain.StudentRecord) (*catalog.Snapshot, *domain.Program, error) {
	snap, err := s.store.Snapshot()
	if err != nil {
		return nil, nil, contract.NewCatalogIntegrity(err.Error())
	}
	if fields := validateStudent(snap, student); len(fields) > 0 {
		return nil, nil, contract.NewInvalidInput(fields...)
	}
	program, _ := snap.Program(student.Program)
	return snap, program, nil
}

func (s *plannerService) CheckEligibility(ctx context.Context, req contract.EligibilityRequest) (*contract.EligibilityResponse, error) {
	var resp *contract.EligibilityResponse
	err := observe(ctx, s.observer, "check_eligibility", map[string]any{"course": req.CourseID}, func() error {
		snap, _, err := s.resolve(req.Student)
		if err != nil {
			return err
		}
		course, ok := snap.Course(req.CourseID)
		if !ok {
			return contract.NewInvalidInput(contract.FieldError{
				Field:   "course_id",
				Message: fmt.Sprintf("unknown course %q", req.CourseID),
			})
		}

		result := planner.CheckEligibility(snap, course, req.Student.CompletedGrades(), req.Student.InProgressSet())
		resp = &contract.EligibilityResponse{
			Status:         contract.StatusOK,
			CourseID:       result.CourseID,
			Eligibility:    result.Status,
			MissingCourses: result.MissingCourses,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *plannerService) AuditRequirements(ctx context.Context, req contract.AuditRequest) (*contract.AuditResponse, error) {
	var resp *contract.AuditResponse
	err := observe(ctx, s.observer, "audit_requirements", nil, func() error {
		snap, program, err := s.resolve(req.Student)
		if err != nil {
			return err
		}

		key := auditKey(snap.Version, req.Student)
		if report, ok := s.audits.Get(key); ok {
			resp = &contract.AuditResponse{Status: contract.StatusOK, Report: report}
			return nil
		}

		report := planner.AuditRequirements(snap, program, req.Student)
		s.audits.Add(key, report)
		resp = &contract.AuditResponse{Status: contract.StatusOK, Report: report}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *plannerService) BuildPlan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error) {
	var resp *contract.PlanResponse
	err := observe(ctx, s.observer, "build_plan", map[string]any{"horizon": req.Horizon}, func() error {
		plan, err := s.buildPlan(req.Student, req.Horizon, req.StartTerm, req.Now)
		if err != nil {
			return err
		}
		s.persistPlan(ctx, plan)
		resp = &contract.PlanResponse{Status: planStatus(plan), Plan: plan}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *plannerService) PredictTimeline(ctx context.Context, req contract.TimelineRequest) (*contract.TimelineResponse, error) {
	var resp *contract.TimelineResponse
	err := observe(ctx, s.observer, "predict_timeline", nil, func() error {
		snap, program, err := s.resolve(req.Student)
		if err != nil {
			return err
		}
		plan, err := s.buildPlanWith(snap, program, req.Student, req.Horizon, req.StartTerm, req.Now)
		if err != nil {
			return err
		}
		prediction := planner.Predict(planner.TimelineInput{
			Plan:     plan,
			Student:  req.Student,
			Snapshot: snap,
			Program:  program,
		})
		resp = &contract.TimelineResponse{
			Status:     planStatus(plan),
			Plan:       plan,
			Prediction: &prediction,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *plannerService) buildPlan(student *domain.StudentRecord, horizon int, startTerm domain.Term, now time.Time) (*domain.Plan, error) {
	snap, program, err := s.resolve(student)
	if err != nil {
		return nil, err
	}
	return s.buildPlanWith(snap, program, student, horizon, startTerm, now)
}

func (s *plannerService) buildPlanWith(
	snap *catalog.Snapshot,
	program *domain.Program,
	student *domain.StudentRecord,
	horizon int,
	startTerm domain.Term,
	now time.Time,
) (*domain.Plan, error) {
	if horizon <= 0 {
		horizon = s.horizon
	}
	sreq := planner.ScheduleRequest{
		Student:   student,
		Snapshot:  snap,
		Program:   program,
		Weights:   &s.weights,
		Horizon:   horizon,
		StartTerm: startTerm,
		Now:       now,
	}
	plan, err := planner.BuildPlan(sreq)
	if err != nil {
		if errors.Is(err, planner.ErrDependencyCycle) {
			return nil, contract.NewCatalogIntegrity(err.Error())
		}
		return nil, err
	}
	return plan, nil
}

// persistPlan saves the plan when the student is on record; ad-hoc
// requests for unknown students still get their response. A failed save
// does not fail the request, but it is reported through the observer.
func (s *plannerService) persistPlan(ctx context.Context, plan *domain.Plan) {
	if s.plans == nil || s.students == nil {
		return
	}
	if _, err := s.students.GetByID(ctx, plan.StudentID); err != nil {
		return
	}
	started := time.Now()
	if err := s.plans.Save(ctx, plan); err != nil {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "persist_plan",
			Duration:  time.Since(started),
			Success:   false,
			Err:       err,
			Fields:    map[string]any{"student_id": plan.StudentID},
			StartedAt: started,
		})
	}
}

func planStatus(plan *domain.Plan) contract.Status {
	if plan.Incomplete {
		return contract.StatusIncomplete
	}
	return contract.StatusOK
}

// auditKey fingerprints a student record under one snapshot version.
func auditKey(version string, student *domain.StudentRecord) string {
	data, _ := json.Marshal(student)
	sum := sha256.Sum256(data)
	return version + ":" + hex.EncodeToString(sum[:])
}
