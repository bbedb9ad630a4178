package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rao305/boilerai-sub000/internal/db"
	"github.com/rao305/boilerai-sub000/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database. Plans are
// immutable once generated, so the whole term layout is stored as one
// JSON payload instead of normalized rows.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Save(ctx context.Context, p *domain.Plan) error {
	payload, err := encodePlanPayload(p)
	if err != nil {
		return err
	}
	query := `INSERT INTO plans (id, student_id, generated_at, payload, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID, p.StudentID, p.GeneratedAt.UTC().Format(time.RFC3339), payload, nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting plan %s: %w", p.ID, err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	query := `SELECT id, student_id, generated_at, payload FROM plans WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	p, err := scanPlan(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (r *SQLitePlanRepo) LatestForStudent(ctx context.Context, studentID string) (*domain.Plan, error) {
	query := `SELECT id, student_id, generated_at, payload FROM plans
		WHERE student_id = ? ORDER BY generated_at DESC, id LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, studentID)
	p, err := scanPlan(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan for student %s: %w", studentID, ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (r *SQLitePlanRepo) ListByStudent(ctx context.Context, studentID string) ([]*domain.Plan, error) {
	query := `SELECT id, student_id, generated_at, payload FROM plans
		WHERE student_id = ? ORDER BY generated_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var plans []*domain.Plan
	for rows.Next() {
		p, err := scanPlan(rows.Scan)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	return plans, nil
}

func encodePlanPayload(p *domain.Plan) (string, error) {
	payload := planPayload{
		StartTerm:  p.StartTerm.String(),
		Incomplete: p.Incomplete,
		Unplaced:   p.Unplaced,
	}
	for _, t := range p.Terms {
		row := planTermRow{
			Term:            t.Term.String(),
			TotalCredits:    t.TotalCredits,
			TotalDifficulty: t.TotalDifficulty,
		}
		for _, c := range t.Courses {
			row.Courses = append(row.Courses, plannedCourseRow{
				Course: c.CourseID, Credits: c.Credits, Difficulty: c.Difficulty, Score: c.Score,
			})
		}
		payload.Terms = append(payload.Terms, row)
	}
	for _, b := range p.BranchChoices {
		payload.BranchChoices = append(payload.BranchChoices, branchChoiceRow{
			GroupKey: b.GroupKey, Course: b.CourseID, Chosen: b.Chosen,
		})
	}
	return marshalJSON("payload", payload)
}

func scanPlan(scan func(dest ...any) error) (*domain.Plan, error) {
	var p domain.Plan
	var generatedAt, payloadStr string

	err := scan(&p.ID, &p.StudentID, &generatedAt, &payloadStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}

	ts, err := time.Parse(time.RFC3339, generatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing plan timestamp: %w", err)
	}
	p.GeneratedAt = ts

	var payload planPayload
	if err := unmarshalJSON("payload", payloadStr, &payload); err != nil {
		return nil, err
	}
	start, err := domain.ParseTerm(payload.StartTerm)
	if err != nil {
		return nil, fmt.Errorf("decoding plan start term: %w", err)
	}
	p.StartTerm = start
	p.Incomplete = payload.Incomplete
	p.Unplaced = payload.Unplaced
	for _, row := range payload.Terms {
		term, err := domain.ParseTerm(row.Term)
		if err != nil {
			return nil, fmt.Errorf("decoding plan term: %w", err)
		}
		pt := domain.PlanTerm{
			Term:            term,
			TotalCredits:    row.TotalCredits,
			TotalDifficulty: row.TotalDifficulty,
		}
		for _, c := range row.Courses {
			pt.Courses = append(pt.Courses, domain.PlannedCourse{
				CourseID: c.Course, Credits: c.Credits, Difficulty: c.Difficulty, Score: c.Score,
			})
		}
		p.Terms = append(p.Terms, pt)
	}
	for _, b := range payload.BranchChoices {
		p.BranchChoices = append(p.BranchChoices, domain.BranchChoice{
			GroupKey: b.GroupKey, CourseID: b.Course, Chosen: b.Chosen,
		})
	}
	return &p, nil
}
