package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rao305/boilerai-sub000/internal/db"
	"github.com/rao305/boilerai-sub000/internal/domain"
)

// SQLiteStudentRepo implements StudentRepo using a SQLite database.
type SQLiteStudentRepo struct {
	db db.DBTX
}

// NewSQLiteStudentRepo creates a new SQLiteStudentRepo.
func NewSQLiteStudentRepo(conn db.DBTX) *SQLiteStudentRepo {
	return &SQLiteStudentRepo{db: conn}
}

const studentColumns = `id, program, track, completed, in_progress, cumulative_gpa, major_gpa, constraints, updated_at`

func (r *SQLiteStudentRepo) Upsert(ctx context.Context, s *domain.StudentRecord) error {
	completed, err := encodeCompleted(s.Completed)
	if err != nil {
		return err
	}
	inProgress, err := encodeInProgress(s.InProgress)
	if err != nil {
		return err
	}
	constraints, err := encodeConstraints(s.Constraints)
	if err != nil {
		return err
	}

	query := `INSERT OR REPLACE INTO students (` + studentColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID, s.Program, s.Track, completed, inProgress,
		s.CumulativeGPA, s.MajorGPA, constraints, nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting student %s: %w", s.ID, err)
	}
	return nil
}

func (r *SQLiteStudentRepo) GetByID(ctx context.Context, id string) (*domain.StudentRecord, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	s, err := scanStudent(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("student %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteStudentRepo) List(ctx context.Context) ([]*domain.StudentRecord, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing students: %w", err)
	}
	defer rows.Close()

	var students []*domain.StudentRecord
	for rows.Next() {
		s, err := scanStudent(rows.Scan)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating students: %w", err)
	}
	return students, nil
}

func (r *SQLiteStudentRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting student %s: %w", id, err)
	}
	return nil
}

func encodeCompleted(taken []domain.CourseTaken) (any, error) {
	if len(taken) == 0 {
		return nil, nil
	}
	rows := make([]takenRow, 0, len(taken))
	for _, t := range taken {
		rows = append(rows, takenRow{
			Course: t.CourseID,
			Grade:  string(t.Grade),
			Term:   t.Term.String(),
		})
	}
	s, err := marshalJSON("completed", rows)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func encodeInProgress(inProgress []domain.CourseInProgress) (any, error) {
	if len(inProgress) == 0 {
		return nil, nil
	}
	rows := make([]inProgressRow, 0, len(inProgress))
	for _, c := range inProgress {
		rows = append(rows, inProgressRow{Course: c.CourseID, Term: c.Term.String()})
	}
	s, err := marshalJSON("in_progress", rows)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func encodeConstraints(c domain.Constraints) (string, error) {
	row := constraintsRow{
		MaxCreditsPerTerm: c.MaxCreditsPerTerm,
		AllowSummer:       c.AllowSummer,
		Pace:              string(c.Pace),
	}
	if c.TargetGraduationTerm != nil {
		row.TargetGraduationTerm = c.TargetGraduationTerm.String()
	}
	return marshalJSON("constraints", row)
}

func scanStudent(scan func(dest ...any) error) (*domain.StudentRecord, error) {
	var s domain.StudentRecord
	var completedStr, inProgressStr sql.NullString
	var constraintsStr, updatedAt string

	err := scan(
		&s.ID, &s.Program, &s.Track, &completedStr, &inProgressStr,
		&s.CumulativeGPA, &s.MajorGPA, &constraintsStr, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning student: %w", err)
	}

	if completedStr.Valid {
		var rows []takenRow
		if err := unmarshalJSON("completed", completedStr.String, &rows); err != nil {
			return nil, err
		}
		for _, row := range rows {
			term, err := domain.ParseTerm(row.Term)
			if err != nil {
				return nil, fmt.Errorf("decoding completed term: %w", err)
			}
			s.Completed = append(s.Completed, domain.CourseTaken{
				CourseID: row.Course,
				Grade:    domain.Grade(row.Grade),
				Term:     term,
			})
		}
	}
	if inProgressStr.Valid {
		var rows []inProgressRow
		if err := unmarshalJSON("in_progress", inProgressStr.String, &rows); err != nil {
			return nil, err
		}
		for _, row := range rows {
			term, err := domain.ParseTerm(row.Term)
			if err != nil {
				return nil, fmt.Errorf("decoding in-progress term: %w", err)
			}
			s.InProgress = append(s.InProgress, domain.CourseInProgress{
				CourseID: row.Course,
				Term:     term,
			})
		}
	}

	var cRow constraintsRow
	if err := unmarshalJSON("constraints", constraintsStr, &cRow); err != nil {
		return nil, err
	}
	s.Constraints = domain.Constraints{
		MaxCreditsPerTerm: cRow.MaxCreditsPerTerm,
		AllowSummer:       cRow.AllowSummer,
		Pace:              domain.Pace(cRow.Pace),
	}
	if cRow.TargetGraduationTerm != "" {
		term, err := domain.ParseTerm(cRow.TargetGraduationTerm)
		if err != nil {
			return nil, fmt.Errorf("decoding target graduation term: %w", err)
		}
		s.Constraints.TargetGraduationTerm = &term
	}
	if s.Constraints.Pace == "" {
		s.Constraints.Pace = domain.PaceNormal
	}
	return &s, nil
}
