package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rao305/boilerai-sub000/internal/db"
	"github.com/rao305/boilerai-sub000/internal/domain"
)

// SQLiteCourseRepo implements CourseRepo using a SQLite database.
type SQLiteCourseRepo struct {
	db db.DBTX
}

// NewSQLiteCourseRepo creates a new SQLiteCourseRepo.
func NewSQLiteCourseRepo(conn db.DBTX) *SQLiteCourseRepo {
	return &SQLiteCourseRepo{db: conn}
}

const courseColumns = `id, title, credits, offered_seasons, prerequisites, corequisites, minimum_grade, difficulty, success_rate`

func (r *SQLiteCourseRepo) ReplaceAll(ctx context.Context, courses []*domain.Course) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM courses`); err != nil {
		return fmt.Errorf("clearing courses: %w", err)
	}
	query := `INSERT INTO courses (` + courseColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, c := range courses {
		seasons, err := marshalJSON("offered_seasons", c.OfferedSeasons)
		if err != nil {
			return err
		}
		var prereqs any
		if c.Prerequisites != nil {
			s, err := marshalJSON("prerequisites", exprToRow(c.Prerequisites))
			if err != nil {
				return err
			}
			prereqs = s
		}
		var coreqs any
		if len(c.Corequisites) > 0 {
			s, err := marshalJSON("corequisites", c.Corequisites)
			if err != nil {
				return err
			}
			coreqs = s
		}
		var rate any
		if c.SuccessRate != nil {
			rate = *c.SuccessRate
		}
		if _, err := r.db.ExecContext(ctx, query,
			c.ID, c.Title, c.Credits, seasons, prereqs, coreqs,
			string(c.MinimumGrade), c.Difficulty, rate,
		); err != nil {
			return fmt.Errorf("inserting course %s: %w", c.ID, err)
		}
	}
	return nil
}

func (r *SQLiteCourseRepo) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	c, err := scanCourse(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("course %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (r *SQLiteCourseRepo) List(ctx context.Context) ([]*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		c, err := scanCourse(rows.Scan)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}
	return courses, nil
}

func (r *SQLiteCourseRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM courses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting courses: %w", err)
	}
	return n, nil
}

func scanCourse(scan func(dest ...any) error) (*domain.Course, error) {
	var c domain.Course
	var seasonsStr, gradeStr string
	var prereqStr, coreqStr sql.NullString
	var rate sql.NullFloat64

	err := scan(
		&c.ID, &c.Title, &c.Credits, &seasonsStr,
		&prereqStr, &coreqStr, &gradeStr, &c.Difficulty, &rate,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning course: %w", err)
	}

	if err := unmarshalJSON("offered_seasons", seasonsStr, &c.OfferedSeasons); err != nil {
		return nil, err
	}
	if prereqStr.Valid {
		var row exprRow
		if err := unmarshalJSON("prerequisites", prereqStr.String, &row); err != nil {
			return nil, err
		}
		c.Prerequisites = exprFromRow(&row)
	}
	if coreqStr.Valid {
		if err := unmarshalJSON("corequisites", coreqStr.String, &c.Corequisites); err != nil {
			return nil, err
		}
	}
	c.MinimumGrade = domain.Grade(gradeStr)
	if rate.Valid {
		c.SuccessRate = &rate.Float64
	}
	return &c, nil
}
