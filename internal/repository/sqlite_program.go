package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rao305/boilerai-sub000/internal/db"
	"github.com/rao305/boilerai-sub000/internal/domain"
)

// SQLiteProgramRepo implements ProgramRepo using a SQLite database.
type SQLiteProgramRepo struct {
	db db.DBTX
}

// NewSQLiteProgramRepo creates a new SQLiteProgramRepo.
func NewSQLiteProgramRepo(conn db.DBTX) *SQLiteProgramRepo {
	return &SQLiteProgramRepo{db: conn}
}

const programColumns = `id, name, total_credits, allow_double_counting, exclusive_pairs, requirement_groups, tracks`

func (r *SQLiteProgramRepo) ReplaceAll(ctx context.Context, programs []*domain.Program) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM programs`); err != nil {
		return fmt.Errorf("clearing programs: %w", err)
	}
	query := `INSERT INTO programs (` + programColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	for _, p := range programs {
		var pairs any
		if len(p.ExclusiveGroupPairs) > 0 {
			rows := make([]pairRow, 0, len(p.ExclusiveGroupPairs))
			for _, gp := range p.ExclusiveGroupPairs {
				rows = append(rows, pairRow{First: gp.First, Second: gp.Second})
			}
			s, err := marshalJSON("exclusive_pairs", rows)
			if err != nil {
				return err
			}
			pairs = s
		}
		groups, err := marshalJSON("requirement_groups", groupsToRows(p.Groups))
		if err != nil {
			return err
		}
		var tracks any
		if len(p.Tracks) > 0 {
			rows := make([]trackRow, 0, len(p.Tracks))
			for _, tr := range p.Tracks {
				rows = append(rows, trackRow{ID: tr.ID, Name: tr.Name, Groups: groupsToRows(tr.Groups)})
			}
			s, err := marshalJSON("tracks", rows)
			if err != nil {
				return err
			}
			tracks = s
		}
		if _, err := r.db.ExecContext(ctx, query,
			p.ID, p.Name, p.TotalCredits, boolToInt(p.AllowDoubleCounting),
			pairs, groups, tracks,
		); err != nil {
			return fmt.Errorf("inserting program %s: %w", p.ID, err)
		}
	}
	return nil
}

func (r *SQLiteProgramRepo) GetByID(ctx context.Context, id string) (*domain.Program, error) {
	query := `SELECT ` + programColumns + ` FROM programs WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	p, err := scanProgram(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("program %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (r *SQLiteProgramRepo) List(ctx context.Context) ([]*domain.Program, error) {
	query := `SELECT ` + programColumns + ` FROM programs ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing programs: %w", err)
	}
	defer rows.Close()

	var programs []*domain.Program
	for rows.Next() {
		p, err := scanProgram(rows.Scan)
		if err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating programs: %w", err)
	}
	return programs, nil
}

func scanProgram(scan func(dest ...any) error) (*domain.Program, error) {
	var p domain.Program
	var allowDouble int
	var groupsStr string
	var pairsStr, tracksStr sql.NullString

	err := scan(&p.ID, &p.Name, &p.TotalCredits, &allowDouble, &pairsStr, &groupsStr, &tracksStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning program: %w", err)
	}

	p.AllowDoubleCounting = intToBool(allowDouble)
	if pairsStr.Valid {
		var rows []pairRow
		if err := unmarshalJSON("exclusive_pairs", pairsStr.String, &rows); err != nil {
			return nil, err
		}
		for _, row := range rows {
			p.ExclusiveGroupPairs = append(p.ExclusiveGroupPairs, domain.GroupPair{
				First: row.First, Second: row.Second,
			})
		}
	}
	var groupRows []groupRow
	if err := unmarshalJSON("requirement_groups", groupsStr, &groupRows); err != nil {
		return nil, err
	}
	p.Groups = groupsFromRows(groupRows)
	if tracksStr.Valid {
		var rows []trackRow
		if err := unmarshalJSON("tracks", tracksStr.String, &rows); err != nil {
			return nil, err
		}
		for _, row := range rows {
			p.Tracks = append(p.Tracks, domain.Track{
				ID: row.ID, Name: row.Name, Groups: groupsFromRows(row.Groups),
			})
		}
	}
	return &p, nil
}
