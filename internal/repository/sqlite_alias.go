package repository

import (
	"context"
	"fmt"

	"github.com/rao305/boilerai-sub000/internal/db"
)

// SQLiteAliasRepo implements AliasRepo using a SQLite database.
type SQLiteAliasRepo struct {
	db db.DBTX
}

// NewSQLiteAliasRepo creates a new SQLiteAliasRepo.
func NewSQLiteAliasRepo(conn db.DBTX) *SQLiteAliasRepo {
	return &SQLiteAliasRepo{db: conn}
}

func (r *SQLiteAliasRepo) ReplaceAll(ctx context.Context, aliases map[string]string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM course_aliases`); err != nil {
		return fmt.Errorf("clearing course aliases: %w", err)
	}
	for raw, canonical := range aliases {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO course_aliases (raw, canonical) VALUES (?, ?)`, raw, canonical,
		); err != nil {
			return fmt.Errorf("inserting alias %q: %w", raw, err)
		}
	}
	return nil
}

func (r *SQLiteAliasRepo) All(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT raw, canonical FROM course_aliases`)
	if err != nil {
		return nil, fmt.Errorf("listing course aliases: %w", err)
	}
	defer rows.Close()

	aliases := make(map[string]string)
	for rows.Next() {
		var raw, canonical string
		if err := rows.Scan(&raw, &canonical); err != nil {
			return nil, fmt.Errorf("scanning alias: %w", err)
		}
		aliases[raw] = canonical
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating aliases: %w", err)
	}
	return aliases, nil
}
