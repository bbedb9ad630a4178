package repository

import (
	"encoding/json"
	"fmt"

	"github.com/rao305/boilerai-sub000/internal/domain"
)

// Tree-shaped fields (expressions, groups, tracks) are stored as JSON
// columns; scalar fields map to columns directly. The row structs below
// are the storage schema for those JSON columns and are decoupled from
// the domain types so either can evolve independently.

type exprRow struct {
	Kind     string     `json:"kind"`
	Course   string     `json:"course,omitempty"`
	Children []*exprRow `json:"children,omitempty"`
}

type groupRow struct {
	Key          string   `json:"key"`
	Category     string   `json:"category"`
	Expression   *exprRow `json:"expression"`
	MinimumCount int      `json:"minimum_count,omitempty"`
	CreditTarget int      `json:"credit_target,omitempty"`
}

type trackRow struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Groups []groupRow `json:"groups"`
}

type pairRow struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

type takenRow struct {
	Course string `json:"course"`
	Grade  string `json:"grade"`
	Term   string `json:"term"`
}

type inProgressRow struct {
	Course string `json:"course"`
	Term   string `json:"term"`
}

type constraintsRow struct {
	MaxCreditsPerTerm    int    `json:"max_credits_per_term,omitempty"`
	TargetGraduationTerm string `json:"target_graduation_term,omitempty"`
	AllowSummer          bool   `json:"allow_summer,omitempty"`
	Pace                 string `json:"pace,omitempty"`
}

type plannedCourseRow struct {
	Course     string  `json:"course"`
	Credits    int     `json:"credits"`
	Difficulty int     `json:"difficulty"`
	Score      float64 `json:"score"`
}

type planTermRow struct {
	Term            string             `json:"term"`
	Courses         []plannedCourseRow `json:"courses"`
	TotalCredits    int                `json:"total_credits"`
	TotalDifficulty int                `json:"total_difficulty"`
}

type branchChoiceRow struct {
	GroupKey string   `json:"group_key,omitempty"`
	Course   string   `json:"course,omitempty"`
	Chosen   []string `json:"chosen"`
}

type planPayload struct {
	StartTerm     string            `json:"start_term"`
	Terms         []planTermRow     `json:"terms"`
	Incomplete    bool              `json:"incomplete,omitempty"`
	Unplaced      []string          `json:"unplaced,omitempty"`
	BranchChoices []branchChoiceRow `json:"branch_choices,omitempty"`
}

func exprToRow(e *domain.Expression) *exprRow {
	if e == nil {
		return nil
	}
	row := &exprRow{Kind: string(e.Kind), Course: e.CourseID}
	for _, c := range e.Children {
		row.Children = append(row.Children, exprToRow(c))
	}
	return row
}

func exprFromRow(row *exprRow) *domain.Expression {
	if row == nil {
		return nil
	}
	e := &domain.Expression{Kind: domain.ExprKind(row.Kind), CourseID: row.Course}
	for _, c := range row.Children {
		e.Children = append(e.Children, exprFromRow(c))
	}
	return e
}

func groupsToRows(groups []domain.RequirementGroup) []groupRow {
	rows := make([]groupRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, groupRow{
			Key:          g.Key,
			Category:     string(g.Category),
			Expression:   exprToRow(g.Expression),
			MinimumCount: g.MinimumCount,
			CreditTarget: g.CreditTarget,
		})
	}
	return rows
}

func groupsFromRows(rows []groupRow) []domain.RequirementGroup {
	groups := make([]domain.RequirementGroup, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, domain.RequirementGroup{
			Key:          row.Key,
			Category:     domain.RequirementCategory(row.Category),
			Expression:   exprFromRow(row.Expression),
			MinimumCount: row.MinimumCount,
			CreditTarget: row.CreditTarget,
		})
	}
	return groups
}

// marshalJSON wraps json.Marshal with a column name for error context.
func marshalJSON(column string, v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", column, err)
	}
	return string(data), nil
}

func unmarshalJSON(column, data string, v any) error {
	if data == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("decoding %s: %w", column, err)
	}
	return nil
}
