package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rao305/boilerai-sub000/internal/domain"
)

// loadStudent fetches a stored student by ID, falling back to a prefix
// match so short forms work at the prompt.
func loadStudent(ctx context.Context, app *App, input string) (*domain.StudentRecord, error) {
	if input == "" {
		return nil, fmt.Errorf("student ID is required")
	}

	if s, err := app.Students.Get(ctx, input); err == nil {
		return s, nil
	}

	students, err := app.Students.List(ctx)
	if err != nil {
		return nil, err
	}

	var matches []*domain.StudentRecord
	for _, s := range students {
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("student not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("student ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// parseTermFlag parses an optional --start flag value.
func parseTermFlag(value string) (domain.Term, error) {
	if value == "" {
		return domain.Term{}, nil
	}
	return domain.ParseTerm(value)
}
