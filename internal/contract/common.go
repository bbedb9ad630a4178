package contract

import (
	"fmt"
	"strings"
)

// Status classifies every engine response.
type Status string

const (
	StatusOK               Status = "ok"
	StatusIncomplete       Status = "incomplete"
	StatusCatalogIntegrity Status = "catalog_integrity_error"
	StatusInvalidInput     Status = "invalid_input"
)

// FieldError pins an invalid-input failure to the field that caused it.
// Invalid input is always rejected with specifics, never coerced.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the engine's request-level failure. Infeasible plans are NOT
// errors: they come back as ordinary responses with StatusIncomplete.
type Error struct {
	Status  Status
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s: %s", e.Status, e.Message)
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return fmt.Sprintf("%s: %s", e.Status, strings.Join(parts, "; "))
}

// NewInvalidInput builds an invalid_input error from field violations.
func NewInvalidInput(fields ...FieldError) *Error {
	return &Error{Status: StatusInvalidInput, Message: "invalid student record", Fields: fields}
}

// NewCatalogIntegrity wraps a catalog fault as a serving error.
func NewCatalogIntegrity(message string) *Error {
	return &Error{Status: StatusCatalogIntegrity, Message: message}
}
