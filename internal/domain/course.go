package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var courseIDPattern = regexp.MustCompile(`^[A-Z]{2,6}[0-9]{3,5}$`)

// Course is one catalog entry. Courses are immutable once the catalog
// snapshot containing them is built.
type Course struct {
	ID             string
	Title          string
	Credits        int
	OfferedSeasons []Season
	Prerequisites  *Expression // nil means no prerequisites
	Corequisites   []string    // must be taken in the same term (or earlier)
	MinimumGrade   Grade       // grade required for this course to satisfy a prerequisite
	Difficulty     int         // 1 (light) .. 10 (heavy)
	SuccessRate    *float64    // historical pass rate in [0,1], nil if unknown
}

// OfferedIn reports whether the course runs in the given season.
func (c *Course) OfferedIn(season Season) bool {
	for _, s := range c.OfferedSeasons {
		if s == season {
			return true
		}
	}
	return false
}

// ValidateID checks that the id is a canonical course code: 2-6 uppercase
// letters followed by 3-5 digits (e.g. CS18000, MA26100).
func (c *Course) ValidateID() error {
	if c.ID == "" {
		return fmt.Errorf("course id is required")
	}
	if !courseIDPattern.MatchString(c.ID) {
		return fmt.Errorf("course id %q must be 2-6 uppercase letters followed by 3-5 digits (e.g. CS18000)", c.ID)
	}
	return nil
}

// CanonicalCourseID normalizes the spellings that appear in source data
// ("CS 240", "cs-24000") into the canonical code form. It uppercases and
// strips separators only; equivalences between distinct numbering schemes
// are resolved by the catalog's alias table, never guessed here.
func CanonicalCourseID(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
	return s
}
