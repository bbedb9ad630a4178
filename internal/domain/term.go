package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Term identifies one academic term, e.g. Fall 2026.
type Term struct {
	Year   int
	Season Season
}

// seq maps a term onto a single ordered integer so terms compare cheaply.
func (t Term) seq() int {
	return t.Year*3 + seasonOrder[t.Season]
}

func (t Term) Before(other Term) bool {
	return t.seq() < other.seq()
}

func (t Term) After(other Term) bool {
	return t.seq() > other.seq()
}

func (t Term) Equal(other Term) bool {
	return t.Year == other.Year && t.Season == other.Season
}

func (t Term) IsZero() bool {
	return t.Year == 0 && t.Season == ""
}

// Next returns the term following t. Summer is skipped unless allowSummer
// is set, so fall advances to the next spring either way.
func (t Term) Next(allowSummer bool) Term {
	switch t.Season {
	case SeasonSpring:
		if allowSummer {
			return Term{Year: t.Year, Season: SeasonSummer}
		}
		return Term{Year: t.Year, Season: SeasonFall}
	case SeasonSummer:
		return Term{Year: t.Year, Season: SeasonFall}
	default:
		return Term{Year: t.Year + 1, Season: SeasonSpring}
	}
}

// TermsBetween counts how many scheduling steps separate from and to,
// walking with the same summer policy the scheduler uses.
func TermsBetween(from, to Term, allowSummer bool) int {
	if !from.Before(to) {
		return 0
	}
	n := 0
	for t := from; t.Before(to); t = t.Next(allowSummer) {
		n++
	}
	return n
}

// Label renders a term for display, e.g. "Fall 2026".
func (t Term) Label() string {
	if t.IsZero() {
		return ""
	}
	season := string(t.Season)
	return strings.ToUpper(season[:1]) + season[1:] + " " + strconv.Itoa(t.Year)
}

// String renders the machine form, e.g. "fall-2026".
func (t Term) String() string {
	if t.IsZero() {
		return ""
	}
	return string(t.Season) + "-" + strconv.Itoa(t.Year)
}

// TermForDate maps a calendar date onto the academic term in session:
// January-April is spring, May-July is summer, August-December is fall.
func TermForDate(year int, month int) Term {
	switch {
	case month <= 4:
		return Term{Year: year, Season: SeasonSpring}
	case month <= 7:
		return Term{Year: year, Season: SeasonSummer}
	default:
		return Term{Year: year, Season: SeasonFall}
	}
}

// ParseTerm parses the machine form produced by String: "<season>-<year>".
func ParseTerm(s string) (Term, error) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(s)), "-", 2)
	if len(parts) != 2 {
		return Term{}, fmt.Errorf("term %q must be <season>-<year> (e.g. fall-2026)", s)
	}
	if !ValidSeasons[parts[0]] {
		return Term{}, fmt.Errorf("term %q: unknown season %q", s, parts[0])
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil || year < 1900 || year > 9999 {
		return Term{}, fmt.Errorf("term %q: invalid year %q", s, parts[1])
	}
	return Term{Year: year, Season: Season(parts[0])}, nil
}
