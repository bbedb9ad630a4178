package domain

import "fmt"

// Grade is a letter grade on the standard 4.0 scale.
type Grade string

const (
	GradeAPlus  Grade = "A+"
	GradeA      Grade = "A"
	GradeAMinus Grade = "A-"
	GradeBPlus  Grade = "B+"
	GradeB      Grade = "B"
	GradeBMinus Grade = "B-"
	GradeCPlus  Grade = "C+"
	GradeC      Grade = "C"
	GradeCMinus Grade = "C-"
	GradeDPlus  Grade = "D+"
	GradeD      Grade = "D"
	GradeDMinus Grade = "D-"
	GradeF      Grade = "F"
)

var gradePoints = map[Grade]float64{
	GradeAPlus: 4.0, GradeA: 4.0, GradeAMinus: 3.7,
	GradeBPlus: 3.3, GradeB: 3.0, GradeBMinus: 2.7,
	GradeCPlus: 2.3, GradeC: 2.0, GradeCMinus: 1.7,
	GradeDPlus: 1.3, GradeD: 1.0, GradeDMinus: 0.7,
	GradeF: 0.0,
}

// Points returns the quality points for the grade on the 4.0 scale.
func (g Grade) Points() float64 {
	return gradePoints[g]
}

func (g Grade) Valid() bool {
	_, ok := gradePoints[g]
	return ok
}

// Meets reports whether g satisfies a minimum-grade policy. A grade meets
// the policy when its quality points are at least the minimum's.
func (g Grade) Meets(minimum Grade) bool {
	if !g.Valid() {
		return false
	}
	if minimum == "" {
		// No explicit policy: anything above failing passes.
		return g != GradeF
	}
	return g.Points() >= minimum.Points()
}

// ParseGrade normalizes and validates a letter grade string.
func ParseGrade(s string) (Grade, error) {
	g := Grade(s)
	if !g.Valid() {
		return "", fmt.Errorf("unknown grade %q", s)
	}
	return g, nil
}
