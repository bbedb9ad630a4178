package planner

import "github.com/rao305/boilerai-sub000/internal/domain"

type ReasonCode string

const (
	ReasonCriticalPath      ReasonCode = "CRITICAL_PATH"
	ReasonBlocksCourses     ReasonCode = "BLOCKS_COURSES"
	ReasonLighterLoad       ReasonCode = "LIGHTER_LOAD"
	ReasonRequirementWeight ReasonCode = "REQUIREMENT_WEIGHT"
	ReasonLowPassRate       ReasonCode = "LOW_PASS_RATE"
)

// Reason explains one scoring factor's contribution, so plans stay
// auditable without free-text generation.
type Reason struct {
	Code        ReasonCode
	Message     string
	WeightDelta float64
}

// Weights tune the priority scorer. They are configuration, loaded from
// the environment (internal/config), so institutions can retune ranking
// without code changes.
type Weights struct {
	CriticalPath   float64 // flat bonus for courses on the longest remaining chain
	BlockingFactor float64 // per course directly or transitively blocked
	Difficulty     float64 // per point of (10 - difficulty)
	Requirement    float64 // per category weight unit (core > track > elective)
	SuccessRate    float64 // per point of the pass-rate urgency factor
}

func DefaultWeights() Weights {
	return Weights{
		CriticalPath:   25.0,
		BlockingFactor: 6.0,
		Difficulty:     1.0,
		Requirement:    4.0,
		SuccessRate:    1.5,
	}
}

// ScoringInput is everything the scorer sees about one needed course.
type ScoringInput struct {
	CourseID       string
	Credits        int
	Difficulty     int // 1..10
	OnCriticalPath bool
	BlockedCount   int // needed courses this one transitively blocks
	Category       domain.RequirementCategory
	SuccessRate    *float64 // historical pass rate in [0,1], nil when unknown
	Weights        Weights
}

type ScoredCourse struct {
	Input   ScoringInput
	Score   float64
	Reasons []Reason
}

// ScoreCourse computes a course's urgency. Higher is more urgent. Every
// non-zero factor attaches a reason.
func ScoreCourse(input ScoringInput) ScoredCourse {
	result := ScoredCourse{Input: input}

	factors := []func(ScoringInput) (float64, *Reason){
		scoreCriticalPath,
		scoreBlockingFactor,
		scoreDifficulty,
		scoreRequirementWeight,
		scoreSuccessRate,
	}
	for _, f := range factors {
		delta, reason := f(input)
		result.Score += delta
		if reason != nil {
			result.Reasons = append(result.Reasons, *reason)
		}
	}
	return result
}

func scoreCriticalPath(input ScoringInput) (float64, *Reason) {
	if !input.OnCriticalPath {
		return 0, nil
	}
	delta := input.Weights.CriticalPath
	return delta, &Reason{
		Code:        ReasonCriticalPath,
		Message:     "On the longest remaining prerequisite chain",
		WeightDelta: delta,
	}
}

func scoreBlockingFactor(input ScoringInput) (float64, *Reason) {
	if input.BlockedCount <= 0 {
		return 0, nil
	}
	delta := float64(input.BlockedCount) * input.Weights.BlockingFactor
	return delta, &Reason{
		Code:        ReasonBlocksCourses,
		Message:     "Unlocks other needed courses",
		WeightDelta: delta,
	}
}

// Easier-but-needed courses surface earlier when otherwise tied.
func scoreDifficulty(input ScoringInput) (float64, *Reason) {
	difficulty := clampInt(input.Difficulty, 1, 10)
	delta := float64(10-difficulty) * input.Weights.Difficulty
	if delta == 0 {
		return 0, nil
	}
	return delta, &Reason{
		Code:        ReasonLighterLoad,
		Message:     "Lighter course, good to clear early",
		WeightDelta: delta,
	}
}

func scoreRequirementWeight(input ScoringInput) (float64, *Reason) {
	delta := input.Category.Weight() * input.Weights.Requirement
	if delta == 0 {
		return 0, nil
	}
	return delta, &Reason{
		Code:        ReasonRequirementWeight,
		Message:     "Satisfies a " + string(input.Category) + " requirement",
		WeightDelta: delta,
	}
}

// scoreSuccessRate surfaces historically hard-to-pass courses earlier, so
// a failure leaves room to retake. Neutral (factor 5 of 10) when no
// signal is available.
func scoreSuccessRate(input ScoringInput) (float64, *Reason) {
	factor := 5.0
	var reason *Reason
	if input.SuccessRate != nil {
		rate := clampFloat(*input.SuccessRate, 0, 1)
		factor = (1 - rate) * 10
		if rate < 0.7 {
			delta := factor * input.Weights.SuccessRate
			reason = &Reason{
				Code:        ReasonLowPassRate,
				Message:     "Historically low pass rate, schedule early",
				WeightDelta: delta,
			}
		}
	}
	return factor * input.Weights.SuccessRate, reason
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
