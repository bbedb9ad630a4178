package domain

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
)

// seasonOrder positions seasons within an academic calendar year.
var seasonOrder = map[Season]int{
	SeasonSpring: 0,
	SeasonSummer: 1,
	SeasonFall:   2,
}

// ValidSeasons is the canonical set of accepted season strings.
var ValidSeasons = map[string]bool{
	"spring": true, "summer": true, "fall": true,
}

type Pace string

const (
	PaceAccelerated Pace = "accelerated"
	PaceNormal      Pace = "normal"
	PaceRelaxed     Pace = "relaxed"
)

// ValidPaces is the canonical set of accepted pace strings.
var ValidPaces = map[string]bool{
	"accelerated": true, "normal": true, "relaxed": true,
}

// DefaultCreditCap returns the per-term credit cap implied by a pace when
// the student has not set an explicit maximum.
func (p Pace) DefaultCreditCap() int {
	switch p {
	case PaceAccelerated:
		return 18
	case PaceRelaxed:
		return 12
	default:
		return 15
	}
}

type RequirementStatus string

const (
	RequirementSatisfied          RequirementStatus = "satisfied"
	RequirementPartiallySatisfied RequirementStatus = "partially_satisfied"
	RequirementUnmet              RequirementStatus = "unmet"
)

type EligibilityStatus string

const (
	EligibilityEligible         EligibilityStatus = "eligible"
	EligibilityNotEligible      EligibilityStatus = "not_eligible"
	EligibilityInProgress       EligibilityStatus = "in_progress"
	EligibilityAlreadySatisfied EligibilityStatus = "already_satisfied"
)

type RiskLevel string

const (
	RiskOnTrack  RiskLevel = "on_track"
	RiskAtRisk   RiskLevel = "at_risk"
	RiskCritical RiskLevel = "critical"
)

type RequirementCategory string

const (
	CategoryCore     RequirementCategory = "core"
	CategoryTrack    RequirementCategory = "track"
	CategoryElective RequirementCategory = "elective"
	CategoryGeneral  RequirementCategory = "general"
)

// ValidCategories is the canonical set of accepted requirement category strings.
var ValidCategories = map[string]bool{
	"core": true, "track": true, "elective": true, "general": true,
}

// CategoryWeight is the scorer's base urgency weight per category:
// core requirements outrank track requirements, which outrank electives.
func (c RequirementCategory) Weight() float64 {
	switch c {
	case CategoryCore:
		return 3.0
	case CategoryTrack:
		return 2.0
	case CategoryElective:
		return 1.0
	default:
		return 1.5
	}
}
