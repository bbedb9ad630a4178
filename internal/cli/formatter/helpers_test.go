package formatter

import (
	"testing"

	"github.com/rao305/boilerai-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestExpressionLabel(t *testing.T) {
	cases := []struct {
		name string
		expr *domain.Expression
		want string
	}{
		{"nil", nil, "--"},
		{"leaf", domain.Leaf("CS18000"), "CS18000"},
		{
			"all_of",
			domain.AllOf(domain.Leaf("CS18200"), domain.Leaf("MA16100")),
			"CS18200 and MA16100",
		},
		{
			"one_of nested in all_of",
			domain.AllOf(
				domain.OneOf(domain.Leaf("CS17600"), domain.Leaf("CS18000")),
				domain.Leaf("MA16100"),
			),
			"(CS17600 or CS18000) and MA16100",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExpressionLabel(tc.expr))
		})
	}
}

func TestSeasonsLabel(t *testing.T) {
	assert.Equal(t, "--", SeasonsLabel(nil))
	assert.Equal(t, "Fall, Spring", SeasonsLabel([]domain.Season{domain.SeasonFall, domain.SeasonSpring}))
}

func TestRequirementPill(t *testing.T) {
	assert.Contains(t, RequirementPill(domain.RequirementSatisfied), "Satisfied")
	assert.Contains(t, RequirementPill(domain.RequirementPartiallySatisfied), "Partial")
	assert.Contains(t, RequirementPill(domain.RequirementUnmet), "Unmet")
}

func TestEligibilityPill(t *testing.T) {
	assert.Contains(t, EligibilityPill(domain.EligibilityEligible), "Eligible")
	assert.Contains(t, EligibilityPill(domain.EligibilityNotEligible), "Not eligible")
	assert.Contains(t, EligibilityPill(domain.EligibilityAlreadySatisfied), "Already satisfied")
	assert.Contains(t, EligibilityPill(domain.EligibilityInProgress), "In progress")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"COURSE", "CREDITS"},
		[][]string{
			{"CS18000", "4 cr"},
			{"MA16100", "5 cr"},
		},
	)

	assert.Contains(t, out, "COURSE")
	assert.Contains(t, out, "CS18000")
	assert.Contains(t, out, "MA16100")
	assert.Contains(t, out, "─")
}
