package formatter

import (
	"testing"
	"time"

	"github.com/rao305/boilerai-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testAuditReport() *domain.AuditReport {
	return &domain.AuditReport{
		ID:          "report-1",
		StudentID:   "alice",
		Program:     "cs",
		Track:       "systems",
		GeneratedAt: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		Groups: []domain.GroupAudit{
			{
				GroupKey:         "core",
				Category:         domain.CategoryCore,
				Status:           domain.RequirementPartiallySatisfied,
				CompletedCount:   1,
				RequiredCount:    3,
				CompletedCourses: []string{"CS18000"},
				RemainingOptions: []string{"CS18200", "CS25100"},
			},
			{
				GroupKey:       "math",
				Category:       domain.CategoryGeneral,
				Status:         domain.RequirementSatisfied,
				CompletedCount: 2,
				RequiredCount:  2,
			},
		},
	}
}

func TestFormatAudit_ShowsGroupsAndProgress(t *testing.T) {
	out := FormatAudit(testAuditReport())

	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "cs / systems")
	assert.Contains(t, out, "core")
	assert.Contains(t, out, "Partial")
	assert.Contains(t, out, "1/3")
	assert.Contains(t, out, "CS18200, CS25100")
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "of")
	assert.Contains(t, out, "groups satisfied")
}

func TestFormatAudit_PolicyExclusions(t *testing.T) {
	report := testAuditReport()
	report.Groups[0].Status = domain.RequirementUnmet
	report.Groups[0].CompletedCount = 0
	report.Groups[0].RemainingOptions = nil
	report.Groups[0].ExcludedByPolicy = []string{"CS35200"}

	out := FormatAudit(report)

	assert.Contains(t, out, "blocked: CS35200 counted elsewhere")
}

func TestFormatAudit_AllSatisfied(t *testing.T) {
	report := testAuditReport()
	report.Groups[0].Status = domain.RequirementSatisfied
	report.Groups[0].CompletedCount = 3
	report.Groups[0].RemainingOptions = nil

	out := FormatAudit(report)

	assert.Contains(t, out, "All requirement groups satisfied")
}
