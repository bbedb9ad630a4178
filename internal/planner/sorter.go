package planner

import "sort"

// CanonicalSort orders scored courses deterministically:
// 1. Score: higher first
// 2. Course id: lexical ascending
// Identical inputs always produce identical plans, so test expectations
// and cached results stay reproducible.
func CanonicalSort(courses []ScoredCourse) {
	sort.SliceStable(courses, func(i, j int) bool {
		a, b := courses[i], courses[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Input.CourseID < b.Input.CourseID
	})
}
