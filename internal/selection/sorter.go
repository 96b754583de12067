package selection

import "sort"

// canonicalSort orders candidates by the deterministic composite key:
// 1. Score: higher first
// 2. Duration: shorter first (quick wins on score ties)
// 3. Task ID: lexical ascending
// The key is a total order, so repeated calls with identical input always
// produce identical output.
func canonicalSort(candidates []scored) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]

		if a.Score != b.Score {
			return a.Score > b.Score
		}

		if a.Duration != b.Duration {
			return a.Duration < b.Duration
		}

		return a.TaskID < b.TaskID
	})
}
