// Package suggest ranks declared option names against an unrecognized
// token for "did you mean" hints, grounded on
// runtime/planner/planner.go's findClosestMatch.
package suggest

import "github.com/lithammer/fuzzysearch/fuzzy"

// Best returns the single closest candidate to target, or "" if
// candidates is empty or none are close enough to rank.
func Best(target string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target
}
