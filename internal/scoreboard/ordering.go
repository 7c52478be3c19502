package scoreboard

import (
	"cmp"
	"slices"
)

// compareMatches orders by total score desc, then most recently started first.
// Seq breaks ties between matches started at the same instant.
func compareMatches(a, b Match) int {
	if c := cmp.Compare(b.TotalScore(), a.TotalScore()); c != 0 {
		return c
	}
	if c := b.StartedAt.Compare(a.StartedAt); c != 0 {
		return c
	}
	return cmp.Compare(b.Seq, a.Seq)
}

func sortMatches(ms []Match) {
	slices.SortFunc(ms, compareMatches)
}
