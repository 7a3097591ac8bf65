package stats

// Clique is the span of average ranks of a run of algorithms that are
// mutually not significantly different.
type Clique struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// GroupCliques returns the spans of algorithms whose average ranks are not
// significantly different. avgRanks must already be sorted ascending.
//
// Each algorithm anchors at most one candidate span, reaching to the
// farthest algorithm whose average rank is strictly within (0, cd) of its
// own; candidates whose high endpoint does not strictly exceed the previous
// kept candidate's are dropped as redundant. This is the greedy interval
// chain used by the conventional critical-difference diagram, not an exact
// maximum-clique cover, and is kept deliberately so the brackets match the
// established convention.
func GroupCliques(avgRanks []float64, cd float64) []Clique {
	var candidates []Clique
	for i, low := range avgRanks {
		for j := len(avgRanks) - 1; j > i; j-- {
			gap := avgRanks[j] - low
			if gap > 0 && gap < cd {
				candidates = append(candidates, Clique{Low: low, High: avgRanks[j]})
				break
			}
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	kept := candidates[:1]
	for _, c := range candidates[1:] {
		if c.High > kept[len(kept)-1].High {
			kept = append(kept, c)
		}
	}
	return kept
}
