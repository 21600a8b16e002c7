package outline

import "sort"

// defaultH1 is the H1 cutoff when no candidate sizes exist at all.
const defaultH1 = 16.0

// thresholds is a per-document table mapping heading levels to minimum
// qualifying font sizes. It is derived from one document's distinct
// candidate sizes and never shared across documents.
type thresholds struct {
	h1, h2, h3 float64
}

// newThresholds derives the level cutoffs from the candidate sizes with
// the title size already excluded. With fewer than three distinct sizes
// the missing cutoffs are synthesized from fixed ratios so every level
// stays reachable with strictly decreasing bounds.
func newThresholds(sizes []float64) thresholds {
	unique := distinctDescending(sizes)
	if len(unique) == 0 {
		return thresholds{h1: defaultH1, h2: defaultH1 * 0.85, h3: defaultH1 * 0.7}
	}

	t := thresholds{h1: unique[0]}
	if len(unique) > 1 {
		t.h2 = unique[1]
	} else {
		t.h2 = unique[0] * 0.85
	}
	if len(unique) > 2 {
		t.h3 = unique[2]
	} else {
		t.h3 = unique[len(unique)-1] * 0.7
	}
	return t
}

// levelFor classifies a candidate size against the table. Sizes below
// every cutoff are unclassified and return "": the candidate is dropped,
// not an error.
func (t thresholds) levelFor(size float64) string {
	switch {
	case size >= t.h1:
		return "H1"
	case size >= t.h2:
		return "H2"
	case size >= t.h3:
		return "H3"
	}
	return ""
}

// distinctDescending returns the distinct values of sizes, largest first.
func distinctDescending(sizes []float64) []float64 {
	seen := make(map[float64]bool, len(sizes))
	var out []float64
	for _, s := range sizes {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(out)))
	return out
}
