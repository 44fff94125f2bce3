package match

import "sort"

// DefaultThreshold is the similarity below which a candidate is not worth
// suggesting.
const DefaultThreshold = 0.6

// Candidate is a known name scored against the name being looked up.
type Candidate struct {
	Name  string
	Score float64
}

// Suggest ranks candidates by similarity to name, best first, keeping those
// scoring at least threshold. An exact match is not a suggestion and is left
// out. Ties keep the order of candidates.
func Suggest(name string, candidates []string, threshold float64) []Candidate {
	var out []Candidate

	for _, c := range candidates {
		if c == name {
			continue
		}

		if score := Similarity(name, c); score >= threshold {
			out = append(out, Candidate{Name: c, Score: score})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out
}

// Names returns the names of cs in order.
func Names(cs []Candidate) []string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name
	}

	return names
}
