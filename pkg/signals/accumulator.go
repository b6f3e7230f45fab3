package signals

import "sort"

// accumulator is a trait(or tag)→weight map that remembers first-insertion
// order. Ranking sorts by descending weight with ties broken by insertion
// order: the first-encountered value wins. That tie-break is stable across
// runs over the same input sequence, not globally deterministic.
type accumulator struct {
	weights map[string]float64
	order   []string
}

func newAccumulator() *accumulator {
	return &accumulator{
		weights: make(map[string]float64),
	}
}

func (a *accumulator) add(value string, weight float64) {
	if value == "" {
		return
	}
	if _, seen := a.weights[value]; !seen {
		a.order = append(a.order, value)
	}
	a.weights[value] += weight
}

func (a *accumulator) addAll(values []string, weight float64) {
	for _, v := range values {
		a.add(v, weight)
	}
}

// top returns the n highest-weighted values.
func (a *accumulator) top(n int) []string {
	ranked := make([]string, len(a.order))
	copy(ranked, a.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return a.weights[ranked[i]] > a.weights[ranked[j]]
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
