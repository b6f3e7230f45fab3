package vocab

// Vocabulary is an immutable, ordered set of permitted string values.
// Components receive the vocabularies they need by injection so tests can
// substitute smaller ones.
type Vocabulary struct {
	values []string
	index  map[string]struct{}
}

func New(values ...string) Vocabulary {
	idx := make(map[string]struct{}, len(values))
	ordered := make([]string, 0, len(values))
	for _, v := range values {
		if _, dup := idx[v]; dup {
			continue
		}
		idx[v] = struct{}{}
		ordered = append(ordered, v)
	}
	return Vocabulary{values: ordered, index: idx}
}

func (v Vocabulary) Contains(value string) bool {
	_, ok := v.index[value]
	return ok
}

// Filter returns the members of candidates that belong to the vocabulary,
// preserving candidate order and dropping duplicates (first occurrence wins).
func (v Vocabulary) Filter(candidates []string) []string {
	seen := make(map[string]struct{}, len(candidates))
	kept := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if !v.Contains(c) {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		kept = append(kept, c)
	}
	return kept
}

// Values returns a copy of the ordered member list.
func (v Vocabulary) Values() []string {
	out := make([]string, len(v.values))
	copy(out, v.values)
	return out
}

func (v Vocabulary) Len() int {
	return len(v.values)
}
