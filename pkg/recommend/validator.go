package recommend

// ValidateIds filters oracle output down to ids that are actual candidates of
// this run. It preserves the oracle's relative order, never re-sorting, and
// drops duplicates (first occurrence wins). A short or empty result is valid.
func ValidateIds(ids []string, candidates []Candidate) []string {
	legal := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		legal[c.Id] = struct{}{}
	}

	seen := make(map[string]struct{}, len(ids))
	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := legal[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		kept = append(kept, id)
	}
	return kept
}
