package recommend

import "readme-be/internal/entity"

// Candidate is the projection of a catalog book handed to the ranking oracle.
type Candidate struct {
	Id          string
	Title       string
	Author      string
	Traits      []string
	AgeRating   string
	Description string
}

// CandidatesFromBooks projects visible catalog records into ranking
// candidates. No ordering is imposed here; the oracle re-orders.
func CandidatesFromBooks(books []*entity.Book) []Candidate {
	candidates := make([]Candidate, 0, len(books))
	for _, b := range books {
		candidates = append(candidates, Candidate{
			Id:          b.Id.String(),
			Title:       b.Title,
			Author:      b.Author,
			Traits:      b.Traits,
			AgeRating:   b.AgeRating,
			Description: b.Description,
		})
	}
	return candidates
}
