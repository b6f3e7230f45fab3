package dto

import (
	"time"

	"github.com/google/uuid"
)

type TagBookResponse struct {
	BookId    uuid.UUID `json:"book_id"`
	Traits    []string  `json:"traits"`
	Tags      []string  `json:"tags"`
	AgeRating string    `json:"age_rating"`
	TaggedAt  time.Time `json:"tagged_at"`
}

// TaggingBatchResponse summarizes one run over the needs_tagging queue.
// Skipped counts books whose text could not be extracted; they stay queued.
type TaggingBatchResponse struct {
	Processed int `json:"processed"`
	Tagged    int `json:"tagged"`
	Skipped   int `json:"skipped"`
}
