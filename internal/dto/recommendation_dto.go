package dto

import (
	"time"

	"github.com/google/uuid"
)

type RecommendationResponse struct {
	UserId    uuid.UUID  `json:"user_id"`
	TopTraits []string   `json:"top_traits"`
	BookIds   []string   `json:"book_ids"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// RecommendationBatchResponse summarizes one run over every user with signals.
type RecommendationBatchResponse struct {
	Processed int `json:"processed"`
	Updated   int `json:"updated"`
	Empty     int `json:"empty"`
}
