package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id                       uuid.UUID
	Username                 string
	Email                    string
	AiRecommendations        []string
	LastRecommendationUpdate *time.Time
	CreatedAt                time.Time
	UpdatedAt                *time.Time
}
