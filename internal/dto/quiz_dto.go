package dto

import (
	"time"

	"readme-be/internal/entity"

	"github.com/google/uuid"
)

type QuizResponse struct {
	BookId    uuid.UUID             `json:"book_id"`
	BookTitle string                `json:"book_title"`
	Questions []entity.QuizQuestion `json:"questions"`
	Cached    bool                  `json:"cached"`
	CreatedAt time.Time             `json:"created_at"`
}
