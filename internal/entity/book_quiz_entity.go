package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookQuiz is one AI-generated comprehension quiz, shared by every reader of the book.
type BookQuiz struct {
	Id        uuid.UUID
	BookId    uuid.UUID
	BookTitle string
	Questions []QuizQuestion
	CreatedAt time.Time
}

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}
