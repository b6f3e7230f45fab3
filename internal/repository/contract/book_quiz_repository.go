package contract

import (
	"context"

	"readme-be/internal/entity"

	"github.com/google/uuid"
)

type BookQuizRepository interface {
	Create(ctx context.Context, quiz *entity.BookQuiz) error
	FindByBookId(ctx context.Context, bookId uuid.UUID) (*entity.BookQuiz, error)
}
