package unitofwork

import (
	"context"

	"readme-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	BookRepository() contract.BookRepository
	BookInteractionRepository() contract.BookInteractionRepository
	ReadingProgressRepository() contract.ReadingProgressRepository
	ReadingSessionRepository() contract.ReadingSessionRepository
	QuizAttemptRepository() contract.QuizAttemptRepository
	QuizAnalyticsRepository() contract.QuizAnalyticsRepository
	BookQuizRepository() contract.BookQuizRepository
}
