package contract

import (
	"context"

	"readme-be/internal/entity"
	"readme-be/internal/repository/specification"

	"github.com/google/uuid"
)

// Signal repositories are read-mostly: the aggregation pipeline only consumes
// them. Create methods exist for the app surface that records the signals and
// for seeding.

type BookInteractionRepository interface {
	Create(ctx context.Context, record *entity.BookInteraction) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BookInteraction, error)

	// DistinctUserIds lists every user with at least one interaction record.
	DistinctUserIds(ctx context.Context) ([]uuid.UUID, error)
}

type ReadingProgressRepository interface {
	Create(ctx context.Context, record *entity.ReadingProgress) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReadingProgress, error)
	DistinctUserIds(ctx context.Context) ([]uuid.UUID, error)
}

type ReadingSessionRepository interface {
	Create(ctx context.Context, record *entity.ReadingSession) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReadingSession, error)
}

type QuizAttemptRepository interface {
	Create(ctx context.Context, record *entity.QuizAttempt) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QuizAttempt, error)
}

type QuizAnalyticsRepository interface {
	Create(ctx context.Context, record *entity.QuizAnalytics) error

	// FindLatestByUserId returns the most recent record by completed_at, or nil.
	FindLatestByUserId(ctx context.Context, userId uuid.UUID) (*entity.QuizAnalytics, error)
	DistinctUserIds(ctx context.Context) ([]uuid.UUID, error)
}
