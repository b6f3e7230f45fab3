package contract

import (
	"context"
	"time"

	"readme-be/internal/entity"
	"readme-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)

	// SaveRecommendations merges the ranked book-id list and its timestamp onto
	// the user record. Idempotent, last writer wins.
	SaveRecommendations(ctx context.Context, id uuid.UUID, bookIds []string, updatedAt time.Time) error
}
