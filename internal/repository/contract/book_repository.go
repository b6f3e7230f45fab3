package contract

import (
	"context"
	"time"

	"readme-be/internal/entity"
	"readme-be/internal/repository/specification"

	"github.com/google/uuid"
)

type BookRepository interface {
	Create(ctx context.Context, book *entity.Book) error
	Update(ctx context.Context, book *entity.Book) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Book, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Book, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// UpdateTagging persists a validated tagging result and clears the
	// needs_tagging flag in one write. Last writer wins.
	UpdateTagging(ctx context.Context, id uuid.UUID, traits, tags []string, ageRating string, taggedAt time.Time) error

	// FlagForTagging re-enters the book into the tagging queue, clearing any
	// prior traits/tags when clearExisting is set.
	FlagForTagging(ctx context.Context, id uuid.UUID, clearExisting bool) error
}
