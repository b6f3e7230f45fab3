package mapper

import (
	"time"

	"readme-be/internal/entity"
	"readme-be/internal/model"

	"gorm.io/datatypes"
)

type BookMapper struct{}

func NewBookMapper() *BookMapper {
	return &BookMapper{}
}

func (m *BookMapper) ToEntity(b *model.Book) *entity.Book {
	if b == nil {
		return nil
	}

	var updatedAt *time.Time
	if !b.UpdatedAt.IsZero() {
		t := b.UpdatedAt
		updatedAt = &t
	}

	return &entity.Book{
		Id:           b.Id,
		Title:        b.Title,
		Author:       b.Author,
		Description:  b.Description,
		PdfUrl:       b.PdfUrl,
		Traits:       []string(b.Traits),
		Tags:         []string(b.Tags),
		AgeRating:    b.AgeRating,
		IsVisible:    b.IsVisible,
		NeedsTagging: b.NeedsTagging,
		TaggedAt:     b.TaggedAt,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *BookMapper) ToModel(b *entity.Book) *model.Book {
	if b == nil {
		return nil
	}
	return &model.Book{
		Id:           b.Id,
		Title:        b.Title,
		Author:       b.Author,
		Description:  b.Description,
		PdfUrl:       b.PdfUrl,
		Traits:       datatypes.NewJSONSlice(b.Traits),
		Tags:         datatypes.NewJSONSlice(b.Tags),
		AgeRating:    b.AgeRating,
		IsVisible:    b.IsVisible,
		NeedsTagging: b.NeedsTagging,
		TaggedAt:     b.TaggedAt,
		CreatedAt:    b.CreatedAt,
	}
}

func (m *BookMapper) ToEntities(models []*model.Book) []*entity.Book {
	entities := make([]*entity.Book, 0, len(models))
	for _, b := range models {
		entities = append(entities, m.ToEntity(b))
	}
	return entities
}
