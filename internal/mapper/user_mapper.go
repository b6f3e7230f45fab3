package mapper

import (
	"time"

	"readme-be/internal/entity"
	"readme-be/internal/model"

	"gorm.io/datatypes"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	var updatedAt *time.Time
	if !u.UpdatedAt.IsZero() {
		t := u.UpdatedAt
		updatedAt = &t
	}

	return &entity.User{
		Id:                       u.Id,
		Username:                 u.Username,
		Email:                    u.Email,
		AiRecommendations:        []string(u.AiRecommendations),
		LastRecommendationUpdate: u.LastRecommendationUpdate,
		CreatedAt:                u.CreatedAt,
		UpdatedAt:                updatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:                       u.Id,
		Username:                 u.Username,
		Email:                    u.Email,
		AiRecommendations:        datatypes.NewJSONSlice(u.AiRecommendations),
		LastRecommendationUpdate: u.LastRecommendationUpdate,
		CreatedAt:                u.CreatedAt,
	}
}

func (m *UserMapper) ToEntities(models []*model.User) []*entity.User {
	entities := make([]*entity.User, 0, len(models))
	for _, u := range models {
		entities = append(entities, m.ToEntity(u))
	}
	return entities
}
