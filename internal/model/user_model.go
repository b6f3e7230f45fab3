package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	Id                       uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username                 string                      `gorm:"type:varchar(255);not null"`
	Email                    string                      `gorm:"type:varchar(255);uniqueIndex;not null"`
	AiRecommendations        datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	LastRecommendationUpdate *time.Time
	CreatedAt                time.Time `gorm:"autoCreateTime"`
	UpdatedAt                time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
