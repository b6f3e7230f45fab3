package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Book struct {
	Id           uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title        string                      `gorm:"type:varchar(255);not null"`
	Author       string                      `gorm:"type:varchar(255);not null"`
	Description  string                      `gorm:"type:text"`
	PdfUrl       string                      `gorm:"type:text"`
	Traits       datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Tags         datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	AgeRating    string                      `gorm:"type:varchar(8)"`
	IsVisible    bool                        `gorm:"not null;default:false;index"`
	NeedsTagging bool                        `gorm:"not null;default:false;index"`
	TaggedAt     *time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Book) TableName() string {
	return "books"
}
