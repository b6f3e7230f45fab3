package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BookQuiz struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BookId    uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null"`
	BookTitle string         `gorm:"type:varchar(255);not null"`
	Questions datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (BookQuiz) TableName() string {
	return "book_quizzes"
}
