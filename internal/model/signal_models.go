package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BookInteraction struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	BookId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Type      string    `gorm:"type:varchar(32);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (BookInteraction) TableName() string {
	return "book_interactions"
}

type ReadingProgress struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	BookId      uuid.UUID `gorm:"type:uuid;not null;index"`
	IsCompleted bool      `gorm:"not null;default:false;index"`
	CurrentPage int       `gorm:"not null;default:0"`
	TotalPages  int       `gorm:"not null;default:0"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (ReadingProgress) TableName() string {
	return "reading_progress"
}

type ReadingSession struct {
	Id                     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId                 uuid.UUID `gorm:"type:uuid;not null;index"`
	BookId                 uuid.UUID `gorm:"type:uuid;not null;index"`
	SessionDurationSeconds int       `gorm:"not null;default:0"`
	StartedAt              time.Time `gorm:"autoCreateTime"`
}

func (ReadingSession) TableName() string {
	return "reading_sessions"
}

type QuizAttempt struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index"`
	BookId         uuid.UUID `gorm:"type:uuid;not null;index"`
	Score          int       `gorm:"not null;default:0"`
	TotalQuestions int       `gorm:"not null;default:0"`
	CompletedAt    time.Time `gorm:"autoCreateTime"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

type QuizAnalytics struct {
	Id             uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID                   `gorm:"type:uuid;not null;index"`
	DominantTraits datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CompletedAt    time.Time                   `gorm:"not null;index"`
}

func (QuizAnalytics) TableName() string {
	return "quiz_analytics"
}
