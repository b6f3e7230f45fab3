package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookInteraction records an explicit user action on a book (favorite, bookmark).
// Existence implies positive affinity.
type BookInteraction struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	BookId    uuid.UUID
	Type      string
	CreatedAt time.Time
}

// ReadingProgress tracks how far a user got in one reading of a book.
// A completed record is a finished read; a user re-reading a book produces
// multiple completed records.
type ReadingProgress struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	BookId      uuid.UUID
	IsCompleted bool
	CurrentPage int
	TotalPages  int
	UpdatedAt   time.Time
}

// PageRatio returns progress as a 0..1 ratio, or 0 when page counts are unusable.
func (p *ReadingProgress) PageRatio() float64 {
	if p.TotalPages <= 0 || p.CurrentPage < 0 {
		return 0
	}
	return float64(p.CurrentPage) / float64(p.TotalPages)
}

type ReadingSession struct {
	Id                     uuid.UUID
	UserId                 uuid.UUID
	BookId                 uuid.UUID
	SessionDurationSeconds int
	StartedAt              time.Time
}

type QuizAttempt struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	BookId         uuid.UUID
	Score          int
	TotalQuestions int
	CompletedAt    time.Time
}

// ScoreRatio returns the score as a 0..1 ratio, or 0 when the attempt is unusable.
func (q *QuizAttempt) ScoreRatio() float64 {
	if q.TotalQuestions <= 0 || q.Score < 0 {
		return 0
	}
	return float64(q.Score) / float64(q.TotalQuestions)
}

// QuizAnalytics holds the trait summary derived from a personality quiz.
// Only the most recent record per user is consulted.
type QuizAnalytics struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	DominantTraits []string
	CompletedAt    time.Time
}
