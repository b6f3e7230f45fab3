package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByUserID struct {
	UserID uuid.UUID
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ByBookID struct {
	BookID uuid.UUID
}

func (s ByBookID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("book_id = ?", s.BookID)
}

// InteractionTypes filters interaction records by action type.
type InteractionTypes struct {
	Types []string
}

func (s InteractionTypes) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type IN ?", s.Types)
}

// Completed filters reading-progress records by completion state.
type Completed struct {
	Value bool
}

func (s Completed) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_completed = ?", s.Value)
}
