package unitofwork

import (
	"context"
	"fmt"

	"readme-be/internal/repository/contract"
	"readme-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) BookRepository() contract.BookRepository {
	return implementation.NewBookRepository(u.getDB())
}

func (u *UnitOfWorkImpl) BookInteractionRepository() contract.BookInteractionRepository {
	return implementation.NewBookInteractionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ReadingProgressRepository() contract.ReadingProgressRepository {
	return implementation.NewReadingProgressRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ReadingSessionRepository() contract.ReadingSessionRepository {
	return implementation.NewReadingSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) QuizAttemptRepository() contract.QuizAttemptRepository {
	return implementation.NewQuizAttemptRepository(u.getDB())
}

func (u *UnitOfWorkImpl) QuizAnalyticsRepository() contract.QuizAnalyticsRepository {
	return implementation.NewQuizAnalyticsRepository(u.getDB())
}

func (u *UnitOfWorkImpl) BookQuizRepository() contract.BookQuizRepository {
	return implementation.NewBookQuizRepository(u.getDB())
}
