package implementation

import (
	"context"
	"errors"

	"readme-be/internal/entity"
	"readme-be/internal/mapper"
	"readme-be/internal/model"
	"readme-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookQuizRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BookQuizMapper
}

func NewBookQuizRepository(db *gorm.DB) contract.BookQuizRepository {
	return &BookQuizRepositoryImpl{db: db, mapper: mapper.NewBookQuizMapper()}
}

func (r *BookQuizRepositoryImpl) Create(ctx context.Context, quiz *entity.BookQuiz) error {
	m, err := r.mapper.ToModel(quiz)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	saved, err := r.mapper.ToEntity(m)
	if err != nil {
		return err
	}
	*quiz = *saved
	return nil
}

func (r *BookQuizRepositoryImpl) FindByBookId(ctx context.Context, bookId uuid.UUID) (*entity.BookQuiz, error) {
	var m model.BookQuiz
	if err := r.db.WithContext(ctx).Where("book_id = ?", bookId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}
