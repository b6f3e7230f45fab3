package mapper

import (
	"encoding/json"

	"readme-be/internal/entity"
	"readme-be/internal/model"

	"gorm.io/datatypes"
)

type BookQuizMapper struct{}

func NewBookQuizMapper() *BookQuizMapper {
	return &BookQuizMapper{}
}

func (m *BookQuizMapper) ToEntity(q *model.BookQuiz) (*entity.BookQuiz, error) {
	if q == nil {
		return nil, nil
	}

	var questions []entity.QuizQuestion
	if len(q.Questions) > 0 {
		if err := json.Unmarshal(q.Questions, &questions); err != nil {
			return nil, err
		}
	}

	return &entity.BookQuiz{
		Id:        q.Id,
		BookId:    q.BookId,
		BookTitle: q.BookTitle,
		Questions: questions,
		CreatedAt: q.CreatedAt,
	}, nil
}

func (m *BookQuizMapper) ToModel(q *entity.BookQuiz) (*model.BookQuiz, error) {
	if q == nil {
		return nil, nil
	}

	raw, err := json.Marshal(q.Questions)
	if err != nil {
		return nil, err
	}

	return &model.BookQuiz{
		Id:        q.Id,
		BookId:    q.BookId,
		BookTitle: q.BookTitle,
		Questions: datatypes.JSON(raw),
		CreatedAt: q.CreatedAt,
	}, nil
}
