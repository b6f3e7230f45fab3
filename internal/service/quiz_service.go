package service

import (
	"context"
	"fmt"
	"time"

	"readme-be/internal/dto"
	"readme-be/internal/entity"
	"readme-be/internal/pkg/logger"
	"readme-be/internal/repository/specification"
	"readme-be/internal/repository/unitofwork"
	"readme-be/pkg/extract"
	"readme-be/pkg/quiz"

	"github.com/google/uuid"
)

type IQuizService interface {
	GetOrGenerate(ctx context.Context, bookId uuid.UUID) (*dto.QuizResponse, error)
}

// quizService serves one shared comprehension quiz per book: generated once,
// cached in the store, reused for every reader afterwards.
type quizService struct {
	uowFactory unitofwork.RepositoryFactory
	generator  *quiz.Generator
	extractor  extract.Extractor
	log        logger.ILogger
}

func NewQuizService(
	uowFactory unitofwork.RepositoryFactory,
	generator *quiz.Generator,
	extractor extract.Extractor,
	log logger.ILogger,
) IQuizService {
	return &quizService{
		uowFactory: uowFactory,
		generator:  generator,
		extractor:  extractor,
		log:        log,
	}
}

func (s *quizService) GetOrGenerate(ctx context.Context, bookId uuid.UUID) (*dto.QuizResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.BookQuizRepository().FindByBookId(ctx, bookId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &dto.QuizResponse{
			BookId:    existing.BookId,
			BookTitle: existing.BookTitle,
			Questions: existing.Questions,
			Cached:    true,
			CreatedAt: existing.CreatedAt,
		}, nil
	}

	book, err := uow.BookRepository().FindOne(ctx, specification.ByID{ID: bookId})
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, fmt.Errorf("book %s not found", bookId)
	}

	text, err := s.extractor.ExtractText(ctx, book.PdfUrl)
	if err != nil {
		return nil, fmt.Errorf("extract text for quiz: %w", err)
	}

	// Unlike tagging there is no degraded quiz worth saving, so generation
	// errors surface to the caller.
	questions, err := s.generator.Generate(ctx, book.Title, book.Author, text)
	if err != nil {
		return nil, err
	}

	bookQuiz := entity.BookQuiz{
		Id:        uuid.New(),
		BookId:    book.Id,
		BookTitle: book.Title,
		Questions: questions,
		CreatedAt: time.Now(),
	}
	if err := uow.BookQuizRepository().Create(ctx, &bookQuiz); err != nil {
		return nil, err
	}

	s.log.Info("quiz", "quiz generated", map[string]interface{}{
		"book_id":   book.Id.String(),
		"questions": len(questions),
	})

	return &dto.QuizResponse{
		BookId:    bookQuiz.BookId,
		BookTitle: bookQuiz.BookTitle,
		Questions: bookQuiz.Questions,
		Cached:    false,
		CreatedAt: bookQuiz.CreatedAt,
	}, nil
}
