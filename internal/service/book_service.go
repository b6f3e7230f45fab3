package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"readme-be/internal/dto"
	"readme-be/internal/entity"
	"readme-be/internal/repository/specification"
	"readme-be/internal/repository/unitofwork"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type IBookService interface {
	Create(ctx context.Context, req *dto.CreateBookRequest) (*dto.CreateBookResponse, error)
	Update(ctx context.Context, req *dto.UpdateBookRequest) (*dto.UpdateBookResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowBookResponse, error)
	List(ctx context.Context, visibleOnly bool) ([]*dto.ShowBookResponse, error)
}

type bookService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	validate         *validator.Validate
}

func NewBookService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) IBookService {
	return &bookService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		validate:         validator.New(),
	}
}

func (s *bookService) Create(ctx context.Context, req *dto.CreateBookRequest) (*dto.CreateBookResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	book := entity.Book{
		Id:          uuid.New(),
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		PdfUrl:      req.PdfUrl,
		AgeRating:   req.AgeRating,
		IsVisible:   req.IsVisible,
		CreatedAt:   time.Now(),
	}
	// New books carry no traits or tags yet; the consumer flips the flag once
	// the tagging inputs are all present.
	if err := uow.BookRepository().Create(ctx, &book); err != nil {
		return nil, err
	}

	if err := s.publishChanged(ctx, book.Id, false); err != nil {
		return nil, err
	}

	return &dto.CreateBookResponse{
		Id:           book.Id,
		NeedsTagging: book.NeedsTagging,
	}, nil
}

func (s *bookService) Update(ctx context.Context, req *dto.UpdateBookRequest) (*dto.UpdateBookResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	book, err := uow.BookRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, fmt.Errorf("book %s not found", req.Id)
	}

	pdfChanged := req.PdfUrl != "" && req.PdfUrl != book.PdfUrl

	now := time.Now()
	book.Title = req.Title
	book.Author = req.Author
	book.Description = req.Description
	book.AgeRating = req.AgeRating
	book.IsVisible = req.IsVisible
	book.UpdatedAt = &now
	if req.PdfUrl != "" {
		book.PdfUrl = req.PdfUrl
	}

	if err := uow.BookRepository().Update(ctx, book); err != nil {
		return nil, err
	}

	if err := s.publishChanged(ctx, book.Id, pdfChanged); err != nil {
		return nil, err
	}

	return &dto.UpdateBookResponse{
		Id:           book.Id,
		NeedsTagging: book.NeedsTagging,
	}, nil
}

func (s *bookService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowBookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	book, err := uow.BookRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, nil // Not found
	}
	return bookToResponse(book), nil
}

func (s *bookService) List(ctx context.Context, visibleOnly bool) ([]*dto.ShowBookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var specs []specification.Specification
	if visibleOnly {
		specs = append(specs, specification.Visible{})
	}
	books, err := uow.BookRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ShowBookResponse, 0, len(books))
	for _, book := range books {
		res = append(res, bookToResponse(book))
	}
	return res, nil
}

func (s *bookService) publishChanged(ctx context.Context, bookId uuid.UUID, pdfChanged bool) error {
	payload, err := json.Marshal(dto.BookChangedMessage{
		BookId:        bookId,
		PdfUrlChanged: pdfChanged,
	})
	if err != nil {
		return err
	}
	return s.publisherService.Publish(ctx, payload)
}

func bookToResponse(book *entity.Book) *dto.ShowBookResponse {
	return &dto.ShowBookResponse{
		Id:           book.Id,
		Title:        book.Title,
		Author:       book.Author,
		Description:  book.Description,
		PdfUrl:       book.PdfUrl,
		Traits:       book.Traits,
		Tags:         book.Tags,
		AgeRating:    book.AgeRating,
		IsVisible:    book.IsVisible,
		NeedsTagging: book.NeedsTagging,
		TaggedAt:     book.TaggedAt,
		CreatedAt:    book.CreatedAt,
	}
}
