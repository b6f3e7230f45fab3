package service

import (
	"context"
	"fmt"
	"time"

	"readme-be/internal/dto"
	"readme-be/internal/pkg/logger"
	"readme-be/internal/repository/specification"
	"readme-be/internal/repository/unitofwork"
	"readme-be/pkg/events"
	"readme-be/pkg/extract"
	pktNats "readme-be/pkg/nats"
	"readme-be/pkg/tagging"

	"github.com/google/uuid"
)

type ITaggingService interface {
	TagBook(ctx context.Context, bookId uuid.UUID) (*dto.TagBookResponse, error)
	RunBatch(ctx context.Context) (*dto.TaggingBatchResponse, error)
}

type taggingService struct {
	uowFactory     unitofwork.RepositoryFactory
	classifier     *tagging.Classifier
	extractor      extract.Extractor
	eventPublisher *pktNats.Publisher
	batchSize      int
	log            logger.ILogger
}

func NewTaggingService(
	uowFactory unitofwork.RepositoryFactory,
	classifier *tagging.Classifier,
	extractor extract.Extractor,
	eventPublisher *pktNats.Publisher,
	batchSize int,
	log logger.ILogger,
) ITaggingService {
	return &taggingService{
		uowFactory:     uowFactory,
		classifier:     classifier,
		extractor:      extractor,
		eventPublisher: eventPublisher,
		batchSize:      batchSize,
		log:            log,
	}
}

// TagBook classifies one book and persists the validated triple. The only
// errors that escape are boundary ones: unknown book, missing tagging inputs,
// or a text-extraction failure. In all three the book keeps its queue flag.
func (s *taggingService) TagBook(ctx context.Context, bookId uuid.UUID) (*dto.TagBookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	book, err := uow.BookRepository().FindOne(ctx, specification.ByID{ID: bookId})
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, fmt.Errorf("book %s not found", bookId)
	}
	if !book.HasTaggingInputs() {
		return nil, fmt.Errorf("book %s is missing title, author or pdf url", bookId)
	}

	text, err := s.extractor.ExtractText(ctx, book.PdfUrl)
	if err != nil {
		return nil, fmt.Errorf("extract text for book %s: %w", bookId, err)
	}

	// Classification never fails past this point; a broken oracle degrades
	// to vocabulary-valid defaults.
	result := s.classifier.Classify(ctx, book.Title, book.Author, book.Description, text)

	taggedAt := time.Now()
	if err := uow.BookRepository().UpdateTagging(ctx, book.Id, result.Traits, result.Tags, result.AgeRating, taggedAt); err != nil {
		return nil, err
	}

	s.log.Info("tagging", "book tagged", map[string]interface{}{
		"book_id":    book.Id.String(),
		"traits":     result.Traits,
		"tags":       result.Tags,
		"age_rating": result.AgeRating,
	})

	if s.eventPublisher != nil {
		evt := events.NewBookTagged(book.Id.String(), result.Traits, result.Tags, result.AgeRating)
		// Auxiliary; a bus failure must not undo a successful tagging.
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("tagging", "failed to publish book tagged event", map[string]interface{}{
				"book_id": book.Id.String(),
				"error":   err.Error(),
			})
		}
	}

	return &dto.TagBookResponse{
		BookId:    book.Id,
		Traits:    result.Traits,
		Tags:      result.Tags,
		AgeRating: result.AgeRating,
		TaggedAt:  taggedAt,
	}, nil
}

// RunBatch drains the needs_tagging queue up to the configured batch size.
// Per-book failures are counted and skipped, never aborting the run.
func (s *taggingService) RunBatch(ctx context.Context) (*dto.TaggingBatchResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.NeedsTagging{}}
	if s.batchSize > 0 {
		specs = append(specs, specification.Limit{N: s.batchSize})
	}
	queue, err := uow.BookRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := &dto.TaggingBatchResponse{}
	for _, book := range queue {
		res.Processed++
		if _, err := s.TagBook(ctx, book.Id); err != nil {
			res.Skipped++
			s.log.Warn("tagging", "book skipped, staying in queue", map[string]interface{}{
				"book_id": book.Id.String(),
				"error":   err.Error(),
			})
			continue
		}
		res.Tagged++
	}

	s.log.Info("tagging", "batch finished", map[string]interface{}{
		"processed": res.Processed,
		"tagged":    res.Tagged,
		"skipped":   res.Skipped,
	})
	return res, nil
}
