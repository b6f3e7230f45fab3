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
	pktNats "readme-be/pkg/nats"
	"readme-be/pkg/recommend"
	"readme-be/pkg/signals"

	"github.com/google/uuid"
)

type IRecommendationService interface {
	RefreshUser(ctx context.Context, userId uuid.UUID) (*dto.RecommendationResponse, error)
	Show(ctx context.Context, userId uuid.UUID) (*dto.RecommendationResponse, error)
	RunBatch(ctx context.Context) (*dto.RecommendationBatchResponse, error)
}

type recommendationService struct {
	uowFactory     unitofwork.RepositoryFactory
	aggregator     *signals.Aggregator
	ranker         *recommend.Ranker
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewRecommendationService(
	uowFactory unitofwork.RepositoryFactory,
	aggregator *signals.Aggregator,
	ranker *recommend.Ranker,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IRecommendationService {
	return &recommendationService{
		uowFactory:     uowFactory,
		aggregator:     aggregator,
		ranker:         ranker,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

// RefreshUser runs the full pipeline for one user: aggregate signals, rank
// visible candidates, persist the validated list. An empty list is a valid
// outcome and is persisted like any other.
func (s *recommendationService) RefreshUser(ctx context.Context, userId uuid.UUID) (*dto.RecommendationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", userId)
	}

	profile := s.aggregator.Aggregate(ctx, userId)

	candidates, err := s.listCandidates(ctx, uow)
	if err != nil {
		return nil, err
	}

	bookIds := s.ranker.Rank(ctx, profile.TopTraits, profile.TopTags, candidates)

	updatedAt := time.Now()
	if err := uow.UserRepository().SaveRecommendations(ctx, userId, bookIds, updatedAt); err != nil {
		return nil, err
	}

	s.log.Info("recommendation", "recommendations refreshed", map[string]interface{}{
		"user_id":    userId.String(),
		"top_traits": profile.TopTraits,
		"count":      len(bookIds),
	})

	if s.eventPublisher != nil && len(bookIds) > 0 {
		evt := events.NewRecommendationsUpdated(userId.String(), bookIds)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("recommendation", "failed to publish recommendations event", map[string]interface{}{
				"user_id": userId.String(),
				"error":   err.Error(),
			})
		}
	}

	return &dto.RecommendationResponse{
		UserId:    userId,
		TopTraits: profile.TopTraits,
		BookIds:   bookIds,
		UpdatedAt: &updatedAt,
	}, nil
}

// Show returns the persisted list without recomputing it.
func (s *recommendationService) Show(ctx context.Context, userId uuid.UUID) (*dto.RecommendationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil // Not found
	}

	return &dto.RecommendationResponse{
		UserId:    user.Id,
		BookIds:   user.AiRecommendations,
		UpdatedAt: user.LastRecommendationUpdate,
	}, nil
}

// RunBatch refreshes every user with at least one signal record. Per-user
// failures are logged and skipped so the run always covers the whole set.
func (s *recommendationService) RunBatch(ctx context.Context) (*dto.RecommendationBatchResponse, error) {
	userIds, err := s.usersWithSignals(ctx)
	if err != nil {
		return nil, err
	}

	res := &dto.RecommendationBatchResponse{}
	for _, userId := range userIds {
		res.Processed++
		rec, err := s.RefreshUser(ctx, userId)
		if err != nil {
			s.log.Warn("recommendation", "user skipped in batch", map[string]interface{}{
				"user_id": userId.String(),
				"error":   err.Error(),
			})
			continue
		}
		if len(rec.BookIds) == 0 {
			res.Empty++
		} else {
			res.Updated++
		}
	}

	s.log.Info("recommendation", "batch finished", map[string]interface{}{
		"processed": res.Processed,
		"updated":   res.Updated,
		"empty":     res.Empty,
	})
	return res, nil
}

func (s *recommendationService) listCandidates(ctx context.Context, uow unitofwork.UnitOfWork) ([]recommend.Candidate, error) {
	books, err := uow.BookRepository().FindAll(ctx, specification.Visible{})
	if err != nil {
		return nil, err
	}
	return recommend.CandidatesFromBooks(books), nil
}

// usersWithSignals unions the distinct user ids across the signal collections
// that anchor a profile: interactions, reading progress and quiz analytics.
func (s *recommendationService) usersWithSignals(ctx context.Context) ([]uuid.UUID, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	seen := make(map[uuid.UUID]struct{})
	var ordered []uuid.UUID
	collect := func(ids []uuid.UUID) {
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ordered = append(ordered, id)
		}
	}

	ids, err := uow.BookInteractionRepository().DistinctUserIds(ctx)
	if err != nil {
		return nil, err
	}
	collect(ids)

	ids, err = uow.ReadingProgressRepository().DistinctUserIds(ctx)
	if err != nil {
		return nil, err
	}
	collect(ids)

	ids, err = uow.QuizAnalyticsRepository().DistinctUserIds(ctx)
	if err != nil {
		return nil, err
	}
	collect(ids)

	return ordered, nil
}
