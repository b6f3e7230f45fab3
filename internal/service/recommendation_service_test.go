package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"readme-be/internal/constant"
	"readme-be/internal/entity"
	"readme-be/internal/pkg/logger"
	"readme-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func seedReader(store *memory.Store) *entity.User {
	user := &entity.User{
		Id:        uuid.New(),
		Username:  "reader",
		Email:     "reader@example.com",
		CreatedAt: time.Now(),
	}
	_ = store.UserRepository().Create(context.Background(), user)
	return user
}

func seedVisibleBook(store *memory.Store, traits []string) *entity.Book {
	book := &entity.Book{
		Id:        uuid.New(),
		Title:     "title",
		Author:    "author",
		Traits:    traits,
		AgeRating: "6+",
		IsVisible: true,
	}
	_ = store.BookRepository().Create(context.Background(), book)
	return book
}

func TestRefreshUserPersistsRankedList(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	user := seedReader(store)
	first := seedVisibleBook(store, []string{"curious"})
	second := seedVisibleBook(store, []string{"brave"})

	_ = store.BookInteractionRepository().Create(ctx, &entity.BookInteraction{
		UserId: user.Id, BookId: first.Id, Type: constant.InteractionTypeFavorite,
	})

	oracle := &scriptedOracle{
		response: fmt.Sprintf(`["%s","%s"]`, second.Id, first.Id),
	}
	svc := NewRecommendationService(store, newTestAggregator(store), newTestRanker(oracle), nil, logger.NopLogger{})

	res, err := svc.RefreshUser(ctx, user.Id)

	assert.NoError(t, err)
	assert.Equal(t, []string{second.Id.String(), first.Id.String()}, res.BookIds)
	assert.Contains(t, res.TopTraits, "curious")

	stored, _ := store.UserRepository().FindOne(ctx)
	assert.Equal(t, res.BookIds, stored.AiRecommendations)
	assert.NotNil(t, stored.LastRecommendationUpdate)
}

func TestRefreshUserFiltersOracleInventions(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	user := seedReader(store)
	book := seedVisibleBook(store, []string{"kind"})

	hidden := &entity.Book{Id: uuid.New(), Title: "hidden", Author: "a", IsVisible: false}
	_ = store.BookRepository().Create(ctx, hidden)

	// Oracle returns a fabricated id, the hidden book and a duplicate.
	oracle := &scriptedOracle{
		response: fmt.Sprintf(`["%s","not-a-real-id","%s","%s"]`, book.Id, hidden.Id, book.Id),
	}
	svc := NewRecommendationService(store, newTestAggregator(store), newTestRanker(oracle), nil, logger.NopLogger{})

	res, err := svc.RefreshUser(ctx, user.Id)

	assert.NoError(t, err)
	assert.Equal(t, []string{book.Id.String()}, res.BookIds)
}

func TestRefreshUserOracleFailureSavesEmptyList(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	user := seedReader(store)
	seedVisibleBook(store, []string{"kind"})

	oracle := &scriptedOracle{response: "no array here"}
	svc := NewRecommendationService(store, newTestAggregator(store), newTestRanker(oracle), nil, logger.NopLogger{})

	res, err := svc.RefreshUser(ctx, user.Id)

	assert.NoError(t, err, "an empty recommendation set is not an error")
	assert.Empty(t, res.BookIds)

	stored, _ := store.UserRepository().FindOne(ctx)
	assert.NotNil(t, stored.LastRecommendationUpdate, "empty results are still persisted")
}

func TestRefreshUserUnknownUser(t *testing.T) {
	store := memory.NewStore()
	svc := NewRecommendationService(store, newTestAggregator(store), newTestRanker(&scriptedOracle{}), nil, logger.NopLogger{})

	_, err := svc.RefreshUser(context.Background(), uuid.New())

	assert.Error(t, err)
}

func TestShowReturnsPersistedList(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	user := seedReader(store)
	updatedAt := time.Now()
	_ = store.UserRepository().SaveRecommendations(ctx, user.Id, []string{"b1", "b2"}, updatedAt)

	svc := NewRecommendationService(store, newTestAggregator(store), newTestRanker(&scriptedOracle{}), nil, logger.NopLogger{})

	res, err := svc.Show(ctx, user.Id)

	assert.NoError(t, err)
	assert.Equal(t, []string{"b1", "b2"}, res.BookIds)
}

func TestRunBatchCoversUsersWithAnySignal(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	book := seedVisibleBook(store, []string{"curious"})

	withInteraction := seedReader(store)
	withProgress := seedReader(store)
	withAnalytics := seedReader(store)
	seedReader(store) // no signals at all, not part of the batch

	_ = store.BookInteractionRepository().Create(ctx, &entity.BookInteraction{
		UserId: withInteraction.Id, BookId: book.Id, Type: constant.InteractionTypeFavorite,
	})
	_ = store.ReadingProgressRepository().Create(ctx, &entity.ReadingProgress{
		UserId: withProgress.Id, BookId: book.Id, IsCompleted: true, CurrentPage: 5, TotalPages: 5,
	})
	_ = store.QuizAnalyticsRepository().Create(ctx, &entity.QuizAnalytics{
		UserId: withAnalytics.Id, DominantTraits: []string{"calm"}, CompletedAt: time.Now(),
	})

	oracle := &scriptedOracle{response: fmt.Sprintf(`["%s"]`, book.Id)}
	svc := NewRecommendationService(store, newTestAggregator(store), newTestRanker(oracle), nil, logger.NopLogger{})

	res, err := svc.RunBatch(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 3, res.Processed)
	assert.Equal(t, 3, res.Updated)
	assert.Equal(t, 0, res.Empty)
}
