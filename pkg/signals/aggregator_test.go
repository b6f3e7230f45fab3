package signals

import (
	"context"
	"testing"
	"time"

	"readme-be/internal/constant"
	"readme-be/internal/entity"
	"readme-be/internal/pkg/logger"
	"readme-be/internal/repository/memory"

	"github.com/google/uuid"
)

func newTestAggregator(store *memory.Store) *Aggregator {
	return NewAggregator(
		store.BookInteractionRepository(),
		store.ReadingProgressRepository(),
		store.ReadingSessionRepository(),
		store.QuizAttemptRepository(),
		store.QuizAnalyticsRepository(),
		store.BookRepository(),
		memory.NewBookMetadataCache(),
		DefaultWeights(),
		logger.NopLogger{},
	)
}

func seedBook(store *memory.Store, traits, tags []string) uuid.UUID {
	book := &entity.Book{
		Id:     uuid.New(),
		Title:  "t",
		Author: "a",
		Traits: traits,
		Tags:   tags,
	}
	_ = store.BookRepository().Create(context.Background(), book)
	return book.Id
}

func TestAggregateEmptySignals(t *testing.T) {
	store := memory.NewStore()
	agg := newTestAggregator(store)

	profile := agg.Aggregate(context.Background(), uuid.New())

	if !profile.IsEmpty() {
		t.Errorf("expected empty profile, got traits=%v tags=%v", profile.TopTraits, profile.TopTags)
	}
}

func TestAggregateStoreFailureDegrades(t *testing.T) {
	store := memory.NewStore()
	store.FailReads = true
	agg := newTestAggregator(store)

	profile := agg.Aggregate(context.Background(), uuid.New())

	if !profile.IsEmpty() {
		t.Errorf("expected empty profile on read failure, got %v", profile.TopTraits)
	}
}

func TestAggregateFavoriteOutweighsCompletion(t *testing.T) {
	store := memory.NewStore()
	userId := uuid.New()
	favBook := seedBook(store, []string{"brave"}, nil)
	doneBook := seedBook(store, []string{"calm"}, nil)

	_ = store.BookInteractionRepository().Create(context.Background(), &entity.BookInteraction{
		UserId: userId, BookId: favBook, Type: constant.InteractionTypeFavorite,
	})
	_ = store.ReadingProgressRepository().Create(context.Background(), &entity.ReadingProgress{
		UserId: userId, BookId: doneBook, IsCompleted: true, CurrentPage: 10, TotalPages: 10,
	})

	profile := newTestAggregator(store).Aggregate(context.Background(), userId)

	if len(profile.TopTraits) != 2 {
		t.Fatalf("expected 2 traits, got %v", profile.TopTraits)
	}
	if profile.TopTraits[0] != "brave" {
		t.Errorf("favorite trait should rank first, got %v", profile.TopTraits)
	}
}

func TestAggregateRereadBoost(t *testing.T) {
	ctx := context.Background()

	score := func(completions int) []string {
		store := memory.NewStore()
		userId := uuid.New()
		bookId := seedBook(store, []string{"curious"}, nil)
		otherId := seedBook(store, []string{"kind"}, nil)

		for i := 0; i < completions; i++ {
			_ = store.ReadingProgressRepository().Create(ctx, &entity.ReadingProgress{
				UserId: userId, BookId: bookId, IsCompleted: true, CurrentPage: 10, TotalPages: 10,
			})
		}
		// A favorite on another book acts as the yardstick: one completion
		// ranks below it, completion plus re-read ranks above.
		_ = store.BookInteractionRepository().Create(ctx, &entity.BookInteraction{
			UserId: userId, BookId: otherId, Type: constant.InteractionTypeFavorite,
		})
		return newTestAggregator(store).Aggregate(ctx, userId).TopTraits
	}

	once := score(1)
	if len(once) != 2 || once[0] != "kind" {
		t.Errorf("single completion should rank below a favorite, got %v", once)
	}

	twice := score(2)
	if len(twice) != 2 || twice[0] != "curious" {
		t.Errorf("completion plus re-read should rank above a favorite, got %v", twice)
	}
}

func TestAggregateHighProgressCounts(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	userId := uuid.New()
	nearDone := seedBook(store, []string{"focused"}, nil)
	barelyRead := seedBook(store, []string{"playful"}, nil)

	_ = store.ReadingProgressRepository().Create(ctx, &entity.ReadingProgress{
		UserId: userId, BookId: nearDone, CurrentPage: 8, TotalPages: 10,
	})
	_ = store.ReadingProgressRepository().Create(ctx, &entity.ReadingProgress{
		UserId: userId, BookId: barelyRead, CurrentPage: 2, TotalPages: 10,
	})

	profile := newTestAggregator(store).Aggregate(ctx, userId)

	if len(profile.TopTraits) != 1 || profile.TopTraits[0] != "focused" {
		t.Errorf("only the high-progress book should contribute, got %v", profile.TopTraits)
	}
}

func TestAggregateLongSessionsNeedTwo(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	userId := uuid.New()
	oneLong := seedBook(store, []string{"energetic"}, nil)
	twoLong := seedBook(store, []string{"persistent"}, nil)

	_ = store.ReadingSessionRepository().Create(ctx, &entity.ReadingSession{
		UserId: userId, BookId: oneLong, SessionDurationSeconds: 2000,
	})
	for i := 0; i < 2; i++ {
		_ = store.ReadingSessionRepository().Create(ctx, &entity.ReadingSession{
			UserId: userId, BookId: twoLong, SessionDurationSeconds: 1900,
		})
	}

	profile := newTestAggregator(store).Aggregate(ctx, userId)

	if len(profile.TopTraits) != 1 || profile.TopTraits[0] != "persistent" {
		t.Errorf("a single long session should not score, got %v", profile.TopTraits)
	}
}

func TestAggregateQuizSignals(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	userId := uuid.New()
	strong := seedBook(store, []string{"confident"}, nil)
	weak := seedBook(store, []string{"relaxed"}, nil)

	_ = store.QuizAttemptRepository().Create(ctx, &entity.QuizAttempt{
		UserId: userId, BookId: strong, Score: 9, TotalQuestions: 10,
	})
	_ = store.QuizAttemptRepository().Create(ctx, &entity.QuizAttempt{
		UserId: userId, BookId: weak, Score: 3, TotalQuestions: 10,
	})
	_ = store.QuizAnalyticsRepository().Create(ctx, &entity.QuizAnalytics{
		UserId: userId, DominantTraits: []string{"imaginative"}, CompletedAt: time.Now(),
	})

	profile := newTestAggregator(store).Aggregate(ctx, userId)

	if len(profile.TopTraits) != 2 {
		t.Fatalf("expected 2 traits, got %v", profile.TopTraits)
	}
	if profile.TopTraits[0] != "confident" || profile.TopTraits[1] != "imaginative" {
		t.Errorf("strong quiz score should outrank the personality prior, got %v", profile.TopTraits)
	}
}

func TestAggregateLatestAnalyticsOnly(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	userId := uuid.New()

	_ = store.QuizAnalyticsRepository().Create(ctx, &entity.QuizAnalytics{
		UserId: userId, DominantTraits: []string{"calm"}, CompletedAt: time.Now().Add(-time.Hour),
	})
	_ = store.QuizAnalyticsRepository().Create(ctx, &entity.QuizAnalytics{
		UserId: userId, DominantTraits: []string{"outgoing"}, CompletedAt: time.Now(),
	})

	profile := newTestAggregator(store).Aggregate(ctx, userId)

	if len(profile.TopTraits) != 1 || profile.TopTraits[0] != "outgoing" {
		t.Errorf("only the latest analytics record should count, got %v", profile.TopTraits)
	}
}

func TestAggregateMissingBookSkipped(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	userId := uuid.New()
	realBook := seedBook(store, []string{"gentle"}, nil)

	_ = store.BookInteractionRepository().Create(ctx, &entity.BookInteraction{
		UserId: userId, BookId: uuid.New(), Type: constant.InteractionTypeFavorite,
	})
	_ = store.BookInteractionRepository().Create(ctx, &entity.BookInteraction{
		UserId: userId, BookId: realBook, Type: constant.InteractionTypeFavorite,
	})

	profile := newTestAggregator(store).Aggregate(ctx, userId)

	if len(profile.TopTraits) != 1 || profile.TopTraits[0] != "gentle" {
		t.Errorf("stale book reference should be skipped, got %v", profile.TopTraits)
	}
}

func TestAggregateTopFiveCap(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	userId := uuid.New()
	bookId := seedBook(store,
		[]string{"curious", "brave", "kind", "calm", "social", "artistic", "careful"},
		[]string{"adventure", "fantasy", "friendship", "animals", "family", "learning"},
	)

	_ = store.BookInteractionRepository().Create(ctx, &entity.BookInteraction{
		UserId: userId, BookId: bookId, Type: constant.InteractionTypeFavorite,
	})

	profile := newTestAggregator(store).Aggregate(ctx, userId)

	if len(profile.TopTraits) != 5 {
		t.Errorf("traits should cap at 5, got %d", len(profile.TopTraits))
	}
	if len(profile.TopTags) != 5 {
		t.Errorf("tags should cap at 5, got %d", len(profile.TopTags))
	}
}

func TestAccumulatorTieBreakInsertionOrder(t *testing.T) {
	acc := newAccumulator()
	acc.add("first", 2.0)
	acc.add("second", 2.0)
	acc.add("third", 3.0)

	got := acc.top(3)
	want := []string{"third", "first", "second"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("top() = %v, want %v", got, want)
		}
	}
}
