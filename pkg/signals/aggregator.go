package signals

import (
	"context"

	"readme-be/internal/constant"
	"readme-be/internal/entity"
	"readme-be/internal/pkg/logger"
	"readme-be/internal/repository/contract"
	"readme-be/internal/repository/specification"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Profile is the ranked affinity profile derived from one user's signals.
type Profile struct {
	TopTraits []string
	TopTags   []string
}

func (p Profile) IsEmpty() bool {
	return len(p.TopTraits) == 0 && len(p.TopTags) == 0
}

// BookResolver looks up cached catalog records between batch runs.
type BookResolver interface {
	Save(book *entity.Book)
	Get(bookId string) (*entity.Book, bool)
}

// Aggregator converts a user's raw behavioral records into a weighted trait
// and tag profile. It never fails hard: any store error degrades to an empty
// profile so a batch run over many users is not aborted by one of them.
type Aggregator struct {
	interactions contract.BookInteractionRepository
	progress     contract.ReadingProgressRepository
	sessions     contract.ReadingSessionRepository
	attempts     contract.QuizAttemptRepository
	analytics    contract.QuizAnalyticsRepository
	books        contract.BookRepository
	cache        BookResolver
	weights      Weights
	log          logger.ILogger
}

func NewAggregator(
	interactions contract.BookInteractionRepository,
	progress contract.ReadingProgressRepository,
	sessions contract.ReadingSessionRepository,
	attempts contract.QuizAttemptRepository,
	analytics contract.QuizAnalyticsRepository,
	books contract.BookRepository,
	cache BookResolver,
	weights Weights,
	log logger.ILogger,
) *Aggregator {
	return &Aggregator{
		interactions: interactions,
		progress:     progress,
		sessions:     sessions,
		attempts:     attempts,
		analytics:    analytics,
		books:        books,
		cache:        cache,
		weights:      weights,
		log:          log,
	}
}

// Aggregate builds a fresh profile for one user. The five signal reads are
// independent and run concurrently; accumulation afterwards is sequential in
// a fixed signal order so the ranking tie-break stays stable.
func (a *Aggregator) Aggregate(ctx context.Context, userId uuid.UUID) Profile {
	var (
		interactions []*entity.BookInteraction
		progress     []*entity.ReadingProgress
		sessions     []*entity.ReadingSession
		attempts     []*entity.QuizAttempt
		analytics    *entity.QuizAnalytics
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		interactions, err = a.interactions.FindAll(gctx,
			specification.ByUserID{UserID: userId},
			specification.InteractionTypes{Types: []string{
				constant.InteractionTypeFavorite,
				constant.InteractionTypeBookmark,
			}},
		)
		return err
	})
	g.Go(func() error {
		var err error
		progress, err = a.progress.FindAll(gctx, specification.ByUserID{UserID: userId})
		return err
	})
	g.Go(func() error {
		var err error
		sessions, err = a.sessions.FindAll(gctx, specification.ByUserID{UserID: userId})
		return err
	})
	g.Go(func() error {
		var err error
		attempts, err = a.attempts.FindAll(gctx, specification.ByUserID{UserID: userId})
		return err
	})
	g.Go(func() error {
		var err error
		analytics, err = a.analytics.FindLatestByUserId(gctx, userId)
		return err
	})

	if err := g.Wait(); err != nil {
		a.log.Warn("signals", "signal read failed, returning empty profile", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return Profile{}
	}

	// Completion counts per book decide first-completion versus re-read.
	completions := make(map[uuid.UUID]int)
	var highProgress []uuid.UUID
	for _, p := range progress {
		if p.IsCompleted {
			completions[p.BookId]++
		} else if p.PageRatio() >= HighProgressRatio {
			highProgress = append(highProgress, p.BookId)
		}
	}

	var strongQuizzes []uuid.UUID
	for _, q := range attempts {
		if q.ScoreRatio() >= StrongQuizRatio {
			strongQuizzes = append(strongQuizzes, q.BookId)
		}
	}

	longSessions := make(map[uuid.UUID]int)
	for _, s := range sessions {
		if s.SessionDurationSeconds >= LongSessionSeconds {
			longSessions[s.BookId]++
		}
	}

	// Resolve every referenced book in one batched read.
	wanted := make(map[uuid.UUID]struct{})
	for _, rec := range interactions {
		wanted[rec.BookId] = struct{}{}
	}
	for _, p := range progress {
		wanted[p.BookId] = struct{}{}
	}
	for id := range longSessions {
		wanted[id] = struct{}{}
	}
	for _, id := range strongQuizzes {
		wanted[id] = struct{}{}
	}

	resolved, ok := a.resolveBooks(ctx, userId, wanted)
	if !ok {
		return Profile{}
	}

	traits := newAccumulator()
	tags := newAccumulator()

	// 1. Personality-quiz prior.
	if analytics != nil {
		traits.addAll(analytics.DominantTraits, a.weights.QuizBase)
	}

	// 2. Explicit favorites and bookmarks.
	for _, rec := range interactions {
		if book := resolved[rec.BookId]; book != nil {
			traits.addAll(book.Traits, a.weights.Favorite)
			tags.addAll(book.Tags, a.weights.Favorite)
		}
	}

	// 3. Completions; repeat completions of the same book score the re-read
	// weight from the second one on.
	seenCompleted := make(map[uuid.UUID]bool)
	for _, p := range progress {
		if !p.IsCompleted {
			continue
		}
		book := resolved[p.BookId]
		if book == nil {
			continue
		}
		w := a.weights.Completed
		if seenCompleted[p.BookId] {
			w = a.weights.Reread
		}
		seenCompleted[p.BookId] = true
		traits.addAll(book.Traits, w)
		tags.addAll(book.Tags, w)
	}

	// 4. High partial progress on unfinished books.
	for _, bookId := range highProgress {
		if book := resolved[bookId]; book != nil {
			traits.addAll(book.Traits, a.weights.HighProgress)
			tags.addAll(book.Tags, a.weights.HighProgress)
		}
	}

	// 5. Strong quiz scores.
	for _, bookId := range strongQuizzes {
		if book := resolved[bookId]; book != nil {
			traits.addAll(book.Traits, a.weights.QuizScore)
			tags.addAll(book.Tags, a.weights.QuizScore)
		}
	}

	// 6. Sustained long sessions, scored once per qualifying book.
	for _, s := range sessions {
		bookId := s.BookId
		if longSessions[bookId] < LongSessionsRequired {
			continue
		}
		longSessions[bookId] = 0 // score each book once, in session order
		if book := resolved[bookId]; book != nil {
			traits.addAll(book.Traits, a.weights.Session)
			tags.addAll(book.Tags, a.weights.Session)
		}
	}

	return Profile{
		TopTraits: traits.top(TopTraitCount),
		TopTags:   tags.top(TopTraitCount),
	}
}

// resolveBooks fetches the catalog records behind a set of book ids, going
// through the cache first. Ids the catalog no longer knows are left out of
// the result; callers treat them as skippable stale references.
func (a *Aggregator) resolveBooks(ctx context.Context, userId uuid.UUID, wanted map[uuid.UUID]struct{}) (map[uuid.UUID]*entity.Book, bool) {
	resolved := make(map[uuid.UUID]*entity.Book, len(wanted))
	var missing []uuid.UUID
	for id := range wanted {
		if a.cache != nil {
			if book, hit := a.cache.Get(id.String()); hit {
				resolved[id] = book
				continue
			}
		}
		missing = append(missing, id)
	}

	if len(missing) > 0 {
		books, err := a.books.FindAll(ctx, specification.ByIDs{IDs: missing})
		if err != nil {
			a.log.Warn("signals", "book resolution failed, returning empty profile", map[string]interface{}{
				"user_id": userId.String(),
				"error":   err.Error(),
			})
			return nil, false
		}
		for _, book := range books {
			resolved[book.Id] = book
			if a.cache != nil {
				a.cache.Save(book)
			}
		}
	}
	return resolved, true
}
