package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"readme-be/internal/entity"
	"readme-be/internal/repository/contract"
	"readme-be/internal/repository/specification"
	"readme-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Store is an in-memory signal store and catalog implementing the repository
// contracts. It exists so service and pipeline tests can run against real
// repository semantics without Postgres. Specifications are interpreted by
// type switch; only the filters the core actually issues are supported.
type Store struct {
	mu sync.RWMutex

	Users        []*entity.User
	Books        []*entity.Book
	Interactions []*entity.BookInteraction
	Progress     []*entity.ReadingProgress
	Sessions     []*entity.ReadingSession
	Attempts     []*entity.QuizAttempt
	Analytics    []*entity.QuizAnalytics
	Quizzes      []*entity.BookQuiz

	// FailReads makes every read return ErrReadFailure, for degradation tests.
	FailReads bool
}

type readFailure struct{}

func (readFailure) Error() string { return "memory store: simulated read failure" }

var ErrReadFailure = readFailure{}

func NewStore() *Store {
	return &Store{}
}

// filter holds the interpreted result of a specification list.
type filter struct {
	id               *uuid.UUID
	ids              []uuid.UUID
	userId           *uuid.UUID
	bookId           *uuid.UUID
	interactionTypes []string
	completed        *bool
	visible          bool
	needsTagging     bool
	orderField       string
	orderDesc        bool
	limit            int
}

func interpret(specs []specification.Specification) filter {
	f := filter{limit: -1}
	for _, s := range specs {
		switch v := s.(type) {
		case specification.ByID:
			id := v.ID
			f.id = &id
		case specification.ByIDs:
			f.ids = v.IDs
		case specification.ByUserID:
			id := v.UserID
			f.userId = &id
		case specification.ByBookID:
			id := v.BookID
			f.bookId = &id
		case specification.InteractionTypes:
			f.interactionTypes = v.Types
		case specification.Completed:
			c := v.Value
			f.completed = &c
		case specification.Visible:
			f.visible = true
		case specification.NeedsTagging:
			f.needsTagging = true
		case specification.OrderBy:
			f.orderField = v.Field
			f.orderDesc = v.Desc
		case specification.Limit:
			f.limit = v.N
		case specification.Pagination:
			f.limit = v.Limit
		}
	}
	return f
}

func (f filter) matchesId(id uuid.UUID) bool {
	if f.id != nil && *f.id != id {
		return false
	}
	if f.ids != nil {
		found := false
		for _, candidate := range f.ids {
			if candidate == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func capLimit[T any](items []T, limit int) []T {
	if limit >= 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

// --- BookRepository ---

type bookRepo struct{ s *Store }

func (s *Store) BookRepository() contract.BookRepository { return &bookRepo{s} }

func (r *bookRepo) Create(ctx context.Context, book *entity.Book) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if book.Id == uuid.Nil {
		book.Id = uuid.New()
	}
	clone := *book
	r.s.Books = append(r.s.Books, &clone)
	return nil
}

func (r *bookRepo) Update(ctx context.Context, book *entity.Book) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, b := range r.s.Books {
		if b.Id == book.Id {
			clone := *book
			r.s.Books[i] = &clone
			return nil
		}
	}
	clone := *book
	r.s.Books = append(r.s.Books, &clone)
	return nil
}

func (r *bookRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Book, error) {
	books, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, nil
	}
	return books[0], nil
}

func (r *bookRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Book, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.FailReads {
		return nil, ErrReadFailure
	}
	f := interpret(specs)
	var out []*entity.Book
	for _, b := range r.s.Books {
		if !f.matchesId(b.Id) {
			continue
		}
		if f.visible && !b.IsVisible {
			continue
		}
		if f.needsTagging && !b.NeedsTagging {
			continue
		}
		clone := *b
		out = append(out, &clone)
	}
	return capLimit(out, f.limit), nil
}

func (r *bookRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	books, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(books)), nil
}

func (r *bookRepo) UpdateTagging(ctx context.Context, id uuid.UUID, traits, tags []string, ageRating string, taggedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.Books {
		if b.Id == id {
			b.Traits = traits
			b.Tags = tags
			if ageRating != "" {
				b.AgeRating = ageRating
			}
			b.NeedsTagging = false
			t := taggedAt
			b.TaggedAt = &t
			return nil
		}
	}
	return nil
}

func (r *bookRepo) FlagForTagging(ctx context.Context, id uuid.UUID, clearExisting bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.Books {
		if b.Id == id {
			b.NeedsTagging = true
			b.TaggedAt = nil
			if clearExisting {
				b.Traits = nil
				b.Tags = nil
			}
			return nil
		}
	}
	return nil
}

// --- UserRepository ---

type userRepo struct{ s *Store }

func (s *Store) UserRepository() contract.UserRepository { return &userRepo{s} }

func (r *userRepo) Create(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if user.Id == uuid.Nil {
		user.Id = uuid.New()
	}
	clone := *user
	r.s.Users = append(r.s.Users, &clone)
	return nil
}

func (r *userRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	users, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return users[0], nil
}

func (r *userRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.FailReads {
		return nil, ErrReadFailure
	}
	f := interpret(specs)
	var out []*entity.User
	for _, u := range r.s.Users {
		if !f.matchesId(u.Id) {
			continue
		}
		clone := *u
		out = append(out, &clone)
	}
	return capLimit(out, f.limit), nil
}

func (r *userRepo) SaveRecommendations(ctx context.Context, id uuid.UUID, bookIds []string, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.Users {
		if u.Id == id {
			u.AiRecommendations = bookIds
			t := updatedAt
			u.LastRecommendationUpdate = &t
			return nil
		}
	}
	return nil
}

// --- BookInteractionRepository ---

type interactionRepo struct{ s *Store }

func (s *Store) BookInteractionRepository() contract.BookInteractionRepository {
	return &interactionRepo{s}
}

func (r *interactionRepo) Create(ctx context.Context, record *entity.BookInteraction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if record.Id == uuid.Nil {
		record.Id = uuid.New()
	}
	clone := *record
	r.s.Interactions = append(r.s.Interactions, &clone)
	return nil
}

func (r *interactionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BookInteraction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.FailReads {
		return nil, ErrReadFailure
	}
	f := interpret(specs)
	var out []*entity.BookInteraction
	for _, rec := range r.s.Interactions {
		if f.userId != nil && rec.UserId != *f.userId {
			continue
		}
		if f.bookId != nil && rec.BookId != *f.bookId {
			continue
		}
		if f.interactionTypes != nil {
			match := false
			for _, t := range f.interactionTypes {
				if rec.Type == t {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		clone := *rec
		out = append(out, &clone)
	}
	return capLimit(out, f.limit), nil
}

func (r *interactionRepo) DistinctUserIds(ctx context.Context) ([]uuid.UUID, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.FailReads {
		return nil, ErrReadFailure
	}
	return distinctUsers(r.s.Interactions, func(rec *entity.BookInteraction) uuid.UUID { return rec.UserId }), nil
}

func distinctUsers[T any](records []T, key func(T) uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, rec := range records {
		id := key(rec)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// --- ReadingProgressRepository ---

type progressRepo struct{ s *Store }

func (s *Store) ReadingProgressRepository() contract.ReadingProgressRepository {
	return &progressRepo{s}
}

func (r *progressRepo) Create(ctx context.Context, record *entity.ReadingProgress) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if record.Id == uuid.Nil {
		record.Id = uuid.New()
	}
	clone := *record
	r.s.Progress = append(r.s.Progress, &clone)
	return nil
}

func (r *progressRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReadingProgress, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.FailReads {
		return nil, ErrReadFailure
	}
	f := interpret(specs)
	var out []*entity.ReadingProgress
	for _, rec := range r.s.Progress {
		if f.userId != nil && rec.UserId != *f.userId {
			continue
		}
		if f.bookId != nil && rec.BookId != *f.bookId {
			continue
		}
		if f.completed != nil && rec.IsCompleted != *f.completed {
			continue
		}
		clone := *rec
		out = append(out, &clone)
	}
	return capLimit(out, f.limit), nil
}

func (r *progressRepo) DistinctUserIds(ctx context.Context) ([]uuid.UUID, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.FailReads {
		return nil, ErrReadFailure
	}
	return distinctUsers(r.s.Progress, func(rec *entity.ReadingProgress) uuid.UUID { return rec.UserId }), nil
}

// --- ReadingSessionRepository ---

type sessionRepo struct{ s *Store }

func (s *Store) ReadingSessionRepository() contract.ReadingSessionRepository {
	return &sessionRepo{s}
}

func (r *sessionRepo) Create(ctx context.Context, record *entity.ReadingSession) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if record.Id == uuid.Nil {
		record.Id = uuid.New()
	}
	clone := *record
	r.s.Sessions = append(r.s.Sessions, &clone)
	return nil
}

func (r *sessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReadingSession, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.FailReads {
		return nil, ErrReadFailure
	}
	f := interpret(specs)
	var out []*entity.ReadingSession
	for _, rec := range r.s.Sessions {
		if f.userId != nil && rec.UserId != *f.userId {
			continue
		}
		if f.bookId != nil && rec.BookId != *f.bookId {
			continue
		}
		clone := *rec
		out = append(out, &clone)
	}
	return capLimit(out, f.limit), nil
}

// --- QuizAttemptRepository ---

type attemptRepo struct{ s *Store }

func (s *Store) QuizAttemptRepository() contract.QuizAttemptRepository {
	return &attemptRepo{s}
}

func (r *attemptRepo) Create(ctx context.Context, record *entity.QuizAttempt) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if record.Id == uuid.Nil {
		record.Id = uuid.New()
	}
	clone := *record
	r.s.Attempts = append(r.s.Attempts, &clone)
	return nil
}

func (r *attemptRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QuizAttempt, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.FailReads {
		return nil, ErrReadFailure
	}
	f := interpret(specs)
	var out []*entity.QuizAttempt
	for _, rec := range r.s.Attempts {
		if f.userId != nil && rec.UserId != *f.userId {
			continue
		}
		if f.bookId != nil && rec.BookId != *f.bookId {
			continue
		}
		clone := *rec
		out = append(out, &clone)
	}
	return capLimit(out, f.limit), nil
}

// --- QuizAnalyticsRepository ---

type analyticsRepo struct{ s *Store }

func (s *Store) QuizAnalyticsRepository() contract.QuizAnalyticsRepository {
	return &analyticsRepo{s}
}

func (r *analyticsRepo) Create(ctx context.Context, record *entity.QuizAnalytics) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if record.Id == uuid.Nil {
		record.Id = uuid.New()
	}
	clone := *record
	r.s.Analytics = append(r.s.Analytics, &clone)
	return nil
}

func (r *analyticsRepo) FindLatestByUserId(ctx context.Context, userId uuid.UUID) (*entity.QuizAnalytics, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.FailReads {
		return nil, ErrReadFailure
	}
	var matches []*entity.QuizAnalytics
	for _, rec := range r.s.Analytics {
		if rec.UserId == userId {
			matches = append(matches, rec)
		}
	}
	if len(matches) == 0 {
		return nil, nil
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CompletedAt.After(matches[j].CompletedAt)
	})
	clone := *matches[0]
	return &clone, nil
}

func (r *analyticsRepo) DistinctUserIds(ctx context.Context) ([]uuid.UUID, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.FailReads {
		return nil, ErrReadFailure
	}
	return distinctUsers(r.s.Analytics, func(rec *entity.QuizAnalytics) uuid.UUID { return rec.UserId }), nil
}

// --- BookQuizRepository ---

type quizRepo struct{ s *Store }

func (s *Store) BookQuizRepository() contract.BookQuizRepository {
	return &quizRepo{s}
}

func (r *quizRepo) Create(ctx context.Context, quiz *entity.BookQuiz) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if quiz.Id == uuid.Nil {
		quiz.Id = uuid.New()
	}
	clone := *quiz
	r.s.Quizzes = append(r.s.Quizzes, &clone)
	return nil
}

func (r *quizRepo) FindByBookId(ctx context.Context, bookId uuid.UUID) (*entity.BookQuiz, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.FailReads {
		return nil, ErrReadFailure
	}
	for _, q := range r.s.Quizzes {
		if q.BookId == bookId {
			clone := *q
			return &clone, nil
		}
	}
	return nil, nil
}

// --- Unit of work over the memory store ---

type memoryUow struct{ s *Store }

func (s *Store) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memoryUow{s}
}

// Factory returns a unitofwork.RepositoryFactory view of the store.
func (s *Store) Factory() unitofwork.RepositoryFactory { return s }

func (u *memoryUow) Begin(ctx context.Context) error { return nil }
func (u *memoryUow) Commit() error                   { return nil }
func (u *memoryUow) Rollback() error                 { return nil }

func (u *memoryUow) UserRepository() contract.UserRepository { return u.s.UserRepository() }
func (u *memoryUow) BookRepository() contract.BookRepository { return u.s.BookRepository() }
func (u *memoryUow) BookInteractionRepository() contract.BookInteractionRepository {
	return u.s.BookInteractionRepository()
}
func (u *memoryUow) ReadingProgressRepository() contract.ReadingProgressRepository {
	return u.s.ReadingProgressRepository()
}
func (u *memoryUow) ReadingSessionRepository() contract.ReadingSessionRepository {
	return u.s.ReadingSessionRepository()
}
func (u *memoryUow) QuizAttemptRepository() contract.QuizAttemptRepository {
	return u.s.QuizAttemptRepository()
}
func (u *memoryUow) QuizAnalyticsRepository() contract.QuizAnalyticsRepository {
	return u.s.QuizAnalyticsRepository()
}
func (u *memoryUow) BookQuizRepository() contract.BookQuizRepository {
	return u.s.BookQuizRepository()
}
