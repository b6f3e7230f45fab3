package implementation

import (
	"context"
	"errors"

	"readme-be/internal/entity"
	"readme-be/internal/mapper"
	"readme-be/internal/model"
	"readme-be/internal/repository/contract"
	"readme-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// --- BookInteraction ---

type BookInteractionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SignalMapper
}

func NewBookInteractionRepository(db *gorm.DB) contract.BookInteractionRepository {
	return &BookInteractionRepositoryImpl{db: db, mapper: mapper.NewSignalMapper()}
}

func (r *BookInteractionRepositoryImpl) Create(ctx context.Context, record *entity.BookInteraction) error {
	m := r.mapper.InteractionToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.InteractionToEntity(m)
	return nil
}

func (r *BookInteractionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BookInteraction, error) {
	var models []*model.BookInteraction
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.InteractionsToEntities(models), nil
}

func (r *BookInteractionRepositoryImpl) DistinctUserIds(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.BookInteraction{}).Distinct("user_id").Pluck("user_id", &ids).Error
	return ids, err
}

// --- ReadingProgress ---

type ReadingProgressRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SignalMapper
}

func NewReadingProgressRepository(db *gorm.DB) contract.ReadingProgressRepository {
	return &ReadingProgressRepositoryImpl{db: db, mapper: mapper.NewSignalMapper()}
}

func (r *ReadingProgressRepositoryImpl) Create(ctx context.Context, record *entity.ReadingProgress) error {
	m := r.mapper.ProgressToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ProgressToEntity(m)
	return nil
}

func (r *ReadingProgressRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReadingProgress, error) {
	var models []*model.ReadingProgress
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ProgressToEntities(models), nil
}

func (r *ReadingProgressRepositoryImpl) DistinctUserIds(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.ReadingProgress{}).Distinct("user_id").Pluck("user_id", &ids).Error
	return ids, err
}

// --- ReadingSession ---

type ReadingSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SignalMapper
}

func NewReadingSessionRepository(db *gorm.DB) contract.ReadingSessionRepository {
	return &ReadingSessionRepositoryImpl{db: db, mapper: mapper.NewSignalMapper()}
}

func (r *ReadingSessionRepositoryImpl) Create(ctx context.Context, record *entity.ReadingSession) error {
	m := r.mapper.SessionToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.SessionToEntity(m)
	return nil
}

func (r *ReadingSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReadingSession, error) {
	var models []*model.ReadingSession
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.SessionsToEntities(models), nil
}

// --- QuizAttempt ---

type QuizAttemptRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SignalMapper
}

func NewQuizAttemptRepository(db *gorm.DB) contract.QuizAttemptRepository {
	return &QuizAttemptRepositoryImpl{db: db, mapper: mapper.NewSignalMapper()}
}

func (r *QuizAttemptRepositoryImpl) Create(ctx context.Context, record *entity.QuizAttempt) error {
	m := r.mapper.AttemptToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.AttemptToEntity(m)
	return nil
}

func (r *QuizAttemptRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QuizAttempt, error) {
	var models []*model.QuizAttempt
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.AttemptsToEntities(models), nil
}

// --- QuizAnalytics ---

type QuizAnalyticsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SignalMapper
}

func NewQuizAnalyticsRepository(db *gorm.DB) contract.QuizAnalyticsRepository {
	return &QuizAnalyticsRepositoryImpl{db: db, mapper: mapper.NewSignalMapper()}
}

func (r *QuizAnalyticsRepositoryImpl) Create(ctx context.Context, record *entity.QuizAnalytics) error {
	m := r.mapper.AnalyticsToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.AnalyticsToEntity(m)
	return nil
}

func (r *QuizAnalyticsRepositoryImpl) FindLatestByUserId(ctx context.Context, userId uuid.UUID) (*entity.QuizAnalytics, error) {
	var m model.QuizAnalytics
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("completed_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.AnalyticsToEntity(&m), nil
}

func (r *QuizAnalyticsRepositoryImpl) DistinctUserIds(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.QuizAnalytics{}).Distinct("user_id").Pluck("user_id", &ids).Error
	return ids, err
}
