package mapper

import (
	"readme-be/internal/entity"
	"readme-be/internal/model"

	"gorm.io/datatypes"
)

// SignalMapper converts the read-only signal record shapes.
type SignalMapper struct{}

func NewSignalMapper() *SignalMapper {
	return &SignalMapper{}
}

func (m *SignalMapper) InteractionToEntity(r *model.BookInteraction) *entity.BookInteraction {
	if r == nil {
		return nil
	}
	return &entity.BookInteraction{
		Id:        r.Id,
		UserId:    r.UserId,
		BookId:    r.BookId,
		Type:      r.Type,
		CreatedAt: r.CreatedAt,
	}
}

func (m *SignalMapper) InteractionsToEntities(models []*model.BookInteraction) []*entity.BookInteraction {
	entities := make([]*entity.BookInteraction, 0, len(models))
	for _, r := range models {
		entities = append(entities, m.InteractionToEntity(r))
	}
	return entities
}

func (m *SignalMapper) InteractionToModel(r *entity.BookInteraction) *model.BookInteraction {
	if r == nil {
		return nil
	}
	return &model.BookInteraction{
		Id:        r.Id,
		UserId:    r.UserId,
		BookId:    r.BookId,
		Type:      r.Type,
		CreatedAt: r.CreatedAt,
	}
}

func (m *SignalMapper) ProgressToEntity(r *model.ReadingProgress) *entity.ReadingProgress {
	if r == nil {
		return nil
	}
	return &entity.ReadingProgress{
		Id:          r.Id,
		UserId:      r.UserId,
		BookId:      r.BookId,
		IsCompleted: r.IsCompleted,
		CurrentPage: r.CurrentPage,
		TotalPages:  r.TotalPages,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (m *SignalMapper) ProgressToEntities(models []*model.ReadingProgress) []*entity.ReadingProgress {
	entities := make([]*entity.ReadingProgress, 0, len(models))
	for _, r := range models {
		entities = append(entities, m.ProgressToEntity(r))
	}
	return entities
}

func (m *SignalMapper) ProgressToModel(r *entity.ReadingProgress) *model.ReadingProgress {
	if r == nil {
		return nil
	}
	return &model.ReadingProgress{
		Id:          r.Id,
		UserId:      r.UserId,
		BookId:      r.BookId,
		IsCompleted: r.IsCompleted,
		CurrentPage: r.CurrentPage,
		TotalPages:  r.TotalPages,
	}
}

func (m *SignalMapper) SessionToEntity(r *model.ReadingSession) *entity.ReadingSession {
	if r == nil {
		return nil
	}
	return &entity.ReadingSession{
		Id:                     r.Id,
		UserId:                 r.UserId,
		BookId:                 r.BookId,
		SessionDurationSeconds: r.SessionDurationSeconds,
		StartedAt:              r.StartedAt,
	}
}

func (m *SignalMapper) SessionsToEntities(models []*model.ReadingSession) []*entity.ReadingSession {
	entities := make([]*entity.ReadingSession, 0, len(models))
	for _, r := range models {
		entities = append(entities, m.SessionToEntity(r))
	}
	return entities
}

func (m *SignalMapper) SessionToModel(r *entity.ReadingSession) *model.ReadingSession {
	if r == nil {
		return nil
	}
	return &model.ReadingSession{
		Id:                     r.Id,
		UserId:                 r.UserId,
		BookId:                 r.BookId,
		SessionDurationSeconds: r.SessionDurationSeconds,
		StartedAt:              r.StartedAt,
	}
}

func (m *SignalMapper) AttemptToEntity(r *model.QuizAttempt) *entity.QuizAttempt {
	if r == nil {
		return nil
	}
	return &entity.QuizAttempt{
		Id:             r.Id,
		UserId:         r.UserId,
		BookId:         r.BookId,
		Score:          r.Score,
		TotalQuestions: r.TotalQuestions,
		CompletedAt:    r.CompletedAt,
	}
}

func (m *SignalMapper) AttemptsToEntities(models []*model.QuizAttempt) []*entity.QuizAttempt {
	entities := make([]*entity.QuizAttempt, 0, len(models))
	for _, r := range models {
		entities = append(entities, m.AttemptToEntity(r))
	}
	return entities
}

func (m *SignalMapper) AttemptToModel(r *entity.QuizAttempt) *model.QuizAttempt {
	if r == nil {
		return nil
	}
	return &model.QuizAttempt{
		Id:             r.Id,
		UserId:         r.UserId,
		BookId:         r.BookId,
		Score:          r.Score,
		TotalQuestions: r.TotalQuestions,
		CompletedAt:    r.CompletedAt,
	}
}

func (m *SignalMapper) AnalyticsToEntity(r *model.QuizAnalytics) *entity.QuizAnalytics {
	if r == nil {
		return nil
	}
	return &entity.QuizAnalytics{
		Id:             r.Id,
		UserId:         r.UserId,
		DominantTraits: []string(r.DominantTraits),
		CompletedAt:    r.CompletedAt,
	}
}

func (m *SignalMapper) AnalyticsToModel(r *entity.QuizAnalytics) *model.QuizAnalytics {
	if r == nil {
		return nil
	}
	return &model.QuizAnalytics{
		Id:             r.Id,
		UserId:         r.UserId,
		DominantTraits: datatypes.NewJSONSlice(r.DominantTraits),
		CompletedAt:    r.CompletedAt,
	}
}
