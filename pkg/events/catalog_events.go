package events

import "time"

const (
	TypeBookTagged             = "BOOK_TAGGED"
	TypeRecommendationsUpdated = "RECOMMENDATIONS_UPDATED"
)

// NewBookTagged announces that a book received a validated tagging triple.
func NewBookTagged(bookId string, traits, tags []string, ageRating string) Event {
	return BaseEvent{
		Type: TypeBookTagged,
		Data: map[string]interface{}{
			"book_id":    bookId,
			"traits":     traits,
			"tags":       tags,
			"age_rating": ageRating,
		},
		OccurredAt: time.Now(),
	}
}

// NewRecommendationsUpdated announces a fresh ranked list for one user.
func NewRecommendationsUpdated(userId string, bookIds []string) Event {
	return BaseEvent{
		Type: TypeRecommendationsUpdated,
		Data: map[string]interface{}{
			"user_id":  userId,
			"book_ids": bookIds,
		},
		OccurredAt: time.Now(),
	}
}
