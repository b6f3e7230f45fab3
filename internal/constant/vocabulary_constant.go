package constant

// Canonical vocabularies shared by tagging and recommendation.
// A trait or tag outside these lists is never stored.

var AllowedTags = []string{
	"adventure", "fantasy", "friendship", "animals", "family",
	"learning", "kindness", "creativity", "imagination", "responsibility",
	"cooperation", "resilience", "organization", "enthusiasm", "positivity",
	"bravery", "sharing", "art", "exploration", "teamwork", "emotions",
	"self-acceptance", "problem-solving", "leadership", "confidence", "patience",
	"generosity", "helpfulness", "playfulness", "curiosity", "innovation",
}

var AllowedTraits = []string{
	// Openness
	"curious", "imaginative", "creative", "adventurous", "artistic", "inventive",
	// Conscientiousness
	"hardworking", "careful", "persistent", "focused", "responsible", "organized",
	// Extraversion
	"outgoing", "energetic", "talkative", "playful", "cheerful", "social", "enthusiastic",
	// Agreeableness
	"kind", "helpful", "caring", "friendly", "cooperative", "gentle", "sharing",
	// Emotional Stability
	"calm", "relaxed", "positive", "brave", "confident", "easygoing",
}

var AllowedAges = []string{"6+", "7+", "8+", "9+", "10", "12"}

const (
	InteractionTypeFavorite = "favorite"
	InteractionTypeBookmark = "bookmark"
)
