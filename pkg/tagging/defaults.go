package tagging

// RandSource supplies the draw behind varied fallback defaults. math/rand's
// *Rand satisfies it; tests inject a fixed source to pin the branch.
type RandSource interface {
	Intn(n int) int
}

// Fallback pools. The random pick exists so every unclassifiable book does not
// collapse onto one identical, suspicious-looking default pair. The companion
// values and the age default are fixed.
var (
	defaultTagPool   = []string{"learning", "emotions", "creativity", "animals", "family"}
	defaultTraitPool = []string{"kind", "creative", "persistent", "social", "brave"}
)

const (
	companionTag     = "friendship"
	companionTrait   = "responsible"
	defaultAgeRating = "6+"
)

func fallbackTags(rand RandSource) []string {
	return []string{defaultTagPool[rand.Intn(len(defaultTagPool))], companionTag}
}

func fallbackTraits(rand RandSource) []string {
	return []string{defaultTraitPool[rand.Intn(len(defaultTraitPool))], companionTrait}
}
