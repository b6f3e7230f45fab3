package tagging

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"readme-be/internal/constant"
	"readme-be/internal/pkg/logger"
	"readme-be/pkg/llm"
	"readme-be/pkg/vocab"
)

type scriptedOracle struct {
	response string
	err      error
}

func (o *scriptedOracle) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return o.response, o.err
}

func (o *scriptedOracle) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return o.response, o.err
}

// fixedRand always draws the same index so fallback output is deterministic.
type fixedRand struct{ n int }

func (r fixedRand) Intn(int) int { return r.n }

func newTestClassifier(oracle llm.LLMProvider) *Classifier {
	return NewClassifier(
		oracle,
		vocab.New(constant.AllowedTags...),
		vocab.New(constant.AllowedTraits...),
		vocab.New(constant.AllowedAges...),
		fixedRand{0},
		logger.NopLogger{},
	)
}

func classify(t *testing.T, oracle llm.LLMProvider) Result {
	t.Helper()
	c := newTestClassifier(oracle)
	result := c.Classify(context.Background(), "The Brave Fox", "A. Author", "a fox learns courage", "once upon a time")

	tags := vocab.New(constant.AllowedTags...)
	traits := vocab.New(constant.AllowedTraits...)
	ages := vocab.New(constant.AllowedAges...)
	for _, tag := range result.Tags {
		if !tags.Contains(tag) {
			t.Errorf("tag %q outside vocabulary", tag)
		}
	}
	for _, trait := range result.Traits {
		if !traits.Contains(trait) {
			t.Errorf("trait %q outside vocabulary", trait)
		}
	}
	if !ages.Contains(result.AgeRating) {
		t.Errorf("age rating %q outside vocabulary", result.AgeRating)
	}
	if len(result.Tags) == 0 || len(result.Traits) == 0 {
		t.Errorf("tagging must never return empty fields, got %+v", result)
	}
	return result
}

func TestClassifyValidOutput(t *testing.T) {
	oracle := &scriptedOracle{
		response: `{"tags":["adventure","bravery"],"traits":["brave","curious"],"ageRating":"8+"}`,
	}

	result := classify(t, oracle)

	if !reflect.DeepEqual(result.Tags, []string{"adventure", "bravery"}) {
		t.Errorf("tags = %v", result.Tags)
	}
	if !reflect.DeepEqual(result.Traits, []string{"brave", "curious"}) {
		t.Errorf("traits = %v", result.Traits)
	}
	if result.AgeRating != "8+" {
		t.Errorf("ageRating = %q", result.AgeRating)
	}
}

func TestClassifyOutputWrappedInProse(t *testing.T) {
	oracle := &scriptedOracle{
		response: "Sure, here is the classification:\n```json\n{\"tags\":[\"animals\"],\"traits\":[\"kind\"],\"ageRating\":\"6+\"}\n```",
	}

	result := classify(t, oracle)

	if !reflect.DeepEqual(result.Tags, []string{"animals"}) {
		t.Errorf("tags = %v", result.Tags)
	}
}

func TestClassifyInvalidValuesFiltered(t *testing.T) {
	// "music" and "13+" are outside the vocabularies; "curious" is valid.
	oracle := &scriptedOracle{
		response: `{"tags":["music"],"traits":["curious"],"ageRating":"13+"}`,
	}

	result := classify(t, oracle)

	if !reflect.DeepEqual(result.Tags, []string{"learning", "friendship"}) {
		t.Errorf("stripped tags should trigger the fallback pair, got %v", result.Tags)
	}
	if !reflect.DeepEqual(result.Traits, []string{"curious"}) {
		t.Errorf("valid trait should survive alone, got %v", result.Traits)
	}
	if result.AgeRating != "6+" {
		t.Errorf("invalid age should force the default, got %q", result.AgeRating)
	}
}

func TestClassifyOracleFailureYieldsDefaults(t *testing.T) {
	oracle := &scriptedOracle{err: errors.New("timeout")}

	result := classify(t, oracle)

	if !reflect.DeepEqual(result.Tags, []string{"learning", "friendship"}) {
		t.Errorf("tags = %v", result.Tags)
	}
	if !reflect.DeepEqual(result.Traits, []string{"kind", "responsible"}) {
		t.Errorf("traits = %v", result.Traits)
	}
	if result.AgeRating != "6+" {
		t.Errorf("ageRating = %q", result.AgeRating)
	}
}

func TestClassifyUnparseableOutputYieldsDefaults(t *testing.T) {
	oracle := &scriptedOracle{response: "I cannot classify this book."}

	result := classify(t, oracle)

	if !reflect.DeepEqual(result.Tags, []string{"learning", "friendship"}) {
		t.Errorf("tags = %v", result.Tags)
	}
}

func TestClassifyFallbackVaries(t *testing.T) {
	oracle := &scriptedOracle{response: "{}"}

	seen := map[string]bool{}
	for draw := 0; draw < len(defaultTagPool); draw++ {
		c := NewClassifier(
			oracle,
			vocab.New(constant.AllowedTags...),
			vocab.New(constant.AllowedTraits...),
			vocab.New(constant.AllowedAges...),
			fixedRand{draw},
			logger.NopLogger{},
		)
		result := c.Classify(context.Background(), "t", "a", "", "")
		seen[result.Tags[0]] = true
		if result.Tags[1] != "friendship" {
			t.Errorf("companion tag missing, got %v", result.Tags)
		}
	}

	if len(seen) != len(defaultTagPool) {
		t.Errorf("every pool member should be reachable, saw %v", seen)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	oracle := &scriptedOracle{
		response: `{"tags":["fantasy","imagination"],"traits":["imaginative"],"ageRating":"7+"}`,
	}
	c := newTestClassifier(oracle)

	first := c.Classify(context.Background(), "t", "a", "d", "text")
	second := c.Classify(context.Background(), "t", "a", "d", "text")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("deterministic oracle must give identical results: %+v vs %+v", first, second)
	}
}
