package tagging

import (
	"context"

	"readme-be/internal/pkg/logger"
	"readme-be/pkg/llm"
	"readme-be/pkg/vocab"
)

// Classifier turns a book's text into a validated (tags, traits, ageRating)
// triple. Failures never cross this boundary: whatever the oracle does, the
// caller receives a complete, vocabulary-valid result.
type Classifier struct {
	oracle llm.LLMProvider
	tags   vocab.Vocabulary
	traits vocab.Vocabulary
	ages   vocab.Vocabulary
	rand   RandSource
	log    logger.ILogger
}

func NewClassifier(oracle llm.LLMProvider, tags, traits, ages vocab.Vocabulary, rand RandSource, log logger.ILogger) *Classifier {
	return &Classifier{
		oracle: oracle,
		tags:   tags,
		traits: traits,
		ages:   ages,
		rand:   rand,
		log:    log,
	}
}

func (c *Classifier) Classify(ctx context.Context, title, author, description, text string) Result {
	prompt := BuildPrompt(title, author, description, text, c.tags, c.traits, c.ages)

	history := []llm.Message{
		{Role: "system", Content: "You are an expert children's book classifier. Return only valid JSON with no additional text."},
		{Role: "user", Content: prompt},
	}

	response, err := c.oracle.Chat(ctx, history,
		llm.WithTemperature(0.7),
		llm.WithMaxTokens(200),
	)
	if err != nil {
		c.log.Warn("tagging", "oracle call failed, applying defaults", map[string]interface{}{
			"title": title,
			"error": err.Error(),
		})
		return c.defaults()
	}

	reply, ok := parseReply(response)
	if !ok {
		c.log.Warn("tagging", "no JSON object found in oracle output, applying defaults", map[string]interface{}{
			"title": title,
		})
		return c.defaults()
	}

	return c.validate(reply)
}

// validate filters each field against its vocabulary and substitutes the
// fallback wherever nothing usable survives.
func (c *Classifier) validate(reply oracleReply) Result {
	result := Result{
		Tags:      c.tags.Filter(reply.Tags),
		Traits:    c.traits.Filter(reply.Traits),
		AgeRating: reply.AgeRating,
	}

	if len(result.Tags) == 0 {
		result.Tags = fallbackTags(c.rand)
	}
	if len(result.Traits) == 0 {
		result.Traits = fallbackTraits(c.rand)
	}
	if !c.ages.Contains(result.AgeRating) {
		result.AgeRating = defaultAgeRating
	}
	return result
}

func (c *Classifier) defaults() Result {
	return Result{
		Tags:      fallbackTags(c.rand),
		Traits:    fallbackTraits(c.rand),
		AgeRating: defaultAgeRating,
	}
}
