package recommend

import (
	"context"

	"readme-be/internal/pkg/logger"
	"readme-be/pkg/llm"
)

// Ranker asks the oracle to order candidate books for one reader profile and
// validates the answer. Oracle failures of any kind (transport, timeout,
// unparseable output) degrade to an empty list: no recommendation is a valid
// outcome in this domain, an error is not.
type Ranker struct {
	oracle llm.LLMProvider
	log    logger.ILogger
}

func NewRanker(oracle llm.LLMProvider, log logger.ILogger) *Ranker {
	return &Ranker{
		oracle: oracle,
		log:    log,
	}
}

func (r *Ranker) Rank(ctx context.Context, topTraits, topTags []string, candidates []Candidate) []string {
	if len(candidates) == 0 {
		return []string{}
	}

	prompt := BuildPrompt(topTraits, topTags, candidates)
	response, err := r.oracle.Generate(ctx, prompt,
		llm.WithTemperature(0.4),
		llm.WithMaxTokens(1000),
	)
	if err != nil {
		r.log.Warn("recommend", "oracle call failed, returning empty recommendation", map[string]interface{}{
			"error": err.Error(),
		})
		return []string{}
	}

	ids, ok := ParseIdArray(response)
	if !ok {
		r.log.Warn("recommend", "no id array found in oracle output", map[string]interface{}{
			"response_length": len(response),
		})
		return []string{}
	}

	return ValidateIds(ids, candidates)
}
