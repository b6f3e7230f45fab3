package service

import (
	"context"
	"errors"

	"readme-be/internal/constant"
	"readme-be/internal/pkg/logger"
	"readme-be/internal/repository/memory"
	"readme-be/pkg/llm"
	"readme-be/pkg/quiz"
	"readme-be/pkg/recommend"
	"readme-be/pkg/signals"
	"readme-be/pkg/tagging"
	"readme-be/pkg/vocab"
)

// scriptedOracle feeds canned responses through the LLM boundary.
type scriptedOracle struct {
	response string
	err      error
	calls    int
}

func (o *scriptedOracle) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	o.calls++
	return o.response, o.err
}

func (o *scriptedOracle) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	o.calls++
	return o.response, o.err
}

// stubExtractor returns fixed text or a fixed error.
type stubExtractor struct {
	text string
	err  error
}

func (e *stubExtractor) ExtractText(ctx context.Context, url string) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	return e.text, nil
}

var errExtract = errors.New("pdf fetch failed")

type fixedRand struct{ n int }

func (r fixedRand) Intn(int) int { return r.n }

func newTestClassifier(oracle llm.LLMProvider) *tagging.Classifier {
	return tagging.NewClassifier(
		oracle,
		vocab.New(constant.AllowedTags...),
		vocab.New(constant.AllowedTraits...),
		vocab.New(constant.AllowedAges...),
		fixedRand{0},
		logger.NopLogger{},
	)
}

func newTestAggregator(store *memory.Store) *signals.Aggregator {
	return signals.NewAggregator(
		store.BookInteractionRepository(),
		store.ReadingProgressRepository(),
		store.ReadingSessionRepository(),
		store.QuizAttemptRepository(),
		store.QuizAnalyticsRepository(),
		store.BookRepository(),
		memory.NewBookMetadataCache(),
		signals.DefaultWeights(),
		logger.NopLogger{},
	)
}

func newTestRanker(oracle llm.LLMProvider) *recommend.Ranker {
	return recommend.NewRanker(oracle, logger.NopLogger{})
}

func newTestQuizGenerator(oracle llm.LLMProvider) *quiz.Generator {
	return quiz.NewGenerator(oracle, logger.NopLogger{})
}
