package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"readme-be/internal/entity"
	"readme-be/internal/pkg/logger"
	"readme-be/pkg/extract"
	"readme-be/pkg/llm"
)

const (
	// QuestionCount is how many questions one generated quiz carries.
	QuestionCount = 5

	// OptionCount is the fixed number of answer options per question.
	OptionCount = 4

	promptExcerptChars = 3000
)

// Generator builds a reading-comprehension quiz from a book's text. Unlike
// tagging and recommendation there is no useful degraded result here, so
// generation failures surface as errors and the caller decides what to show.
type Generator struct {
	oracle llm.LLMProvider
	log    logger.ILogger
}

func NewGenerator(oracle llm.LLMProvider, log logger.ILogger) *Generator {
	return &Generator{
		oracle: oracle,
		log:    log,
	}
}

func (g *Generator) Generate(ctx context.Context, title, author, text string) ([]entity.QuizQuestion, error) {
	prompt := buildPrompt(title, author, text)

	response, err := g.oracle.Generate(ctx, prompt,
		llm.WithTemperature(0.7),
		llm.WithMaxTokens(1500),
	)
	if err != nil {
		return nil, fmt.Errorf("quiz oracle call: %w", err)
	}

	questions, err := parseQuestions(response)
	if err != nil {
		g.log.Warn("quiz", "unusable oracle output", map[string]interface{}{
			"title": title,
			"error": err.Error(),
		})
		return nil, err
	}
	return questions, nil
}

func buildPrompt(title, author, text string) string {
	var b strings.Builder

	b.WriteString("You are creating a fun, engaging reading comprehension quiz for children who just finished reading a book.\n\n")
	fmt.Fprintf(&b, "Book Title: %s\n", title)
	fmt.Fprintf(&b, "Author: %s\n", author)
	fmt.Fprintf(&b, "Content excerpt: %s\n\n", extract.Truncate(text, promptExcerptChars))

	fmt.Fprintf(&b, "Create %d multiple-choice questions that test understanding of the story. Questions should be:\n", QuestionCount)
	b.WriteString("- Fun and engaging for children\n")
	b.WriteString("- Test comprehension of plot, characters, and themes\n")
	fmt.Fprintf(&b, "- Have %d answer options\n", OptionCount)
	b.WriteString("- Only ONE correct answer per question\n")
	b.WriteString("- Age-appropriate language\n\n")

	b.WriteString("Return ONLY a JSON array with this exact format:\n")
	b.WriteString(`[{"question": "What was the main character's name?", "options": ["Alice", "Bob", "Charlie", "Diana"], "correctAnswer": 0}]`)
	b.WriteString("\n\nThe correctAnswer should be the index (0-3) of the correct option.\n")

	return b.String()
}

func parseQuestions(response string) ([]entity.QuizQuestion, error) {
	start := strings.Index(response, "[")
	end := strings.LastIndex(response, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array in oracle response")
	}

	var questions []entity.QuizQuestion
	if err := json.Unmarshal([]byte(response[start:end+1]), &questions); err != nil {
		return nil, fmt.Errorf("decode quiz questions: %w", err)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("oracle returned no questions")
	}
	for i, q := range questions {
		if q.Question == "" {
			return nil, fmt.Errorf("question %d is empty", i)
		}
		if len(q.Options) != OptionCount {
			return nil, fmt.Errorf("question %d has %d options, want %d", i, len(q.Options), OptionCount)
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= OptionCount {
			return nil, fmt.Errorf("question %d has answer index %d out of range", i, q.CorrectAnswer)
		}
	}
	return questions, nil
}
