package recommend

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"readme-be/internal/pkg/logger"
	"readme-be/pkg/llm"
)

// scriptedOracle returns a fixed response or error for every call.
type scriptedOracle struct {
	response string
	err      error
	prompts  []string
}

func (o *scriptedOracle) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if len(history) > 0 {
		o.prompts = append(o.prompts, history[len(history)-1].Content)
	}
	return o.response, o.err
}

func (o *scriptedOracle) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	o.prompts = append(o.prompts, prompt)
	return o.response, o.err
}

func candidateSet(ids ...string) []Candidate {
	out := make([]Candidate, len(ids))
	for i, id := range ids {
		out[i] = Candidate{Id: id, Title: "title-" + id, Author: "author"}
	}
	return out
}

func TestParseIdArray(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     []string
		wantOk   bool
	}{
		{
			name:     "bare array",
			response: `["a","b"]`,
			want:     []string{"a", "b"},
			wantOk:   true,
		},
		{
			name:     "array wrapped in prose",
			response: `Sure! Here are my picks: ["a","b"] hope they like them.`,
			want:     []string{"a", "b"},
			wantOk:   true,
		},
		{
			name:     "empty array",
			response: `[]`,
			want:     []string{},
			wantOk:   true,
		},
		{
			name:     "no array at all",
			response: `I could not decide.`,
			wantOk:   false,
		},
		{
			name:     "malformed json",
			response: `["a", "b"`,
			wantOk:   false,
		},
		{
			name:     "array of objects rejected",
			response: `[{"id":"a"}]`,
			wantOk:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseIdArray(tt.response)
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateIds(t *testing.T) {
	tests := []struct {
		name       string
		ids        []string
		candidates []Candidate
		want       []string
	}{
		{
			name:       "unknown id and duplicate dropped, order kept",
			ids:        []string{"b1", "zzz", "b2", "b1"},
			candidates: candidateSet("b1", "b2", "b3"),
			want:       []string{"b1", "b2"},
		},
		{
			name:       "filtering preserves oracle order",
			ids:        []string{"a", "b", "c", "d"},
			candidates: candidateSet("a", "c"),
			want:       []string{"a", "c"},
		},
		{
			name:       "nothing survives",
			ids:        []string{"x", "y"},
			candidates: candidateSet("a"),
			want:       []string{},
		},
		{
			name:       "empty input",
			ids:        nil,
			candidates: candidateSet("a"),
			want:       []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateIds(tt.ids, tt.candidates)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRankValidatesOracleOutput(t *testing.T) {
	oracle := &scriptedOracle{response: `Here you go: ["b1","zzz","b2","b1"]`}
	ranker := NewRanker(oracle, logger.NopLogger{})

	got := ranker.Rank(context.Background(), []string{"curious"}, nil, candidateSet("b1", "b2", "b3"))

	want := []string{"b1", "b2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRankOracleFailureReturnsEmpty(t *testing.T) {
	oracle := &scriptedOracle{err: errors.New("connection refused")}
	ranker := NewRanker(oracle, logger.NopLogger{})

	got := ranker.Rank(context.Background(), []string{"curious"}, nil, candidateSet("b1"))

	if len(got) != 0 {
		t.Errorf("expected empty list on oracle failure, got %v", got)
	}
}

func TestRankNoCandidatesSkipsOracle(t *testing.T) {
	oracle := &scriptedOracle{response: `["b1"]`}
	ranker := NewRanker(oracle, logger.NopLogger{})

	got := ranker.Rank(context.Background(), []string{"curious"}, nil, nil)

	if len(got) != 0 {
		t.Errorf("expected empty list, got %v", got)
	}
	if len(oracle.prompts) != 0 {
		t.Errorf("oracle should not be called without candidates")
	}
}

func TestBuildPromptEmbedsProfileAndCandidates(t *testing.T) {
	prompt := BuildPrompt([]string{"curious", "brave"}, []string{"adventure"}, candidateSet("b1", "b2"))

	for _, needle := range []string{"curious, brave", "adventure", "b1", "b2", "JSON array"} {
		if !strings.Contains(prompt, needle) {
			t.Errorf("prompt missing %q", needle)
		}
	}
}
