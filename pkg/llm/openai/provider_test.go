package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"readme-be/pkg/llm"
)

func TestChatPayloadWireFormat(t *testing.T) {
	var captured []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer server.Close()

	provider := NewOpenAIProvider("test-key", server.URL, "gpt-4")

	out, err := provider.Chat(context.Background(), []llm.Message{
		{Role: "system", Content: "be brief"},
		{Role: "user", Content: "hi"},
	})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}
	if out != "ok" {
		t.Errorf("expected response 'ok', got %q", out)
	}

	var payload struct {
		Model    string                       `json:"model"`
		Messages []map[string]json.RawMessage `json:"messages"`
	}
	if err := json.Unmarshal(captured, &payload); err != nil {
		t.Fatalf("captured payload is not valid JSON: %v", err)
	}
	if payload.Model != "gpt-4" {
		t.Errorf("expected model gpt-4, got %q", payload.Model)
	}
	if len(payload.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(payload.Messages))
	}

	// The API rejects anything but lowercase role/content keys.
	for i, msg := range payload.Messages {
		if _, ok := msg["role"]; !ok {
			t.Errorf("message %d missing lowercase 'role' key", i)
		}
		if _, ok := msg["content"]; !ok {
			t.Errorf("message %d missing lowercase 'content' key", i)
		}
		for key := range msg {
			if key != "role" && key != "content" {
				t.Errorf("message %d carries unexpected key %q", i, key)
			}
		}
	}
}

func TestChatPropagatesApiError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Missing required parameter"}}`))
	}))
	defer server.Close()

	provider := NewOpenAIProvider("test-key", server.URL, "gpt-4")

	if _, err := provider.Generate(context.Background(), "hi"); err == nil {
		t.Fatal("expected error on non-200 response, got nil")
	}
}
