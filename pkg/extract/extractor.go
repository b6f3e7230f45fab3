package extract

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode"
)

// MaxExtractChars caps the text carried out of a source document. Classification
// prompts only consume an excerpt, so anything beyond this is wasted transfer.
const MaxExtractChars = 8000

// Extractor pulls plain text out of a book's source document.
type Extractor interface {
	ExtractText(ctx context.Context, url string) (string, error)
}

// HTTPExtractor fetches the document over HTTP and treats the body as text.
// Binary formats are expected to sit behind a text-extraction endpoint.
type HTTPExtractor struct {
	client *http.Client
}

var _ Extractor = &HTTPExtractor{}

func NewHTTPExtractor() *HTTPExtractor {
	return &HTTPExtractor{
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (e *HTTPExtractor) ExtractText(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("extract: empty document url")
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("extract: create request: %w", err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("extract: fetch document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("extract: fetch document: status %d", resp.StatusCode)
	}

	// Read a little past the cap so truncation happens on decoded text,
	// not on a byte budget that could split a rune.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4*MaxExtractChars))
	if err != nil {
		return "", fmt.Errorf("extract: read document: %w", err)
	}

	text := Truncate(normalize(string(body)), MaxExtractChars)
	if text == "" {
		return "", fmt.Errorf("extract: document produced no text")
	}
	return text, nil
}

// Truncate caps s at n characters, counting runes rather than bytes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastSpace {
				b.WriteRune(' ')
			}
			lastSpace = true
			continue
		}
		lastSpace = false
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
