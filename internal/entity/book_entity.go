package entity

import (
	"time"

	"github.com/google/uuid"
)

type Book struct {
	Id           uuid.UUID
	Title        string
	Author       string
	Description  string
	PdfUrl       string
	Traits       []string
	Tags         []string
	AgeRating    string
	IsVisible    bool
	NeedsTagging bool
	TaggedAt     *time.Time
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// UsefullyTagged reports whether the book already carries real tagging output.
// Legacy imports left single empty-string array entries behind, which do not count.
func (b *Book) UsefullyTagged() bool {
	hasReal := func(values []string) bool {
		for _, v := range values {
			if v != "" {
				return true
			}
		}
		return false
	}
	return hasReal(b.Traits) && hasReal(b.Tags)
}

// HasTaggingInputs reports whether the fields the tagging pipeline needs are present.
func (b *Book) HasTaggingInputs() bool {
	return b.Title != "" && b.Author != "" && b.PdfUrl != ""
}
