package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookRequest struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	Description string `json:"description"`
	PdfUrl      string `json:"pdf_url" validate:"omitempty,url"`
	AgeRating   string `json:"age_rating"`
	IsVisible   bool   `json:"is_visible"`
}

type CreateBookResponse struct {
	Id           uuid.UUID `json:"id"`
	NeedsTagging bool      `json:"needs_tagging"`
}

type UpdateBookRequest struct {
	Id          uuid.UUID
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	Description string `json:"description"`
	PdfUrl      string `json:"pdf_url" validate:"omitempty,url"`
	AgeRating   string `json:"age_rating"`
	IsVisible   bool   `json:"is_visible"`
}

type UpdateBookResponse struct {
	Id           uuid.UUID `json:"id"`
	NeedsTagging bool      `json:"needs_tagging"`
}

type ShowBookResponse struct {
	Id           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Author       string     `json:"author"`
	Description  string     `json:"description"`
	PdfUrl       string     `json:"pdf_url"`
	Traits       []string   `json:"traits"`
	Tags         []string   `json:"tags"`
	AgeRating    string     `json:"age_rating"`
	IsVisible    bool       `json:"is_visible"`
	NeedsTagging bool       `json:"needs_tagging"`
	TaggedAt     *time.Time `json:"tagged_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

// BookChangedMessage travels over the internal event bus whenever a catalog
// record is created or updated; the consumer decides whether the book enters
// the tagging queue.
type BookChangedMessage struct {
	BookId        uuid.UUID `json:"book_id"`
	PdfUrlChanged bool      `json:"pdf_url_changed"`
}
