package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"readme-be/internal/dto"
	"readme-be/internal/entity"
	"readme-be/internal/pkg/logger"
	"readme-be/internal/repository/memory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func changeMessage(t *testing.T, bookId uuid.UUID, pdfChanged bool) *message.Message {
	t.Helper()
	payload, err := json.Marshal(dto.BookChangedMessage{BookId: bookId, PdfUrlChanged: pdfChanged})
	assert.NoError(t, err)
	return message.NewMessage(watermill.NewUUID(), payload)
}

func newTestConsumer(store *memory.Store) *consumerService {
	return &consumerService{
		uowFactory: store,
		log:        logger.NopLogger{},
	}
}

func TestConsumerFlagsUntaggedBook(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	book := &entity.Book{
		Id:     uuid.New(),
		Title:  "title",
		Author: "author",
		PdfUrl: "https://books.example.com/b.pdf",
	}
	_ = store.BookRepository().Create(ctx, book)

	newTestConsumer(store).processMessage(ctx, changeMessage(t, book.Id, false))

	stored, _ := store.BookRepository().FindOne(ctx)
	assert.True(t, stored.NeedsTagging)
}

func TestConsumerIgnoresIncompleteBook(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	book := &entity.Book{
		Id:    uuid.New(),
		Title: "title only, no author or pdf",
	}
	_ = store.BookRepository().Create(ctx, book)

	newTestConsumer(store).processMessage(ctx, changeMessage(t, book.Id, false))

	stored, _ := store.BookRepository().FindOne(ctx)
	assert.False(t, stored.NeedsTagging)
}

func TestConsumerIgnoresUsefullyTaggedBook(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	book := &entity.Book{
		Id:     uuid.New(),
		Title:  "title",
		Author: "author",
		PdfUrl: "https://books.example.com/b.pdf",
		Traits: []string{"kind"},
		Tags:   []string{"animals"},
	}
	_ = store.BookRepository().Create(ctx, book)

	newTestConsumer(store).processMessage(ctx, changeMessage(t, book.Id, false))

	stored, _ := store.BookRepository().FindOne(ctx)
	assert.False(t, stored.NeedsTagging)
}

func TestConsumerLegacyEmptyStringsCountAsUntagged(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	book := &entity.Book{
		Id:     uuid.New(),
		Title:  "title",
		Author: "author",
		PdfUrl: "https://books.example.com/b.pdf",
		Traits: []string{""},
		Tags:   []string{""},
	}
	_ = store.BookRepository().Create(ctx, book)

	newTestConsumer(store).processMessage(ctx, changeMessage(t, book.Id, false))

	stored, _ := store.BookRepository().FindOne(ctx)
	assert.True(t, stored.NeedsTagging)
}

func TestConsumerContentChangeClearsAndReflags(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	taggedAt := time.Now()
	book := &entity.Book{
		Id:       uuid.New(),
		Title:    "title",
		Author:   "author",
		PdfUrl:   "https://books.example.com/v2.pdf",
		Traits:   []string{"kind"},
		Tags:     []string{"animals"},
		TaggedAt: &taggedAt,
	}
	_ = store.BookRepository().Create(ctx, book)

	newTestConsumer(store).processMessage(ctx, changeMessage(t, book.Id, true))

	stored, _ := store.BookRepository().FindOne(ctx)
	assert.True(t, stored.NeedsTagging)
	assert.Empty(t, stored.Traits)
	assert.Empty(t, stored.Tags)
	assert.Nil(t, stored.TaggedAt)
}

func TestConsumerUnknownBookAcked(t *testing.T) {
	store := memory.NewStore()

	// Must not panic or write anything.
	newTestConsumer(store).processMessage(context.Background(), changeMessage(t, uuid.New(), false))

	count, _ := store.BookRepository().Count(context.Background())
	assert.Zero(t, count)
}
