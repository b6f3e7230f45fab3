package service

import (
	"context"
	"encoding/json"
	"testing"

	"readme-be/internal/dto"
	"readme-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// capturePublisher records bus payloads instead of sending them.
type capturePublisher struct {
	payloads [][]byte
}

func (p *capturePublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *capturePublisher) lastMessage(t *testing.T) dto.BookChangedMessage {
	t.Helper()
	assert.NotEmpty(t, p.payloads)
	var msg dto.BookChangedMessage
	assert.NoError(t, json.Unmarshal(p.payloads[len(p.payloads)-1], &msg))
	return msg
}

func TestCreateBookPublishesChange(t *testing.T) {
	store := memory.NewStore()
	bus := &capturePublisher{}
	svc := NewBookService(store, bus)

	res, err := svc.Create(context.Background(), &dto.CreateBookRequest{
		Title:  "The Brave Fox",
		Author: "A. Author",
		PdfUrl: "https://books.example.com/fox.pdf",
	})

	assert.NoError(t, err)
	msg := bus.lastMessage(t)
	assert.Equal(t, res.Id, msg.BookId)
	assert.False(t, msg.PdfUrlChanged)
}

func TestCreateBookValidation(t *testing.T) {
	svc := NewBookService(memory.NewStore(), &capturePublisher{})

	_, err := svc.Create(context.Background(), &dto.CreateBookRequest{Author: "no title"})

	assert.Error(t, err)
}

func TestUpdateBookDetectsPdfChange(t *testing.T) {
	store := memory.NewStore()
	bus := &capturePublisher{}
	svc := NewBookService(store, bus)

	created, err := svc.Create(context.Background(), &dto.CreateBookRequest{
		Title:  "The Brave Fox",
		Author: "A. Author",
		PdfUrl: "https://books.example.com/v1.pdf",
	})
	assert.NoError(t, err)

	_, err = svc.Update(context.Background(), &dto.UpdateBookRequest{
		Id:     created.Id,
		Title:  "The Brave Fox",
		Author: "A. Author",
		PdfUrl: "https://books.example.com/v2.pdf",
	})
	assert.NoError(t, err)
	assert.True(t, bus.lastMessage(t).PdfUrlChanged)

	// Same url again is not a content change.
	_, err = svc.Update(context.Background(), &dto.UpdateBookRequest{
		Id:     created.Id,
		Title:  "The Brave Fox",
		Author: "A. Author",
		PdfUrl: "https://books.example.com/v2.pdf",
	})
	assert.NoError(t, err)
	assert.False(t, bus.lastMessage(t).PdfUrlChanged)
}

func TestUpdateUnknownBook(t *testing.T) {
	svc := NewBookService(memory.NewStore(), &capturePublisher{})

	_, err := svc.Update(context.Background(), &dto.UpdateBookRequest{
		Id:     uuid.New(),
		Title:  "t",
		Author: "a",
	})

	assert.Error(t, err)
}

func TestListVisibleOnly(t *testing.T) {
	store := memory.NewStore()
	svc := NewBookService(store, &capturePublisher{})

	_, err := svc.Create(context.Background(), &dto.CreateBookRequest{
		Title: "visible", Author: "a", IsVisible: true,
	})
	assert.NoError(t, err)
	_, err = svc.Create(context.Background(), &dto.CreateBookRequest{
		Title: "hidden", Author: "a", IsVisible: false,
	})
	assert.NoError(t, err)

	visible, err := svc.List(context.Background(), true)
	assert.NoError(t, err)
	assert.Len(t, visible, 1)

	all, err := svc.List(context.Background(), false)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}
