package service

import (
	"context"
	"encoding/json"

	"readme-be/internal/dto"
	"readme-be/internal/pkg/logger"
	"readme-be/internal/repository/specification"
	"readme-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService applies the tagging-queue lifecycle rules to catalog change
// messages: a book with complete inputs and no useful traits/tags enters the
// queue, and a source-content change re-enters it with prior output cleared.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		log:        log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.BookChangedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "failed to unmarshal book change message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	book, err := uow.BookRepository().FindOne(ctx, specification.ByID{ID: payload.BookId})
	if err != nil {
		cs.log.Error("consumer", "failed to load book", map[string]interface{}{
			"book_id": payload.BookId.String(),
			"error":   err.Error(),
		})
		msg.Nack() // Retriable
		return
	}
	if book == nil {
		cs.log.Warn("consumer", "book change message for unknown book", map[string]interface{}{
			"book_id": payload.BookId.String(),
		})
		msg.Ack() // Book deleted? Ack.
		return
	}

	switch {
	case payload.PdfUrlChanged:
		// Source content changed: prior traits/tags no longer describe it.
		if err := uow.BookRepository().FlagForTagging(ctx, book.Id, true); err != nil {
			cs.log.Error("consumer", "failed to re-flag book after content change", map[string]interface{}{
				"book_id": book.Id.String(),
				"error":   err.Error(),
			})
			msg.Nack()
			return
		}
		cs.log.Info("consumer", "book re-entered tagging queue after content change", map[string]interface{}{
			"book_id": book.Id.String(),
		})

	case !book.NeedsTagging && book.HasTaggingInputs() && !book.UsefullyTagged():
		if err := uow.BookRepository().FlagForTagging(ctx, book.Id, false); err != nil {
			cs.log.Error("consumer", "failed to flag book for tagging", map[string]interface{}{
				"book_id": book.Id.String(),
				"error":   err.Error(),
			})
			msg.Nack()
			return
		}
		cs.log.Info("consumer", "book entered tagging queue", map[string]interface{}{
			"book_id": book.Id.String(),
		})
	}

	msg.Ack()
}
