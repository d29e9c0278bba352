package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	"max.ks1230/slots-tracker/internal/logger"
)

const sorryMessage = "Sorry, something wrong happened...\n"

//go:generate minimock -i messageSender -o ./mock/message_sender_mock.go -n MessageSenderMock

type messageSender interface {
	SendMessage(text string, userID int64) error
}

type MessageHandler interface {
	HandleMessage(ctx context.Context, text string, userID int64) (string, error)
}

type Service struct {
	tgClient messageSender
	handler  MessageHandler
}

func NewService(tgClient messageSender, forms forms, reporter reporter) *Service {
	return &Service{
		tgClient: tgClient,
		handler:  newHandler(tgClient, forms, reporter),
	}
}

type Message struct {
	Text   string
	UserID int64
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	observeResponse(elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

// handle replies with the handler answer. A failed command always gets the
// sorry line, with the handler answer appended when there is one.
func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleMessage(ctx, msg.Text, msg.UserID)
	if err != nil {
		if sendErr := s.tgClient.SendMessage(sorryMessage+resp, msg.UserID); sendErr != nil {
			logger.Error("failed to send sorry message", zap.Error(sendErr))
		}
		return err
	}
	if resp == "" {
		return nil
	}
	return s.tgClient.SendMessage(resp, msg.UserID)
}
