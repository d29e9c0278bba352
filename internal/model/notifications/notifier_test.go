package notifications

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
	"max.ks1230/slots-tracker/internal/entity/event"
	"max.ks1230/slots-tracker/internal/entity/record"
)

type chatsConfig []int64

func (c chatsConfig) ChatIDs() []int64 { return c }

type senderStub struct {
	sent    map[int64]string
	failFor map[int64]error
}

func (s *senderStub) SendMessage(text string, chatID int64) error {
	if err, ok := s.failFor[chatID]; ok {
		return err
	}
	if s.sent == nil {
		s.sent = map[int64]string{}
	}
	s.sent[chatID] = text
	return nil
}

func Test_HandleEvent_ShouldNotifyEveryChat(t *testing.T) {
	sender := &senderStub{}
	n := New(chatsConfig{1, 2}, sender)

	err := n.HandleEvent(context.Background(), event.Event{
		Collection: "expenses",
		Action:     event.Created,
		ID:         "e1",
		Record:     record.Record{"amount": 42.0, "description": "coffee"},
	})

	assert.NoError(t, err)
	assert.Equal(t, map[int64]string{
		1: "Expense created: 42.00 coffee",
		2: "Expense created: 42.00 coffee",
	}, sender.sent)
}

func Test_HandleEvent_ShouldContinueAfterFailures(t *testing.T) {
	sender := &senderStub{failFor: map[int64]error{
		1: errors.New("bot was blocked"),
		3: errors.New("chat not found"),
	}}
	n := New(chatsConfig{1, 2, 3}, sender)

	err := n.HandleEvent(context.Background(), event.Event{Collection: "categories", Action: event.Deleted, ID: "c1"})

	assert.Len(t, multierr.Errors(err), 2)
	assert.Equal(t, map[int64]string{2: "Category deleted: c1"}, sender.sent)
}

func Test_Format(t *testing.T) {
	assert.Equal(t, "Payment method updated: Cash",
		Format(event.Event{Collection: "pay_methods", Action: event.Updated, Record: record.Record{"name": "Cash"}}))
	assert.Equal(t, "budget created: b1",
		Format(event.Event{Collection: "budgets", Action: event.Created, ID: "b1"}))
}
