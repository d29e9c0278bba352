package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/slots-tracker/internal/entity/event"
	"max.ks1230/slots-tracker/internal/entity/record"
)

type handlerFunc func(ctx context.Context, e event.Event) error

func (f handlerFunc) HandleEvent(ctx context.Context, e event.Event) error { return f(ctx, e) }

func testEvent() event.Event {
	return event.Event{
		Collection: "pay_methods",
		Action:     event.Created,
		ID:         "pm1",
		At:         time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		Record:     record.Record{"name": "cash"},
	}
}

func Test_Publish_ShouldSendEncodedEvent(t *testing.T) {
	mp := mocks.NewSyncProducer(t, nil)
	mp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		e, err := event.Unmarshal(val)
		if err != nil {
			return err
		}
		if e.ID != "pm1" || e.Record.String("name") != "cash" {
			return errors.Errorf("unexpected event %+v", e)
		}
		return nil
	})

	p := newProducer(mp, "events")
	defer p.Close()

	assert.NoError(t, p.Publish(context.Background(), testEvent()))
}

func Test_Publish_ShouldReturnBrokerError(t *testing.T) {
	mp := mocks.NewSyncProducer(t, nil)
	mp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := newProducer(mp, "events")
	defer p.Close()

	err := p.Publish(context.Background(), testEvent())
	assert.True(t, errors.Is(err, sarama.ErrOutOfBrokers))
}

func Test_Process_ShouldPassDecodedEvent(t *testing.T) {
	var got event.Event
	c := &Consumer{topic: "events", handler: handlerFunc(func(_ context.Context, e event.Event) error {
		got = e
		return nil
	})}

	value, err := event.Marshal(testEvent())
	require.NoError(t, err)
	c.process(context.Background(), &sarama.ConsumerMessage{Key: []byte("pay_methods"), Value: value})

	assert.Equal(t, "pm1", got.ID)
	assert.Equal(t, event.Created, got.Action)
}

func Test_Process_ShouldSkipGarbage(t *testing.T) {
	called := false
	c := &Consumer{topic: "events", handler: handlerFunc(func(context.Context, event.Event) error {
		called = true
		return nil
	})}

	c.process(context.Background(), &sarama.ConsumerMessage{Value: []byte("not a proto")})

	assert.False(t, called)
}
