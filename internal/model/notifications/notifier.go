// Package notifications tells the configured chats about changes made to
// the expense collections.
package notifications

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"max.ks1230/slots-tracker/internal/entity/event"
	"max.ks1230/slots-tracker/internal/entity/expense"
	"max.ks1230/slots-tracker/internal/logger"
)

type messageSender interface {
	SendMessage(text string, chatID int64) error
}

type config interface {
	ChatIDs() []int64
}

type Notifier struct {
	sender messageSender
	chats  []int64
}

func New(cfg config, sender messageSender) *Notifier {
	return &Notifier{
		sender: sender,
		chats:  cfg.ChatIDs(),
	}
}

// HandleEvent sends the event to every chat. A failing chat does not stop
// the others, all failures are returned together.
func (n *Notifier) HandleEvent(_ context.Context, e event.Event) error {
	text := Format(e)

	var err error
	for _, chat := range n.chats {
		if sendErr := n.sender.SendMessage(text, chat); sendErr != nil {
			err = multierr.Append(err, errors.Wrapf(sendErr, "notify chat %d", chat))
		}
	}
	if err != nil {
		logger.Warn("some chats were not notified",
			zap.Int("failed", len(multierr.Errors(err))),
			zap.Int("chats", len(n.chats)),
		)
	}
	return err
}

// Format renders an event as one line, e.g. "Expense created: 42.00 coffee".
func Format(e event.Event) string {
	subject := strings.TrimSuffix(e.Collection, "s")
	switch e.Collection {
	case expense.Expenses:
		subject = "Expense"
	case expense.PayMethods:
		subject = "Payment method"
	case expense.Categories:
		subject = "Category"
	}

	details := ""
	if e.Record != nil {
		if amount, ok := e.Record.Float("amount"); ok {
			details = fmt.Sprintf("%.2f", amount)
		}
		for _, field := range []string{"name", "description"} {
			if v := e.Record.String(field); v != "" {
				details = strings.TrimSpace(details + " " + v)
			}
		}
	}
	if details == "" {
		details = e.ID
	}
	return fmt.Sprintf("%s %s: %s", subject, e.Action, details)
}
