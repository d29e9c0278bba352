package messages

import (
	"context"

	"go.uber.org/zap"
	"max.ks1230/slots-tracker/internal/entity/record"
	"max.ks1230/slots-tracker/internal/logger"
	"max.ks1230/slots-tracker/internal/model/screens"
)

// chatUI answers a form with the fields parsed from a chat command. A chat
// has no modal, so the whole form is filled in one message.
type chatUI struct {
	sender messageSender
	userID int64
	fields record.Record
}

// Present merges the parsed fields over the form's initial record. No fields
// means the user dismissed the form.
func (u *chatUI) Present(_ context.Context, form screens.Form) (record.Record, bool, error) {
	if len(u.fields) == 0 {
		return nil, false, nil
	}

	res := form.Initial.Clone()
	for k, v := range u.fields {
		res[k] = v
	}
	logger.Debug("form submitted", zap.String("page", form.Page), zap.Int64("user", u.userID))
	return res, true, nil
}

func (u *chatUI) ShowError(_ context.Context, message string) error {
	return u.sender.SendMessage(errorPrefix+message, u.userID)
}
