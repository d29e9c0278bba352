package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"max.ks1230/slots-tracker/internal/entity/record"
)

// Login exchanges credentials for an access token that is then sent with
// every request.
func (c *Client) Login(ctx context.Context, email, password string) error {
	raw, err := c.do(ctx, http.MethodPost, loginPath, c.collectionURL(loginPath), record.Record{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return errors.Wrap(err, "login")
	}

	var res struct {
		AccessToken string `json:"access_token"`
	}
	if err = json.Unmarshal(raw, &res); err != nil {
		return errors.Wrap(err, "login")
	}
	if res.AccessToken == "" {
		return errors.New("login: no access token in response")
	}
	c.setToken(res.AccessToken)
	return nil
}
