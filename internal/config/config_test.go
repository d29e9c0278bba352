package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
api:
  base-url: http://127.0.0.1:5000/
  token: secret
  strict-identifiers: true
telegram:
  token: tg-token
  notify-chats: [1, 2]
app:
  refresh-interval-minutes: 5
kafka:
  brokers: ["localhost:9092"]
  events-topic: record-events
memcached:
  hosts: ["localhost:11211"]
  ttl-seconds: 30
`

func Test_OnParse_ShouldReadSections(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:5000/", cfg.API().BaseURL())
	assert.Equal(t, "secret", cfg.API().StaticToken())
	assert.True(t, cfg.API().StrictIdentifiers())
	assert.Equal(t, []int64{1, 2}, cfg.Telegram().ChatIDs())
	assert.Equal(t, 5*time.Minute, cfg.App().RefreshInterval())
	assert.True(t, cfg.Kafka().Enabled())
	assert.Equal(t, "record-events", cfg.Kafka().EventsTopic())
	assert.Equal(t, 30*time.Second, cfg.Memcached().TTL())
	assert.False(t, cfg.Postgres().Enabled())
}

func Test_OnMissingValues_ShouldUseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("api:\n  base-url: http://localhost/\n"))
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.API().Timeout())
	assert.Equal(t, uint(3), cfg.API().ReadAttempts())
	assert.Equal(t, ":5000", cfg.Server().ListenAddr())
	assert.Equal(t, 24*time.Hour, cfg.Server().TokenTTL())
	assert.Zero(t, cfg.App().RefreshInterval())
}

func Test_OnBrokenYAML_ShouldFail(t *testing.T) {
	_, err := Parse([]byte("api: ["))
	assert.Error(t, err)
}
