package cache

import (
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/slots-tracker/internal/logger"
)

const keyPrefix = "slots-tracker:list:"

type MemcacheClient struct {
	client *memcache.Client
	ttl    int32
}

type config interface {
	Hosts() []string
	TTL() time.Duration
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{client: mc, ttl: int32(config.TTL().Seconds())}, mc.Ping()
}

func formatKey(collection string) string {
	return keyPrefix + collection
}

func (mc *MemcacheClient) CacheList(collection string, data []byte) error {
	logger.Debug("cache list", zap.String("collection", collection))
	return mc.client.Set(&memcache.Item{
		Key:        formatKey(collection),
		Value:      data,
		Expiration: mc.ttl,
	})
}

func (mc *MemcacheClient) GetList(collection string) ([]byte, error) {
	item, err := mc.client.Get(formatKey(collection))
	if err != nil {
		return nil, err
	}
	logger.Debug("list served from cache", zap.String("collection", collection))
	return item.Value, nil
}

func (mc *MemcacheClient) InvalidateList(collection string) error {
	logger.Info("invalidate list cache", zap.String("collection", collection))

	err := mc.client.Delete(formatKey(collection))
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		return err
	}
	return nil
}
