package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/avast/retry-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/slots-tracker/internal/entity/expense"
	"max.ks1230/slots-tracker/internal/entity/record"
	"max.ks1230/slots-tracker/internal/logger"
)

// List returns the records of collection. query narrows the result on the
// server side; only unfiltered lists go through the cache.
func (c *Client) List(ctx context.Context, collection string, query url.Values) ([]record.Record, error) {
	cacheable := c.cache != nil && len(query) == 0
	var gen uint64
	if cacheable {
		gen = c.generation(collection)
		if raw, err := c.cache.GetList(collection); err == nil {
			rs, err := record.DecodeList(raw)
			if err == nil {
				return rs, nil
			}
			logger.Warn("broken list in cache", zap.String("collection", collection), zap.Error(err))
		}
	}

	target := c.collectionURL(collection)
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	raw, err := c.read(ctx, collection, target)
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", collection)
	}

	rs, err := record.DecodeList(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", collection)
	}
	if cacheable {
		c.cacheList(collection, gen, raw)
	}
	return rs, nil
}

func (c *Client) generation(collection string) uint64 {
	c.genMu.Lock()
	defer c.genMu.Unlock()
	return c.gens[collection]
}

// cacheList stores raw unless a write on collection settled since gen was
// taken, in which case raw may predate that write.
func (c *Client) cacheList(collection string, gen uint64, raw []byte) {
	c.genMu.Lock()
	defer c.genMu.Unlock()
	if c.gens[collection] != gen {
		logger.Debug("list changed while fetching, not cached", zap.String("collection", collection))
		return
	}
	if err := c.cache.CacheList(collection, raw); err != nil {
		logger.Warn("failed to cache list", zap.String("collection", collection), zap.Error(err))
	}
}

// Get returns one record of collection.
func (c *Client) Get(ctx context.Context, collection, id string) (record.Record, error) {
	raw, err := c.read(ctx, collection, c.itemURL(collection, id))
	if err != nil {
		return nil, errors.Wrapf(err, "get %s/%s", collection, id)
	}
	rec, err := decodeOne(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "get %s/%s", collection, id)
	}
	return rec, nil
}

func (c *Client) Expenses(ctx context.Context) ([]expense.Expense, error) {
	rs, err := c.List(ctx, expense.Expenses, nil)
	if err != nil {
		return nil, err
	}
	return expense.FromList[expense.Expense](rs)
}

func (c *Client) PayMethods(ctx context.Context) ([]expense.PayMethod, error) {
	rs, err := c.List(ctx, expense.PayMethods, nil)
	if err != nil {
		return nil, err
	}
	return expense.FromList[expense.PayMethod](rs)
}

func (c *Client) Categories(ctx context.Context) ([]expense.Category, error) {
	rs, err := c.List(ctx, expense.Categories, nil)
	if err != nil {
		return nil, err
	}
	return expense.FromList[expense.Category](rs)
}

// read is a GET that is repeated on transport errors and 5xx answers.
func (c *Client) read(ctx context.Context, collection, target string) ([]byte, error) {
	var raw []byte
	err := retry.Do(
		func() error {
			var err error
			raw, err = c.do(ctx, http.MethodGet, collection, target, nil)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.readDelay),
		retry.MaxDelay(5*time.Second),
		retry.LastErrorOnly(true),
		retry.RetryIf(transient),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("retrying read", zap.Uint("attempt", n+1), zap.String("url", target), zap.Error(err))
		}),
	)
	return raw, err
}

func transient(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Temporary()
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
