// Package api is the client of the expenses REST API. It lists collections
// and sends records to the create or update endpoint depending on whether
// they already carry an identifier.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/slots-tracker/internal/entity/record"
	"max.ks1230/slots-tracker/internal/logger"
)

const (
	defaultReadDelay = 200 * time.Millisecond
	loginPath        = "login"
)

// Doer performs HTTP requests, *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type config interface {
	BaseURL() string
	StaticToken() string
	Timeout() time.Duration
	ReadAttempts() uint
	StrictIdentifiers() bool
}

type listCache interface {
	GetList(collection string) ([]byte, error)
	CacheList(collection string, data []byte) error
	InvalidateList(collection string) error
}

type Client struct {
	base      string
	doer      Doer
	cache     listCache
	strict    bool
	attempts  uint
	readDelay time.Duration

	mu    sync.RWMutex
	token string

	// gens counts writes per collection. A list fetched across a write is
	// never cached.
	genMu sync.Mutex
	gens  map[string]uint64
}

type Option func(c *Client)

// WithDoer replaces the default *http.Client.
func WithDoer(doer Doer) Option {
	return func(c *Client) {
		c.doer = doer
	}
}

// WithCache makes unfiltered List calls read through cache.
func WithCache(cache listCache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

func New(cfg config, opts ...Option) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL())
	if err != nil {
		return nil, errors.Wrap(err, "parse base url")
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", cfg.BaseURL())
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	c := &Client{
		base:      base.String(),
		doer:      &http.Client{Timeout: cfg.Timeout()},
		strict:    cfg.StrictIdentifiers(),
		attempts:  cfg.ReadAttempts(),
		readDelay: defaultReadDelay,
		token:     cfg.StaticToken(),
		gens:      make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.attempts == 0 {
		c.attempts = 1
	}
	return c, nil
}

func (c *Client) collectionURL(collection string) string {
	return c.base + collection + "/"
}

func (c *Client) itemURL(collection, id string) string {
	return c.base + collection + "/" + url.PathEscape(id)
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) authHeader() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.token == "" {
		return ""
	}
	return "Bearer " + c.token
}

// do issues a single request. Transport errors are returned as produced by
// the Doer, non-2xx answers become *APIError.
func (c *Client) do(ctx context.Context, method, collection, target string, body record.Record) ([]byte, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "api."+strings.ToLower(method))
	defer span.Finish()
	span.SetTag("collection", collection)
	ext.HTTPMethod.Set(span, method)
	ext.HTTPUrl.Set(span, target)

	start := time.Now()
	raw, status, err := c.roundTrip(ctx, method, target, body)
	observeRequest(method, collection, status, time.Since(start))

	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("api request failed",
			zap.String("method", method),
			zap.String("url", target),
			zap.Error(err))
		return nil, err
	}
	ext.HTTPStatusCode.Set(span, uint16(status))
	return raw, nil
}

func (c *Client) roundTrip(ctx context.Context, method, target string, body record.Record) ([]byte, int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, 0, errors.Wrap(err, "marshal body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, 0, errors.Wrap(err, "new request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth := c.authHeader(); auth != "" {
		req.Header.Set("Authorization", auth)
	}

	res, err := c.doer.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, res.StatusCode, errors.Wrap(err, "read response")
	}
	logger.Debug("api response",
		zap.String("method", method),
		zap.String("url", target),
		zap.Int("status", res.StatusCode))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, res.StatusCode, newAPIError(res.StatusCode, raw)
	}
	return raw, res.StatusCode, nil
}

func statusLabel(status int) string {
	if status == 0 {
		return "error"
	}
	return strconv.Itoa(status)
}
