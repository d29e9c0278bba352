package api

import (
	"context"
	"net/http"

	"go.uber.org/zap"
	"max.ks1230/slots-tracker/internal/entity/expense"
	"max.ks1230/slots-tracker/internal/entity/record"
	"max.ks1230/slots-tracker/internal/logger"
)

// Upsert sends rec to PUT <collection>/<id> when it has an identifier and to
// POST <collection>/ otherwise. The identifier never travels in the body.
// It returns at once; exactly one request is made, without retries.
func (c *Client) Upsert(ctx context.Context, collection string, rec record.Record) *Pending {
	if c.strict {
		if err := record.ValidateIdentifier(rec); err != nil {
			p := newPending()
			go p.resolve(nil, err)
			return p
		}
	}

	id, exists := record.Identifier(rec)
	body := record.StripIdentifier(rec)

	method, target := http.MethodPost, c.collectionURL(collection)
	if exists {
		method, target = http.MethodPut, c.itemURL(collection, id)
	}
	logger.Info("upsert", zap.String("collection", collection), zap.String("method", method), zap.String("id", id))

	p := newPending()
	go func() {
		raw, err := c.do(ctx, method, collection, target, body)
		if err != nil {
			p.resolve(nil, err)
			return
		}
		c.invalidate(collection)
		p.resolve(decodeOne(raw))
	}()
	return p
}

func (c *Client) CreateOrUpdateExpense(ctx context.Context, rec record.Record) *Pending {
	return c.Upsert(ctx, expense.Expenses, rec)
}

func (c *Client) CreateOrUpdatePayMethod(ctx context.Context, rec record.Record) *Pending {
	return c.Upsert(ctx, expense.PayMethods, rec)
}

func (c *Client) CreateOrUpdateCategory(ctx context.Context, rec record.Record) *Pending {
	return c.Upsert(ctx, expense.Categories, rec)
}

// Delete removes the record with id from collection.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	_, err := c.do(ctx, http.MethodDelete, collection, c.itemURL(collection, id), nil)
	if err != nil {
		return err
	}
	c.invalidate(collection)
	return nil
}

func (c *Client) invalidate(collection string) {
	if c.cache == nil {
		return
	}
	c.genMu.Lock()
	defer c.genMu.Unlock()
	c.gens[collection]++
	if err := c.cache.InvalidateList(collection); err != nil {
		logger.Warn("failed to invalidate list cache", zap.String("collection", collection), zap.Error(err))
	}
}

// decodeOne reads the record echoed by a write. Empty bodies are fine, an
// array answer yields its first element.
func decodeOne(raw []byte) (record.Record, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	rs, err := record.DecodeList(raw)
	if err != nil {
		return nil, err
	}
	if len(rs) == 0 {
		return nil, nil
	}
	return rs[0], nil
}
