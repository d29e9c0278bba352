package server

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/slots-tracker/internal/entity/expense"
	"max.ks1230/slots-tracker/internal/entity/record"
	"max.ks1230/slots-tracker/internal/logger"
	"max.ks1230/slots-tracker/internal/model/storage"
)

// refFields are the expense fields pointing at another collection.
var refFields = []struct {
	field      string
	collection string
}{
	{"pay_method", expense.PayMethods},
	{"category", expense.Categories},
}

// link stores embedded pay methods and categories as {"_id": {"$oid": ...}}
// so that later renames reach every expense.
func (s *Server) link(ctx context.Context, collection string, doc record.Record) error {
	if collection != expense.Expenses {
		return nil
	}
	for _, ref := range refFields {
		raw, ok := doc[ref.field]
		if !ok || raw == nil {
			continue
		}
		id, ok := doc.Ref(ref.field)
		if !ok {
			return errors.Wrap(errBadReference, ref.field)
		}
		if _, err := s.storage.Get(ctx, ref.collection, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return errors.Wrap(errBadReference, ref.field)
			}
			return err
		}
		doc[ref.field] = record.Record{record.IDField: record.Ref(id)}
	}
	return nil
}

// expand replaces stored references with the current referenced records.
// A dangling reference is left as is.
func (s *Server) expand(ctx context.Context, collection string, rs ...record.Record) error {
	if collection != expense.Expenses {
		return nil
	}
	seen := make(map[string]record.Record)
	for _, r := range rs {
		for _, ref := range refFields {
			id, ok := r.Ref(ref.field)
			if !ok {
				continue
			}
			key := ref.collection + "/" + id
			target, ok := seen[key]
			if !ok {
				var err error
				target, err = s.storage.Get(ctx, ref.collection, id)
				if errors.Is(err, storage.ErrNotFound) {
					logger.Warn("dangling reference",
						zap.String("field", ref.field),
						zap.String("id", id),
					)
					continue
				}
				if err != nil {
					return err
				}
				seen[key] = target
			}
			r[ref.field] = target
		}
	}
	return nil
}
