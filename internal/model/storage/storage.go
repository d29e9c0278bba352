// Package storage keeps the documents served by the expenses API and the
// accounts allowed to use it.
package storage

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"max.ks1230/slots-tracker/internal/entity/record"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrNotUnique = errors.New("name value must be unique")
)

const nameField = "name"

// Filter narrows List. Fields are compared with the string form of top-level
// document values, After with the creation time.
type Filter struct {
	Fields map[string]string
	After  time.Time
}

func (f Filter) sortedFields() []string {
	keys := make([]string, 0, len(f.Fields))
	for k := range f.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// prepare drops any identifier from a stored document and defaults active.
func prepare(doc record.Record) record.Record {
	res := doc.Clone()
	delete(res, record.IDField)
	if _, ok := res["active"].(bool); !ok {
		res["active"] = true
	}
	return res
}
