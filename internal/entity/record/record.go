// Package record holds the loosely typed documents exchanged with the
// expenses API and the rules that decide whether a document already exists.
package record

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// IDField carries the backend identifier, {"_id": {"$oid": "..."}}.
	IDField = "_id"
	// OidField is the key inside the IDField wrapper.
	OidField = "$oid"
)

var ErrMalformedIdentifier = errors.New("malformed record identifier")

// Record is one expense, payment method or category as sent over the wire.
type Record map[string]any

// ObjectID is the typed form of the identifier wrapper.
type ObjectID struct {
	Oid string `json:"$oid"`
}

func NewObjectID() ObjectID {
	return ObjectID{Oid: primitive.NewObjectID().Hex()}
}

// Ref builds the wire form of an identifier, suitable for storing under
// IDField or for referencing another record.
func Ref(id string) map[string]any {
	return map[string]any{OidField: id}
}

func (id ObjectID) Valid() bool {
	return primitive.IsValidObjectID(id.Oid)
}

// HasIdentifier reports whether r carries a usable identifier. Anything but a
// non-empty $oid string under _id counts as a new record.
func HasIdentifier(r Record) bool {
	_, ok := Identifier(r)
	return ok
}

// Identifier returns the $oid of r, or false when r is new.
func Identifier(r Record) (string, bool) {
	if r == nil {
		return "", false
	}
	oid := oidOf(r[IDField])
	return oid, oid != ""
}

func oidOf(raw any) string {
	switch v := raw.(type) {
	case map[string]any:
		oid, _ := v[OidField].(string)
		return oid
	case Record:
		oid, _ := v[OidField].(string)
		return oid
	case map[string]string:
		return v[OidField]
	case ObjectID:
		return v.Oid
	case *ObjectID:
		if v == nil {
			return ""
		}
		return v.Oid
	}
	return ""
}

// StripIdentifier returns a shallow copy of r without _id when r has an
// identifier. A malformed _id stays in the copy.
func StripIdentifier(r Record) Record {
	res := r.Clone()
	if HasIdentifier(r) {
		delete(res, IDField)
	}
	return res
}

// ValidateIdentifier accepts records without an _id key and records whose
// _id is a well-formed ObjectID.
func ValidateIdentifier(r Record) error {
	raw, present := r[IDField]
	if !present {
		return nil
	}
	oid := oidOf(raw)
	if oid == "" || !primitive.IsValidObjectID(oid) {
		return errors.Wrapf(ErrMalformedIdentifier, "%s=%v", IDField, raw)
	}
	return nil
}

// WithIdentifier returns a copy of r carrying id.
func WithIdentifier(r Record, id string) Record {
	res := r.Clone()
	res[IDField] = Ref(id)
	return res
}

// Link returns a record carrying only the identifier of r, the stored form of
// an expense pay method or category.
func Link(r Record) (Record, bool) {
	id, ok := Identifier(r)
	if !ok {
		return nil, false
	}
	return Record{IDField: Ref(id)}, true
}

func (r Record) Clone() Record {
	res := make(Record, len(r))
	for k, v := range r {
		res[k] = v
	}
	return res
}

// String returns the value of a string field or "".
func (r Record) String(field string) string {
	s, _ := r[field].(string)
	return s
}

// Float returns a numeric field as float64.
func (r Record) Float(field string) (float64, bool) {
	switch v := r[field].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

// Bool returns a bool field, def when it is absent or not a bool.
func (r Record) Bool(field string, def bool) bool {
	b, ok := r[field].(bool)
	if !ok {
		return def
	}
	return b
}

// Ref returns the identifier of a nested record stored under field.
func (r Record) Ref(field string) (string, bool) {
	switch v := r[field].(type) {
	case map[string]any:
		return Identifier(v)
	case Record:
		return Identifier(v)
	}
	return "", false
}

func Decode(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, errors.Wrap(err, "decode record")
	}
	return r, nil
}

// DecodeList accepts a JSON array or a single object.
func DecodeList(data []byte) ([]Record, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		r, err := Decode(data)
		if err != nil {
			return nil, err
		}
		return []Record{r}, nil
	}

	var rs []Record
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, errors.Wrap(err, "decode records")
	}
	return rs, nil
}
