package expense

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"max.ks1230/slots-tracker/internal/entity/record"
)

// Collection names, as they appear in API paths.
const (
	Expenses   = "expenses"
	PayMethods = "pay_methods"
	Categories = "categories"
)

var Collections = []string{Expenses, PayMethods, Categories}

func IsCollection(name string) bool {
	for _, c := range Collections {
		if c == name {
			return true
		}
	}
	return false
}

// Named reports whether documents of the collection have a unique name.
func Named(collection string) bool {
	return collection == PayMethods || collection == Categories
}

type PayMethod struct {
	ID     *record.ObjectID `json:"_id,omitempty"`
	Name   string           `json:"name"`
	Active bool             `json:"active"`
}

type Category struct {
	ID     *record.ObjectID `json:"_id,omitempty"`
	Name   string           `json:"name"`
	Active bool             `json:"active"`
}

type Expense struct {
	ID          *record.ObjectID `json:"_id,omitempty"`
	Amount      float64          `json:"amount"`
	Description string           `json:"description"`
	PayMethod   *PayMethod       `json:"pay_method,omitempty"`
	Category    *Category        `json:"category,omitempty"`
	Timestamp   time.Time        `json:"timestamp"`
	Active      bool             `json:"active"`
	OneTime     bool             `json:"one_time"`
}

func (e *Expense) CategoryName() string {
	if e.Category == nil || e.Category.Name == "" {
		return "Uncategorized"
	}
	return e.Category.Name
}

// Identifier returns the $oid or "" for a record that was never saved.
func Identifier(id *record.ObjectID) string {
	if id == nil {
		return ""
	}
	return id.Oid
}

// ToRecord converts a typed entity into its wire record.
func ToRecord(v any) (record.Record, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshal entity")
	}
	return record.Decode(raw)
}

// From converts a wire record into a typed entity.
func From[T any](r record.Record) (T, error) {
	var res T
	raw, err := json.Marshal(r)
	if err != nil {
		return res, errors.Wrap(err, "marshal record")
	}
	if err = json.Unmarshal(raw, &res); err != nil {
		return res, errors.Wrap(err, "unmarshal entity")
	}
	return res, nil
}

func FromList[T any](rs []record.Record) ([]T, error) {
	res := make([]T, 0, len(rs))
	for _, r := range rs {
		v, err := From[T](r)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}
