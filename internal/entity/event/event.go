// Package event describes changes made to the expenses API collections.
// Events travel through Kafka as a protobuf google.protobuf.Struct.
package event

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"max.ks1230/slots-tracker/internal/entity/record"
)

type Action string

const (
	Created Action = "created"
	Updated Action = "updated"
	Deleted Action = "deleted"
)

type Event struct {
	Collection string
	Action     Action
	ID         string
	At         time.Time
	Record     record.Record
}

func Marshal(e Event) ([]byte, error) {
	rec, err := plainMap(e.Record)
	if err != nil {
		return nil, errors.Wrap(err, "marshal event")
	}

	s, err := structpb.NewStruct(map[string]any{
		"collection": e.Collection,
		"action":     string(e.Action),
		"id":         e.ID,
		"at":         e.At.UTC().Format(time.RFC3339Nano),
		"record":     rec,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal event")
	}
	return proto.Marshal(s)
}

func Unmarshal(data []byte) (Event, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return Event{}, errors.Wrap(err, "unmarshal event")
	}

	m := s.AsMap()
	e := Event{
		Collection: stringOf(m["collection"]),
		Action:     Action(stringOf(m["action"])),
		ID:         stringOf(m["id"]),
	}
	if e.Collection == "" || e.Action == "" {
		return Event{}, errors.New("unmarshal event: collection and action are required")
	}

	if at := stringOf(m["at"]); at != "" {
		t, err := time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return Event{}, errors.Wrap(err, "unmarshal event")
		}
		e.At = t
	}
	if rec, ok := m["record"].(map[string]any); ok {
		e.Record = rec
	}
	return e, nil
}

// plainMap drops named types so that structpb accepts nested values.
func plainMap(r record.Record) (map[string]any, error) {
	res := map[string]any{}
	if r == nil {
		return res, nil
	}
	raw, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	err = json.Unmarshal(raw, &res)
	return res, err
}

func stringOf(v any) string {
	s, _ := v.(string)
	return s
}
