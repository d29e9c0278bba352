package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"max.ks1230/slots-tracker/internal/entity/expense"
	"max.ks1230/slots-tracker/internal/entity/record"
	"max.ks1230/slots-tracker/internal/entity/user"
)

type entry struct {
	id      string
	doc     record.Record
	created time.Time
}

func (e *entry) active() bool {
	return e.doc.Bool("active", true)
}

// InMemStorage follows the PostgresStorage contract, for tests and for
// running the API without a database.
type InMemStorage struct {
	mu      sync.RWMutex
	records map[string]map[string]*entry
	users   map[string]user.Record
	now     func() time.Time
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{
		records: make(map[string]map[string]*entry),
		users:   make(map[string]user.Record),
		now:     time.Now,
	}
}

func (s *InMemStorage) List(_ context.Context, collection string, filter Filter) ([]record.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*entry, 0, len(s.records[collection]))
	for _, e := range s.records[collection] {
		if e.active() && matches(e, filter) {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].created.Equal(entries[j].created) {
			return entries[i].id < entries[j].id
		}
		return entries[i].created.Before(entries[j].created)
	})

	res := make([]record.Record, 0, len(entries))
	for _, e := range entries {
		res = append(res, record.WithIdentifier(e.doc, e.id))
	}
	return res, nil
}

func matches(e *entry, filter Filter) bool {
	for field, want := range filter.Fields {
		v, ok := e.doc[field]
		if !ok || v == nil || fmt.Sprint(v) != want {
			return false
		}
	}
	return filter.After.IsZero() || e.created.After(filter.After)
}

func (s *InMemStorage) Get(_ context.Context, collection, id string) (record.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.records[collection][id]
	if !ok || !e.active() {
		return nil, ErrNotFound
	}
	return record.WithIdentifier(e.doc, e.id), nil
}

func (s *InMemStorage) Insert(_ context.Context, collection string, doc record.Record) (record.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := record.NewObjectID().Oid
	doc = prepare(doc)
	if err := s.ensureUniqueName(collection, id, doc); err != nil {
		return nil, err
	}

	if s.records[collection] == nil {
		s.records[collection] = make(map[string]*entry)
	}
	s.records[collection][id] = &entry{id: id, doc: doc, created: s.now()}
	return record.WithIdentifier(doc, id), nil
}

func (s *InMemStorage) Update(_ context.Context, collection, id string, doc record.Record) (record.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.records[collection][id]
	if !ok || !e.active() {
		return nil, ErrNotFound
	}
	doc = prepare(doc)
	if err := s.ensureUniqueName(collection, id, doc); err != nil {
		return nil, err
	}
	e.doc = doc
	return record.WithIdentifier(doc, id), nil
}

func (s *InMemStorage) Deactivate(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.records[collection][id]
	if !ok || !e.active() {
		return ErrNotFound
	}
	doc := e.doc.Clone()
	doc["active"] = false
	e.doc = doc
	return nil
}

func (s *InMemStorage) ensureUniqueName(collection, id string, doc record.Record) error {
	name := doc.String(nameField)
	if !expense.Named(collection) || name == "" || !doc.Bool("active", true) {
		return nil
	}
	for _, e := range s.records[collection] {
		if e.id != id && e.active() && strings.EqualFold(e.doc.String(nameField), name) {
			return ErrNotUnique
		}
	}
	return nil
}

func (s *InMemStorage) GetUserByEmail(_ context.Context, email string) (user.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[email]
	if !ok {
		return user.Record{}, ErrNotFound
	}
	return u, nil
}

func (s *InMemStorage) SaveUser(_ context.Context, u user.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[u.Email] = u
	return nil
}
