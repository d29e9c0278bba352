// Package screens drives the expense and payment method forms: it presents a
// form, sends the submitted record to the API and refreshes the affected
// list once the API has answered.
package screens

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/slots-tracker/internal/clients/api"
	"max.ks1230/slots-tracker/internal/entity/expense"
	"max.ks1230/slots-tracker/internal/entity/record"
	"max.ks1230/slots-tracker/internal/logger"
)

const (
	ExpensePage   = "ExpenseModalPage"
	PayMethodPage = "PayMethodModalPage"
	CategoryPage  = "CategoryModalPage"
)

// Outcome is how a form interaction ended.
type Outcome int

const (
	OutcomeCancelled Outcome = iota
	OutcomeSaved
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeSaved:
		return "saved"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

type ModalOptions struct {
	EnableBackdropDismiss bool
}

type Form struct {
	Page    string
	Initial record.Record
	Options ModalOptions
}

//go:generate minimock -i UI -o ./mock/ui_mock.go -n UIMock

// UI presents forms and transient error messages.
type UI interface {
	// Present shows form and returns the submitted record, or false when
	// the user dismissed it.
	Present(ctx context.Context, form Form) (record.Record, bool, error)
	ShowError(ctx context.Context, message string) error
}

//go:generate minimock -i apiClient -o ./mock/api_client_mock.go -n APIClientMock

type apiClient interface {
	Upsert(ctx context.Context, collection string, rec record.Record) *api.Pending
	List(ctx context.Context, collection string, query url.Values) ([]record.Record, error)
	Delete(ctx context.Context, collection, id string) error
}

type Service struct {
	api apiClient

	mu      sync.RWMutex
	lists   map[string][]record.Record
	started map[string]uint64
	applied map[string]uint64
}

func New(client apiClient) *Service {
	return &Service{
		api:     client,
		lists:   make(map[string][]record.Record),
		started: make(map[string]uint64),
		applied: make(map[string]uint64),
	}
}

// Init loads every collection.
func (s *Service) Init(ctx context.Context) error {
	for _, c := range expense.Collections {
		if err := s.Refresh(ctx, c); err != nil {
			return errors.Wrap(err, "init screens")
		}
	}
	return nil
}

// Refresh re-fetches collection from the API. A fetch that started before
// an already applied one is dropped, so a slow poll never overwrites the
// list loaded after a save.
func (s *Service) Refresh(ctx context.Context, collection string) error {
	s.mu.Lock()
	s.started[collection]++
	seq := s.started[collection]
	s.mu.Unlock()

	rs, err := s.api.List(ctx, collection, nil)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if seq < s.applied[collection] {
		s.mu.Unlock()
		logger.Debug("stale collection fetch dropped", zap.String("collection", collection), zap.Uint64("seq", seq))
		return nil
	}
	s.applied[collection] = seq
	s.lists[collection] = rs
	s.mu.Unlock()

	logger.Debug("collection refreshed", zap.String("collection", collection), zap.Int("count", len(rs)))
	return nil
}

// Records returns the last fetched snapshot of collection.
func (s *Service) Records(collection string) []record.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]record.Record(nil), s.lists[collection]...)
}

func (s *Service) Expenses() []record.Record {
	return s.Records(expense.Expenses)
}

func (s *Service) PayMethods() []record.Record {
	return s.Records(expense.PayMethods)
}

func (s *Service) Categories() []record.Record {
	return s.Records(expense.Categories)
}

// Find looks a record up by identifier in the snapshot of collection.
func (s *Service) Find(collection, id string) (record.Record, bool) {
	for _, r := range s.Records(collection) {
		if rid, ok := record.Identifier(r); ok && rid == id {
			return r, true
		}
	}
	return nil, false
}

// FindByName looks a record up by its name field, ignoring case.
func (s *Service) FindByName(collection, name string) (record.Record, bool) {
	for _, r := range s.Records(collection) {
		if strings.EqualFold(r.String("name"), name) {
			return r, true
		}
	}
	return nil, false
}

// CreateOrUpdateExpense presents the expense form, nil data opens an empty one.
func (s *Service) CreateOrUpdateExpense(ctx context.Context, ui UI, data record.Record) (Outcome, error) {
	if data == nil {
		data = record.Record{"amount": nil, "description": ""}
	}
	return s.createOrUpdate(ctx, ui, expense.Expenses, ExpensePage, data)
}

func (s *Service) CreateOrUpdatePayMethod(ctx context.Context, ui UI, data record.Record) (Outcome, error) {
	if data == nil {
		data = record.Record{"name": nil}
	}
	return s.createOrUpdate(ctx, ui, expense.PayMethods, PayMethodPage, data)
}

func (s *Service) CreateOrUpdateCategory(ctx context.Context, ui UI, data record.Record) (Outcome, error) {
	if data == nil {
		data = record.Record{"name": nil}
	}
	return s.createOrUpdate(ctx, ui, expense.Categories, CategoryPage, data)
}

func (s *Service) createOrUpdate(ctx context.Context, ui UI, collection, page string, data record.Record) (Outcome, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "screens.createOrUpdate")
	defer span.Finish()
	span.SetTag("collection", collection)

	submitted, ok, err := ui.Present(ctx, Form{
		Page:    page,
		Initial: data,
		Options: ModalOptions{EnableBackdropDismiss: false},
	})
	if err != nil {
		ext.Error.Set(span, true)
		return OutcomeFailed, errors.Wrap(err, "present form")
	}
	if !ok || submitted == nil {
		return OutcomeCancelled, nil
	}

	_, err = s.api.Upsert(ctx, collection, submitted).Wait(ctx)
	if err != nil {
		ext.Error.Set(span, true)
		s.showError(ctx, ui, api.Message(err))
		return OutcomeFailed, errors.Wrapf(err, "save %s", collection)
	}

	if err = s.Refresh(ctx, collection); err != nil {
		s.showError(ctx, ui, api.Message(err))
		return OutcomeSaved, errors.Wrapf(err, "refresh %s", collection)
	}
	return OutcomeSaved, nil
}

// Remove deletes a record and refreshes its collection.
func (s *Service) Remove(ctx context.Context, ui UI, collection, id string) error {
	if err := s.api.Delete(ctx, collection, id); err != nil {
		s.showError(ctx, ui, api.Message(err))
		return errors.Wrapf(err, "delete %s/%s", collection, id)
	}
	return s.Refresh(ctx, collection)
}

func (s *Service) showError(ctx context.Context, ui UI, message string) {
	if err := ui.ShowError(ctx, message); err != nil {
		logger.Error("failed to show error", zap.Error(err))
	}
}
