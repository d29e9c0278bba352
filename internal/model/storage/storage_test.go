package storage

import (
	"context"
	"testing"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/slots-tracker/internal/entity/record"
	"max.ks1230/slots-tracker/internal/entity/user"
)

func Test_InMem_Insert_ShouldAssignIdentifier(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorage()

	saved, err := s.Insert(ctx, "expenses", record.Record{
		record.IDField: record.Ref("client-side"),
		"amount":       42.0,
	})
	require.NoError(t, err)

	id, ok := record.Identifier(saved)
	require.True(t, ok)
	assert.NotEqual(t, "client-side", id)
	assert.True(t, record.ObjectID{Oid: id}.Valid())
	assert.Equal(t, true, saved["active"])

	got, err := s.Get(ctx, "expenses", id)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func Test_InMem_Update_ShouldReplaceDocument(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorage()
	saved, err := s.Insert(ctx, "expenses", record.Record{"amount": 42.0, "description": "coffee"})
	require.NoError(t, err)
	id, _ := record.Identifier(saved)

	updated, err := s.Update(ctx, "expenses", id, record.Record{"amount": 10.0})
	require.NoError(t, err)

	assert.Equal(t, record.Record{record.IDField: record.Ref(id), "amount": 10.0, "active": true}, updated)

	_, err = s.Update(ctx, "expenses", "missing", record.Record{"amount": 1.0})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func Test_InMem_Deactivate_ShouldHideRecord(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorage()
	saved, err := s.Insert(ctx, "categories", record.Record{"name": "food"})
	require.NoError(t, err)
	id, _ := record.Identifier(saved)

	require.NoError(t, s.Deactivate(ctx, "categories", id))

	_, err = s.Get(ctx, "categories", id)
	assert.True(t, errors.Is(err, ErrNotFound))
	list, err := s.List(ctx, "categories", Filter{})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.True(t, errors.Is(s.Deactivate(ctx, "categories", id), ErrNotFound))

	_, err = s.Insert(ctx, "categories", record.Record{"name": "Food"})
	assert.NoError(t, err, "a deactivated name can be reused")
}

func Test_InMem_NamedCollections_ShouldRejectDuplicates(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorage()
	cash, err := s.Insert(ctx, "pay_methods", record.Record{"name": "cash"})
	require.NoError(t, err)
	card, err := s.Insert(ctx, "pay_methods", record.Record{"name": "card"})
	require.NoError(t, err)

	_, err = s.Insert(ctx, "pay_methods", record.Record{"name": "Cash"})
	assert.True(t, errors.Is(err, ErrNotUnique))

	cardID, _ := record.Identifier(card)
	_, err = s.Update(ctx, "pay_methods", cardID, record.Record{"name": "CASH"})
	assert.True(t, errors.Is(err, ErrNotUnique))

	cashID, _ := record.Identifier(cash)
	_, err = s.Update(ctx, "pay_methods", cashID, record.Record{"name": "Cash"})
	assert.NoError(t, err, "renaming a record to itself is fine")

	_, err = s.Insert(ctx, "expenses", record.Record{"name": "cash"})
	assert.NoError(t, err, "expenses have no unique names")
}

func Test_InMem_List_ShouldFilter(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorage()
	old := now.BeginningOfMonth().Add(-time.Hour)
	s.now = func() time.Time { return old }
	_, err := s.Insert(ctx, "expenses", record.Record{"amount": 1.0, "description": "old"})
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.Insert(ctx, "expenses", record.Record{"amount": 2.0, "description": "coffee"})
	require.NoError(t, err)
	_, err = s.Insert(ctx, "expenses", record.Record{"amount": 3.0, "description": "taxi"})
	require.NoError(t, err)

	all, err := s.List(ctx, "expenses", Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "old", all[0].String("description"))

	month, err := s.List(ctx, "expenses", Filter{After: now.BeginningOfMonth()})
	require.NoError(t, err)
	assert.Len(t, month, 2)

	coffee, err := s.List(ctx, "expenses", Filter{Fields: map[string]string{"description": "coffee"}})
	require.NoError(t, err)
	require.Len(t, coffee, 1)
	assert.Equal(t, 2.0, coffee[0]["amount"])

	byAmount, err := s.List(ctx, "expenses", Filter{Fields: map[string]string{"amount": "3"}})
	require.NoError(t, err)
	assert.Len(t, byAmount, 1)
}

func Test_InMem_Users(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorage()

	_, err := s.GetUserByEmail(ctx, "admin@example.com")
	assert.True(t, errors.Is(err, ErrNotFound))

	u, err := user.New("u1", "admin@example.com", "secret")
	require.NoError(t, err)
	require.NoError(t, s.SaveUser(ctx, u))

	got, err := s.GetUserByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.True(t, got.ValidPassword("secret"))
}

func Test_ListQuery_ShouldBuildFilters(t *testing.T) {
	after := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	sql, args, err := listQuery("expenses", Filter{
		Fields: map[string]string{"description": "coffee", "amount": "42"},
		After:  after,
	}).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, doc FROM records WHERE active = $1 AND collection = $2 AND doc->>$3 = $4 AND doc->>$5 = $6 AND created_at > $7 ORDER BY created_at, id",
		sql)
	assert.Equal(t, []any{true, "expenses", "amount", "42", "description", "coffee", after}, args)
}

func Test_UniqueNameQuery(t *testing.T) {
	sql, args, err := uniqueNameQuery("pay_methods", "pm1", "Cash").ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT 1 FROM records WHERE active = $1 AND collection = $2 AND id <> $3 AND lower(doc->>'name') = lower($4) LIMIT 1",
		sql)
	assert.Equal(t, []any{true, "pay_methods", "pm1", "Cash"}, args)
}
