package expense

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/slots-tracker/internal/entity/record"
)

func Test_OnToRecord_ShouldOmitMissingID(t *testing.T) {
	r, err := ToRecord(PayMethod{Name: "cash", Active: true})
	require.NoError(t, err)

	assert.False(t, record.HasIdentifier(r))
	assert.Equal(t, "cash", r.String("name"))
}

func Test_OnToRecord_ShouldKeepWireID(t *testing.T) {
	r, err := ToRecord(Expense{
		ID:          &record.ObjectID{Oid: "abc123"},
		Amount:      10,
		Description: "coffee",
		PayMethod:   &PayMethod{ID: &record.ObjectID{Oid: "pm"}, Name: "visa"},
		Timestamp:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	require.NoError(t, err)

	id, ok := record.Identifier(r)
	assert.True(t, ok)
	assert.Equal(t, "abc123", id)
	ref, ok := r.Ref("pay_method")
	assert.True(t, ok)
	assert.Equal(t, "pm", ref)
}

func Test_OnFromList_ShouldDecodeEntities(t *testing.T) {
	rs, err := record.DecodeList([]byte(`[
		{"_id":{"$oid":"e1"},"amount":42,"description":"coffee","category":{"name":"Food"},"timestamp":"2024-01-02T03:04:05Z","active":true},
		{"amount":7,"description":"bus","timestamp":"2024-01-03T03:04:05Z"}
	]`))
	require.NoError(t, err)

	exps, err := FromList[Expense](rs)
	require.NoError(t, err)
	require.Len(t, exps, 2)
	assert.Equal(t, "e1", Identifier(exps[0].ID))
	assert.Equal(t, "Food", exps[0].CategoryName())
	assert.Equal(t, "", Identifier(exps[1].ID))
	assert.Equal(t, "Uncategorized", exps[1].CategoryName())
}

func Test_OnFrom_WithBrokenTimestamp_ShouldFail(t *testing.T) {
	_, err := From[Expense](record.Record{"timestamp": "yesterday"})
	assert.Error(t, err)
}

func Test_IsCollection(t *testing.T) {
	assert.True(t, IsCollection(Expenses))
	assert.True(t, IsCollection(PayMethods))
	assert.False(t, IsCollection("users"))
	assert.True(t, Named(Categories))
	assert.False(t, Named(Expenses))
}
