package record

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_HasIdentifier_ShouldFailSafeOnMissingLevels(t *testing.T) {
	cases := map[string]Record{
		"nil record":     nil,
		"empty record":   {},
		"no id field":    {"amount": 42, "description": "coffee"},
		"nil id":         {IDField: nil},
		"empty id":       {IDField: map[string]any{}},
		"nil oid":        {IDField: map[string]any{OidField: nil}},
		"empty oid":      {IDField: map[string]any{OidField: ""}},
		"numeric oid":    {IDField: map[string]any{OidField: 12}},
		"string id":      {IDField: "abc123"},
		"nil typed id":   {IDField: (*ObjectID)(nil)},
		"empty typed id": {IDField: ObjectID{}},
	}

	for name, r := range cases {
		t.Run(name, func(t *testing.T) {
			assert.False(t, HasIdentifier(r))
			id, ok := Identifier(r)
			assert.False(t, ok)
			assert.Empty(t, id)
		})
	}
}

func Test_Identifier_ShouldReturnOid(t *testing.T) {
	cases := map[string]Record{
		"wire map":    {IDField: map[string]any{OidField: "X"}},
		"record map":  {IDField: Record{OidField: "X"}},
		"string map":  {IDField: map[string]string{OidField: "X"}},
		"typed value": {IDField: ObjectID{Oid: "X"}},
		"typed ptr":   {IDField: &ObjectID{Oid: "X"}},
	}

	for name, r := range cases {
		t.Run(name, func(t *testing.T) {
			assert.True(t, HasIdentifier(r))
			id, ok := Identifier(r)
			assert.True(t, ok)
			assert.Equal(t, "X", id)
		})
	}
}

func Test_StripIdentifier_ShouldRemoveIDAndKeepInput(t *testing.T) {
	in := Record{IDField: Ref("abc123"), "amount": 10}

	out := StripIdentifier(in)

	assert.Equal(t, Record{"amount": 10}, out)
	assert.Contains(t, in, IDField, "input must not be mutated")
	assert.Equal(t, out, StripIdentifier(out))
}

func Test_StripIdentifier_ShouldKeepMalformedID(t *testing.T) {
	in := Record{IDField: map[string]any{}, "name": "cash"}

	out := StripIdentifier(in)

	assert.Equal(t, in, out)
}

func Test_StripIdentifier_OnNil_ShouldReturnEmptyRecord(t *testing.T) {
	out := StripIdentifier(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func Test_ValidateIdentifier(t *testing.T) {
	valid := NewObjectID()
	require.True(t, valid.Valid())

	assert.NoError(t, ValidateIdentifier(Record{"name": "cash"}))
	assert.NoError(t, ValidateIdentifier(Record{IDField: Ref(valid.Oid)}))

	for _, r := range []Record{
		{IDField: nil},
		{IDField: map[string]any{}},
		{IDField: Ref("abc123")},
	} {
		err := ValidateIdentifier(r)
		assert.True(t, errors.Is(err, ErrMalformedIdentifier), "%v", r)
	}
}

func Test_WithIdentifier_ShouldNotMutate(t *testing.T) {
	in := Record{"name": "cash"}
	out := WithIdentifier(in, "abc")

	id, ok := Identifier(out)
	assert.True(t, ok)
	assert.Equal(t, "abc", id)
	assert.NotContains(t, in, IDField)
}

func Test_Link_ShouldKeepOnlyIdentifier(t *testing.T) {
	ref, ok := Link(Record{IDField: Ref("pm1"), "name": "cash", "active": true})
	require.True(t, ok)
	assert.Equal(t, Record{IDField: map[string]any{OidField: "pm1"}}, ref)

	_, ok = Link(Record{"name": "cash"})
	assert.False(t, ok)
}

func Test_DecodeList_ShouldAcceptObjectAndArray(t *testing.T) {
	rs, err := DecodeList([]byte(`[{"_id":{"$oid":"a"},"name":"cash"},{"name":"visa"}]`))
	require.NoError(t, err)
	require.Len(t, rs, 2)
	id, ok := Identifier(rs[0])
	assert.True(t, ok)
	assert.Equal(t, "a", id)
	assert.False(t, HasIdentifier(rs[1]))

	rs, err = DecodeList([]byte(` {"name":"cash"}`))
	require.NoError(t, err)
	assert.Equal(t, []Record{{"name": "cash"}}, rs)

	_, err = DecodeList([]byte(`nope`))
	assert.Error(t, err)
}

func Test_Accessors(t *testing.T) {
	r, err := Decode([]byte(`{"amount":42,"description":"coffee","active":false,"pay_method":{"_id":{"$oid":"pm"}}}`))
	require.NoError(t, err)

	amount, ok := r.Float("amount")
	assert.True(t, ok)
	assert.Equal(t, 42.0, amount)
	assert.Equal(t, "coffee", r.String("description"))
	assert.Equal(t, "", r.String("missing"))
	assert.False(t, r.Bool("active", true))
	assert.True(t, r.Bool("missing", true))

	ref, ok := r.Ref("pay_method")
	assert.True(t, ok)
	assert.Equal(t, "pm", ref)
}
