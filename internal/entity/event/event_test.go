package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/slots-tracker/internal/entity/record"
)

func Test_OnMarshal_ShouldRoundTripThroughStruct(t *testing.T) {
	at := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	in := Event{
		Collection: "expenses",
		Action:     Updated,
		ID:         "abc123",
		At:         at,
		Record: record.Record{
			"amount":     10,
			"pay_method": record.Record{record.IDField: record.Ref("pm")},
		},
	}

	raw, err := Marshal(in)
	require.NoError(t, err)
	out, err := Unmarshal(raw)
	require.NoError(t, err)

	assert.Equal(t, "expenses", out.Collection)
	assert.Equal(t, Updated, out.Action)
	assert.Equal(t, "abc123", out.ID)
	assert.True(t, at.Equal(out.At))
	amount, ok := out.Record.Float("amount")
	assert.True(t, ok)
	assert.Equal(t, 10.0, amount)
	ref, ok := out.Record.Ref("pay_method")
	assert.True(t, ok)
	assert.Equal(t, "pm", ref)
}

func Test_OnUnmarshal_WithGarbage_ShouldFail(t *testing.T) {
	_, err := Unmarshal([]byte{0xff, 0x01})
	assert.Error(t, err)
}
