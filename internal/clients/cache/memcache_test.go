package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_FormatKey_ShouldBeScopedByCollection(t *testing.T) {
	assert.Equal(t, "slots-tracker:list:expenses", formatKey("expenses"))
	assert.NotEqual(t, formatKey("expenses"), formatKey("pay_methods"))
}
