package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ValidPassword(t *testing.T) {
	u, err := New("1", "me@example.com", "hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, "hunter2", u.PasswordHash)
	assert.True(t, u.ValidPassword("hunter2"))
	assert.False(t, u.ValidPassword("hunter3"))
}
