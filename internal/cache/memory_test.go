package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()

	t.Run("get missing key", func(t *testing.T) {
		m := NewMemory()

		_, err := m.Get(ctx, "absent")
		assert.ErrorIs(t, err, ErrMiss)
	})

	t.Run("set then get", func(t *testing.T) {
		m := NewMemory()

		require.NoError(t, m.Set(ctx, "k", "v", time.Minute))
		value, err := m.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "v", value)
	})

	t.Run("expired entry is a miss", func(t *testing.T) {
		m := NewMemory()

		require.NoError(t, m.Set(ctx, "k", "v", time.Nanosecond))
		time.Sleep(time.Millisecond)

		_, err := m.Get(ctx, "k")
		assert.ErrorIs(t, err, ErrMiss)
	})

	t.Run("setnx only sets once", func(t *testing.T) {
		m := NewMemory()

		set, err := m.SetNX(ctx, "nonce", "1", time.Minute)
		require.NoError(t, err)
		assert.True(t, set)

		set, err = m.SetNX(ctx, "nonce", "1", time.Minute)
		require.NoError(t, err)
		assert.False(t, set)
	})

	t.Run("del removes keys", func(t *testing.T) {
		m := NewMemory()

		require.NoError(t, m.Set(ctx, "a", "1", 0))
		require.NoError(t, m.Set(ctx, "b", "2", 0))
		require.NoError(t, m.Del(ctx, "a", "b"))

		_, err := m.Get(ctx, "a")
		assert.ErrorIs(t, err, ErrMiss)
		_, err = m.Get(ctx, "b")
		assert.ErrorIs(t, err, ErrMiss)
	})
}
