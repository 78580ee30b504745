package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemory_GetAbsentKey(t *testing.T) {
	m := NewMemory()

	v, err := m.Get(context.Background(), "missing")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestMemory_SetGetRemove(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("v1")))

	v, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), v)

	require.NoError(t, m.Set(ctx, "k", []byte("v2")))
	v, err = m.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), v)

	require.NoError(t, m.Remove(ctx, "k"))
	v, err = m.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestMemory_GetReturnsCopy(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("abc")))

	v, err := m.Get(ctx, "k")
	require.NoError(t, err)
	v[0] = 'x'

	again, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), again)
}

func TestMemory_RemoveMissingKeyIsNoop(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Remove(context.Background(), "missing"))
}
