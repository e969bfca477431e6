package sessionstore

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/olilab/internal/client/storage"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

var _ storage.Store = (*MemoryStore)(nil)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	s := NewMemoryStore(clockwork.NewFakeClock(), 0)
	ctx := context.Background()

	v, err := s.Get(ctx, "oliLabLoggedInUserId")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, s.Set(ctx, "oliLabLoggedInUserId", []byte("u1")))
	v, err = s.Get(ctx, "oliLabLoggedInUserId")
	require.NoError(t, err)
	require.Equal(t, []byte("u1"), v)

	require.NoError(t, s.Delete(ctx, "oliLabLoggedInUserId"))
	require.NoError(t, s.Delete(ctx, "oliLabLoggedInUserId"))
	v, err = s.Get(ctx, "oliLabLoggedInUserId")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestMemoryStore_ValuesAreCopied(t *testing.T) {
	s := NewMemoryStore(nil, 0)
	ctx := context.Background()

	in := []byte("u1")
	require.NoError(t, s.Set(ctx, "k", in))
	in[0] = 'X'

	out, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("u1"), out)

	out[0] = 'Y'
	again, _ := s.Get(ctx, "k")
	require.Equal(t, []byte("u1"), again)
}

func TestMemoryStore_ExpiresAfterMaxAge(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := NewMemoryStore(clock, time.Hour)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v")))

	clock.Advance(59 * time.Minute)
	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), v)

	clock.Advance(time.Minute)
	v, err = s.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestMemoryStore_SetRestartsExpiry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := NewMemoryStore(clock, time.Hour)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("a")))
	clock.Advance(50 * time.Minute)
	require.NoError(t, s.Set(ctx, "k", []byte("b")))
	clock.Advance(50 * time.Minute)

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("b"), v)
}
