package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wrenchbill/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestStore_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	in := sample{Name: "Oil Change", Count: 3}
	require.NoError(t, s.Put(ctx, "job", in))

	var out sample

	found, err := s.Get(ctx, "job", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestStore_GetMissingKey(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var out sample

	found, err := s.Get(ctx, "nope", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_Overwrite(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "k", sample{Name: "first"}))
	require.NoError(t, s.Put(ctx, "k", sample{Name: "second"}))

	var out sample

	found, err := s.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", out.Name)
}

func TestStore_CorruptBlobIsAbsent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// A plain write bypasses the codec, so the obfuscated read path sees
	// garbage. That must read as absent, never as an error.
	require.NoError(t, s.PutPlain(ctx, "k", "not base64 at all!"))

	var out sample

	found, err := s.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_Delete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "k", sample{Name: "gone soon"}))
	require.NoError(t, s.Delete(ctx, "k"))

	var out sample

	found, err := s.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting again is a no-op.
	require.NoError(t, s.Delete(ctx, "k"))
}

func TestStore_PlainFlag(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, found, err := s.GetPlain(ctx, store.KeyTutorialSeen)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.PutPlain(ctx, store.KeyTutorialSeen, "true"))

	v, found, err := s.GetPlain(ctx, store.KeyTutorialSeen)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "true", v)
}
