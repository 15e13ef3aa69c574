package credstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLite {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credentials.db")
	s, err := OpenSQLite(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteEmptyLoad(t *testing.T) {
	s := openTestStore(t)

	token, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token, "fresh store must read back empty")
}

func TestSQLiteSaveLoadClear(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Save(ctx, "tok123"))
	token, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)

	// Save replaces, never accumulates.
	require.NoError(t, s.Save(ctx, "tok456"))
	token, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok456", token)

	require.NoError(t, s.Clear(ctx))
	token, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	// Clearing an empty store is not an error.
	require.NoError(t, s.Clear(ctx))
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "credentials.db")

	s, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "tok123"))
	require.NoError(t, s.Close())

	reopened, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	token, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	token, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, m.Save(ctx, "tok123"))
	token, err = m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)

	require.NoError(t, m.Clear(ctx))
	token, err = m.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}
