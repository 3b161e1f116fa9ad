package session_store

import (
	"aimlink-client/internal/core/domain"
	"aimlink-client/internal/core/port"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, store port.SessionStorePort) {
	ctx := context.Background()

	session, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)

	require.NoError(t, store.Save(ctx, domain.Session{Token: "t1", Email: "admin@aimlinkproperties.com"}))
	require.NoError(t, store.Save(ctx, domain.Session{Token: "t2", Email: "admin@aimlinkproperties.com"}))

	session, err = store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "t2", session.Token)
	assert.Equal(t, "admin@aimlinkproperties.com", session.Email)

	require.NoError(t, store.Clear(ctx))
	session, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestSQLiteStoreInMemory(t *testing.T) {
	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer store.Close()
	exerciseStore(t, store)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, domain.Session{Token: "persisted", Email: "a@b.c"}))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	session, err := reopened.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "persisted", session.Token)

	var count int64
	require.NoError(t, reopened.db.Model(&Entry{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
