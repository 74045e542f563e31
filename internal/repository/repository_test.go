package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/legally-ai/legally/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestUserCreateAndGet(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	err := repo.Create(&domain.User{Username: "alice", PasswordHash: "hash"})
	require.NoError(t, err)

	user, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "hash", user.PasswordHash)
}

func TestUserCreateDuplicate(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(&domain.User{Username: "alice", PasswordHash: "h1"}))

	err := repo.Create(&domain.User{Username: "alice", PasswordHash: "h2"})
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestUserGetMissing(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user, err := repo.GetByUsername("nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserDelete(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(&domain.User{Username: "alice", PasswordHash: "h"}))
	require.NoError(t, repo.Delete("alice"))

	user, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestHistoryInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewHistoryRepository(db)

	require.NoError(t, users.Create(&domain.User{Username: "alice", PasswordHash: "h"}))

	now := time.Now().UTC()
	require.NoError(t, repo.Append("alice", domain.HistoryEntry{"q": "first"}, now))
	require.NoError(t, repo.Append("alice", domain.HistoryEntry{"q": "second"}, now))
	require.NoError(t, repo.Append("alice", domain.HistoryEntry{"q": "third"}, now))

	entries, err := repo.ListByUser("alice")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "first", entries[0]["q"])
	assert.Equal(t, "second", entries[1]["q"])
	assert.Equal(t, "third", entries[2]["q"])
}

func TestHistoryStampsUsernameAndTimestamp(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewHistoryRepository(db)

	require.NoError(t, users.Create(&domain.User{Username: "alice", PasswordHash: "h"}))

	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append("alice", domain.HistoryEntry{"note": "hello"}, ts))

	entries, err := repo.ListByUser("alice")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "hello", entries[0]["note"])
	assert.Equal(t, "alice", entries[0]["username"])

	stamped, ok := entries[0]["timestamp"].(string)
	require.True(t, ok)
	parsed, err := time.Parse(time.RFC3339Nano, stamped)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts))
}

func TestHistoryScopedPerUser(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewHistoryRepository(db)

	require.NoError(t, users.Create(&domain.User{Username: "alice", PasswordHash: "h"}))
	require.NoError(t, users.Create(&domain.User{Username: "bob", PasswordHash: "h"}))

	now := time.Now().UTC()
	require.NoError(t, repo.Append("alice", domain.HistoryEntry{"q": "alice question"}, now))
	require.NoError(t, repo.Append("bob", domain.HistoryEntry{"q": "bob question"}, now))

	aliceEntries, err := repo.ListByUser("alice")
	require.NoError(t, err)
	require.Len(t, aliceEntries, 1)
	assert.Equal(t, "alice question", aliceEntries[0]["q"])

	bobEntries, err := repo.ListByUser("bob")
	require.NoError(t, err)
	require.Len(t, bobEntries, 1)
	assert.Equal(t, "bob question", bobEntries[0]["q"])
}

func TestHistoryEmptyList(t *testing.T) {
	db := newTestDB(t)
	repo := NewHistoryRepository(db)

	entries, err := repo.ListByUser("nobody")
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NotNil(t, entries)
}
