package credstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/releve-app/releve/internal/client/models"
)

var (
	testUser   = models.User{ID: "1", Name: "Ana", Email: "a@b.com", AvatarURL: "https://cdn.releve.app/a.png"}
	testTokens = models.TokenPair{AccessToken: "t1", RefreshToken: "r1"}
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "creds.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestLoad_EmptyStore_ReturnsAbsent(t *testing.T) {
	s := setupStore(t)

	user, tokens, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Nil(t, tokens)
}

func TestSaveThenLoad_RoundTrips(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testUser, testTokens))

	user, tokens, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotNil(t, tokens)
	assert.Equal(t, testUser, *user)
	assert.Equal(t, testTokens, *tokens)
}

func TestSave_OverwritesPreviousSession(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testUser, testTokens))

	other := models.User{ID: "2", Name: "Luis", Email: "l@b.com"}
	otherTokens := models.TokenPair{AccessToken: "t2", RefreshToken: "r2"}
	require.NoError(t, s.Save(ctx, other, otherTokens))

	user, tokens, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, other, *user)
	assert.Equal(t, otherTokens, *tokens)
}

func TestSaveUser_LeavesTokensUntouched(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testUser, testTokens))

	updated := testUser
	updated.AvatarURL = "https://cdn.releve.app/new.png"
	require.NoError(t, s.SaveUser(ctx, updated))

	user, tokens, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, *user)
	assert.Equal(t, testTokens, *tokens)
}

func TestSaveUser_WithoutTokens_LoadStaysPartial(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveUser(ctx, testUser))

	user, tokens, err := s.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, user)
	assert.Nil(t, tokens)
}

func TestClear_RemovesBothKeys_Idempotent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testUser, testTokens))
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx), "clearing an empty store is a no-op success")

	user, tokens, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Nil(t, tokens)
}

func TestLoad_UndecodableRow_TreatedAsAbsent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testUser, testTokens))
	_, err := s.db.ExecContext(ctx, `UPDATE session SET value = ? WHERE key = ?`, []byte("{not json"), keyTokens)
	require.NoError(t, err)

	user, tokens, err := s.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, user)
	assert.Nil(t, tokens, "garbage rows read as absent, not as errors")
}
