package cli

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/client/client"
	"github.com/dmitrijs2005/gophnotes/internal/client/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_UsageAndUnknown(t *testing.T) {
	a, out := newTestApp(t, &fakeClient{}, &memSessions{})
	ctx := context.Background()

	assert.ErrorIs(t, a.Run(ctx, nil), ErrUsage)
	assert.ErrorIs(t, a.Run(ctx, []string{"frobnicate"}), ErrUsage)
	assert.Contains(t, out.String(), "Unknown command: frobnicate")
	assert.NoError(t, a.Run(ctx, []string{"help"}))
	assert.ErrorIs(t, a.Run(ctx, []string{"notes"}), ErrUsage)
	assert.ErrorIs(t, a.Run(ctx, []string{"notes", "archive"}), ErrUsage)
}

func TestRegister(t *testing.T) {
	stubPassword(t, "pw")
	fc := &fakeClient{regID: "u-1"}
	a, out := newTestApp(t, fc, &memSessions{})

	require.NoError(t, a.Run(context.Background(), []string{"register", "-e", "a@b.c"}))
	assert.Equal(t, "a@b.c", fc.regEmail)
	assert.Equal(t, "pw", fc.regPass)
	assert.Contains(t, out.String(), "Registered user u-1")

	assert.ErrorIs(t, a.Run(context.Background(), []string{"register"}), ErrUsage)

	fc.regErr = client.ErrConflict
	assert.ErrorIs(t, a.Run(context.Background(), []string{"register", "-e", "a@b.c"}), client.ErrConflict)
}

func TestLogin_SavesSession(t *testing.T) {
	stubPassword(t, "pw")
	ms := &memSessions{}
	a, out := newTestApp(t, &fakeClient{}, ms)

	require.NoError(t, a.Run(context.Background(), []string{"login", "-e", "a@b.c"}))
	assert.Equal(t, "a@b.c", ms.s.Email)
	assert.Equal(t, "a1", ms.s.AccessToken)
	assert.Equal(t, "r1", ms.s.RefreshToken)
	assert.Contains(t, out.String(), "access_token: a1")

	a, _ = newTestApp(t, &fakeClient{loginErr: client.ErrUnauthorized}, &memSessions{})
	assert.ErrorIs(t, a.Run(context.Background(), []string{"login", "-e", "a@b.c"}), client.ErrUnauthorized)
}

func TestRefresh_FlagOrSession(t *testing.T) {
	ms := &memSessions{}
	ms.s.Email, ms.s.RefreshToken = "a@b.c", "saved"
	fc := &fakeClient{}
	a, _ := newTestApp(t, fc, ms)

	require.NoError(t, a.Run(context.Background(), []string{"refresh"}))
	assert.Equal(t, "a-saved", ms.s.AccessToken)
	assert.Equal(t, "r-saved", ms.s.RefreshToken)
	assert.Equal(t, "a@b.c", ms.s.Email)

	require.NoError(t, a.Run(context.Background(), []string{"refresh", "-t", "given"}))
	assert.Equal(t, "r-given", ms.s.RefreshToken)

	empty := &memSessions{}
	a, _ = newTestApp(t, &fakeClient{}, empty)
	assert.ErrorIs(t, a.Run(context.Background(), []string{"refresh"}), client.ErrUnauthorized)
	assert.Equal(t, 0, empty.saves)
}

func TestLogout(t *testing.T) {
	ms := &memSessions{}
	ms.s.AccessToken = "x"
	a, _ := newTestApp(t, &fakeClient{}, ms)

	require.NoError(t, a.Run(context.Background(), []string{"logout"}))
	assert.True(t, ms.cleared)
	assert.Empty(t, ms.s.AccessToken)
}

func TestPing(t *testing.T) {
	a, out := newTestApp(t, &fakeClient{}, &memSessions{})
	require.NoError(t, a.Run(context.Background(), []string{"ping"}))
	assert.Contains(t, out.String(), "OK")

	a, _ = newTestApp(t, &fakeClient{err: client.ErrUnavailable}, &memSessions{})
	assert.ErrorIs(t, a.Run(context.Background(), []string{"ping"}), client.ErrUnavailable)
}

func TestNotes_UsesFlagTokens(t *testing.T) {
	fc := &fakeClient{notes: []client.Note{{ID: "n1", Title: "groceries", Color: 3, CreatedAt: time.Unix(0, 0).UTC()}}}
	ms := &memSessions{}
	ms.s.AccessToken, ms.s.RefreshToken = "sa", "sr"
	a, out := newTestApp(t, fc, ms)

	require.NoError(t, a.Run(context.Background(), []string{"notes", "list", "-t", "flag-a"}))
	assert.Equal(t, "flag-a", fc.access)
	assert.Empty(t, fc.refresh)
	assert.Contains(t, out.String(), "groceries")
	assert.Equal(t, 0, ms.saves)
}

func TestNotes_FallsBackToSessionAndPersistsRotation(t *testing.T) {
	fc := &fakeClient{rotateOnCall: true}
	ms := &memSessions{}
	ms.s.Email, ms.s.AccessToken, ms.s.RefreshToken = "a@b.c", "sa", "sr"
	a, out := newTestApp(t, fc, ms)

	require.NoError(t, a.Run(context.Background(), []string{"notes", "list"}))
	assert.Contains(t, out.String(), "No notes")
	assert.Equal(t, 1, ms.saves)
	assert.Equal(t, "rotated-a", ms.s.AccessToken)
	assert.Equal(t, "rotated-r", ms.s.RefreshToken)
	assert.Equal(t, "a@b.c", ms.s.Email)
}

func TestNotes_SaveAndDelete(t *testing.T) {
	fc := &fakeClient{}
	a, out := newTestApp(t, fc, &memSessions{})
	ctx := context.Background()

	require.NoError(t, a.Run(ctx, []string{"notes", "save", "-t", "a", "-id", "x1", "-title", "T", "-content", "C", "-color", "7"}))
	assert.Equal(t, client.NoteInput{ID: "x1", Title: "T", Content: "C", Color: 7}, fc.saved)
	assert.Contains(t, out.String(), "Saved note n1")

	require.NoError(t, a.Run(ctx, []string{"notes", "delete", "-t", "a", "-id", "n1"}))
	assert.Equal(t, "n1", fc.deleted)

	assert.ErrorIs(t, a.Run(ctx, []string{"notes", "delete", "-t", "a"}), ErrUsage)
	assert.ErrorIs(t, a.Run(ctx, []string{"notes", "save", "-color", "blue"}), ErrUsage)

	fc.err = client.ErrNotFound
	assert.True(t, errors.Is(a.Run(ctx, []string{"notes", "delete", "-t", "a", "-id", "zz"}), client.ErrNotFound))
}

func TestNewApp_OpensSessionFile(t *testing.T) {
	cfg := &config.Config{
		ServerEndpointAddr: "127.0.0.1:1",
		RequestTimeout:     time.Second,
		SessionPath:        filepath.Join(t.TempDir(), "s.db"),
	}
	a, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	require.NoError(t, a.Run(context.Background(), []string{"logout"}))
	assert.NoError(t, a.Close())
}
