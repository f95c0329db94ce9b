package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/farvue/cms/internal/store"
)

func TestLoginAcceptsKnownCredentials(t *testing.T) {
	a := NewAuthenticator(store.NewMemory(), nil)
	ctx := context.Background()

	cases := []struct {
		username string
		password string
		role     Role
	}{
		{"admin", "admin123", RoleAdmin},
		{"rehmanmesud", "farvue2024", RoleAdmin},
		{"editor", "editor123", RoleEditor},
		{"designer", "design123", RoleDesigner},
		{"viewer", "view123", RoleViewer},
	}
	for _, tc := range cases {
		session, err := a.Login(ctx, tc.username, tc.password)
		require.NoError(t, err, tc.username)
		require.Equal(t, tc.username, session.User.Username)
		require.Equal(t, tc.role, session.User.Role)
		require.False(t, session.LoggedIn.IsZero())
	}
}

func TestLoginNormalizesUsername(t *testing.T) {
	a := NewAuthenticator(store.NewMemory(), nil)

	session, err := a.Login(context.Background(), "  Admin ", "admin123")
	require.NoError(t, err)
	require.Equal(t, "admin", session.User.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	a := NewAuthenticator(store.NewMemory(), nil)
	ctx := context.Background()

	_, err := a.Login(ctx, "admin", "wrong")
	require.ErrorIs(t, err, ErrBadCredentials)

	_, err = a.Login(ctx, "nobody", "admin123")
	require.ErrorIs(t, err, ErrBadCredentials)

	_, err = a.Current(ctx)
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestLoginPersistsSessionAcrossAuthenticators(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	_, err := NewAuthenticator(st, nil).Login(ctx, "editor", "editor123")
	require.NoError(t, err)

	session, err := NewAuthenticator(st, nil).Current(ctx)
	require.NoError(t, err)
	require.Equal(t, "editor", session.User.Username)
}

func TestLogoutClearsTheSession(t *testing.T) {
	a := NewAuthenticator(store.NewMemory(), nil)
	ctx := context.Background()

	_, err := a.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	require.NoError(t, a.Logout(ctx))

	_, err = a.Current(ctx)
	require.ErrorIs(t, err, ErrNotAuthenticated)

	// Logging out again is a no-op.
	require.NoError(t, a.Logout(ctx))
}

func TestRequireEnforcesTheRoleHierarchy(t *testing.T) {
	a := NewAuthenticator(store.NewMemory(), nil)
	ctx := context.Background()

	_, err := a.Require(ctx, RoleViewer)
	require.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = a.Login(ctx, "designer", "design123")
	require.NoError(t, err)

	_, err = a.Require(ctx, RoleViewer)
	require.NoError(t, err)
	_, err = a.Require(ctx, RoleDesigner)
	require.NoError(t, err)
	_, err = a.Require(ctx, RoleEditor)
	require.ErrorIs(t, err, ErrForbidden)
	_, err = a.Require(ctx, RoleAdmin)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestRoleAtLeast(t *testing.T) {
	require.True(t, RoleAdmin.AtLeast(RoleViewer))
	require.True(t, RoleEditor.AtLeast(RoleEditor))
	require.False(t, RoleViewer.AtLeast(RoleDesigner))
	require.False(t, Role("bogus").AtLeast(RoleViewer))
}
