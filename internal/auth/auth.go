package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/farvue/cms/internal/store"
)

// SessionKey is the store slot holding the active admin session.
const SessionKey = "adminUser"

var (
	// ErrBadCredentials indicates an unknown username or a wrong password.
	// Which of the two is deliberately not distinguished.
	ErrBadCredentials = errors.New("invalid username or password")
	// ErrNotAuthenticated indicates no active session.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrForbidden indicates the session's role is below the required one.
	ErrForbidden = errors.New("insufficient role")
)

type account struct {
	user         User
	passwordHash string
}

// accounts is the fixed admin roster. Passwords are stored as hex SHA-256
// digests.
var accounts = map[string]account{
	"admin": {
		user:         User{Username: "admin", Name: "Administrator", Role: RoleAdmin},
		passwordHash: "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9",
	},
	"rehmanmesud": {
		user:         User{Username: "rehmanmesud", Name: "Rehmanmesud", Role: RoleAdmin},
		passwordHash: "676bba17aa576fdffab0fc94a6627bca3b007dd160ff86a08f2e249915de0fca",
	},
	"editor": {
		user:         User{Username: "editor", Name: "Content Editor", Role: RoleEditor},
		passwordHash: "ef5e5a1fb95055e0e56cccf98a41e784a132c14e7f6e1ba244302f0e72b29baf",
	},
	"designer": {
		user:         User{Username: "designer", Name: "Designer", Role: RoleDesigner},
		passwordHash: "b742dbd85f476ba78151f62224eeff1ed0dca9f05160dbfeb76e54c47dfd340a",
	},
	"viewer": {
		user:         User{Username: "viewer", Name: "Viewer", Role: RoleViewer},
		passwordHash: "656d604dfdba41a262963cce53699bbc56cd7a2c0da1ad5ead45fc49214159d6",
	},
}

// Authenticator verifies credentials against the fixed roster and keeps the
// active session in the store.
type Authenticator struct {
	store  store.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewAuthenticator creates an authenticator backed by st.
func NewAuthenticator(st store.Store, logger *slog.Logger) *Authenticator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Authenticator{store: st, logger: logger, now: func() time.Time { return time.Now().UTC() }}
}

// Login verifies the credentials and persists a new session, replacing any
// existing one.
func (a *Authenticator) Login(ctx context.Context, username, password string) (*Session, error) {
	acct, ok := accounts[strings.ToLower(strings.TrimSpace(username))]
	if !ok || !verify(password, acct.passwordHash) {
		a.logger.Warn("login rejected", "username", username)
		return nil, ErrBadCredentials
	}

	session := Session{User: acct.user, LoggedIn: a.now()}
	if err := a.store.Save(ctx, SessionKey, session); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	a.logger.Info("login", "username", acct.user.Username, "role", acct.user.Role)
	return &session, nil
}

// Logout clears the active session. Logging out with no session is a no-op.
func (a *Authenticator) Logout(ctx context.Context) error {
	if err := a.store.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	a.logger.Info("logout")
	return nil
}

// Current returns the active session, or ErrNotAuthenticated when none
// exists or the stored session is unreadable.
func (a *Authenticator) Current(ctx context.Context) (*Session, error) {
	var session Session
	err := a.store.Load(ctx, SessionKey, &session)
	if err != nil || session.User.Username == "" {
		return nil, ErrNotAuthenticated
	}
	return &session, nil
}

// Require returns the active session if its role grants at least min, and
// ErrNotAuthenticated or ErrForbidden otherwise.
func (a *Authenticator) Require(ctx context.Context, min Role) (*Session, error) {
	session, err := a.Current(ctx)
	if err != nil {
		return nil, err
	}
	if !session.User.Role.AtLeast(min) {
		return nil, fmt.Errorf("%s needs %s: %w", session.User.Role, min, ErrForbidden)
	}
	return session, nil
}

func verify(password, wantHex string) bool {
	sum := sha256.Sum256([]byte(password))
	got := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(got), []byte(wantHex)) == 1
}
