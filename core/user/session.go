package user

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
)

type (
	// Store persists the bearer token and a cached copy of the current user
	// between runs.
	Store interface {
		Token() (string, error) // empty string when logged out
		SaveToken(token string) error
		User() (User, error)
		SaveUser(usr User) error
		Clear() error
	}

	// AuthAPI is the slice of the backend the session needs.
	AuthAPI interface {
		Register(ctx context.Context, nu NewUser) (User, error)
		Login(ctx context.Context, creds Credentials) (token string, err error)
		Me(ctx context.Context) (User, error)
	}

	// Session is the explicit session context object: everything that needs
	// to know who is logged in gets handed one of these instead of reading
	// ambient storage.
	Session struct {
		store Store
		api   AuthAPI
	}
)

func NewSession(store Store, api AuthAPI) *Session {
	return &Session{store: store, api: api}
}

// Register creates a new account. The caller still has to log in afterwards.
func (s *Session) Register(ctx context.Context, nu NewUser) (User, error) {
	if err := nu.Validate(); err != nil {
		return User{}, err
	}
	return s.api.Register(ctx, nu)
}

// Login exchanges credentials for a token, persists it and caches the user.
func (s *Session) Login(ctx context.Context, creds Credentials) (User, error) {
	if err := creds.Validate(); err != nil {
		return User{}, err
	}
	token, err := s.api.Login(ctx, creds)
	if err != nil {
		return User{}, err
	}
	return s.adopt(ctx, token)
}

// LoginWithToken installs a token obtained out of band (OAuth redirect).
func (s *Session) LoginWithToken(ctx context.Context, token string) (User, error) {
	if token == "" {
		return User{}, ErrNotAuthenticated
	}
	return s.adopt(ctx, token)
}

func (s *Session) adopt(ctx context.Context, token string) (User, error) {
	if err := s.store.SaveToken(token); err != nil {
		return User{}, pkgerrors.Wrap(err, "saving token")
	}
	usr, err := s.api.Me(ctx)
	if err != nil {
		return User{}, err
	}
	if err := s.store.SaveUser(usr); err != nil {
		return User{}, pkgerrors.Wrap(err, "caching user")
	}
	return usr, nil
}

// Logout drops the persisted token and cached user.
func (s *Session) Logout() error {
	return s.store.Clear()
}

// Current returns the cached user; ErrNotAuthenticated when logged out.
func (s *Session) Current() (User, error) {
	if !s.IsAuthenticated() {
		return User{}, ErrNotAuthenticated
	}
	return s.store.User()
}

// Refresh re-fetches the current user from the backend and updates the cache.
func (s *Session) Refresh(ctx context.Context) (User, error) {
	if !s.IsAuthenticated() {
		return User{}, ErrNotAuthenticated
	}
	usr, err := s.api.Me(ctx)
	if err != nil {
		return User{}, err
	}
	if err := s.store.SaveUser(usr); err != nil {
		return User{}, pkgerrors.Wrap(err, "caching user")
	}
	return usr, nil
}

// IsAuthenticated reports whether a non-expired token is on record.
func (s *Session) IsAuthenticated() bool {
	token, err := s.store.Token()
	if err != nil || token == "" {
		return false
	}
	claims, err := ParseClaims(token)
	if err != nil {
		// opaque (non-JWT) tokens are accepted as is
		return true
	}
	return !claims.Expired()
}
