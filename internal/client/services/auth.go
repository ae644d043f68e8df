// Package services contains the gateways the console views talk to: the
// authentication gateway, which also keeps the session store current, and
// the user directory gateway. Each operation is exactly one API call.
package services

import (
	"context"

	"github.com/dmitrijs2005/jwtconsole/internal/client/client"
	"github.com/dmitrijs2005/jwtconsole/internal/client/models"
)

// SessionStore is the part of session.Store the auth gateway drives.
type SessionStore interface {
	Current() *models.Session
	Set(ctx context.Context, s *models.Session) error
	Clear(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
}

// AuthService defines authentication operations.
//
// Contract:
//   - Login: authenticate and, on success only, make the session current.
//   - Register: create an account; the session is never touched.
//   - Logout: drop the session locally. The server is not contacted.
//   - IsAuthenticated / Current: read-through to the session store.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (*models.Session, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.MessageResponse, error)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	Current() *models.Session
}

type authService struct {
	client client.Client
	store  SessionStore
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(c client.Client, store SessionStore) AuthService {
	return &authService{client: c, store: store}
}

// Login returns the server's session after persisting it. A store failure
// is reported as an error even though the server accepted the credentials.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	sess, err := a.client.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	if err := a.store.Set(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.MessageResponse, error) {
	return a.client.Register(ctx, req)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	return a.store.IsAuthenticated(ctx)
}

func (a *authService) Current() *models.Session {
	return a.store.Current()
}
