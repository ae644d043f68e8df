package client

import (
	"context"

	"github.com/dmitrijs2005/jwtconsole/internal/client/models"
)

// Client is the remote API as seen by the gateways.
type Client interface {
	Login(ctx context.Context, creds models.Credentials) (*models.Session, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.MessageResponse, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) (*models.MessageResponse, error)
}

// TokenSource supplies the credentials attached to outgoing requests. An
// empty token means the request goes out without Authorization.
type TokenSource interface {
	Token(ctx context.Context) (token string, tokenType string, err error)
}
