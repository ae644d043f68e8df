package services

import (
	"context"

	"github.com/dmitrijs2005/jwtconsole/internal/client/client"
	"github.com/dmitrijs2005/jwtconsole/internal/client/models"
)

// UserService is the user directory. Responses are returned as the server
// sent them.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id int64) (*models.MessageResponse, error)
}

type userService struct {
	client client.Client
}

func NewUserService(c client.Client) UserService {
	return &userService{client: c}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.client.ListUsers(ctx)
}

func (s *userService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.client.GetUser(ctx, id)
}

func (s *userService) Update(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	return s.client.UpdateUser(ctx, id, upd)
}

func (s *userService) Delete(ctx context.Context, id int64) (*models.MessageResponse, error) {
	return s.client.DeleteUser(ctx, id)
}
