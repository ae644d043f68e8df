package services

import (
	"context"

	"github.com/dmitrijs2005/jwtconsole/internal/client/models"
)

// fakeClient implements client.Client and records what it was called with.
type fakeClient struct {
	LoginRet *models.Session
	LoginErr error

	RegisterRet *models.MessageResponse
	RegisterErr error

	ListRet []models.User
	ListErr error

	GetRet *models.User
	GetErr error

	UpdateRet *models.User
	UpdateErr error

	DeleteRet *models.MessageResponse
	DeleteErr error

	Calls []string

	LastCreds    models.Credentials
	LastRegister models.RegisterRequest
	LastID       int64
	LastUpdate   models.UserUpdate
}

func (f *fakeClient) Login(_ context.Context, creds models.Credentials) (*models.Session, error) {
	f.Calls = append(f.Calls, "login")
	f.LastCreds = creds
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, req models.RegisterRequest) (*models.MessageResponse, error) {
	f.Calls = append(f.Calls, "register")
	f.LastRegister = req
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) ListUsers(context.Context) ([]models.User, error) {
	f.Calls = append(f.Calls, "list")
	return f.ListRet, f.ListErr
}

func (f *fakeClient) GetUser(_ context.Context, id int64) (*models.User, error) {
	f.Calls = append(f.Calls, "get")
	f.LastID = id
	return f.GetRet, f.GetErr
}

func (f *fakeClient) UpdateUser(_ context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	f.Calls = append(f.Calls, "update")
	f.LastID = id
	f.LastUpdate = upd
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) DeleteUser(_ context.Context, id int64) (*models.MessageResponse, error) {
	f.Calls = append(f.Calls, "delete")
	f.LastID = id
	return f.DeleteRet, f.DeleteErr
}
